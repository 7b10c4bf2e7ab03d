// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr maps low-level pgx errors onto [apperr.AppError] values.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/shopventory/internal/platform/apperr"
)

// Wrap classifies a database error for the named resource.
//
// pgx.ErrNoRows becomes NOT_FOUND and malformed identifiers (22P02) are reported
// as NOT_FOUND as well, since a value that cannot be an id names no row. Unique
// violations become CONFLICT. All other errors become INTERNAL_ERROR with the
// action recorded in the cause.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.InvalidTextRepresentation:
			return apperr.NotFound(resource)
		case pgerrcode.UniqueViolation:
			return apperr.Conflict(resource + " already exists")
		case pgerrcode.ForeignKeyViolation:
			return apperr.ValidationError(resource + " references missing data")
		}
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
