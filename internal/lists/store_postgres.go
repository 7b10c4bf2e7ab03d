// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lists

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/shopventory/internal/platform/database/schema"
	"github.com/taibuivan/shopventory/internal/platform/dberr"
)

const resourceList = "List"

// emptyAttributes is stored when a list is created without extra fields.
var emptyAttributes = json.RawMessage(`{}`)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new Postgres implementation of the list store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var selectColumns = strings.Join(schema.ShopventoryList.Columns(), ", ")

/*
FetchAll retrieves every list owned by the session's user.

Returns:
  - []List: Lists ordered by creation time
  - error: Database execution failure
*/
func (repository *PostgresRepository) FetchAll(ctx context.Context, session Session) ([]List, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC`,
		selectColumns,
		schema.ShopventoryList.Table,
		schema.ShopventoryList.UserID,
		schema.ShopventoryList.CreatedAt, schema.ShopventoryList.ID,
	)

	rows, err := repository.pool.Query(ctx, query, session.UserID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceList, "fetch_lists")
	}
	defer rows.Close()

	result := make([]List, 0)
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceList, "scan_list")
		}
		result = append(result, *list)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceList, "iterate_lists")
	}

	return result, nil
}

/*
Get retrieves a single list owned by the session's user.

Returns:
  - *List: Hydrated entity
  - error: apperr.NotFound or database execution failure
*/
func (repository *PostgresRepository) Get(ctx context.Context, session Session, id string) (*List, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2`,
		selectColumns,
		schema.ShopventoryList.Table,
		schema.ShopventoryList.UserID, schema.ShopventoryList.ID,
	)

	list, err := scanList(repository.pool.QueryRow(ctx, query, session.UserID, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceList, "get_list")
	}

	return list, nil
}

/*
Create inserts a new list row and fills in the stored timestamps.

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(ctx context.Context, session Session, list *List) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s`,
		schema.ShopventoryList.Table,
		schema.ShopventoryList.ID, schema.ShopventoryList.UserID, schema.ShopventoryList.Name,
		schema.ShopventoryList.Type, schema.ShopventoryList.Attributes,
		schema.ShopventoryList.CreatedAt, schema.ShopventoryList.UpdatedAt,
		schema.ShopventoryList.CreatedAt, schema.ShopventoryList.UpdatedAt,
	)

	attributes := list.Attributes
	if len(attributes) == 0 {
		attributes = emptyAttributes
	}

	err := repository.pool.QueryRow(ctx, query,
		list.ID, session.UserID, list.Name, string(list.Type), []byte(attributes),
	).Scan(&list.CreatedAt, &list.UpdatedAt)

	return dberr.Wrap(err, resourceList, "create_list")
}

/*
Delete removes a single list owned by the session's user.

Returns:
  - error: apperr.NotFound if no row matched, or execution failure
*/
func (repository *PostgresRepository) Delete(ctx context.Context, session Session, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ShopventoryList.Table, schema.ShopventoryList.UserID, schema.ShopventoryList.ID,
	)

	cmd, err := repository.pool.Exec(ctx, query, session.UserID, id)
	if err != nil {
		return dberr.Wrap(err, resourceList, "delete_list")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resourceList, "delete_list")
	}
	return nil
}

// scanList reads one row in [schema.ShopventoryListTable.Columns] order.
func scanList(row pgx.Row) (*List, error) {
	list := &List{}
	var listType string
	var attributes []byte

	if err := row.Scan(&list.ID, &list.Name, &listType, &attributes, &list.CreatedAt, &list.UpdatedAt); err != nil {
		return nil, err
	}

	list.Type = Type(listType)
	if len(attributes) > 0 && string(attributes) != string(emptyAttributes) {
		list.Attributes = json.RawMessage(attributes)
	}

	return list, nil
}
