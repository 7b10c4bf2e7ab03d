// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lists

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taibuivan/shopventory/pkg/slice"
)

// Filter returns the lists whose name or type contains term, ignoring case.
//
// An empty term matches every list. The input is never modified and the
// result preserves input order.
func Filter(all []List, term string) []List {
	if term == "" {
		return append([]List(nil), all...)
	}

	// A Caser keeps state between calls, so each Filter gets its own.
	// Plain lower-casing: "ss" does not match "ß".
	lower := cases.Lower(language.Und)
	needle := lower.String(term)

	return slice.Filter(all, func(list List) bool {
		return strings.Contains(lower.String(list.Name), needle) ||
			strings.Contains(lower.String(string(list.Type)), needle)
	})
}
