// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lists_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/shopventory/internal/lists"
	"github.com/taibuivan/shopventory/pkg/slice"
)

var sample = []lists.List{
	{ID: "1", Name: "Groceries", Type: lists.TypeShopping},
	{ID: "2", Name: "Garage", Type: lists.TypeInventory},
	{ID: "3", Name: "Pantry", Type: lists.TypeInventory},
}

func ids(entries []lists.List) []string {
	return slice.Map(entries, func(list lists.List) string { return list.ID })
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty_matches_all", "", []string{"1", "2", "3"}},
		{"name_prefix", "gro", []string{"1"}},
		{"ignores_case", "GARAGE", []string{"2"}},
		{"matches_type", "invent", []string{"2", "3"}},
		{"matches_type_mixed_case", "ShOpPiNg", []string{"1"}},
		{"substring_in_middle", "ant", []string{"3"}},
		{"no_match", "xyz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(lists.Filter(sample, tt.term)))
		})
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	before := append([]lists.List(nil), sample...)

	result := lists.Filter(sample, "")
	result[0].Name = "changed"

	assert.Equal(t, before, sample)
}

func TestFilter_LowerCasesWithoutFolding(t *testing.T) {
	streets := []lists.List{
		{ID: "s1", Name: "Straße", Type: lists.TypeShopping},
		{ID: "s2", Name: "STRASSE", Type: lists.TypeShopping},
		{ID: "s3", Name: "Ölfarben", Type: lists.TypeInventory},
	}

	assert.Equal(t, []string{"s2"}, ids(lists.Filter(streets, "ss")))
	assert.Equal(t, []string{"s1"}, ids(lists.Filter(streets, "ß")))
	assert.Equal(t, []string{"s3"}, ids(lists.Filter(streets, "ölf")))
}
