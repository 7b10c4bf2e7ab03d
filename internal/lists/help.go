// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lists

// HelpContent is the static explanation shown in the lists info modal.
type HelpContent struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// Help returns the lists screen help content.
func Help() HelpContent {
	return HelpContent{
		Title: "Lists Info",
		Lines: []string{
			"Search lists by name or type (Inventory/Shopping).",
			"Tap a list to view or edit it.",
			"Delete a list by pressing the trash icon.",
			`Create a new list using the "Create New List" button.`,
		},
	}
}
