// Copyright (c) 2026 Shopventory. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lists

import "github.com/taibuivan/shopventory/internal/platform/constants"

// Route returns the client path of the detail screen for a list.
//
// Shopping lists open at /list/{id} and inventory lists at /invlist/{id}.
// The second result is false for an unrecognised type, which opens nothing.
func Route(id string, listType Type) (string, bool) {
	switch listType {
	case TypeShopping:
		return constants.RouteShoppingList + id, true
	case TypeInventory:
		return constants.RouteInventoryList + id, true
	default:
		return "", false
	}
}
