package schema

// ShopventoryListTable represents the 'shopventory.list' table
type ShopventoryListTable struct {
	Table      string
	ID         string
	UserID     string
	Name       string
	Type       string
	Attributes string
	CreatedAt  string
	UpdatedAt  string
}

// ShopventoryList is the schema definition for shopventory.list
var ShopventoryList = ShopventoryListTable{
	Table:      "shopventory.list",
	ID:         "id",
	UserID:     "userid",
	Name:       "name",
	Type:       "type",
	Attributes: "attributes",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

// Columns returns the selectable columns in scan order.
func (t ShopventoryListTable) Columns() []string {
	return []string{t.ID, t.Name, t.Type, t.Attributes, t.CreatedAt, t.UpdatedAt}
}
