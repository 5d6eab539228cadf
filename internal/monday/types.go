package monday

import (
	"encoding/json"
	"time"
)

// SubitemRef is a lightweight child-item reference. Subitems are not
// recursively expanded.
type SubitemRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BoardRef is a back-reference to the board an item belongs to. Populated
// only by the column-value-filtered query.
type BoardRef struct {
	ID string `json:"id"`
}

// ColumnValue is the canonical, type-uniform shape of one column's value on
// an item. Variant content (Value, DisplayValue, LinkedItemIDs) is simply
// absent when not applicable, so consumers never branch on Type.
type ColumnValue struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	// Column metadata.
	Title        string `json:"title,omitempty"`
	Archived     bool   `json:"archived,omitempty"`
	Description  string `json:"description,omitempty"`
	SettingsJSON string `json:"settings_json,omitempty"`

	// Plain column types: a type-specific JSON payload plus its
	// human-readable label.
	Text  *string         `json:"text,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`

	// board_relation, dependency and mirror columns: content sourced from
	// the type fragments, never from Value/Text.
	DisplayValue  string   `json:"display_value,omitempty"`
	LinkedItemIDs []string `json:"linked_item_ids,omitempty"`
}

// Item is one board record with its normalized column values.
type Item struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CreatedAt    time.Time     `json:"created_at"`
	State        string        `json:"state,omitempty"`
	Subitems     []SubitemRef  `json:"subitems,omitempty"`
	ColumnValues []ColumnValue `json:"column_values"`
	Board        *BoardRef     `json:"board,omitempty"`
}

// --- Wire types (aligned with the monday.com GraphQL schema) ---

// rawColumn is the column metadata block of a column value.
type rawColumn struct {
	Title       string `json:"title"`
	Archived    bool   `json:"archived"`
	Description string `json:"description"`
	SettingsStr string `json:"settings_str"`
}

// rawColumnValue is a column value as returned by the API, with the inline
// fragment fields flattened in by the GraphQL JSON encoding.
type rawColumnValue struct {
	ID     string          `json:"id"`
	Text   *string         `json:"text"`
	Type   string          `json:"type"`
	Value  json.RawMessage `json:"value"`
	Column rawColumn       `json:"column"`

	// Fragment fields, present only on BoardRelationValue, DependencyValue
	// and MirrorValue.
	DisplayValue  string   `json:"display_value"`
	LinkedItemIDs []string `json:"linked_item_ids"`
}

type rawItem struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	CreatedAt    time.Time        `json:"created_at"`
	State        string           `json:"state"`
	Subitems     []SubitemRef     `json:"subitems"`
	ColumnValues []rawColumnValue `json:"column_values"`
	Board        *BoardRef        `json:"board"`
}

// page is one page of a cursor-paginated item listing. A nil cursor marks
// the final page.
type page struct {
	Cursor *string   `json:"cursor"`
	Items  []rawItem `json:"items"`
}

// --- Response envelopes, one per operation ---

// itemsData is the get-by-id response: data.items.
type itemsData struct {
	Items []rawItem `json:"items"`
}

// boardsData is the list-by-board first-page response:
// data.boards[].groups[].items_page.
type boardsData struct {
	Boards []struct {
		Groups []struct {
			ItemsPage page `json:"items_page"`
		} `json:"groups"`
	} `json:"boards"`
}

// nextPageData is the continuation response: data.next_items_page.
type nextPageData struct {
	NextItemsPage page `json:"next_items_page"`
}

// columnValuesData is the column-value-filtered response:
// data.items_page_by_column_values.
type columnValuesData struct {
	ItemsPage page `json:"items_page_by_column_values"`
}
