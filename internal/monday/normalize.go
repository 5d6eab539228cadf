package monday

// Column types whose value field is always null on the wire. Their content
// lives in the inline fragment fields instead.
const (
	typeBoardRelation = "board_relation"
	typeDependency    = "dependency"
	typeMirror        = "mirror"
)

// normalizeColumnValue maps a raw, type-variant column value onto the
// canonical ColumnValue shape. It is pure and total: unknown column types
// pass through the plain branch with their value and text untouched, and a
// fragment with missing fields degrades to empty defaults rather than
// failing.
func normalizeColumnValue(raw rawColumnValue) ColumnValue {
	cv := ColumnValue{
		ID:           raw.ID,
		Type:         raw.Type,
		Title:        raw.Column.Title,
		Archived:     raw.Column.Archived,
		Description:  raw.Column.Description,
		SettingsJSON: raw.Column.SettingsStr,
	}

	switch raw.Type {
	case typeBoardRelation, typeDependency:
		// value is always null for these types; the fragment is canonical.
		cv.DisplayValue = raw.DisplayValue
		cv.LinkedItemIDs = raw.LinkedItemIDs
		if cv.LinkedItemIDs == nil {
			cv.LinkedItemIDs = []string{}
		}
	case typeMirror:
		cv.DisplayValue = raw.DisplayValue
	default:
		cv.Text = raw.Text
		cv.Value = raw.Value
	}
	return cv
}

// normalizeItem maps a raw item onto the canonical Item, normalizing every
// column value. Column order is preserved as the server sent it, but no
// output field depends on it.
func normalizeItem(raw rawItem) Item {
	item := Item{
		ID:        raw.ID,
		Name:      raw.Name,
		CreatedAt: raw.CreatedAt,
		State:     raw.State,
		Subitems:  raw.Subitems,
		Board:     raw.Board,
	}
	item.ColumnValues = make([]ColumnValue, 0, len(raw.ColumnValues))
	for _, cv := range raw.ColumnValues {
		item.ColumnValues = append(item.ColumnValues, normalizeColumnValue(cv))
	}
	return item
}
