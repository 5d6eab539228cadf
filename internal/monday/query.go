package monday

import (
	"fmt"
	"strings"
)

// Operation selects one of the supported item access patterns.
type Operation string

const (
	// OpGetItem fetches a single item by its ID.
	OpGetItem Operation = "get-by-id"
	// OpListBoard fetches the items of a board, optionally scoped to a group.
	OpListBoard Operation = "list-by-board"
	// OpListByColumnValue fetches the items of a board whose column matches
	// a value.
	OpListByColumnValue Operation = "list-by-column-value"
)

// Params supplies the operation-specific variables for BuildQuery.
type Params struct {
	ItemID      string // OpGetItem
	BoardID     string // OpListBoard, OpListByColumnValue
	GroupID     string // OpListBoard (optional)
	ColumnID    string // OpListByColumnValue
	ColumnValue string // OpListByColumnValue
	Limit       int    // page size for list operations
}

// Query is a GraphQL document paired with its variables map.
type Query struct {
	Document  string
	Variables map[string]any
}

// columnValueSelection is the column-value selection set shared by every
// operation, including continuations. The three inline fragments cover the
// union members whose value field is always null; the normalizer relies on
// them being requested unconditionally.
const columnValueSelection = `column_values {
  id
  text
  type
  value
  column {
    title
    archived
    description
    settings_str
  }
  ... on BoardRelationValue {
    display_value
    linked_item_ids
  }
  ... on DependencyValue {
    display_value
    linked_item_ids
  }
  ... on MirrorValue {
    display_value
  }
}`

// itemSelection returns the full item selection set. withBoard adds the
// board back-reference, used by the column-value-filtered operation.
func itemSelection(withBoard bool) string {
	var b strings.Builder
	b.WriteString("id\nname\ncreated_at\nstate\nsubitems {\n  id\n  name\n}\n")
	if withBoard {
		b.WriteString("board {\n  id\n}\n")
	}
	b.WriteString(columnValueSelection)
	return b.String()
}

// BuildQuery assembles the GraphQL document and variables for op. It is
// pure: no network traffic, no state. Missing required parameters yield an
// error wrapping ErrInvalidParameters.
func BuildQuery(op Operation, p Params) (Query, error) {
	switch op {
	case OpGetItem:
		if p.ItemID == "" {
			return Query{}, fmt.Errorf("build %s query: missing itemId: %w", op, ErrInvalidParameters)
		}
		doc := fmt.Sprintf(`query ($itemId: [ID!]) {
  items(ids: $itemId) {
    %s
  }
}`, itemSelection(false))
		return Query{
			Document:  doc,
			Variables: map[string]any{"itemId": []string{p.ItemID}},
		}, nil

	case OpListBoard:
		if p.BoardID == "" {
			return Query{}, fmt.Errorf("build %s query: missing boardId: %w", op, ErrInvalidParameters)
		}
		vars := map[string]any{"boardId": []string{p.BoardID}}
		groups := "groups {"
		if p.GroupID != "" {
			groups = "groups(ids: $groupId) {"
			vars["groupId"] = []string{p.GroupID}
		}
		head := "query ($boardId: [ID!])"
		if p.GroupID != "" {
			head = "query ($boardId: [ID!], $groupId: [String])"
		}
		doc := fmt.Sprintf(`%s {
  boards(ids: $boardId) {
    %s
      items_page(limit: %d) {
        cursor
        items {
          %s
        }
      }
    }
  }
}`, head, groups, pageLimit(p.Limit), itemSelection(false))
		return Query{Document: doc, Variables: vars}, nil

	case OpListByColumnValue:
		var missing []string
		if p.BoardID == "" {
			missing = append(missing, "boardId")
		}
		if p.ColumnID == "" {
			missing = append(missing, "columnId")
		}
		if p.ColumnValue == "" {
			missing = append(missing, "columnValue")
		}
		if len(missing) > 0 {
			return Query{}, fmt.Errorf("build %s query: missing %s: %w",
				op, strings.Join(missing, ", "), ErrInvalidParameters)
		}
		doc := fmt.Sprintf(`query ($boardId: ID!, $columnId: String!, $columnValue: [String]!) {
  items_page_by_column_values(limit: %d, board_id: $boardId, columns: [{column_id: $columnId, column_values: $columnValue}]) {
    cursor
    items {
      %s
    }
  }
}`, pageLimit(p.Limit), itemSelection(true))
		return Query{
			Document: doc,
			Variables: map[string]any{
				"boardId":     p.BoardID,
				"columnId":    p.ColumnID,
				"columnValue": []string{p.ColumnValue},
			},
		}, nil

	default:
		return Query{}, fmt.Errorf("build query: unknown operation %q: %w", op, ErrInvalidParameters)
	}
}

// BuildNextPageQuery assembles the continuation document for a cursor
// returned by a previous page. The item selection matches the first page;
// withBoard must mirror the originating operation.
func BuildNextPageQuery(cursor string, limit int, withBoard bool) Query {
	doc := fmt.Sprintf(`query ($cursor: String!) {
  next_items_page(limit: %d, cursor: $cursor) {
    cursor
    items {
      %s
    }
  }
}`, pageLimit(limit), itemSelection(withBoard))
	return Query{
		Document:  doc,
		Variables: map[string]any{"cursor": cursor},
	}
}

func pageLimit(limit int) int {
	if limit <= 0 {
		return DefaultPageSize
	}
	return limit
}
