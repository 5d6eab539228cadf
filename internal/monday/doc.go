// Package monday provides a client for the monday.com GraphQL API (v2),
// focused on retrieving board items.
//
// Usage:
//
//	client, err := monday.New(token, monday.WithTimeout(30*time.Second))
//	item, err := client.Items().Get(ctx, "1234567890")
//	items, err := client.Items().ListByBoard(ctx, "9876543210", monday.WithReturnAll())
//	items, err := client.Items().ListByColumnValue(ctx, "9876543210", "status", "Done")
//
// Queries pin a calendar API version via the API-Version header and always
// request the inline fragments for board_relation, dependency and mirror
// column values, so every returned item carries one canonical ColumnValue
// shape regardless of column type. List operations follow cursor pagination
// transparently when WithReturnAll is set.
package monday
