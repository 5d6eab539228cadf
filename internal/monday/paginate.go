package monday

import "context"

// pager follows the cursor chain of one list operation, issuing
// next_items_page continuations until a page comes back with a null cursor.
// Pages are fetched strictly sequentially: each continuation depends on the
// cursor of the previous response. A pager is single-use; restart by
// re-running the originating list operation.
type pager struct {
	client    *Client
	cursor    *string
	limit     int
	withBoard bool
	done      bool
}

func newPager(client *Client, cursor *string, limit int, withBoard bool) *pager {
	return &pager{client: client, cursor: cursor, limit: limit, withBoard: withBoard}
}

// next fetches the next continuation page, or returns nil once the cursor
// chain is exhausted. Cancellation is observed before a request is issued,
// never mid-chain.
func (p *pager) next(ctx context.Context) (*page, error) {
	if p.done || p.cursor == nil {
		p.done = true
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q := BuildNextPageQuery(*p.cursor, p.limit, p.withBoard)
	var data nextPageData
	if err := p.client.do(ctx, "next items page", q, &data); err != nil {
		return nil, err
	}

	p.cursor = data.NextItemsPage.Cursor
	if p.cursor == nil {
		p.done = true
	}
	return &data.NextItemsPage, nil
}

// collect drains the pager, appending normalized items to acc in page
// order. On failure the accumulated result is discarded (the caller gets
// all pages or none) unless partial is set, in which case whatever was
// collected is returned alongside the error.
func (p *pager) collect(ctx context.Context, acc []Item, partial bool) ([]Item, error) {
	for {
		pg, err := p.next(ctx)
		if err != nil {
			if partial {
				return acc, err
			}
			return nil, err
		}
		if pg == nil {
			return acc, nil
		}
		for _, it := range pg.Items {
			acc = append(acc, normalizeItem(it))
		}
	}
}
