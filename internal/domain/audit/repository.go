package audit

import "context"

// Filter narrows audit listings.
type Filter struct {
	Actor    string
	Action   Action
	Page     int
	PageSize int
}

// Repository is deliberately append-only: the trail can grow and be read
// but never edited.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	List(ctx context.Context, filter Filter) ([]*Entry, int64, error)
}
