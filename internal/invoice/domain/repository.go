package domain

import "context"

// Repository persists generated invoices. Records are append-only; an
// invoice is never updated after it is stored.
type Repository interface {
	Insert(ctx context.Context, record *Record) error
	FindByNumber(ctx context.Context, number string) (*Record, error)
	List(ctx context.Context) ([]Record, error)
}
