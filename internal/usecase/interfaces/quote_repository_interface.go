package interfaces

import (
	"context"
	"pestpro_ops/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Quotes are written once when a lead asks for live pricing and read back by
// the sales follow-up flow:
//   - create a quote snapshot for a lead
//   - fetch a quote by id
//   - list all quotes a lead has generated
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error)
}
