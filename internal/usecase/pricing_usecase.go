package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pestpro_ops/internal/domain/entities"
	"pestpro_ops/internal/domain/pricing"
	"pestpro_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrInvalidLeadID    = errors.New("invalid lead id")
	ErrInvalidFrequency = errors.New("invalid frequency")
)

// IPricingUseCase exposes the pricing operations.
//
//   - Quote() runs the pure pricing engine and, when the request carries a
//     lead id, persists the computed snapshot for sales follow-up.
//   - GetQuoteByID/ListQuotesByLeadID serve the admin portal's quote views.
type IPricingUseCase interface {
	Quote(ctx context.Context, q pricing.Query, leadID, zip string) (entities.Quote, error)
	GetQuoteByID(ctx context.Context, id string) (entities.Quote, error)
	ListQuotesByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error)
}

type PricingUseCase struct {
	table []pricing.Tier
	repo  interfaces.IQuoteRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

// NewPricingUseCase builds the usecase around an injected tier table. The
// table is reference data: loaded once, read-only, safe for concurrent use.
func NewPricingUseCase(table []pricing.Tier, repo interfaces.IQuoteRepository) *PricingUseCase {
	return &PricingUseCase{table: table, repo: repo}
}

// Quote computes pricing for the query. Invalid acreage is not an error here:
// the engine folds it into a custom result with a message, and callers branch
// on IsCustom. The cadence must be positive; membership in the supported set
// is enforced at the HTTP boundary.
func (u *PricingUseCase) Quote(ctx context.Context, q pricing.Query, leadID, zip string) (entities.Quote, error) {
	if q.FrequencyDays <= 0 {
		return entities.Quote{}, ErrInvalidFrequency
	}

	result := pricing.Compute(u.table, q)

	quote := entities.Quote{
		LeadID:        strings.TrimSpace(leadID),
		ZIP:           strings.TrimSpace(zip),
		Acreage:       q.Acreage,
		Program:       q.Program,
		FrequencyDays: q.FrequencyDays,
		Result:        result,
	}
	if quote.LeadID == "" {
		// Anonymous calculator hit: nothing to persist.
		return quote, nil
	}

	quote.ID = uuid.NewString()
	quote.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, quote)
}

func (u *PricingUseCase) GetQuoteByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *PricingUseCase) ListQuotesByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return nil, ErrInvalidLeadID
	}
	return u.repo.ListByLeadID(ctx, leadID)
}
