package request

import "pestpro_ops/internal/domain/pricing"

// PricingQuoteRequest is the live-calculator payload.
//
// Program and cadence membership are enforced here, at the boundary; acreage
// is deliberately unconstrained because the engine folds bad values into a
// custom-quote result rather than an error.
type PricingQuoteRequest struct {
	Acreage       float64 `json:"acreage"`
	Program       string  `json:"program" binding:"required,oneof=subscription annual one_time"`
	FrequencyDays int     `json:"frequency_days" binding:"required,oneof=14 21 30 42"`
	LeadID        string  `json:"lead_id"`
	ZIP           string  `json:"zip"`
}

func (r PricingQuoteRequest) ToQuery() pricing.Query {
	return pricing.Query{
		Acreage:       r.Acreage,
		Program:       pricing.Program(r.Program),
		FrequencyDays: r.FrequencyDays,
	}
}
