package response

import (
	"time"

	"pestpro_ops/internal/domain/entities"
)

// QuoteResponse is the pricing payload returned by the calculator and quote
// lookup endpoints. Nil pricing figures serialize as JSON null; the UI renders
// those as an em-dash placeholder.
type QuoteResponse struct {
	QuoteID       string     `json:"quote_id,omitempty"`
	LeadID        string     `json:"lead_id,omitempty"`
	ZIP           string     `json:"zip,omitempty"`
	Acreage       float64    `json:"acreage"`
	Program       string     `json:"program"`
	FrequencyDays int        `json:"frequency_days"`
	PerVisit      *float64   `json:"per_visit"`
	PerMonth      *float64   `json:"per_month"`
	AnnualTotal   *float64   `json:"annual_total"`
	VisitsPerYear *float64   `json:"visits_per_year"`
	TierLabel     *string    `json:"tier_label"`
	IsCustom      bool       `json:"is_custom"`
	Message       string     `json:"message,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	res := QuoteResponse{
		QuoteID:       q.ID,
		LeadID:        q.LeadID,
		ZIP:           q.ZIP,
		Acreage:       q.Acreage,
		Program:       string(q.Program),
		FrequencyDays: q.FrequencyDays,
		PerVisit:      q.Result.PerVisit,
		PerMonth:      q.Result.PerMonth,
		AnnualTotal:   q.Result.AnnualTotal,
		VisitsPerYear: q.Result.VisitsPerYear,
		IsCustom:      q.Result.IsCustom,
		Message:       q.Result.Message,
	}
	if q.Result.TierLabel != "" {
		label := q.Result.TierLabel
		res.TierLabel = &label
	}
	if !q.CreatedAt.IsZero() {
		createdAt := q.CreatedAt
		res.CreatedAt = &createdAt
	}
	return res
}

// ServiceAreaResponse answers the coverage check.
type ServiceAreaResponse struct {
	ZIP     string `json:"zip"`
	Covered bool   `json:"covered"`
}
