package entities

import (
	"time"

	"pestpro_ops/internal/domain/pricing"
)

// Quote is a persisted pricing computation tied to a lead, used by the sales
// follow-up flow. The embedded Result is a snapshot of what the lead was
// shown; quotes are never recomputed in place.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id
type Quote struct {
	ID            string         `json:"id"`
	LeadID        string         `json:"lead_id"`
	ZIP           string         `json:"zip,omitempty"`
	Acreage       float64        `json:"acreage"`
	Program       pricing.Program `json:"program"`
	FrequencyDays int            `json:"frequency_days"`
	Result        pricing.Result `json:"result"`
	CreatedAt     time.Time      `json:"created_at"`
}
