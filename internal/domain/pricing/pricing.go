// Package pricing implements the acreage-based pricing engine.
//
// Compute is a pure function over an immutable tier table: every input,
// including degenerate ones, yields a well-formed Result. "Cannot price this"
// is signaled via IsCustom plus a human-readable Message, never via an error.
package pricing

import "math"

// Program identifies the service program a quote is computed for.
type Program string

const (
	ProgramSubscription Program = "subscription"
	ProgramAnnual       Program = "annual"
	ProgramOneTime      Program = "one_time"
)

// OneTimePrice is the flat price for a single visit, independent of acreage tier.
const OneTimePrice = 179.0

// CustomAcreageThreshold is the acreage above which automated pricing stops
// and the lead is routed to a manual walkthrough.
const CustomAcreageThreshold = 2.0

// Tier is one row of the static pricing table: a labeled acreage bracket with
// fixed subscription/annual prices. Brackets are inclusive on both ends as
// authored; a non-positive price marks the bracket as custom-quote only.
type Tier struct {
	MinAcreage        float64
	MaxAcreage        float64
	Label             string
	SubscriptionPrice float64
	AnnualPrice       float64
}

// Contains reports whether acreage falls inside the tier's bracket.
func (t Tier) Contains(acreage float64) bool {
	return t.MinAcreage <= acreage && acreage <= t.MaxAcreage
}

// Query is one pricing request.
//
// FrequencyDays membership in the supported cadence set is a caller concern;
// Compute accepts any positive value.
type Query struct {
	Acreage       float64
	Program       Program
	FrequencyDays int
}

// Result is the computed pricing figures. Nil pointers render as "no figure"
// (the UI shows an em-dash placeholder for them).
type Result struct {
	PerVisit      *float64
	PerMonth      *float64
	AnnualTotal   *float64
	VisitsPerYear *float64
	TierLabel     string
	IsCustom      bool
	Message       string
}

// DefaultTable returns the authored pricing table covering up to two acres.
// Reference data: loaded once at startup and passed by injection so tests can
// substitute their own table.
func DefaultTable() []Tier {
	return []Tier{
		{MinAcreage: 0, MaxAcreage: 0.13, Label: "Up to .13 acres", SubscriptionPrice: 119, AnnualPrice: 1749},
		{MinAcreage: 0.14, MaxAcreage: 0.25, Label: ".14–.25 acres", SubscriptionPrice: 129, AnnualPrice: 1893},
		{MinAcreage: 0.26, MaxAcreage: 0.40, Label: ".26–.40 acres", SubscriptionPrice: 139, AnnualPrice: 2043},
		{MinAcreage: 0.41, MaxAcreage: 0.50, Label: ".41–.50 acres", SubscriptionPrice: 149, AnnualPrice: 2193},
		{MinAcreage: 0.51, MaxAcreage: 0.75, Label: ".51–.75 acres", SubscriptionPrice: 159, AnnualPrice: 2343},
		{MinAcreage: 0.76, MaxAcreage: 1.00, Label: ".76–1.00 acres", SubscriptionPrice: 169, AnnualPrice: 2493},
		{MinAcreage: 1.01, MaxAcreage: 1.50, Label: "1.01–1.50 acres", SubscriptionPrice: 189, AnnualPrice: 2793},
		{MinAcreage: 1.51, MaxAcreage: 2.00, Label: "1.51–2.00 acres", SubscriptionPrice: 209, AnnualPrice: 3093},
	}
}

// Compute prices a query against the given tier table.
//
// Tiers are checked in table order; the first bracket containing the acreage
// wins. NaN and non-positive acreage funnel into the "enter valid acreage"
// branch, acreage above the threshold into the walkthrough branch. Compute
// never returns an error.
func Compute(table []Tier, q Query) Result {
	if math.IsNaN(q.Acreage) || q.Acreage <= 0 {
		return customResult("", "Enter a valid acreage to see pricing.")
	}
	if q.Acreage > CustomAcreageThreshold {
		return customResult("2+ acres", "Properties over 2 acres are priced after an on-site walkthrough. We'll reach out to schedule one.")
	}

	var tier *Tier
	for i := range table {
		if table[i].Contains(q.Acreage) {
			tier = &table[i]
			break
		}
	}
	if tier == nil {
		return customResult("Custom", "We couldn't price this property automatically. Our team will follow up with a custom quote.")
	}
	if tier.SubscriptionPrice <= 0 {
		return customResult(tier.Label, "This property size needs a custom quote. Our team will follow up.")
	}

	visitsPerYear := round2(365 / float64(q.FrequencyDays))

	switch q.Program {
	case ProgramOneTime:
		perVisit := round2(OneTimePrice)
		visits := 1.0
		return Result{
			PerVisit:      &perVisit,
			AnnualTotal:   &perVisit,
			VisitsPerYear: &visits,
			TierLabel:     tier.Label,
		}
	case ProgramSubscription:
		perVisit := round2(tier.SubscriptionPrice)
		perMonth := round2(perVisit * 30 / float64(q.FrequencyDays))
		annualTotal := round2(perVisit * visitsPerYear)
		return Result{
			PerVisit:      &perVisit,
			PerMonth:      &perMonth,
			AnnualTotal:   &annualTotal,
			VisitsPerYear: &visitsPerYear,
			TierLabel:     tier.Label,
		}
	case ProgramAnnual:
		if tier.AnnualPrice <= 0 {
			return customResult(tier.Label, "This property size needs a custom quote. Our team will follow up.")
		}
		annualTotal := round2(tier.AnnualPrice)
		perMonth := round2(annualTotal / 12)
		perVisit := round2(annualTotal / visitsPerYear)
		return Result{
			PerVisit:      &perVisit,
			PerMonth:      &perMonth,
			AnnualTotal:   &annualTotal,
			VisitsPerYear: &visitsPerYear,
			TierLabel:     tier.Label,
		}
	default:
		return customResult(tier.Label, "Select a program to see pricing.")
	}
}

func customResult(label, message string) Result {
	return Result{
		TierLabel: label,
		IsCustom:  true,
		Message:   message,
	}
}

// round2 applies the single rounding rule used for every currency figure so
// subscription and annual displays never drift for the same tier.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
