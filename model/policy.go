package model

// Kind tags a borrower variant. Variants differ only in their Policy values;
// nothing outside this file branches on Kind.
type Kind string

const (
	KindStandard   Kind = "standard"
	KindPrivileged Kind = "privileged"
)

// FineFunc computes a fine amount from whole days overdue.
type FineFunc func(daysOverdue int64) float64

// Policy is the capability set attached to a borrower at registration:
// loan limit, loan period, and fine computation. A new borrower category is a
// new Policy value, not an engine change.
type Policy struct {
	Kind           Kind
	MaxLoans       int
	LoanPeriodDays int
	FinePerDay     float64
	FineFn         FineFunc // optional override; per-day linear when nil
}

// Fine is the one polymorphic computation in the system.
// daysOverdue <= 0 always yields 0.
func (p Policy) Fine(daysOverdue int64) float64 {
	if daysOverdue <= 0 {
		return 0
	}
	if p.FineFn != nil {
		return p.FineFn(daysOverdue)
	}
	return float64(daysOverdue) * p.FinePerDay
}

var policies = map[Kind]Policy{
	KindStandard:   {Kind: KindStandard, MaxLoans: 3, LoanPeriodDays: 14, FinePerDay: 1.0},
	KindPrivileged: {Kind: KindPrivileged, MaxLoans: 5, LoanPeriodDays: 30, FinePerDay: 0.5},
}

// PolicyFor resolves a variant tag to its policy constants.
func PolicyFor(k Kind) (Policy, bool) {
	p, ok := policies[k]
	return p, ok
}
