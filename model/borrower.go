package model

import (
	"errors"
	"sort"
	"sync"
)

// Borrower holds loans under a policy-determined limit. The active set is an
// index of loan IDs only; Loan records themselves are owned by the lending
// engine's history.
type Borrower struct {
	ID     string
	Name   string
	Email  string
	Policy Policy

	mu     sync.Mutex
	active map[int64]struct{}
}

func NewBorrower(id, name, email string, p Policy) (*Borrower, error) {
	if id == "" || name == "" || p.MaxLoans <= 0 || p.LoanPeriodDays <= 0 {
		return nil, errors.New("invalid borrower")
	}
	return &Borrower{
		ID:     id,
		Name:   name,
		Email:  email,
		Policy: p,
		active: make(map[int64]struct{}),
	}, nil
}

func (b *Borrower) CanBorrow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.active) < b.Policy.MaxLoans
}

func (b *Borrower) ActiveCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.active)
}

// ActiveLoanIDs returns the active loan index in ascending order.
func (b *Borrower) ActiveLoanIDs() []int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]int64, 0, len(b.active))
	for id := range b.active {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// AttachLoan records a loan in the active index. The engine checks CanBorrow
// under its own lock before calling.
func (b *Borrower) AttachLoan(loanID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active[loanID] = struct{}{}
}

// DetachLoan drops a loan from the active index and reports whether it was
// present. A false return means the caller's bookkeeping is off.
func (b *Borrower) DetachLoan(loanID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.active[loanID]; !ok {
		return false
	}
	delete(b.active, loanID)
	return true
}

// Fine delegates to the borrower's policy.
func (b *Borrower) Fine(daysOverdue int64) float64 {
	return b.Policy.Fine(daysOverdue)
}

type BorrowerView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Kind        Kind   `json:"kind"`
	MaxLoans    int    `json:"max_loans"`
	ActiveLoans int    `json:"active_loans"`
}

func (b *Borrower) Snapshot() BorrowerView {
	return BorrowerView{
		ID:          b.ID,
		Name:        b.Name,
		Email:       b.Email,
		Kind:        b.Policy.Kind,
		MaxLoans:    b.Policy.MaxLoans,
		ActiveLoans: b.ActiveCount(),
	}
}
