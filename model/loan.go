package model

import (
	"errors"
	"time"
)

var (
	ErrAlreadyReturned = errors.New("loan already returned")
	ErrInvalidParties  = errors.New("loan requires an item and a borrower")
)

// Loan records one item copy held by one borrower over an interval.
// The due date is fixed at creation; later policy changes never touch
// existing loans. The return date, once set, is never cleared.
type Loan struct {
	ID         int64      `json:"id"`
	ItemID     string     `json:"item_id"`
	BorrowerID string     `json:"borrower_id"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

func NewLoan(id int64, item *Item, b *Borrower, today time.Time) (*Loan, error) {
	if item == nil || b == nil {
		return nil, ErrInvalidParties
	}
	borrow := DateOnly(today)
	return &Loan{
		ID:         id,
		ItemID:     item.ID,
		BorrowerID: b.ID,
		BorrowDate: borrow,
		DueDate:    borrow.AddDate(0, 0, b.Policy.LoanPeriodDays),
	}, nil
}

func (l *Loan) Active() bool { return l.ReturnDate == nil }

// MarkReturned sets the return date exactly once.
func (l *Loan) MarkReturned(on time.Time) error {
	if l.ReturnDate != nil {
		return ErrAlreadyReturned
	}
	d := DateOnly(on)
	l.ReturnDate = &d
	return nil
}

// DaysOverdue reports whole days past due, floored at zero. The check date is
// the return date when set, otherwise asOf.
func (l *Loan) DaysOverdue(asOf time.Time) int64 {
	check := DateOnly(asOf)
	if l.ReturnDate != nil {
		check = *l.ReturnDate
	}
	if d := DaysBetween(l.DueDate, check); d > 0 {
		return d
	}
	return 0
}
