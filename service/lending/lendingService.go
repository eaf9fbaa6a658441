package lending

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"lendingdesk/model"
	catalogrepo "lendingdesk/repository/catalog"
	memberrepo "lendingdesk/repository/member"
)

// errors used by controllers

type ErrCode string

const (
	ErrBorrowerNotFound  ErrCode = "BORROWER_NOT_FOUND"
	ErrItemNotFound      ErrCode = "ITEM_NOT_FOUND"
	ErrBorrowLimit       ErrCode = "BORROW_LIMIT_REACHED"
	ErrItemUnavailable   ErrCode = "ITEM_UNAVAILABLE"
	ErrItemAlreadyOnLoan ErrCode = "ITEM_ALREADY_ON_LOAN"
	ErrNoActiveLoan      ErrCode = "NO_ACTIVE_LOAN"
	ErrAlreadyReturned   ErrCode = "ALREADY_RETURNED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the error code; empty for unexpected errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

type Issued struct {
	LoanID  int64     `json:"loan_id"`
	DueDate time.Time `json:"due_date"`
}

type Returned struct {
	LoanID      int64   `json:"loan_id"`
	DaysOverdue int64   `json:"days_overdue"`
	Fine        float64 `json:"fine"`
}

type LoanRow struct {
	LoanID     int64      `json:"loan_id"`
	ItemID     string     `json:"item_id"`
	ItemTitle  string     `json:"item_title"`
	BorrowerID string     `json:"borrower_id"`
	Status     string     `json:"status"` // ACTIVE | RETURNED
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

type Service interface {
	// Issue creates an active loan for (borrower, item) dated today.
	Issue(ctx context.Context, borrowerID, itemID string, today time.Time) (*Issued, error)

	// Return settles the active loan for (borrower, item), computing the
	// overdue fine. The fine is informational; nothing is collected.
	Return(ctx context.Context, borrowerID, itemID string, today time.Time) (*Returned, error)

	// History lists every loan a borrower ever held, oldest first.
	History(ctx context.Context, borrowerID string) ([]LoanRow, error)

	// Outstanding lists all currently active loans.
	Outstanding(ctx context.Context) []LoanRow

	// LoansIssued counts loans ever created by this engine instance.
	LoansIssued(ctx context.Context) int64
}

// ----- Service implementation -----

// service is the sole mutator of item availability and borrower active sets.
// One mutex serializes issue/return so each workflow is observed whole;
// contention in a lending desk is low enough that finer locking buys nothing.
type service struct {
	mu      sync.Mutex
	catalog catalogrepo.Repo
	members memberrepo.Repo
	loans   map[int64]*model.Loan
	order   []int64 // issuance order, for stable history listings
	nextID  int64   // per-instance counter, no globals
}

func New(catalog catalogrepo.Repo, members memberrepo.Repo) Service {
	return &service{
		catalog: catalog,
		members: members,
		loans:   make(map[int64]*model.Loan),
		nextID:  1,
	}
}

func (s *service) Issue(ctx context.Context, borrowerID, itemID string, today time.Time) (*Issued, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.members.Find(ctx, borrowerID)
	if !ok {
		return nil, makeErr(ErrBorrowerNotFound)
	}
	it, ok := s.catalog.Find(ctx, itemID)
	if !ok {
		return nil, makeErr(ErrItemNotFound)
	}
	if !b.CanBorrow() {
		return nil, makeErr(ErrBorrowLimit)
	}
	if !it.IsAvailable() {
		return nil, makeErr(ErrItemUnavailable)
	}
	// One active loan per (borrower, item) pair; a second copy of the same
	// title must wait for the first to come back.
	if s.activeLoanFor(b, itemID) != nil {
		return nil, makeErr(ErrItemAlreadyOnLoan)
	}

	loan, err := model.NewLoan(s.nextID, it, b, today)
	if err != nil {
		return nil, err
	}
	// Every check passed under the lock, so the four effects below land
	// together or the whole call has already failed.
	if err := it.ReserveCopy(); err != nil {
		return nil, err
	}
	s.nextID++
	s.loans[loan.ID] = loan
	s.order = append(s.order, loan.ID)
	b.AttachLoan(loan.ID)

	return &Issued{LoanID: loan.ID, DueDate: loan.DueDate}, nil
}

func (s *service) Return(ctx context.Context, borrowerID, itemID string, today time.Time) (*Returned, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.members.Find(ctx, borrowerID)
	if !ok {
		return nil, makeErr(ErrBorrowerNotFound)
	}

	loan := s.activeLoanFor(b, itemID)
	if loan == nil {
		// Distinguish "came back already" from "never borrowed".
		if s.hasReturnedLoan(borrowerID, itemID) {
			return nil, makeErr(ErrAlreadyReturned)
		}
		return nil, makeErr(ErrNoActiveLoan)
	}

	it, ok := s.catalog.Find(ctx, loan.ItemID)
	if !ok {
		return nil, &model.ConsistencyError{
			Detail: fmt.Sprintf("loan %d references item %s missing from catalog", loan.ID, loan.ItemID),
		}
	}

	if err := loan.MarkReturned(today); err != nil {
		return nil, makeErr(ErrAlreadyReturned)
	}
	days := loan.DaysOverdue(today)
	fine := b.Fine(days)

	if err := it.ReleaseCopy(); err != nil {
		return nil, err
	}
	if !b.DetachLoan(loan.ID) {
		return nil, &model.ConsistencyError{
			Detail: fmt.Sprintf("loan %d missing from borrower %s active set", loan.ID, b.ID),
		}
	}

	return &Returned{LoanID: loan.ID, DaysOverdue: days, Fine: fine}, nil
}

func (s *service) History(ctx context.Context, borrowerID string) ([]LoanRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members.Find(ctx, borrowerID); !ok {
		return nil, makeErr(ErrBorrowerNotFound)
	}
	var out []LoanRow
	for _, id := range s.order {
		l := s.loans[id]
		if l.BorrowerID != borrowerID {
			continue
		}
		out = append(out, s.row(ctx, l))
	}
	return out, nil
}

func (s *service) Outstanding(ctx context.Context) []LoanRow {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []LoanRow
	for _, id := range s.order {
		if l := s.loans[id]; l.Active() {
			out = append(out, s.row(ctx, l))
		}
	}
	return out
}

func (s *service) LoansIssued(_ context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.loans))
}

// activeLoanFor walks the borrower's active index; the index holds loan IDs
// only, the records live in s.loans. Caller holds s.mu.
func (s *service) activeLoanFor(b *model.Borrower, itemID string) *model.Loan {
	for _, id := range b.ActiveLoanIDs() {
		l, ok := s.loans[id]
		if !ok {
			continue
		}
		if l.ItemID == itemID && l.Active() {
			return l
		}
	}
	return nil
}

func (s *service) hasReturnedLoan(borrowerID, itemID string) bool {
	for _, l := range s.loans {
		if l.BorrowerID == borrowerID && l.ItemID == itemID && !l.Active() {
			return true
		}
	}
	return false
}

func (s *service) row(ctx context.Context, l *model.Loan) LoanRow {
	status := "ACTIVE"
	if !l.Active() {
		status = "RETURNED"
	}
	title := ""
	if it, ok := s.catalog.Find(ctx, l.ItemID); ok {
		title = it.Title
	}
	return LoanRow{
		LoanID:     l.ID,
		ItemID:     l.ItemID,
		ItemTitle:  title,
		BorrowerID: l.BorrowerID,
		Status:     status,
		BorrowDate: l.BorrowDate,
		DueDate:    l.DueDate,
		ReturnDate: l.ReturnDate,
	}
}
