package lending_test

import (
	"context"
	"testing"
	"time"

	"lendingdesk/model"
	catalogrepo "lendingdesk/repository/catalog"
	memberrepo "lendingdesk/repository/member"
	"lendingdesk/service/lending"

	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

type fixture struct {
	catalog catalogrepo.Repo
	members memberrepo.Repo
	svc     lending.Service
}

func setup(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		catalog: catalogrepo.New(),
		members: memberrepo.New(),
	}
	f.svc = lending.New(f.catalog, f.members)
	return f
}

func (f *fixture) addItem(t *testing.T, id, title string, copies int) *model.Item {
	t.Helper()
	it, err := model.NewItem(id, title, "Some Author", "C-"+id, copies)
	require.NoError(t, err)
	require.NoError(t, f.catalog.Add(context.Background(), it))
	return it
}

func (f *fixture) addMember(t *testing.T, id, name string, kind model.Kind) *model.Borrower {
	t.Helper()
	p, ok := model.PolicyFor(kind)
	require.True(t, ok)
	b, err := model.NewBorrower(id, name, name+"@example.com", p)
	require.NoError(t, err)
	require.NoError(t, f.members.Add(context.Background(), b))
	return b
}

// --- issue ---

func TestIssue_Success(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	it := f.addItem(t, "B1", "Intro to Go", 2)
	b := f.addMember(t, "M1", "alice", model.KindStandard)

	out, err := f.svc.Issue(ctx, "M1", "B1", day(t, "2026-03-01"))
	require.NoError(t, err)
	require.Equal(t, int64(1), out.LoanID)
	require.True(t, out.DueDate.Equal(day(t, "2026-03-15")))

	require.Equal(t, 1, it.AvailableCopies())
	require.Equal(t, 1, b.ActiveCount())
	require.Equal(t, int64(1), f.svc.LoansIssued(ctx))
}

func TestIssue_Lookups(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.addItem(t, "B1", "Intro to Go", 1)
	f.addMember(t, "M1", "alice", model.KindStandard)

	_, err := f.svc.Issue(ctx, "ghost", "B1", day(t, "2026-03-01"))
	require.Equal(t, lending.ErrBorrowerNotFound, lending.Code(err))

	_, err = f.svc.Issue(ctx, "M1", "ghost", day(t, "2026-03-01"))
	require.Equal(t, lending.ErrItemNotFound, lending.Code(err))
}

func TestIssue_BorrowLimit(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	items := []*model.Item{
		f.addItem(t, "B1", "One", 1),
		f.addItem(t, "B2", "Two", 1),
		f.addItem(t, "B3", "Three", 1),
		f.addItem(t, "B4", "Four", 1),
	}
	b := f.addMember(t, "M1", "alice", model.KindStandard) // limit 3

	today := day(t, "2026-03-01")
	for _, id := range []string{"B1", "B2", "B3"} {
		_, err := f.svc.Issue(ctx, "M1", id, today)
		require.NoError(t, err)
	}
	require.False(t, b.CanBorrow())

	_, err := f.svc.Issue(ctx, "M1", "B4", today)
	require.Equal(t, lending.ErrBorrowLimit, lending.Code(err))

	// a refused issue leaves every item untouched
	require.Equal(t, 0, items[0].AvailableCopies())
	require.Equal(t, 0, items[1].AvailableCopies())
	require.Equal(t, 0, items[2].AvailableCopies())
	require.Equal(t, 1, items[3].AvailableCopies())
	require.Equal(t, 3, b.ActiveCount())
	require.Equal(t, int64(3), f.svc.LoansIssued(ctx))
}

func TestIssue_ItemUnavailable(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	it := f.addItem(t, "B1", "Single Copy", 1)
	f.addMember(t, "M1", "alice", model.KindStandard)
	f.addMember(t, "M2", "bob", model.KindStandard)

	today := day(t, "2026-03-01")
	_, err := f.svc.Issue(ctx, "M1", "B1", today)
	require.NoError(t, err)
	require.Equal(t, 0, it.AvailableCopies())

	_, err = f.svc.Issue(ctx, "M2", "B1", today)
	require.Equal(t, lending.ErrItemUnavailable, lending.Code(err))
	require.Equal(t, 0, it.AvailableCopies())
}

func TestIssue_DuplicateItemForbidden(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	it := f.addItem(t, "B1", "Popular Title", 3)
	b := f.addMember(t, "M1", "alice", model.KindStandard)

	today := day(t, "2026-03-01")
	_, err := f.svc.Issue(ctx, "M1", "B1", today)
	require.NoError(t, err)

	// a second physical copy of the same title is refused while the first
	// loan is active
	_, err = f.svc.Issue(ctx, "M1", "B1", today)
	require.Equal(t, lending.ErrItemAlreadyOnLoan, lending.Code(err))
	require.Equal(t, 2, it.AvailableCopies())
	require.Equal(t, 1, b.ActiveCount())

	// allowed again once the first came back
	_, err = f.svc.Return(ctx, "M1", "B1", today)
	require.NoError(t, err)
	_, err = f.svc.Issue(ctx, "M1", "B1", today)
	require.NoError(t, err)
}

func TestIssue_MonotonicLoanIDs(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.addItem(t, "B1", "One", 1)
	f.addItem(t, "B2", "Two", 1)
	f.addMember(t, "M1", "alice", model.KindStandard)

	today := day(t, "2026-03-01")
	first, err := f.svc.Issue(ctx, "M1", "B1", today)
	require.NoError(t, err)
	second, err := f.svc.Issue(ctx, "M1", "B2", today)
	require.NoError(t, err)
	require.Equal(t, first.LoanID+1, second.LoanID)

	// a second engine instance starts its own counter
	other := lending.New(f.catalog, memberrepo.New())
	require.Equal(t, int64(0), other.LoansIssued(ctx))
}

// --- return ---

func TestReturn_OnTimeNoFine(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	it := f.addItem(t, "B1", "Intro to Go", 1)
	b := f.addMember(t, "M1", "alice", model.KindStandard)

	today := day(t, "2026-03-01")
	_, err := f.svc.Issue(ctx, "M1", "B1", today)
	require.NoError(t, err)

	out, err := f.svc.Return(ctx, "M1", "B1", today)
	require.NoError(t, err)
	require.Equal(t, int64(0), out.DaysOverdue)
	require.Equal(t, 0.0, out.Fine)
	require.Equal(t, 1, it.AvailableCopies())
	require.Equal(t, 0, b.ActiveCount())
}

func TestReturn_OverdueFines(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.addItem(t, "B1", "One", 1)
	f.addItem(t, "B2", "Two", 1)
	f.addMember(t, "P1", "prof", model.KindPrivileged)  // 30d, 0.50/day
	f.addMember(t, "S1", "student", model.KindStandard) // 14d, 1.00/day

	day0 := day(t, "2026-03-01")
	day35 := day(t, "2026-04-05")

	_, err := f.svc.Issue(ctx, "P1", "B1", day0)
	require.NoError(t, err)
	_, err = f.svc.Issue(ctx, "S1", "B2", day0)
	require.NoError(t, err)

	priv, err := f.svc.Return(ctx, "P1", "B1", day35)
	require.NoError(t, err)
	require.Equal(t, int64(5), priv.DaysOverdue)
	require.Equal(t, 2.50, priv.Fine)

	std, err := f.svc.Return(ctx, "S1", "B2", day35)
	require.NoError(t, err)
	require.Equal(t, int64(21), std.DaysOverdue)
	require.Equal(t, 21.00, std.Fine)
}

func TestReturn_Idempotence(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	it := f.addItem(t, "B1", "Intro to Go", 1)
	b := f.addMember(t, "M1", "alice", model.KindStandard)

	today := day(t, "2026-03-01")
	_, err := f.svc.Issue(ctx, "M1", "B1", today)
	require.NoError(t, err)
	_, err = f.svc.Return(ctx, "M1", "B1", today)
	require.NoError(t, err)

	_, err = f.svc.Return(ctx, "M1", "B1", today)
	require.Equal(t, lending.ErrAlreadyReturned, lending.Code(err))

	// state unchanged by the refused second return
	require.Equal(t, 1, it.AvailableCopies())
	require.Equal(t, 0, b.ActiveCount())
	require.Equal(t, int64(1), f.svc.LoansIssued(ctx))
}

func TestReturn_NeverBorrowed(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	it := f.addItem(t, "B1", "Intro to Go", 1)
	b := f.addMember(t, "M1", "alice", model.KindStandard)

	_, err := f.svc.Return(ctx, "M1", "B1", day(t, "2026-03-01"))
	require.Equal(t, lending.ErrNoActiveLoan, lending.Code(err))
	require.Equal(t, 1, it.AvailableCopies())
	require.Equal(t, 0, b.ActiveCount())

	_, err = f.svc.Return(ctx, "ghost", "B1", day(t, "2026-03-01"))
	require.Equal(t, lending.ErrBorrowerNotFound, lending.Code(err))
}

// --- history / outstanding ---

func TestHistory_KeepsReturnedLoans(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.addItem(t, "B1", "One", 1)
	f.addItem(t, "B2", "Two", 1)
	f.addMember(t, "M1", "alice", model.KindStandard)

	today := day(t, "2026-03-01")
	_, err := f.svc.Issue(ctx, "M1", "B1", today)
	require.NoError(t, err)
	_, err = f.svc.Issue(ctx, "M1", "B2", today)
	require.NoError(t, err)
	_, err = f.svc.Return(ctx, "M1", "B1", today)
	require.NoError(t, err)

	rows, err := f.svc.History(ctx, "M1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "RETURNED", rows[0].Status)
	require.Equal(t, "One", rows[0].ItemTitle)
	require.NotNil(t, rows[0].ReturnDate)
	require.Equal(t, "ACTIVE", rows[1].Status)
	require.Nil(t, rows[1].ReturnDate)

	_, err = f.svc.History(ctx, "ghost")
	require.Equal(t, lending.ErrBorrowerNotFound, lending.Code(err))
}

func TestOutstanding(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	f.addItem(t, "B1", "One", 1)
	f.addItem(t, "B2", "Two", 1)
	f.addMember(t, "M1", "alice", model.KindStandard)
	f.addMember(t, "M2", "bob", model.KindStandard)

	today := day(t, "2026-03-01")
	_, err := f.svc.Issue(ctx, "M1", "B1", today)
	require.NoError(t, err)
	_, err = f.svc.Issue(ctx, "M2", "B2", today)
	require.NoError(t, err)
	_, err = f.svc.Return(ctx, "M1", "B1", today)
	require.NoError(t, err)

	rows := f.svc.Outstanding(ctx)
	require.Len(t, rows, 1)
	require.Equal(t, "M2", rows[0].BorrowerID)
	require.Equal(t, "B2", rows[0].ItemID)
}
