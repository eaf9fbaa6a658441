package reportsvc

import (
	"context"

	catalogrepo "lendingdesk/repository/catalog"
	memberrepo "lendingdesk/repository/member"
	"lendingdesk/service/lending"
)

// Summary is a read-only projection; every figure is summed from current
// state on demand, nothing is cached.
type Summary struct {
	TotalItems      int   `json:"total_items"`
	TotalBorrowers  int   `json:"total_borrowers"`
	TotalLoans      int64 `json:"total_loans_issued"`
	AvailableCopies int   `json:"available_copies"`
}

type Service interface {
	Summary(ctx context.Context) Summary
}

type service struct {
	catalog catalogrepo.Repo
	members memberrepo.Repo
	lending lending.Service
}

func New(catalog catalogrepo.Repo, members memberrepo.Repo, l lending.Service) Service {
	return &service{catalog: catalog, members: members, lending: l}
}

func (s *service) Summary(ctx context.Context) Summary {
	available := 0
	for _, it := range s.catalog.List(ctx) {
		available += it.AvailableCopies()
	}
	return Summary{
		TotalItems:      s.catalog.Count(ctx),
		TotalBorrowers:  s.members.Count(ctx),
		TotalLoans:      s.lending.LoansIssued(ctx),
		AvailableCopies: available,
	}
}
