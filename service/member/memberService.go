package membersvc

import (
	"context"
	"errors"

	"lendingdesk/model"
	memberrepo "lendingdesk/repository/member"
)

var (
	ErrBadInput    = errors.New("invalid payload")
	ErrUnknownKind = errors.New("unknown borrower kind")
	ErrDuplicate   = memberrepo.ErrDuplicateID
	ErrNotFound    = errors.New("member not found")
)

type Service interface {
	Register(ctx context.Context, id, name, email string, kind model.Kind) (*model.BorrowerView, error)
	List(ctx context.Context) []model.BorrowerView
	Detail(ctx context.Context, id string) (*model.BorrowerView, error)
}

type service struct{ r memberrepo.Repo }

func New(r memberrepo.Repo) Service { return &service{r: r} }

func (s *service) Register(ctx context.Context, id, name, email string, kind model.Kind) (*model.BorrowerView, error) {
	if id == "" || name == "" {
		return nil, ErrBadInput
	}
	p, ok := model.PolicyFor(kind)
	if !ok {
		return nil, ErrUnknownKind
	}
	b, err := model.NewBorrower(id, name, email, p)
	if err != nil {
		return nil, ErrBadInput
	}
	if err := s.r.Add(ctx, b); err != nil {
		return nil, err
	}
	v := b.Snapshot()
	return &v, nil
}

func (s *service) List(ctx context.Context) []model.BorrowerView {
	members := s.r.List(ctx)
	out := make([]model.BorrowerView, 0, len(members))
	for _, b := range members {
		out = append(out, b.Snapshot())
	}
	return out
}

func (s *service) Detail(ctx context.Context, id string) (*model.BorrowerView, error) {
	b, ok := s.r.Find(ctx, id)
	if !ok {
		return nil, ErrNotFound
	}
	v := b.Snapshot()
	return &v, nil
}
