package catalogsvc

import (
	"context"
	"errors"

	"lendingdesk/model"
	catalogrepo "lendingdesk/repository/catalog"
)

var (
	ErrBadInput  = errors.New("invalid payload")
	ErrDuplicate = catalogrepo.ErrDuplicateID
	ErrNotFound  = errors.New("item not found")
)

type Service interface {
	Add(ctx context.Context, id, title, author, code string, copies int) (*model.ItemView, error)
	List(ctx context.Context) []model.ItemView
	Detail(ctx context.Context, id string) (*model.ItemView, error)
}

type service struct{ r catalogrepo.Repo }

func New(r catalogrepo.Repo) Service { return &service{r: r} }

func (s *service) Add(ctx context.Context, id, title, author, code string, copies int) (*model.ItemView, error) {
	if id == "" || title == "" || copies < 0 {
		return nil, ErrBadInput
	}
	it, err := model.NewItem(id, title, author, code, copies)
	if err != nil {
		return nil, ErrBadInput
	}
	if err := s.r.Add(ctx, it); err != nil {
		return nil, err
	}
	v := it.Snapshot()
	return &v, nil
}

func (s *service) List(ctx context.Context) []model.ItemView {
	items := s.r.List(ctx)
	out := make([]model.ItemView, 0, len(items))
	for _, it := range items {
		out = append(out, it.Snapshot())
	}
	return out
}

func (s *service) Detail(ctx context.Context, id string) (*model.ItemView, error) {
	it, ok := s.r.Find(ctx, id)
	if !ok {
		return nil, ErrNotFound
	}
	v := it.Snapshot()
	return &v, nil
}
