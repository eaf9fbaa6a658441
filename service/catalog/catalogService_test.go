// service/catalog/catalog_service_test.go
package catalogsvc_test

import (
	"context"
	"errors"
	"testing"

	"lendingdesk/model"
	catalogsvc "lendingdesk/service/catalog"
)

type repoMock struct {
	addFn   func(ctx context.Context, it *model.Item) error
	findFn  func(ctx context.Context, id string) (*model.Item, bool)
	listFn  func(ctx context.Context) []*model.Item
	countFn func(ctx context.Context) int
}

func (m *repoMock) Add(ctx context.Context, it *model.Item) error {
	if m.addFn == nil {
		return nil
	}
	return m.addFn(ctx, it)
}
func (m *repoMock) Find(ctx context.Context, id string) (*model.Item, bool) {
	if m.findFn == nil {
		return nil, false
	}
	return m.findFn(ctx, id)
}
func (m *repoMock) List(ctx context.Context) []*model.Item {
	if m.listFn == nil {
		return nil
	}
	return m.listFn(ctx)
}
func (m *repoMock) Count(ctx context.Context) int {
	if m.countFn == nil {
		return 0
	}
	return m.countFn(ctx)
}

func TestAdd_Validation(t *testing.T) {
	s := catalogsvc.New(&repoMock{})
	if _, err := s.Add(context.Background(), "", "Title", "A", "C-1", 1); !errors.Is(err, catalogsvc.ErrBadInput) {
		t.Fatalf("got %v; want ErrBadInput for empty id", err)
	}
	if _, err := s.Add(context.Background(), "B1", "", "A", "C-1", 1); !errors.Is(err, catalogsvc.ErrBadInput) {
		t.Fatalf("got %v; want ErrBadInput for empty title", err)
	}
	if _, err := s.Add(context.Background(), "B1", "Title", "A", "C-1", -2); !errors.Is(err, catalogsvc.ErrBadInput) {
		t.Fatalf("got %v; want ErrBadInput for negative copies", err)
	}
}

func TestAdd_Success(t *testing.T) {
	var stored *model.Item
	m := &repoMock{
		addFn: func(ctx context.Context, it *model.Item) error {
			stored = it
			return nil
		},
	}
	s := catalogsvc.New(m)
	v, err := s.Add(context.Background(), "B1", "Clean Code", "Robert Martin", "C-004", 3)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if stored == nil || stored.ID != "B1" {
		t.Fatalf("repo got %+v", stored)
	}
	if v.AvailableCopies != 3 || v.TotalCopies != 3 {
		t.Fatalf("new item should start fully available: %+v", v)
	}
}

func TestAdd_Duplicate(t *testing.T) {
	m := &repoMock{
		addFn: func(ctx context.Context, it *model.Item) error {
			return catalogsvc.ErrDuplicate
		},
	}
	s := catalogsvc.New(m)
	if _, err := s.Add(context.Background(), "B1", "Clean Code", "R", "C-1", 1); !errors.Is(err, catalogsvc.ErrDuplicate) {
		t.Fatalf("got %v; want ErrDuplicate", err)
	}
}

func TestDetail_NotFound(t *testing.T) {
	s := catalogsvc.New(&repoMock{})
	if _, err := s.Detail(context.Background(), "missing"); !errors.Is(err, catalogsvc.ErrNotFound) {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}

func TestList_Snapshots(t *testing.T) {
	it, _ := model.NewItem("B1", "Clean Code", "R", "C-1", 2)
	m := &repoMock{
		listFn: func(ctx context.Context) []*model.Item { return []*model.Item{it} },
	}
	s := catalogsvc.New(m)
	out := s.List(context.Background())
	if len(out) != 1 || out[0].ID != "B1" || out[0].AvailableCopies != 2 {
		t.Fatalf("got %+v", out)
	}
}
