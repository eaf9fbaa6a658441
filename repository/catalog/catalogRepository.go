package catalogrepo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"lendingdesk/model"
)

var ErrDuplicateID = errors.New("item id already in catalog")

// Repo is a keyed item store. No lending rules live here; uniqueness of the
// item ID is the only thing it enforces.
type Repo interface {
	Add(ctx context.Context, it *model.Item) error
	Find(ctx context.Context, id string) (*model.Item, bool)
	List(ctx context.Context) []*model.Item
	Count(ctx context.Context) int
}

type repo struct {
	mu    sync.RWMutex
	items map[string]*model.Item
}

func New() Repo {
	return &repo{items: make(map[string]*model.Item)}
}

func (r *repo) Add(_ context.Context, it *model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[it.ID]; ok {
		return ErrDuplicateID
	}
	r.items[it.ID] = it
	return nil
}

func (r *repo) Find(_ context.Context, id string) (*model.Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	it, ok := r.items[id]
	return it, ok
}

func (r *repo) List(_ context.Context) []*model.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *repo) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
