package memberrepo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"lendingdesk/model"
)

var ErrDuplicateID = errors.New("member id already registered")

// Repo is a keyed borrower store, uniqueness only.
type Repo interface {
	Add(ctx context.Context, b *model.Borrower) error
	Find(ctx context.Context, id string) (*model.Borrower, bool)
	List(ctx context.Context) []*model.Borrower
	Count(ctx context.Context) int
}

type repo struct {
	mu      sync.RWMutex
	members map[string]*model.Borrower
}

func New() Repo {
	return &repo{members: make(map[string]*model.Borrower)}
}

func (r *repo) Add(_ context.Context, b *model.Borrower) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[b.ID]; ok {
		return ErrDuplicateID
	}
	r.members[b.ID] = b
	return nil
}

func (r *repo) Find(_ context.Context, id string) (*model.Borrower, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.members[id]
	return b, ok
}

func (r *repo) List(_ context.Context) []*model.Borrower {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Borrower, 0, len(r.members))
	for _, b := range r.members {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *repo) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}
