package model

import (
	"errors"
	"fmt"
	"sync"
)

var ErrNoCopyAvailable = errors.New("no copy available")

// ConsistencyError marks a state-invariant violation. It never occurs under
// correct engine use and must not be presented as an ordinary user error.
type ConsistencyError struct {
	Detail string
}

func (e *ConsistencyError) Error() string { return "consistency violation: " + e.Detail }

// Item is a catalog entry tracking total vs available copies.
// available never leaves [0, Total].
type Item struct {
	ID     string
	Title  string
	Author string
	Code   string
	Total  int

	mu        sync.Mutex
	available int
}

func NewItem(id, title, author, code string, total int) (*Item, error) {
	if id == "" || title == "" || total < 0 {
		return nil, errors.New("invalid item")
	}
	return &Item{
		ID:        id,
		Title:     title,
		Author:    author,
		Code:      code,
		Total:     total,
		available: total,
	}, nil
}

func (i *Item) IsAvailable() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.available > 0
}

func (i *Item) AvailableCopies() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.available
}

// ReserveCopy takes one copy off the shelf.
func (i *Item) ReserveCopy() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.available == 0 {
		return ErrNoCopyAvailable
	}
	i.available--
	return nil
}

// ReleaseCopy puts a copy back on the shelf. Going past the total stock means
// an earlier reserve/release pair was unbalanced, which is a bookkeeping
// defect, not a user error.
func (i *Item) ReleaseCopy() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.available >= i.Total {
		return &ConsistencyError{
			Detail: fmt.Sprintf("item %s: release would exceed total stock %d", i.ID, i.Total),
		}
	}
	i.available++
	return nil
}

type ItemView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Code            string `json:"code"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
}

func (i *Item) Snapshot() ItemView {
	return ItemView{
		ID:              i.ID,
		Title:           i.Title,
		Author:          i.Author,
		Code:            i.Code,
		TotalCopies:     i.Total,
		AvailableCopies: i.AvailableCopies(),
	}
}
