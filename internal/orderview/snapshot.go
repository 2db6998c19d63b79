package orderview

import (
	"sync"
	"time"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// Snapshot holds one session's normalized order list and the criteria of its
// last query. It is safe for concurrent use.
type Snapshot struct {
	mu        sync.Mutex
	orders    []model.Order
	fetchedAt time.Time
	last      *Criteria
}

// NewSnapshot wraps orders fetched at fetchedAt.
func NewSnapshot(orders []model.Order, fetchedAt time.Time) *Snapshot {
	return &Snapshot{orders: orders, fetchedAt: fetchedAt}
}

// Replace swaps in a freshly fetched list. The last criteria are kept.
func (s *Snapshot) Replace(orders []model.Order, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	s.fetchedAt = fetchedAt
}

// FetchedAt returns when the list was loaded from the backend.
func (s *Snapshot) FetchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchedAt
}

// Query runs the filter pipeline. When c differs from the previous query the
// requested page is ignored and page 1 is returned.
func (s *Snapshot) Query(c Criteria, page, pageSize int, now time.Time) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last != nil && *s.last != c {
		page = 1
	}
	last := c
	s.last = &last

	return Apply(s.orders, c, page, pageSize, now)
}

// Stats counts the whole snapshot, ignoring criteria.
func (s *Snapshot) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Count(s.orders)
}

// Find returns the order with the given id.
func (s *Snapshot) Find(id string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// ApplyStatus patches the status of one order in place and returns the updated copy.
func (s *Snapshot) ApplyStatus(id string, status model.OrderStatus) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return s.orders[i], true
		}
	}
	return model.Order{}, false
}
