package orders

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"podorder/model"
)

// Store owns the single order batch for the session. All access goes
// through the mutex; handlers run one event at a time in practice but the
// HTTP server gives no such guarantee.
type Store struct {
	mu    sync.Mutex
	batch model.OrderBatch
}

func NewStore() *Store {
	return &Store{}
}

// Replace installs a freshly reconciled batch, discarding the previous
// one, and assigns it a new batch ID. The customer-type selection is kept
// across uploads.
func (s *Store) Replace(orderRef string, lines []model.OrderLine) model.OrderBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batch = model.OrderBatch{
		ID:           uuid.NewString(),
		OrderRef:     orderRef,
		CustomerType: s.batch.CustomerType,
		Lines:        lines,
	}
	s.renumberLocked()
	return s.copyLocked()
}

// Snapshot returns a copy of the current batch that is safe to read after
// the lock is released.
func (s *Store) Snapshot() model.OrderBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.batch.Lines)
}

// DeleteAt removes the line at index; out of range is a silent no-op.
func (s *Store) DeleteAt(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.batch.Lines) {
		return
	}
	s.batch.Lines = append(s.batch.Lines[:index], s.batch.Lines[index+1:]...)
	s.renumberLocked()
}

// DeleteMany removes the lines at the given indices. Input order does not
// matter: indices are deduped and removed in descending order so pending
// positions never shift under a removal. Out-of-range indices are skipped.
// Returns how many lines were removed.
func (s *Store) DeleteMany(indices []int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int]struct{}, len(indices))
	uniq := make([]int, 0, len(indices))
	for _, idx := range indices {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		uniq = append(uniq, idx)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(uniq)))

	removed := 0
	for _, idx := range uniq {
		if idx < 0 || idx >= len(s.batch.Lines) {
			continue
		}
		s.batch.Lines = append(s.batch.Lines[:idx], s.batch.Lines[idx+1:]...)
		removed++
	}
	s.renumberLocked()
	return removed
}

// Clear empties the batch and forgets the order reference and selection.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batch = model.OrderBatch{}
}

// SetCustomerType records the export layout selection.
func (s *Store) SetCustomerType(customerType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batch.CustomerType = customerType
}

func (s *Store) copyLocked() model.OrderBatch {
	b := s.batch
	b.Lines = append([]model.OrderLine(nil), s.batch.Lines...)
	return b
}

// renumberLocked restores the invariant that line numbers are exactly the
// contiguous zero-padded 1-based positions.
func (s *Store) renumberLocked() {
	for i := range s.batch.Lines {
		s.batch.Lines[i].LineNumber = LineNumber(i + 1)
	}
}
