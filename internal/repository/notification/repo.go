package notification

import (
	"sort"
	"sync"

	"github.com/aliskhannn/notifyd/internal/model"
)

// Repository is the in-memory notification registry. It owns identifier
// allocation and the id -> notification store, the only mutable state shared
// between concurrently dispatched bus calls.
//
// The counter and the map are guarded independently. Each mutex is held for a
// single read-modify-write only, never across a call boundary, so an
// AllocateID followed by a Save are two separate critical sections.
type Repository struct {
	mu      sync.Mutex
	entries map[uint32]model.Notification

	idMu   sync.Mutex
	nextID uint32
}

// NewRepository creates an empty registry with the allocator seeded at 1.
func NewRepository() *Repository {
	return &Repository{
		entries: make(map[uint32]model.Notification),
		nextID:  1,
	}
}

// AllocateID returns the current counter value and advances it by one.
// The counter wraps around uint32 and skips 0, so an allocated id is never 0.
func (r *Repository) AllocateID() uint32 {
	r.idMu.Lock()
	defer r.idMu.Unlock()

	id := r.nextID
	r.nextID++
	if r.nextID == 0 {
		r.nextID = 1
	}

	return id
}

// Save inserts or overwrites the record under n.ID. It always succeeds and
// makes no distinction between created and replaced.
func (r *Repository) Save(n model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[n.ID] = n
}

// Remove deletes the record under id if present. It returns the removed
// record and whether one existed; absence is a normal outcome, not an error.
func (r *Repository) Remove(id uint32) (model.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}

	return n, ok
}

// Stats returns the number of tracked records and the current allocator
// value. The two reads take their locks independently, so under concurrent
// mutation this is not a consistent point-in-time snapshot; it feeds a coarse
// heartbeat metric only.
func (r *Repository) Stats() (int, uint32) {
	r.mu.Lock()
	count := len(r.entries)
	r.mu.Unlock()

	r.idMu.Lock()
	next := r.nextID
	r.idMu.Unlock()

	return count, next
}

// List returns a snapshot of all tracked records ordered by id.
func (r *Repository) List() []model.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	notifications := make([]model.Notification, 0, len(r.entries))
	for _, n := range r.entries {
		notifications = append(notifications, n)
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].ID < notifications[j].ID
	})

	return notifications
}
