package store

import "sync"

// memtable is a generic record table: auto-assigned int64 ids, predicate
// lookup, idempotent delete. Insertion order is kept so listings come back
// the way records went in.
type memtable[T any] struct {
	mu     sync.Mutex
	nextID int64
	order  []int64
	rows   map[int64]T
}

func newMemtable[T any]() *memtable[T] {
	return &memtable[T]{rows: make(map[int64]T)}
}

// insert assigns the next id, stores the record produced by build, and
// returns the id.
func (t *memtable[T]) insert(build func(id int64) T) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	id := t.nextID
	t.rows[id] = build(id)
	t.order = append(t.order, id)
	return id
}

// find returns every record matching pred, in insertion order. The result is
// never nil.
func (t *memtable[T]) find(pred func(T) bool) []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := []T{}
	for _, id := range t.order {
		if r, ok := t.rows[id]; ok && pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// remove deletes the record and reports whether it existed.
func (t *memtable[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}
