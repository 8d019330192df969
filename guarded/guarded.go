// Package guarded serializes access to a chainmap.Table with a spinlock.
//
// chainmap.Table itself is not safe for concurrent use; wrap it here if a
// single table has to be shared between goroutines.
package guarded

import (
	"github.com/xaionaro-go/spinlock"

	"github.com/xaionaro-go/chainmap"
)

type Table[V any] struct {
	locker spinlock.Locker
	table  *chainmap.Table[V]
}

func New[V any]() *Table[V] {
	return Wrap(chainmap.New[V]())
}

// Wrap takes ownership of the table: it must not be used directly anymore.
func Wrap[V any](table *chainmap.Table[V]) *Table[V] {
	return &Table[V]{table: table}
}

func (t *Table[V]) Set(key string, value V) {
	t.locker.Lock()
	t.table.Set(key, value)
	t.locker.Unlock()
}

func (t *Table[V]) Get(key string) (V, bool) {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.table.Get(key)
}

func (t *Table[V]) Has(key string) bool {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.table.Has(key)
}

func (t *Table[V]) Remove(key string) bool {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.table.Remove(key)
}

func (t *Table[V]) Len() int {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.table.Len()
}

func (t *Table[V]) Clear() {
	t.locker.Lock()
	t.table.Clear()
	t.locker.Unlock()
}

func (t *Table[V]) Keys() []string {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.table.Keys()
}

func (t *Table[V]) Values() []V {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.table.Values()
}

func (t *Table[V]) Entries() []chainmap.Entry[V] {
	t.locker.Lock()
	defer t.locker.Unlock()
	return t.table.Entries()
}

// Update sets the key to fn(old value, found) atomically.
func (t *Table[V]) Update(key string, fn func(value V, ok bool) V) {
	t.locker.Lock()
	defer t.locker.Unlock()
	t.table.Set(key, fn(t.table.Get(key)))
}

// Do calls fn with the underlying table while holding the lock.
func (t *Table[V]) Do(fn func(table *chainmap.Table[V])) {
	t.locker.Lock()
	defer t.locker.Unlock()
	fn(t.table)
}
