// Package chainmap is a hash table with string keys, separate chaining and
// automatic growing.
//
// A Table is not safe for concurrent use. See package guarded if a table has
// to be shared between goroutines.
package chainmap

import (
	"fmt"
	"log"
	"math"

	"github.com/xaionaro-go/chainmap/hasher"
)

const (
	defaultLoadFactor = 0.75
	minimalLoadFactor = 1.0 / 1024
	defaultCapacity   = 16
	maximalCapacity   = 1 << 24
)

func fixLoadFactor(loadFactor float64) float64 {
	if !(loadFactor > 0) || math.IsInf(loadFactor, 1) {
		log.Printf("Invalid load factor: %v. Setting to %v\n", loadFactor, defaultLoadFactor)
		return defaultLoadFactor
	}
	if loadFactor < minimalLoadFactor {
		log.Printf("Load factor %v is too small. Setting to %v\n", loadFactor, minimalLoadFactor)
		return minimalLoadFactor
	}
	return loadFactor
}

func fixCapacity(capacity uint64) uint64 {
	if capacity == 0 {
		log.Printf("Invalid capacity: %v. Setting to %d\n", capacity, defaultCapacity)
		return defaultCapacity
	}
	if capacity > maximalCapacity {
		log.Printf("Capacity %v is too big. Setting to %d\n", capacity, uint64(maximalCapacity))
		return maximalCapacity
	}
	return capacity
}

// Table maps string keys to values of type V.
type Table[V any] struct {
	loadFactor    float64
	storage       *storage[V]
	forbidGrowing bool
}

// New returns a table with 16 buckets which grows when it's fuller than 0.75.
func New[V any]() *Table[V] {
	return NewWithArgs[V](defaultLoadFactor, defaultCapacity)
}

// NewWithArgs returns a table with initialCapacity buckets. The amount of
// buckets is doubled every time the amount of entries divided by the amount
// of buckets exceeds loadFactor.
//
// Invalid arguments are replaced by defaults (0.75 and 16). The load factor
// is raised to at least 1/1024 and the capacity is limited to 1<<24 buckets,
// which is also the limit of growing.
func NewWithArgs[V any](loadFactor float64, initialCapacity uint64) *Table[V] {
	return &Table[V]{
		loadFactor: fixLoadFactor(loadFactor),
		storage:    newStorage[V](fixCapacity(initialCapacity)),
	}
}

func (m *Table[V]) size() uint64 {
	return m.storage.size()
}

func (m *Table[V]) isEnoughFreeSpace() bool {
	return m.Fullness() <= m.loadFactor
}

// Set inserts the key or replaces its value if the key is already present.
func (m *Table[V]) Set(key string, value V) {
	if !m.storage.put(key, value) {
		return
	}
	for !m.isEnoughFreeSpace() {
		if err := m.growTo(m.size() << 1); err != nil {
			return
		}
	}
}

// growTo rehashes the table into newSize buckets.
func (m *Table[V]) growTo(newSize uint64) error {
	if m.forbidGrowing {
		return ForbiddenToGrow
	}
	if newSize > maximalCapacity {
		return NoSpaceLeft
	}
	if m.size() >= newSize {
		return nil
	}

	oldStorage := m.storage
	m.storage = newStorage[V](newSize)
	m.storage.copyOldItemsAfterGrowing(oldStorage)
	return nil
}

// Get returns the value of the key. The second value is false if the key
// is not present.
func (m *Table[V]) Get(key string) (V, bool) {
	entry, ok := m.storage.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return entry.Value, true
}

func (m *Table[V]) Has(key string) bool {
	_, ok := m.storage.lookup(key)
	return ok
}

// Remove deletes the key and reports whether it was present. The table
// never shrinks.
func (m *Table[V]) Remove(key string) bool {
	return m.storage.delete(key)
}

func (m *Table[V]) Len() int {
	return m.storage.count
}

// Clear removes all entries. The amount of buckets stays the same.
func (m *Table[V]) Clear() {
	m.storage = newStorage[V](m.size())
}

// Capacity returns the current amount of buckets.
func (m *Table[V]) Capacity() uint64 {
	return m.size()
}

// LoadFactor returns the fullness threshold after which the table grows.
func (m *Table[V]) LoadFactor() float64 {
	return m.loadFactor
}

// Fullness returns the amount of entries divided by the amount of buckets.
func (m *Table[V]) Fullness() float64 {
	return float64(m.storage.count) / float64(m.size())
}

// SetForbidGrowing disables (or enables back) automatic growing. While
// growing is forbidden chains just become longer.
func (m *Table[V]) SetForbidGrowing(forbidGrowing bool) {
	m.forbidGrowing = forbidGrowing
	if !forbidGrowing {
		for !m.isEnoughFreeSpace() {
			if err := m.growTo(m.size() << 1); err != nil {
				return
			}
		}
	}
}

// Range calls fn for every entry: buckets in index order, entries of a
// bucket in insertion order. It stops if fn returns false.
//
// fn must not modify the table.
func (m *Table[V]) Range(fn func(key string, value V) bool) {
	for _, b := range m.storage.buckets {
		for _, entry := range b {
			if !fn(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// Keys returns all keys in the order of Range.
func (m *Table[V]) Keys() []string {
	r := make([]string, 0, m.Len())
	m.Range(func(key string, _ V) bool {
		r = append(r, key)
		return true
	})
	return r
}

// Values returns all values in the order of Range.
func (m *Table[V]) Values() []V {
	r := make([]V, 0, m.Len())
	m.Range(func(_ string, value V) bool {
		r = append(r, value)
		return true
	})
	return r
}

// Entries returns copies of all entries in the order of Range.
func (m *Table[V]) Entries() []Entry[V] {
	r := make([]Entry[V], 0, m.Len())
	m.Range(func(key string, value V) bool {
		r = append(r, Entry[V]{Key: key, Value: value})
		return true
	})
	return r
}

// ToSTDMap converts to a standard map.
func (m *Table[V]) ToSTDMap() map[string]V {
	r := make(map[string]V, m.Len())
	m.Range(func(key string, value V) bool {
		r[key] = value
		return true
	})
	return r
}

func (m *Table[V]) FromSTDMap(stdMap map[string]V) {
	for k, v := range stdMap {
		m.Set(k, v)
	}
}

// HasCollisionWithKey reports whether the bucket of the key already
// contains any entry (the key itself included).
func (m *Table[V]) HasCollisionWithKey(key string) bool {
	return len(*m.storage.getBucket(m.storage.getIdx(key))) != 0
}

// Fingerprint returns an order-independent digest of the contents. Tables
// with equal contents have equal fingerprints regardless of their capacity.
func (m *Table[V]) Fingerprint() uint64 {
	var sum uint64
	m.Range(func(key string, value V) bool {
		sum += hasher.Fingerprint(key, value)
		return true
	})
	return sum
}

// CheckConsistency validates the internal structure of the table.
func (m *Table[V]) CheckConsistency() error {
	if m.size() == 0 {
		return fmt.Errorf("the table has no buckets")
	}

	seen := make(map[string]uint64, m.Len())
	count := 0
	for idx, b := range m.storage.buckets {
		for _, entry := range b {
			count++
			expectedIdx := m.storage.getIdx(entry.Key)
			if expectedIdx != uint64(idx) {
				return fmt.Errorf("key %q is in bucket %v instead of %v", entry.Key, idx, expectedIdx)
			}
			if prevIdx, ok := seen[entry.Key]; ok {
				return fmt.Errorf("key %q is duplicated: buckets %v and %v", entry.Key, prevIdx, idx)
			}
			seen[entry.Key] = uint64(idx)
		}
	}

	if count != m.Len() {
		return fmt.Errorf("count != m.Len(): %v %v", count, m.Len())
	}
	return nil
}
