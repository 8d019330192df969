package chainmap

import (
	"github.com/xaionaro-go/chainmap/hasher"
)

// Entry is a key/value pair stored in the table.
type Entry[V any] struct {
	Key   string
	Value V
}

// bucket is a chain of entries sharing the same index. The order of
// entries is the order they were inserted in.
type bucket[V any] []Entry[V]

func (b bucket[V]) find(key string) int {
	for i := range b {
		if hasher.IsEqualKey(b[i].Key, key) {
			return i
		}
	}
	return -1
}

// remove deletes the i-th entry keeping the order of the rest.
func (b bucket[V]) remove(i int) bucket[V] {
	copy(b[i:], b[i+1:])
	var zero Entry[V]
	b[len(b)-1] = zero
	return b[:len(b)-1]
}

type storage[V any] struct {
	buckets []bucket[V]
	count   int
}

func newStorage[V any](size uint64) *storage[V] {
	return &storage[V]{
		buckets: make([]bucket[V], size),
	}
}

func (stor *storage[V]) size() uint64 {
	if stor == nil {
		return 0
	}
	return uint64(len(stor.buckets))
}

func (stor *storage[V]) getIdx(key string) uint64 {
	return hasher.Hash(stor.size(), key)
}

func (stor *storage[V]) getBucket(idx uint64) *bucket[V] {
	return &stor.buckets[idx]
}

// put sets the value of the key; returns true if a new entry was added.
func (stor *storage[V]) put(key string, value V) bool {
	b := stor.getBucket(stor.getIdx(key))
	if i := b.find(key); i >= 0 {
		(*b)[i].Value = value
		return false
	}
	*b = append(*b, Entry[V]{Key: key, Value: value})
	stor.count++
	return true
}

func (stor *storage[V]) lookup(key string) (*Entry[V], bool) {
	if stor.count == 0 {
		return nil, false
	}
	b := stor.getBucket(stor.getIdx(key))
	i := b.find(key)
	if i < 0 {
		return nil, false
	}
	return &(*b)[i], true
}

func (stor *storage[V]) delete(key string) bool {
	if stor.count == 0 {
		return false
	}
	b := stor.getBucket(stor.getIdx(key))
	i := b.find(key)
	if i < 0 {
		return false
	}
	*b = b.remove(i)
	stor.count--
	return true
}

// copyOldItemsAfterGrowing replays every entry of oldStorage. Indexes are
// recomputed since they depend on the amount of buckets.
func (stor *storage[V]) copyOldItemsAfterGrowing(oldStorage *storage[V]) {
	if oldStorage == nil {
		return
	}
	for _, oldBucket := range oldStorage.buckets {
		for _, entry := range oldBucket {
			stor.put(entry.Key, entry.Value)
		}
	}
}
