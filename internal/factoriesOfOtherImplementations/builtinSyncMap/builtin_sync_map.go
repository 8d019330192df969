//go:generate benchmarkCodeGen

package builtinSyncMap

import (
	"sync"
	"sync/atomic"

	"github.com/xaionaro-go/chainmap/errors"
	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func NewWithArgs(loadFactor float64, blockSize uint64) I.Map {
	return &builtinSyncMap{}
}

type builtinSyncMap struct {
	m     sync.Map
	count int64
}

func (m *builtinSyncMap) Set(keyI I.Key, value interface{}) error {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return err
	}
	if _, loaded := m.m.Swap(key, value); !loaded {
		atomic.AddInt64(&m.count, 1)
	}
	return nil
}
func (m *builtinSyncMap) Get(keyI I.Key) (interface{}, error) {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return nil, err
	}
	value, ok := m.m.Load(key)
	if !ok {
		return nil, errors.NotFound
	}
	return value, nil
}
func (m *builtinSyncMap) Has(keyI I.Key) (bool, error) {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return false, err
	}
	_, ok := m.m.Load(key)
	return ok, nil
}
func (m *builtinSyncMap) Unset(keyI I.Key) error {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return err
	}
	if _, loaded := m.m.LoadAndDelete(key); !loaded {
		return errors.NotFound
	}
	atomic.AddInt64(&m.count, -1)
	return nil
}
func (m *builtinSyncMap) Reset() {
	m.m.Range(func(k, _ interface{}) bool {
		m.m.Delete(k)
		return true
	})
	atomic.StoreInt64(&m.count, 0)
}
func (m *builtinSyncMap) CheckConsistency() error {
	return nil
}
func (m *builtinSyncMap) FromSTDMap(in map[I.Key]interface{}) {
	for k, v := range in {
		m.Set(k, v)
	}
}
func (m *builtinSyncMap) ToSTDMap() map[I.Key]interface{} {
	r := map[I.Key]interface{}{}
	m.m.Range(func(k, v interface{}) bool {
		r[k] = v
		return true
	})
	return r
}
func (m *builtinSyncMap) Keys() []interface{} {
	var r []interface{}
	m.m.Range(func(k, _ interface{}) bool {
		r = append(r, k)
		return true
	})
	return r
}
func (m *builtinSyncMap) Values() []interface{} {
	var r []interface{}
	m.m.Range(func(_, v interface{}) bool {
		r = append(r, v)
		return true
	})
	return r
}
func (m *builtinSyncMap) Len() int {
	return int(atomic.LoadInt64(&m.count))
}
func (m *builtinSyncMap) SetForbidGrowing(bool) {}
