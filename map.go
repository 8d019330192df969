//go:generate benchmarkCodeGen

package chainmap

import (
	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

type Key = I.Key
type Map = I.Map

// dynamicMap is the untyped surface of Table. Keys are checked to be
// strings before the table is touched.
type dynamicMap struct {
	initialSize uint64
	loadFactor  float64
	hasher      hasher.Hasher
	table       *Table[interface{}]
}

func NewMap() Map {
	return NewMapWithArgs(defaultLoadFactor, defaultCapacity)
}

func NewMapWithArgs(loadFactor float64, initialCapacity uint64) Map {
	table := NewWithArgs[interface{}](loadFactor, initialCapacity)
	return &dynamicMap{
		initialSize: table.Capacity(),
		loadFactor:  table.LoadFactor(),
		hasher:      hasher.New(),
		table:       table,
	}
}

func (m *dynamicMap) Set(keyI Key, value interface{}) error {
	key, err := m.hasher.KeyString(keyI)
	if err != nil {
		return err
	}
	m.table.Set(key, value)
	return nil
}

func (m *dynamicMap) Get(keyI Key) (interface{}, error) {
	key, err := m.hasher.KeyString(keyI)
	if err != nil {
		return nil, err
	}
	value, ok := m.table.Get(key)
	if !ok {
		return nil, NotFound
	}
	return value, nil
}

func (m *dynamicMap) Has(keyI Key) (bool, error) {
	key, err := m.hasher.KeyString(keyI)
	if err != nil {
		return false, err
	}
	return m.table.Has(key), nil
}

func (m *dynamicMap) Unset(keyI Key) error {
	key, err := m.hasher.KeyString(keyI)
	if err != nil {
		return err
	}
	if !m.table.Remove(key) {
		return NotFound
	}
	return nil
}

func (m *dynamicMap) Len() int {
	return m.table.Len()
}

// Reset drops all entries and the grown buckets: the map becomes as it was
// right after creation.
func (m *dynamicMap) Reset() {
	m.table = NewWithArgs[interface{}](m.loadFactor, m.initialSize)
}

func (m *dynamicMap) Keys() []interface{} {
	r := make([]interface{}, 0, m.table.Len())
	m.table.Range(func(key string, _ interface{}) bool {
		r = append(r, key)
		return true
	})
	return r
}

func (m *dynamicMap) Values() []interface{} {
	return m.table.Values()
}

func (m *dynamicMap) ToSTDMap() map[Key]interface{} {
	r := make(map[Key]interface{}, m.table.Len())
	m.table.Range(func(key string, value interface{}) bool {
		r[key] = value
		return true
	})
	return r
}

// FromSTDMap copies entries with string keys. Entries with other keys are
// skipped.
func (m *dynamicMap) FromSTDMap(stdMap map[Key]interface{}) {
	for k, v := range stdMap {
		if err := m.Set(k, v); err != nil {
			continue
		}
	}
}

func (m *dynamicMap) CheckConsistency() error {
	return m.table.CheckConsistency()
}

func (m *dynamicMap) SetForbidGrowing(forbidGrowing bool) {
	m.table.SetForbidGrowing(forbidGrowing)
}

// Hash returns the current bucket index of the key.
func (m *dynamicMap) Hash(keyI Key) (uint64, error) {
	key, err := m.hasher.KeyString(keyI)
	if err != nil {
		return 0, err
	}
	return m.hasher.Hash(m.table.Capacity(), key), nil
}

func (m *dynamicMap) HasCollisionWithKey(keyI Key) bool {
	key, err := m.hasher.KeyString(keyI)
	if err != nil {
		return false
	}
	return m.table.HasCollisionWithKey(key)
}
