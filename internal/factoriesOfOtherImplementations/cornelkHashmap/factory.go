//go:generate benchmarkCodeGen

package cornelkHashmap

import (
	"github.com/cornelk/hashmap"

	"github.com/xaionaro-go/chainmap/errors"
	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

// minimalBlockSize keeps the conformance routines below the fill rate at
// which hashmap starts growing in background: keys set during a grow may be
// missed by a following Get.
const minimalBlockSize = 1 << 16

func NewWithArgs(loadFactor float64, blockSize uint64) I.Map {
	if blockSize < minimalBlockSize {
		blockSize = minimalBlockSize
	}
	return &hashmapWrapper{
		blockSize: blockSize,
		HashMap:   hashmap.New(uintptr(blockSize)),
	}
}

type hashmapWrapper struct {
	*hashmap.HashMap
	blockSize uint64
}

func (m *hashmapWrapper) Get(keyI I.Key) (interface{}, error) {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return nil, err
	}
	v, ok := m.HashMap.Get(key)
	if !ok {
		return nil, errors.NotFound
	}
	return v, nil
}
func (m *hashmapWrapper) Has(keyI I.Key) (bool, error) {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return false, err
	}
	_, ok := m.HashMap.Get(key)
	return ok, nil
}
func (m *hashmapWrapper) Set(keyI I.Key, value interface{}) error {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return err
	}
	m.HashMap.Set(key, value)
	return nil
}
func (m *hashmapWrapper) Unset(keyI I.Key) error {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return err
	}
	if _, ok := m.HashMap.Get(key); !ok {
		return errors.NotFound
	}
	m.HashMap.Del(key)
	return nil
}
func (m *hashmapWrapper) Reset() {
	m.HashMap = hashmap.New(uintptr(m.blockSize))
}
func (m *hashmapWrapper) CheckConsistency() error {
	return nil
}
func (m *hashmapWrapper) FromSTDMap(in map[I.Key]interface{}) {
	for k, v := range in {
		m.Set(k, v)
	}
}
func (m *hashmapWrapper) ToSTDMap() map[I.Key]interface{} {
	r := map[I.Key]interface{}{}
	for kv := range m.HashMap.Iter() {
		r[kv.Key] = kv.Value
	}
	return r
}
func (m *hashmapWrapper) Keys() []interface{} {
	var r []interface{}
	for kv := range m.HashMap.Iter() {
		r = append(r, kv.Key)
	}
	return r
}
func (m *hashmapWrapper) Values() []interface{} {
	var r []interface{}
	for kv := range m.HashMap.Iter() {
		r = append(r, kv.Value)
	}
	return r
}
func (m *hashmapWrapper) Len() int {
	return m.HashMap.Len()
}
func (m *hashmapWrapper) SetForbidGrowing(bool) {}
