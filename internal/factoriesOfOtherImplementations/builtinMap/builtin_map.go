//go:generate benchmarkCodeGen

package builtinMap

import (
	"github.com/xaionaro-go/chainmap/errors"
	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func NewWithArgs(loadFactor float64, blockSize uint64) I.Map {
	return &builtinMap{
		m: make(map[string]interface{}, blockSize),
	}
}

type builtinMap struct {
	m map[string]interface{}
}

func (m *builtinMap) Set(keyI I.Key, value interface{}) error {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return err
	}
	m.m[key] = value
	return nil
}
func (m *builtinMap) Get(keyI I.Key) (interface{}, error) {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return nil, err
	}
	value, ok := m.m[key]
	if !ok {
		return nil, errors.NotFound
	}
	return value, nil
}
func (m *builtinMap) Has(keyI I.Key) (bool, error) {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return false, err
	}
	_, ok := m.m[key]
	return ok, nil
}
func (m *builtinMap) Unset(keyI I.Key) error {
	key, err := hasher.KeyString(keyI)
	if err != nil {
		return err
	}
	if _, ok := m.m[key]; !ok {
		return errors.NotFound
	}
	delete(m.m, key)
	return nil
}
func (m *builtinMap) Reset() {
	m.m = map[string]interface{}{}
}
func (m *builtinMap) CheckConsistency() error {
	return nil
}
func (m *builtinMap) FromSTDMap(in map[I.Key]interface{}) {
	for k, v := range in {
		m.Set(k, v)
	}
}
func (m *builtinMap) ToSTDMap() map[I.Key]interface{} {
	r := make(map[I.Key]interface{}, len(m.m))
	for k, v := range m.m {
		r[k] = v
	}
	return r
}
func (m *builtinMap) Keys() []interface{} {
	r := make([]interface{}, 0, len(m.m))
	for k := range m.m {
		r = append(r, k)
	}
	return r
}
func (m *builtinMap) Values() []interface{} {
	r := make([]interface{}, 0, len(m.m))
	for _, v := range m.m {
		r = append(r, v)
	}
	return r
}
func (m *builtinMap) Len() int {
	return len(m.m)
}
func (m *builtinMap) SetForbidGrowing(bool) {}
