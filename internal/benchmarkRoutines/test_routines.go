package benchmarkRoutines

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func expect(t *testing.T, m I.Map, key I.Key, expectedValue int) {
	value, err := m.Get(key)
	if err != nil {
		t.Errorf("Got an unexpected error: %v. key == %v; expectedValue == %v", err, key, expectedValue)
		return
	}
	if value != expectedValue {
		t.Errorf(`A wrong value "%v" (instead of %v)`, value, expectedValue)
	}
}

// DoTest checks the basic contract of an I.Map implementation.
func DoTest(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(0.75, 16)

	if m.Len() != 0 {
		t.Errorf("m.Len() is not 0: %v", m.Len())
	}

	m.Set("a", 1)
	m.Set("a string", 2)

	expect(t, m, "a", 1)
	expect(t, m, "a string", 2)

	_, err := m.Get("b")
	if err != errors.NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v`, err)
	}

	if m.Len() != 2 {
		t.Errorf("m.Len() is not 2: %v", m.Len())
	}

	m.Set("a", 3)
	expect(t, m, "a", 3)
	if m.Len() != 2 {
		t.Errorf("m.Len() is not 2 after an overwrite: %v", m.Len())
	}

	err = m.Unset("a")
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}

	_, err = m.Get("a")
	if err != errors.NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v`, err)
	}
	err = m.Unset("a")
	if err != errors.NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v`, err)
	}

	if m.Len() != 1 {
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}

	DoTestInvalidKeys(t, m)

	for i := 10; i < 1024*16; i++ {
		m.Set(strconv.Itoa(i*6000), i)
	}
	err = m.Unset("60000")
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}

	err = m.CheckConsistency()
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
		return
	}
	for i := 11; i < 1024*16; i++ {
		r, err := m.Get(strconv.Itoa(i * 6000))
		if err != nil {
			t.Errorf("%v not found", i*6000)
			continue
		}
		if r.(int) != i {
			t.Errorf("%v != %v", r, i)
		}
	}
	if len(m.Keys()) != m.Len() || len(m.Values()) != m.Len() || len(m.ToSTDMap()) != m.Len() {
		t.Errorf("enumerations disagree with m.Len() == %v: %v %v %v", m.Len(), len(m.Keys()), len(m.Values()), len(m.ToSTDMap()))
	}

	for i := 11; i < 1024*16; i++ {
		err := m.Unset(strconv.Itoa(i * 6000))
		if err != nil {
			t.Errorf("Cannot unset %v: %v", i*6000, err)
			continue
		}
	}

	err = m.CheckConsistency()
	if err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("m.Len() is not 1: %v", m.Len())
	}

	m.Reset()
	if m.Len() != 0 || len(m.Keys()) != 0 {
		t.Errorf("the map is not empty after Reset(): %v %v", m.Len(), m.Keys())
	}
}

// DoTestInvalidKeys checks that keys of other types than string are rejected
// and don't change the map.
func DoTestInvalidKeys(t *testing.T, m I.Map) {
	lenBefore := m.Len()
	for _, keyType := range []string{"int", "bytes", "struct"} {
		for _, key := range generateKeys(4, keyType) {
			if err := m.Set(key, "x"); err != errors.InvalidKeyType {
				t.Errorf(`Set(%#v): an expected "InvalidKeyType" error, but got: %v`, key, err)
			}
			if _, err := m.Get(key); err != errors.InvalidKeyType {
				t.Errorf(`Get(%#v): an expected "InvalidKeyType" error, but got: %v`, key, err)
			}
			if _, err := m.Has(key); err != errors.InvalidKeyType {
				t.Errorf(`Has(%#v): an expected "InvalidKeyType" error, but got: %v`, key, err)
			}
			if err := m.Unset(key); err != errors.InvalidKeyType {
				t.Errorf(`Unset(%#v): an expected "InvalidKeyType" error, but got: %v`, key, err)
			}
		}
	}
	if m.Len() != lenBefore {
		t.Errorf("m.Len() changed after invalid keys: %v != %v", m.Len(), lenBefore)
	}
}

func tryHashCollisions(hashFunc hashFunc, blockSize uint64, keys []string) int {
	alreadyIsSet := map[uint64]bool{}

	collisions := 0
	for _, key := range keys {
		newHash := hashFunc(blockSize, key)
		if newHash >= blockSize {
			panic(fmt.Sprintf("hash %v is out of range [0, %v)", newHash, blockSize))
		}
		if alreadyIsSet[newHash] {
			collisions++
		}
		alreadyIsSet[newHash] = true
	}

	return collisions
}

// DoTestHashCollisions reports the amount of collisions of hashFunc on
// random keys and on keys of pessimistic scenarios.
func DoTestHashCollisions(t *testing.T, hashFunc hashFunc, blockSize uint64, keyAmount uint64) {
	keys := generateStringKeys(keyAmount)

	collisions := tryHashCollisions(hashFunc, blockSize, keys)
	t.Logf("Total collisions on random keys: collisions %v, keyAmount %v and blockSize %v:\n\t%v/%v/%v (%.1f%%)", collisions, keyAmount, blockSize, collisions, keyAmount, blockSize, float32(collisions)*100/float32(keyAmount))

	keys = keys[:0]
	for i := uint64(0); i < keyAmount; i++ {
		keys = append(keys, strconv.FormatUint(i, 10))
	}

	collisions = tryHashCollisions(hashFunc, blockSize, keys)
	t.Logf("Total collisions on keys of pessimistic scenario (keys are consecutive numbers): collisions %v, keyAmount %v and blockSize %v:\n\t%v/%v/%v (%.1f%%)", collisions, keyAmount, blockSize, collisions, keyAmount, blockSize, float32(collisions)*100/float32(keyAmount))

	keys = keys[:0]
	for i := uint64(0); i < keyAmount; i++ {
		keys = append(keys, "key"+strconv.FormatUint(i, 36))
	}

	collisions = tryHashCollisions(hashFunc, blockSize, keys)
	t.Logf("Total collisions on keys of pessimistic scenario (keys share a prefix): collisions %v, keyAmount %v and blockSize %v:\n\t%v/%v/%v (%.1f%%)", collisions, keyAmount, blockSize, collisions, keyAmount, blockSize, float32(collisions)*100/float32(keyAmount))
}
