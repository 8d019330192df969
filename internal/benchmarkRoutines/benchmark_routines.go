package benchmarkRoutines

import (
	"testing"
)

func DoBenchmarkOfSet(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(0.75, blockSize)

	keys := generateKeys(keyAmount, "string")

	currentCount := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[currentCount], i)
		currentCount++
		if currentCount >= keyAmount {
			b.StopTimer()
			m = factoryFunc(0.75, blockSize)
			currentCount = 0
			b.StartTimer()
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfReSet(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(0.75, blockSize)

	keys := generateKeys(keyAmount, "string")
	for i := uint64(0); i < keyAmount; i++ {
		m.Set(keys[i], i+1)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[currentIdx], i)
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGet(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(0.75, blockSize)

	keys := generateKeys(keyAmount, "string")
	for i := uint64(0); i < keyAmount; i++ {
		m.Set(keys[i], i)
	}

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGetMiss(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(0.75, blockSize)

	keys := generateKeys(keyAmount*2, "string")
	for i := uint64(0); i < keyAmount; i++ {
		m.Set(keys[i], i)
	}
	misses := keys[keyAmount:]

	currentIdx := uint64(0)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		m.Get(misses[currentIdx])
		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfUnset(b *testing.B, factoryFunc mapFactoryFunc, blockSize uint64, keyAmount uint64) {
	b.StopTimer()

	m := factoryFunc(0.75, blockSize)
	keys := generateKeys(keyAmount, "string")

	currentIdx := uint64(0)
	for i := 0; i < b.N; i++ {
		if currentIdx == 0 {
			b.StopTimer()
			for j := uint64(0); j < keyAmount; j++ {
				m.Set(keys[j], j)
			}
			b.StartTimer()
		}

		m.Unset(keys[currentIdx])

		currentIdx++
		if currentIdx >= keyAmount {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkHash(b *testing.B, hashFunc hashFunc, blockSize uint64) {
	b.StopTimer()
	keys := generateStringKeys(1024)
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		hashFunc(blockSize, keys[i&1023])
	}
	b.StopTimer()
}
