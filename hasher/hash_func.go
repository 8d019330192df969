package hasher

import (
	"fmt"
	"unicode/utf16"

	"github.com/OneOfOne/xxhash"
)

const (
	primeNumber = 31
)

// Hash returns the bucket index of the key in a table of blockSize buckets.
//
// It's a rolling polynomial hash over the UTF-16 code units of the key:
// h = (31*h + c) % blockSize. The modulus is applied on every step, so the
// result depends on blockSize and has to be recomputed after the table grows.
func Hash(blockSize uint64, key string) uint64 {
	if blockSize == 0 {
		panic("blockSize should be positive")
	}
	h := uint64(0)
	for _, r := range key {
		if r < 0x10000 {
			h = (primeNumber*h + uint64(r)) % blockSize
			continue
		}
		r1, r2 := utf16.EncodeRune(r)
		h = (primeNumber*h + uint64(r1)) % blockSize
		h = (primeNumber*h + uint64(r2)) % blockSize
	}
	return h
}

// Fingerprint returns a digest of a key/value pair. Values are rendered with
// "%v", so two values with the same text form have the same fingerprint.
func Fingerprint(key string, value interface{}) uint64 {
	h := xxhash.New64()
	h.Write([]byte(key))
	h.Write([]byte{0})
	h.Write([]byte(fmt.Sprintf("%v", value)))
	return h.Sum64()
}
