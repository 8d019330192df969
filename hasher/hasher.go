package hasher

import (
	I "github.com/xaionaro-go/chainmap/interfaces"
)

type Hasher = I.Hasher

type hasher struct{}

func New() Hasher {
	return &hasher{}
}

func (h *hasher) Hash(blockSize uint64, key string) uint64 {
	return Hash(blockSize, key)
}
func (h *hasher) KeyString(key I.Key) (string, error) {
	return KeyString(key)
}
