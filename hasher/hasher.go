package hasher

import (
	I "github.com/xaionaro-go/chainmap/interfaces"
)

type Hasher = I.Hasher

type hasher struct{}

func New() Hasher {
	return &hasher{}
}

func (h *hasher) PreHash(key I.Key) (uint64, uint8) {
	return preHash(key)
}

func (h *hasher) CompleteHash(keyPreHash uint64, keyTypeID uint8) uint64 {
	return CompleteHash(keyPreHash, keyTypeID)
}

func (h *hasher) Hash(key I.Key) uint64 {
	return Hash(key)
}

func (h *hasher) IsEqualKey(keyA, keyB I.Key) bool {
	return IsEqualKey(keyA, keyB)
}
