package benchmarkRoutines

import (
	"encoding/binary"

	"golang.org/x/exp/rand"

	I "github.com/xaionaro-go/chainmap/interfaces"
)

// Keys are generated from a fixed seed so every implementation is measured
// on the same sequence.
const keysSeed = 4735311918715544114

type MapFactory[K comparable] func(initialCapacity uint64) I.Map[K, int]

type HashFunc func(key I.Key) uint64

type keyStruct struct {
	Key uint32
}

// GenerateUint32Keys returns keyAmount distinct keys.
func GenerateUint32Keys(keyAmount uint64) []uint32 {
	rng := rand.New(rand.NewSource(keysSeed))
	alreadyGenerated := make(map[uint32]bool, keyAmount)
	result := make([]uint32, 0, keyAmount)
	for uint64(len(result)) < keyAmount {
		newKey := rng.Uint32()
		if alreadyGenerated[newKey] {
			continue
		}
		alreadyGenerated[newKey] = true
		result = append(result, newKey)
	}
	return result
}

// GenerateStringKeys returns keyAmount distinct 4-byte string keys.
func GenerateStringKeys(keyAmount uint64) []string {
	result := make([]string, 0, keyAmount)
	for _, newKeyInt := range GenerateUint32Keys(keyAmount) {
		newKey := make([]byte, 4)
		binary.LittleEndian.PutUint32(newKey, newKeyInt)
		result = append(result, string(newKey))
	}
	return result
}

func generateKeys(keyAmount uint64, keyType string) []I.Key {
	result := make([]I.Key, 0, keyAmount)
	for _, newKeyInt := range GenerateUint32Keys(keyAmount) {
		switch keyType {
		case "int":
			result = append(result, newKeyInt)
		case "string":
			newKey := make([]byte, 4)
			binary.LittleEndian.PutUint32(newKey, newKeyInt)
			result = append(result, string(newKey))
		case "struct":
			result = append(result, keyStruct{Key: newKeyInt})
		default:
			panic("Unknown key type: " + keyType)
		}
	}
	return result
}
