package hasher

import (
	"math"
	"math/bits"
	"reflect"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/exp/constraints"

	I "github.com/xaionaro-go/chainmap/interfaces"
)

const (
	randomNumber    = uint64(4735311918715544114)
	fmixMultiplier1 = 0xff51afd7ed558ccd
	fmixMultiplier2 = 0xc4ceb9fe1a85ec53
	typeIDNil       = uint8(0)
	typeIDKindBase  = uint8(32)
)

func preHashString(in string) uint64 {
	return xxhash.ChecksumString64(in)
}

func preHashBytes(in []byte) uint64 {
	return xxhash.Checksum64(in)
}

func preHashInteger[T constraints.Integer](in T) uint64 {
	return uint64(in)
}

func preHashFloat64(in float64) uint64 {
	if in == 0 { // -0 == +0, so they must hash the same
		in = 0
	}
	return math.Float64bits(in)
}

// preHashReflected covers every key type without a dedicated case. A nil
// pointer or channel is a null key. The typeID is derived from the kind.
func preHashReflected(keyI I.Key) (uint64, uint8) {
	v := reflect.ValueOf(keyI)
	switch v.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan:
		if v.IsNil() {
			return 0, typeIDNil
		}
	}
	return preHashValue(v), typeIDKindBase + uint8(v.Kind())
}

func preHash(keyI I.Key) (value uint64, typeID uint8) {
	switch key := keyI.(type) {
	case nil:
		return 0, typeIDNil
	case string:
		return preHashString(key), 1
	case []byte:
		return preHashBytes(key), 2
	case int:
		return preHashInteger(key), 3
	case uint:
		return preHashInteger(key), 4
	case int8:
		return preHashInteger(key), 5
	case uint8:
		return preHashInteger(key), 6
	case int16:
		return preHashInteger(key), 7
	case uint16:
		return preHashInteger(key), 8
	case int32:
		return preHashInteger(key), 9
	case uint32:
		return preHashInteger(key), 10
	case int64:
		return preHashInteger(key), 11
	case uint64:
		return preHashInteger(key), 12
	case uintptr:
		return preHashInteger(key), 13
	case float32:
		return preHashFloat64(float64(key)), 14
	case float64:
		return preHashFloat64(key), 15
	case complex64:
		return preHashComplex(float64(real(key)), float64(imag(key))), 16
	case complex128:
		return preHashComplex(real(key), imag(key)), 17
	case bool:
		if key {
			return 1, 18
		}
		return 0, 18
	default:
		return preHashReflected(keyI)
	}
}

// Uint64Hash is the murmur3 finalizer: every input bit affects every
// output bit, so the low bits are usable as a bucket index directly.
func Uint64Hash(key uint64) uint64 {
	key ^= key >> 33
	key *= fmixMultiplier1
	key ^= key >> 33
	key *= fmixMultiplier2
	key ^= key >> 33
	return key
}

// CompleteHash mixes a pre-hash with its type so that equal pre-hashes of
// different key types land in different buckets. Null keys always hash to 0.
func CompleteHash(keyPreHash uint64, keyTypeID uint8) uint64 {
	if keyTypeID == typeIDNil {
		return 0
	}
	typeXorer := bits.RotateLeft64(randomNumber, int(keyTypeID))
	return Uint64Hash(keyPreHash ^ typeXorer)
}

func Hash(key I.Key) uint64 {
	preHashValue, typeID := preHash(key)
	return CompleteHash(preHashValue, typeID)
}
