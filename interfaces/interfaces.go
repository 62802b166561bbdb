package interfaces

type Key interface{}

// Map is the common surface of chainmap and the baseline implementations
// it is benchmarked against.
type Map[K comparable, V any] interface {
	Set(key K, value V)
	Get(key K) (value V, err error)
	Len() int
}

type Hasher interface {
	PreHash(key Key) (preHash uint64, typeID uint8)
	CompleteHash(keyPreHash uint64, keyTypeID uint8) uint64
	Hash(key Key) uint64
	IsEqualKey(keyA, keyB Key) bool
}
