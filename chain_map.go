//go:generate benchmarkCodeGen

package chainmap

import (
	"fmt"
	"log"

	"github.com/xaionaro-go/chainmap/hasher"
)

const (
	growAtFullness         = 0.75
	maximalSize            = 1 << 32
	defaultInitialCapacity = 16
)

// Map is a hash table resolving collisions by separate chaining.
//
// It is not safe for concurrent use.
type Map[K comparable, V any] struct {
	storage    *storage[K, V]
	hasher     hasher.Hasher
	itemsCount int
}

func fixInitialCapacity(initialCapacity uint64) uint64 {
	if initialCapacity == 0 {
		log.Printf("Invalid initial capacity: %v. Setting to %d\n", initialCapacity, defaultInitialCapacity)
		return defaultInitialCapacity
	}
	if initialCapacity > maximalSize {
		log.Printf("Initial capacity %v is above the maximum. Setting to %d\n", initialCapacity, uint64(maximalSize))
		return maximalSize
	}
	return initialCapacity
}

func New[K comparable, V any]() *Map[K, V] {
	return NewWithArgs[K, V](defaultInitialCapacity)
}

// NewWithArgs creates a map with initialCapacity buckets. The capacity
// doubles every time the amount of keys would exceed 3/4 of it.
func NewWithArgs[K comparable, V any](initialCapacity uint64) *Map[K, V] {
	initialCapacity = fixInitialCapacity(initialCapacity)
	m := &Map[K, V]{hasher: hasher.New()}
	m.storage = newStorage[K, V](initialCapacity, m.hasher)
	return m
}

func (m *Map[K, V]) size() uint64 {
	return m.storage.size()
}

// isEnoughFreeSpace is checked before it is known whether the key being
// set is new, so overwriting a key on a table at the threshold grows it too.
func (m *Map[K, V]) isEnoughFreeSpace() bool {
	return float64(m.itemsCount+1) <= float64(m.size())*growAtFullness
}

// Set stores value under key, replacing the previous value if the key is
// already present.
func (m *Map[K, V]) Set(key K, value V) {
	if !m.isEnoughFreeSpace() {
		// On NoSpaceLeft the chains just get longer.
		_ = m.growTo(m.size() << 1)
	}

	hashValue := m.hasher.Hash(key)
	if item := m.storage.findEntry(hashValue, key); item != nil {
		item.value = value
		return
	}

	m.storage.appendEntry(&entry[K, V]{
		hashValue: hashValue,
		key:       key,
		value:     value,
	})
	m.itemsCount++
}

// Get returns NotFound if the key was never set.
func (m *Map[K, V]) Get(key K) (V, error) {
	item := m.storage.findEntry(m.hasher.Hash(key), key)
	if item == nil {
		var zero V
		return zero, NotFound
	}
	return item.value, nil
}

func (m *Map[K, V]) Len() int {
	return m.itemsCount
}

// Cap returns the current amount of buckets.
func (m *Map[K, V]) Cap() int {
	return int(m.size())
}

func (m *Map[K, V]) growTo(newSize uint64) error {
	if newSize > maximalSize {
		return NoSpaceLeft
	}

	if m.size() >= newSize {
		return nil
	}

	grownStorage := newStorage[K, V](newSize, m.hasher)
	grownStorage.copyOldItemsAfterGrowing(m.storage)
	m.storage = grownStorage
	return nil
}

// FromSTDMap sets every pair of stdMap, growing the table beforehand so
// that no intermediate rehashing happens.
func (m *Map[K, V]) FromSTDMap(stdMap map[K]V) {
	expectedSize := m.size()
	for float64(m.itemsCount+len(stdMap)) > float64(expectedSize)*growAtFullness && expectedSize < maximalSize {
		expectedSize <<= 1
	}
	_ = m.growTo(expectedSize)

	for k, v := range stdMap {
		m.Set(k, v)
	}
}

func (m *Map[K, V]) Hash(key K) uint64 {
	return m.hasher.Hash(key)
}

func (m *Map[K, V]) HasCollisionWithKey(key K) bool {
	return m.storage.buckets[m.storage.getIdx(m.hasher.Hash(key))] != nil
}

// CheckConsistency walks every chain and verifies that each entry sits in
// the bucket of its hash, that its cached hash is up to date, that no key
// is stored twice and that Len matches the amount of entries.
func (m *Map[K, V]) CheckConsistency() error {
	count := 0
	for idxValue, head := range m.storage.buckets {
		for item := head; item != nil; item = item.next {
			count++

			hashValue := m.hasher.Hash(item.key)
			if item.hashValue != hashValue {
				return fmt.Errorf("stale cached hash: key:%v cached:%v actual:%v", item.key, item.hashValue, hashValue)
			}
			if expectedIdxValue := m.storage.getIdx(hashValue); expectedIdxValue != uint64(idxValue) {
				return fmt.Errorf("misplaced entry: key:%v idx:%v expectedIdx:%v", item.key, idxValue, expectedIdxValue)
			}
			for other := item.next; other != nil; other = other.next {
				if m.storage.isEqualKey(item.key, other.key) {
					return fmt.Errorf("duplicate key %v in bucket %v", item.key, idxValue)
				}
			}
			if count > m.itemsCount {
				return fmt.Errorf("count > m.Len(): %v %v", count, m.Len())
			}
		}
	}

	if count != m.Len() {
		return fmt.Errorf("count != m.Len(): %v %v", count, m.Len())
	}
	return nil
}
