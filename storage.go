package chainmap

import (
	"github.com/xaionaro-go/chainmap/hasher"
)

type entry[K comparable, V any] struct {
	hashValue uint64
	key       K
	value     V
	next      *entry[K, V]
}

type storage[K comparable, V any] struct {
	hasher  hasher.Hasher
	buckets []*entry[K, V]
}

func newStorage[K comparable, V any](size uint64, hasher hasher.Hasher) *storage[K, V] {
	return &storage[K, V]{
		hasher:  hasher,
		buckets: make([]*entry[K, V], size),
	}
}

func (stor *storage[K, V]) size() uint64 {
	if stor == nil {
		return 0
	}
	return uint64(len(stor.buckets))
}

func (stor *storage[K, V]) getIdx(hashValue uint64) uint64 {
	return hashValue % stor.size()
}

func (stor *storage[K, V]) isEqualKey(keyA, keyB K) bool {
	return stor.hasher.IsEqualKey(keyA, keyB)
}

func (stor *storage[K, V]) findEntry(hashValue uint64, key K) *entry[K, V] {
	for item := stor.buckets[stor.getIdx(hashValue)]; item != nil; item = item.next {
		if item.hashValue != hashValue {
			continue
		}
		if stor.isEqualKey(item.key, key) {
			return item
		}
	}
	return nil
}

// appendEntry links the item as the tail of its bucket's chain. The item
// must not be linked anywhere else.
func (stor *storage[K, V]) appendEntry(item *entry[K, V]) {
	idxValue := stor.getIdx(item.hashValue)
	head := stor.buckets[idxValue]
	if head == nil {
		stor.buckets[idxValue] = item
		return
	}
	tail := head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = item
}

func (stor *storage[K, V]) copyOldItemsAfterGrowing(oldStorage *storage[K, V]) {
	if oldStorage == nil {
		return
	}
	for i := range oldStorage.buckets {
		item := oldStorage.buckets[i]
		oldStorage.buckets[i] = nil
		for item != nil {
			next := item.next
			item.next = nil
			stor.appendEntry(item)
			item = next
		}
	}
}
