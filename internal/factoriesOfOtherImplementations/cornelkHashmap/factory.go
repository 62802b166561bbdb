//go:generate benchmarkCodeGen

package cornelkHashmap

import (
	"github.com/cornelk/hashmap"

	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func NewWithArgs[K comparable, V any](initialCapacity uint64) I.Map[K, V] {
	return &hashmapWrapper[K, V]{HashMap: hashmap.New(uintptr(initialCapacity))}
}

type hashmapWrapper[K comparable, V any] struct {
	*hashmap.HashMap
}

func (m *hashmapWrapper[K, V]) Get(key K) (V, error) {
	v, ok := m.HashMap.Get(key)
	if !ok {
		var zero V
		return zero, errors.NotFound
	}
	return v.(V), nil
}

func (m *hashmapWrapper[K, V]) Set(key K, value V) {
	m.HashMap.Set(key, value)
}

// "-1" means "unsupported"
func (m *hashmapWrapper[K, V]) Len() int {
	return -1
}
