//go:generate benchmarkCodeGen

package builtinMap

import (
	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func NewWithArgs[K comparable, V any](initialCapacity uint64) I.Map[K, V] {
	return builtinMap[K, V](make(map[K]V, initialCapacity))
}

type builtinMap[K comparable, V any] map[K]V

func (m builtinMap[K, V]) Set(key K, value V) {
	m[key] = value
}

func (m builtinMap[K, V]) Get(key K) (V, error) {
	value, ok := m[key]
	if !ok {
		return value, errors.NotFound
	}
	return value, nil
}

func (m builtinMap[K, V]) Len() int {
	return len(m)
}
