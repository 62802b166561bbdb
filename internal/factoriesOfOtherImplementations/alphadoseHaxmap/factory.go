//go:generate benchmarkCodeGen

package alphadoseHaxmap

import (
	"github.com/alphadose/haxmap"

	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

// Key lists the key types the benchmarks use; haxmap accepts only
// integer, float, complex and string keys.
type Key interface {
	uint32 | string
}

func NewWithArgs[K Key, V any](initialCapacity uint64) I.Map[K, V] {
	return &haxmapWrapper[K, V]{m: haxmap.New[K, V](uintptr(initialCapacity))}
}

type haxmapWrapper[K Key, V any] struct {
	m *haxmap.Map[K, V]
}

func (w *haxmapWrapper[K, V]) Set(key K, value V) {
	w.m.Set(key, value)
}

func (w *haxmapWrapper[K, V]) Get(key K) (V, error) {
	value, ok := w.m.Get(key)
	if !ok {
		return value, errors.NotFound
	}
	return value, nil
}

func (w *haxmapWrapper[K, V]) Len() int {
	return int(w.m.Len())
}
