package benchmarkRoutines

import (
	"testing"
)

func DoBenchmarkOfSet[K comparable](b *testing.B, factoryFunc MapFactory[K], initialCapacity uint64, keys []K) {
	m := factoryFunc(initialCapacity)

	currentIdx := 0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[currentIdx], i)
		currentIdx++
		if currentIdx >= len(keys) {
			b.StopTimer()
			m = factoryFunc(initialCapacity)
			currentIdx = 0
			b.StartTimer()
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfReSet[K comparable](b *testing.B, factoryFunc MapFactory[K], initialCapacity uint64, keys []K) {
	m := factoryFunc(initialCapacity)
	for i, key := range keys {
		m.Set(key, i+1)
	}

	currentIdx := 0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Set(keys[currentIdx], i)
		currentIdx++
		if currentIdx >= len(keys) {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkOfGet[K comparable](b *testing.B, factoryFunc MapFactory[K], initialCapacity uint64, keys []K) {
	m := factoryFunc(initialCapacity)
	for i, key := range keys {
		m.Set(key, i)
	}

	currentIdx := 0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(keys[currentIdx])
		currentIdx++
		if currentIdx >= len(keys) {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

// DoBenchmarkOfGetMiss fills the map with the first half of keys and looks
// up the second half.
func DoBenchmarkOfGetMiss[K comparable](b *testing.B, factoryFunc MapFactory[K], initialCapacity uint64, keys []K) {
	m := factoryFunc(initialCapacity)
	half := len(keys) / 2
	for i, key := range keys[:half] {
		m.Set(key, i)
	}
	missingKeys := keys[half:]
	if len(missingKeys) == 0 {
		b.Skip("not enough keys")
	}

	currentIdx := 0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Get(missingKeys[currentIdx])
		currentIdx++
		if currentIdx >= len(missingKeys) {
			currentIdx = 0
		}
	}
	b.StopTimer()
}

func DoBenchmarkHash(b *testing.B, hashFunc HashFunc, keyType string) {
	keys := generateKeys(1024, keyType)

	var sink uint64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink ^= hashFunc(keys[i&1023])
	}
	b.StopTimer()
	_ = sink
}
