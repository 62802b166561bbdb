package benchmarkRoutines

import (
	"testing"

	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

type checkConsistencier interface {
	CheckConsistency() error
}

type collisionChecker[K comparable] interface {
	HasCollisionWithKey(key K) bool
}

func expect[K comparable](t *testing.T, m I.Map[K, int], key K, expectedValue int) {
	t.Helper()
	value, err := m.Get(key)
	if err != nil {
		t.Errorf("Got an unexpected error: %v. key == %v; expectedValue == %v", err, key, expectedValue)
		return
	}
	if value != expectedValue {
		t.Errorf(`A wrong value "%v" (instead of %v) for key %v`, value, expectedValue, key)
	}
}

func expectLen[K comparable](t *testing.T, m I.Map[K, int], expectedLen int) {
	t.Helper()
	if m.Len() != expectedLen && m.Len() != -1 { // "-1" means "unsupported"
		t.Errorf("m.Len() is not %v: %v", expectedLen, m.Len())
	}
}

func checkConsistency[K comparable](t *testing.T, m I.Map[K, int]) {
	t.Helper()
	checker, ok := m.(checkConsistencier)
	if !ok {
		return
	}
	if err := checker.CheckConsistency(); err != nil {
		t.Errorf("Got an unexpected error: %v", err)
	}
}

// DoTest checks the Set/Get/Len contract on a map that starts small and has
// to grow several times to fit all the keys.
func DoTest[K comparable](t *testing.T, factoryFunc MapFactory[K], keys []K) {
	if len(keys) < 2 {
		t.Fatalf("DoTest requires at least 2 keys, got %v", len(keys))
	}

	m := factoryFunc(16)
	expectLen(t, m, 0)

	_, err := m.Get(keys[0])
	if err != errors.NotFound {
		t.Errorf(`An expected "NotFound" error, but got: %v`, err)
	}

	half := len(keys) / 2
	for i, key := range keys[:half] {
		m.Set(key, i)
	}
	expectLen(t, m, half)

	for _, key := range keys[half:] {
		if _, err := m.Get(key); err != errors.NotFound {
			t.Errorf(`An expected "NotFound" error for key %v, but got: %v`, key, err)
		}
	}

	for i, key := range keys {
		m.Set(key, i)
	}
	expectLen(t, m, len(keys))
	checkConsistency(t, m)

	for i, key := range keys {
		expect(t, m, key, i)
	}

	for i, key := range keys {
		m.Set(key, -i)
	}
	expectLen(t, m, len(keys))
	checkConsistency(t, m)

	for i, key := range keys {
		expect(t, m, key, -i)
	}
}

// DoTestCollisions fills a map that is 16 times larger than the amount of
// keys and counts keys landing into an already used bucket.
func DoTestCollisions[K comparable](t *testing.T, factoryFunc MapFactory[K], keys []K) {
	blockSize := 16 * uint64(len(keys))
	m := factoryFunc(blockSize)
	checker, ok := m.(collisionChecker[K])
	if !ok {
		t.Skip("the map doesn't report collisions")
	}

	collisions := 0
	for i, key := range keys {
		if checker.HasCollisionWithKey(key) {
			collisions++
		}
		m.Set(key, i)
	}

	t.Logf("Total collisions: %v/%v; bs%v (%.1f%%)", collisions, len(keys), blockSize, float32(collisions)*100/float32(len(keys)))
	if collisions*10 > len(keys) {
		t.Errorf("Too many collisions: %v/%v", collisions, len(keys))
	}
}

func tryHashCollisions(hashFunc HashFunc, blockSize uint64, keys []I.Key) int {
	alreadyIsSet := map[uint64]bool{}

	collisions := 0
	for _, key := range keys {
		newHash := hashFunc(key) % blockSize
		if alreadyIsSet[newHash] {
			collisions++
		}
		alreadyIsSet[newHash] = true
	}

	return collisions
}

func checkHashCollisions(t *testing.T, scenario string, collisions int, blockSize, keyAmount uint64) {
	t.Helper()
	t.Logf("Total collisions on %v: collisions %v, keyAmount %v and blockSize %v (%.1f%%)", scenario, collisions, keyAmount, blockSize, float32(collisions)*100/float32(keyAmount))

	// With a uniform hash the expected share of collisions is below 37%
	// while keyAmount <= blockSize. Small amounts are too noisy to judge.
	if keyAmount < 1024 || keyAmount > blockSize {
		return
	}
	if uint64(collisions)*2 > keyAmount {
		t.Errorf("Too many collisions on %v: %v/%v", scenario, collisions, keyAmount)
	}
}

func DoTestHashCollisions(t *testing.T, hashFunc HashFunc, blockSize uint64, keyAmount uint64) {
	keys := generateKeys(keyAmount/2, "int")
	keys = append(keys, generateKeys(keyAmount-keyAmount/2, "string")...)
	checkHashCollisions(t, "random keys", tryHashCollisions(hashFunc, blockSize, keys), blockSize, keyAmount)

	keys = keys[:0]
	for i := uint64(0); i < keyAmount; i++ {
		keys = append(keys, i*blockSize*63)
	}
	checkHashCollisions(t, "keys multiple of blockSize", tryHashCollisions(hashFunc, blockSize, keys), blockSize, keyAmount)

	keys = keys[:0]
	for i := uint64(0); i < keyAmount; i++ {
		keys = append(keys, i)
	}
	checkHashCollisions(t, "consecutive keys", tryHashCollisions(hashFunc, blockSize, keys), blockSize, keyAmount)
}
