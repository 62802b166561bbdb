package hasher

import (
	"math"
	"testing"

	benchmark "github.com/xaionaro-go/chainmap/internal/benchmarkRoutines"
)

func TestHashCollisions_blockSize16_keyAmount16(t *testing.T) {
	benchmark.DoTestHashCollisions(t, New().Hash, 16, 16)
}
func TestHashCollisions_blockSize1024_keyAmount380(t *testing.T) {
	benchmark.DoTestHashCollisions(t, New().Hash, 1024, 380)
}
func TestHashCollisions_blockSize1024_keyAmount1024(t *testing.T) {
	benchmark.DoTestHashCollisions(t, New().Hash, 1024, 1024)
}
func TestHashCollisions_blockSize65536_keyAmount4096(t *testing.T) {
	benchmark.DoTestHashCollisions(t, New().Hash, 65536, 4096)
}
func TestHashCollisions_blockSize65536_keyAmount65536(t *testing.T) {
	benchmark.DoTestHashCollisions(t, New().Hash, 65536, 65536)
}

func TestHash_nilKeyIsZero(t *testing.T) {
	if Hash(nil) != 0 {
		t.Errorf("Hash(nil) == %v", Hash(nil))
	}
	if Hash((*int)(nil)) != 0 {
		t.Errorf("Hash((*int)(nil)) == %v", Hash((*int)(nil)))
	}
	if Hash(0) == 0 {
		t.Errorf("Hash(0) collides with the nil key")
	}
	if Hash("") == 0 {
		t.Errorf(`Hash("") collides with the nil key`)
	}
}

func TestHash_isDeterministic(t *testing.T) {
	for _, key := range []interface{}{1, "a string", []byte("some bytes"), 2.5, true, struct{ A int }{3}} {
		if Hash(key) != Hash(key) {
			t.Errorf("Hash(%v) is not deterministic", key)
		}
	}
}

func TestHash_differsPerType(t *testing.T) {
	if Hash(int(1)) == Hash(int64(1)) {
		t.Errorf("int(1) and int64(1) hash the same")
	}
	if Hash("ab") == Hash([]byte("ab")) {
		t.Errorf(`"ab" and []byte("ab") hash the same`)
	}
}

func TestHash_equalKeysHashTheSame(t *testing.T) {
	negativeZero := math.Copysign(0, -1)
	pairs := [][2]interface{}{
		{0.0, negativeZero},
		{float32(0), float32(negativeZero)},
		{[]byte("abc"), []byte("abc")},
		{[]byte{}, []byte(nil)},
		{"long string which is longer than eight bytes", "long string which is longer than eight bytes"},
		{[2]int{1, 2}, [2]int{1, 2}},
		{[]int{1, 2}, []int{1, 2}},
		{complex(1, negativeZero), complex(1, 0)},
		{[2]float64{0, 1}, [2]float64{negativeZero, 1}},
		{struct{ F float64 }{0}, struct{ F float64 }{negativeZero}},
		{struct{ V interface{} }{[]int{1}}, struct{ V interface{} }{[]int{1}}},
		{[][]string{{"a"}, nil}, [][]string{{"a"}, {}}},
		{map[string]float64{"a": 0, "b": 1}, map[string]float64{"b": 1, "a": negativeZero}},
	}
	for _, pair := range pairs {
		if !IsEqualKey(pair[0], pair[1]) {
			t.Errorf("%#v and %#v are expected to be equal", pair[0], pair[1])
			continue
		}
		if Hash(pair[0]) != Hash(pair[1]) {
			t.Errorf("%#v and %#v are equal but hash differently", pair[0], pair[1])
		}
	}
}

func TestHash_lengthPrefixed(t *testing.T) {
	if Hash([]string{"a b"}) == Hash([]string{"a", "b"}) {
		t.Errorf(`[]string{"a b"} and []string{"a", "b"} hash the same`)
	}
	if Hash([][]int{{1}, {}}) == Hash([][]int{{}, {1}}) {
		t.Errorf("nested slices of a different layout hash the same")
	}
}

func TestHash_pointers(t *testing.T) {
	a, b := 1, 1
	if Hash(&a) != Hash(&a) {
		t.Errorf("a pointer hashes differently")
	}
	if IsEqualKey(&a, &b) {
		t.Errorf("different pointers are equal")
	}
}

func BenchmarkHash_intKeyType(b *testing.B) {
	benchmark.DoBenchmarkHash(b, New().Hash, "int")
}
func BenchmarkHash_stringKeyType(b *testing.B) {
	benchmark.DoBenchmarkHash(b, New().Hash, "string")
}
func BenchmarkHash_structKeyType(b *testing.B) {
	benchmark.DoBenchmarkHash(b, New().Hash, "struct")
}
