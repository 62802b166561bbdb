package hasher

import (
	"bytes"
	"reflect"

	I "github.com/xaionaro-go/chainmap/interfaces"
)

// IsEqualKey is the key equality paired with Hash: IsEqualKey(a, b) implies
// Hash(a) == Hash(b). A nil key equals only another nil key.
func IsEqualKey(keyA, keyB I.Key) bool {
	if keyA == nil || keyB == nil {
		return keyA == nil && keyB == nil
	}

	keyType := reflect.TypeOf(keyA)
	if keyType != reflect.TypeOf(keyB) {
		return false
	}

	if key, ok := keyA.([]byte); ok {
		return bytes.Equal(key, keyB.([]byte))
	}

	switch keyType.Kind() {
	case reflect.Array, reflect.Struct, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func:
		return isEqualValue(reflect.ValueOf(keyA), reflect.ValueOf(keyB))
	}
	return keyA == keyB
}
