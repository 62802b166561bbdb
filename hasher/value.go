package hasher

import (
	"math/bits"
	"reflect"
)

func mixPreHash(acc, value uint64) uint64 {
	return Uint64Hash(bits.RotateLeft64(acc, 31) ^ value)
}

func preHashComplex(realPart, imagPart float64) uint64 {
	return preHashFloat64(realPart) ^ bits.RotateLeft64(preHashFloat64(imagPart), 32)
}

// preHashValue walks the value the same way isEqualValue compares it, so
// equal values always get equal pre-hashes. Slices and maps are prefixed
// with their length, map entries are combined independently of their order.
func preHashValue(v reflect.Value) uint64 {
	switch v.Kind() {
	case reflect.Invalid:
		return 0
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return preHashFloat64(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return preHashComplex(real(c), imag(c))
	case reflect.String:
		return preHashString(v.String())
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Func:
		return uint64(v.Pointer())
	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return preHashValue(v.Elem())
	case reflect.Array:
		acc := uint64(0)
		for i := 0; i < v.Len(); i++ {
			acc = mixPreHash(acc, preHashValue(v.Index(i)))
		}
		return acc
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return mixPreHash(uint64(v.Len()), preHashBytes(v.Bytes()))
		}
		acc := uint64(v.Len())
		for i := 0; i < v.Len(); i++ {
			acc = mixPreHash(acc, preHashValue(v.Index(i)))
		}
		return acc
	case reflect.Struct:
		acc := uint64(0)
		for i := 0; i < v.NumField(); i++ {
			acc = mixPreHash(acc, preHashValue(v.Field(i)))
		}
		return acc
	case reflect.Map:
		sum := uint64(0)
		iter := v.MapRange()
		for iter.Next() {
			sum += mixPreHash(preHashValue(iter.Key()), preHashValue(iter.Value()))
		}
		return mixPreHash(uint64(v.Len()), sum)
	}
	panic("unexpected kind: " + v.Kind().String())
}

// isEqualValue compares a and b of the same type. Pointers, channels and
// functions are compared by address; slices and maps by content, so a nil
// slice equals an empty one.
func isEqualValue(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Invalid:
		return !b.IsValid()
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() == b.Float()
	case reflect.Complex64, reflect.Complex128:
		return a.Complex() == b.Complex()
	case reflect.String:
		return a.String() == b.String()
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Func:
		return a.Pointer() == b.Pointer()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		if a.Elem().Type() != b.Elem().Type() {
			return false
		}
		return isEqualValue(a.Elem(), b.Elem())
	case reflect.Array, reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !isEqualValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !isEqualValue(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			bValue := b.MapIndex(iter.Key())
			if !bValue.IsValid() || !isEqualValue(iter.Value(), bValue) {
				return false
			}
		}
		return true
	}
	panic("unexpected kind: " + a.Kind().String())
}
