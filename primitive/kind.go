package primitive

import (
	"math"
	"strconv"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum identifies the integer width of a target and its denominations.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var goNames = map[KindEnum]string{
	KindInt:    "int",
	KindInt8:   "int8",
	KindInt16:  "int16",
	KindInt32:  "int32",
	KindInt64:  "int64",
	KindUint:   "uint",
	KindUint8:  "uint8",
	KindUint16: "uint16",
	KindUint32: "uint32",
	KindUint64: "uint64",
}

// FromName returns the kind for a Go integer type name.
// An empty name means int. Unknown names return the zero KindEnum.
func FromName(name string) KindEnum {
	if name == "" {
		return KindInt
	}

	for k, n := range goNames {
		if n == name {
			return k
		}
	}

	return 0
}

// Names returns the Go type names of every kind, in declaration order.
func Names() []string {
	res := make([]string, 0, KindTotal-1)
	for k := KindInt; int(k) < KindTotal; k++ {
		res = append(res, k.GoName())
	}

	return res
}

// IsValid reports whether k is one of the declared kinds.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// GoName returns the Go type name, e.g. "int32".
func (k KindEnum) GoName() string {
	return goNames[k]
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

// Bits returns the width in bits. int and uint follow the build platform.
func (k KindEnum) Bits() int {
	switch k {
	default:
		return 0
	case KindInt, KindUint:
		return strconv.IntSize
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	}
}

// Min returns the smallest value of the kind.
func (k KindEnum) Min() int64 {
	if !k.IsSigned() {
		return 0
	}

	return math.MinInt64 >> (64 - k.Bits())
}

// Max returns the largest value of the kind.
func (k KindEnum) Max() uint64 {
	if !k.IsValid() {
		return 0
	}

	if k.IsSigned() {
		return math.MaxUint64 >> (65 - k.Bits())
	}

	return math.MaxUint64 >> (64 - k.Bits())
}

// Contains reports whether v is representable in the kind.
func (k KindEnum) Contains(v int64) bool {
	if !k.IsValid() || v < k.Min() {
		return false
	}

	return v < 0 || uint64(v) <= k.Max()
}
