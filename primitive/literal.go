package primitive

import "strconv"

// Literal renders v as a Go constant expression of kind k.
// KindInt renders the bare number, other kinds wrap it in a conversion,
// e.g. "int32(239)".
func Literal(k KindEnum, v int64) string {
	s := strconv.FormatInt(v, 10)
	if k == KindInt {
		return s
	}

	return k.GoName() + "(" + s + ")"
}
