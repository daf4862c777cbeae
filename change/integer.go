package change

// Integer is the set of integer types a target and its denominations may use.
// Target and denominations always share one width.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
