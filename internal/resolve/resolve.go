package resolve

import (
	"strconv"
	"strings"
)

// Lookup is the read side of a parsed section.
type Lookup interface {
	Get(key string) (string, bool)
}

// Props is a map-backed Lookup for sections built by hand.
type Props map[string]string

// Get implements Lookup.
func (p Props) Get(key string) (string, bool) {
	value, ok := p[key]
	return value, ok
}

// Parser converts a raw value. ok reports whether the value was usable.
type Parser[T any] func(value string) (T, bool)

// Scalar returns the parsed value of key, or def when the key is absent or the
// value does not convert.
func Scalar[T any](p Lookup, key string, parse Parser[T], def T) T {
	raw, ok := p.Get(key)
	if !ok {
		return def
	}
	value, ok := parse(raw)
	if !ok {
		return def
	}
	return value
}

// Optional is Scalar without a default: nil means the key was not configured
// (or held an unusable value).
func Optional[T any](p Lookup, key string, parse Parser[T]) *T {
	raw, ok := p.Get(key)
	if !ok {
		return nil
	}
	value, ok := parse(raw)
	if !ok {
		return nil
	}
	return &value
}

// CommaList splits the value of key on commas and keeps every token that
// parses as an unsigned 32-bit integer, in order. Unparsable tokens are
// dropped. An absent key yields an empty, non-nil slice.
func CommaList(p Lookup, key string) []uint32 {
	raw, ok := p.Get(key)
	if !ok {
		return []uint32{}
	}
	tokens := strings.Split(raw, ",")
	out := make([]uint32, 0, len(tokens))
	for _, token := range tokens {
		if value, ok := Uint32(strings.TrimSpace(token)); ok {
			out = append(out, value)
		}
	}
	return out
}

// Family resolves prefix+i+suffix for i in [0, count). The result always has
// exactly count elements; missing or unusable entries hold def.
func Family[T any](p Lookup, prefix, suffix string, count uint32, parse Parser[T], def T) []T {
	out := make([]T, count)
	for i := uint32(0); i < count; i++ {
		out[i] = Scalar(p, IndexedKey(prefix, i, suffix), parse, def)
	}
	return out
}

// ColorFamily resolves prefix+i for i in [1, count] as RGBA colours. Entries
// that are absent or fail to parse are skipped, not defaulted, so the result
// can be shorter than count.
func ColorFamily(p Lookup, prefix string, count uint32) []RGBA {
	out := make([]RGBA, 0, count)
	for i := uint32(1); i <= count; i++ {
		raw, ok := p.Get(IndexedKey(prefix, i, ""))
		if !ok {
			continue
		}
		if colour, ok := ParseRGBA(raw); ok {
			out = append(out, colour)
		}
	}
	return out
}

// IndexedKey builds the lookup key for one member of an indexed family.
func IndexedKey(prefix string, index uint32, suffix string) string {
	return prefix + strconv.FormatUint(uint64(index), 10) + suffix
}
