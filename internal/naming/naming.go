// Package naming converts JSON object keys between the library's
// lowerCamelCase convention and the API's snake_case convention.
package naming

import (
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fivetwenty-io/paystack/pkg/paystack"
)

// Separator joins the words of a snake_case key.
const Separator = '_'

// DefaultExclusions lists the keys the API expects verbatim in
// lowerCamelCase, in both directions.
var DefaultExclusions = []string{"domainName"}

// Default converts with DefaultExclusions.
var Default = New(DefaultExclusions...)

// ToWire converts keys to snake_case using Default.
func ToWire(v paystack.Value) paystack.Value {
	return Default.ToWire(v)
}

// ToLocal converts keys to lowerCamelCase using Default.
func ToLocal(v paystack.Value) paystack.Value {
	return Default.ToLocal(v)
}

// Transformer converts the keys of JSON values, leaving excluded keys
// untouched. It is immutable and safe for concurrent use.
type Transformer struct {
	exclusions map[string]struct{}
}

// New creates a transformer that never renames the given keys.
func New(exclusions ...string) *Transformer {
	set := make(map[string]struct{}, len(exclusions))
	for _, key := range exclusions {
		set[key] = struct{}{}
	}

	return &Transformer{exclusions: set}
}

// Excluded reports whether key is passed through unchanged.
func (t *Transformer) Excluded(key string) bool {
	_, ok := t.exclusions[key]

	return ok
}

// ToWire returns a copy of v with every object key, at any depth, converted
// to snake_case.
func (t *Transformer) ToWire(v paystack.Value) paystack.Value {
	return t.convert(v, Flatten)
}

// ToLocal returns a copy of v with every object key, at any depth, converted
// to lowerCamelCase.
func (t *Transformer) ToLocal(v paystack.Value) paystack.Value {
	return t.convert(v, Hump)
}

func (t *Transformer) convert(v paystack.Value, rename func(string) string) paystack.Value {
	switch typed := v.(type) {
	case paystack.Array:
		if typed == nil {
			return typed
		}

		out := make(paystack.Array, len(typed))
		for i, elem := range typed {
			out[i] = t.convert(elem, rename)
		}

		return out
	case paystack.Object:
		if typed == nil {
			return typed
		}

		// Sorted so that two keys renaming to the same name resolve the same
		// way on every run.
		out := make(paystack.Object, len(typed))
		for _, key := range slices.Sorted(maps.Keys(typed)) {
			name := key
			if !t.Excluded(key) {
				name = rename(key)
			}

			out[name] = t.convert(typed[key], rename)
		}

		return out
	default:
		return v
	}
}

// Flatten converts a lowerCamelCase key to snake_case: a separator goes in
// front of every uppercase letter except a leading one, and every letter is
// lowercased. Runs of capitals get one separator each ("aBC" -> "a_b_c").
// Already flattened keys are returned unchanged.
func Flatten(key string) string {
	if onlySeparators(key) {
		return ""
	}

	var builder strings.Builder

	builder.Grow(len(key) + 4)

	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				builder.WriteRune(Separator)
			}

			builder.WriteRune(unicode.ToLower(r))

			continue
		}

		builder.WriteRune(r)
	}

	return builder.String()
}

// Hump converts a snake_case key to lowerCamelCase. The first non-empty
// segment is kept as is and each later one is capitalized and appended.
// Empty segments from leading, trailing, or doubled separators are dropped.
// Keys without separators are returned unchanged.
func Hump(key string) string {
	if !strings.ContainsRune(key, Separator) {
		return key
	}

	var builder strings.Builder

	builder.Grow(len(key))

	first := true

	for _, segment := range strings.Split(key, string(Separator)) {
		if segment == "" {
			continue
		}

		if first {
			builder.WriteString(segment)

			first = false

			continue
		}

		r, size := utf8.DecodeRuneInString(segment)
		builder.WriteRune(unicode.ToUpper(r))
		builder.WriteString(segment[size:])
	}

	return builder.String()
}

func onlySeparators(key string) bool {
	return strings.Trim(key, string(Separator)) == ""
}
