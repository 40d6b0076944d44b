package paystack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Static errors for err113 compliance.
var (
	ErrTrailingJSON = errors.New("unexpected data after JSON value")
	ErrNoData       = errors.New("no data to decode")
)

// Value is a JSON value. The concrete variants are Null, Bool, Number,
// String, Array and Object. A nil Value means the value is absent, which is
// distinct from an explicit JSON null (Null).
type Value interface {
	json.Marshaler

	isValue()
}

// Null is an explicit JSON null.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number kept as its decimal text so that amounts and
// identifiers survive without float rounding.
type Number string

// String is a JSON string.
type String string

// Array is an ordered JSON array.
type Array []Value

// Object is a JSON object.
type Object map[string]Value

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// MarshalJSON implements json.Marshaler.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON implements json.Marshaler.
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}

	data, err := json.Marshal(json.Number(n))
	if err != nil {
		return nil, fmt.Errorf("encoding number %q: %w", string(n), err)
	}

	return data, nil
}

// MarshalJSON implements json.Marshaler.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// MarshalJSON implements json.Marshaler. Absent elements encode as null.
func (a Array) MarshalJSON() ([]byte, error) {
	raws := make([]json.RawMessage, 0, len(a))

	for _, elem := range a {
		data, err := marshalValue(elem)
		if err != nil {
			return nil, err
		}

		raws = append(raws, data)
	}

	return json.Marshal(raws)
}

// MarshalJSON implements json.Marshaler. Absent members encode as null.
func (o Object) MarshalJSON() ([]byte, error) {
	raws := make(map[string]json.RawMessage, len(o))

	for key, elem := range o {
		data, err := marshalValue(elem)
		if err != nil {
			return nil, err
		}

		raws[key] = data
	}

	return json.Marshal(raws)
}

// Int64 returns the number as an int64.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Get returns the member stored under key.
func (o Object) Get(key string) (Value, bool) {
	v, ok := o[key]

	return v, ok
}

func marshalValue(v Value) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}

	return v.MarshalJSON()
}

// ValueOf converts a Go value into a Value by way of its JSON encoding.
// A Value is returned as is and nil yields an absent (nil) Value.
func ValueOf(v any) (Value, error) {
	switch typed := v.(type) {
	case nil:
		return nil, nil
	case Value:
		return typed, nil
	case json.RawMessage:
		return ParseValue(typed)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding value: %w", err)
	}

	return ParseValue(data)
}

// ParseValue decodes JSON text into a Value. Empty input yields nil.
func ParseValue(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw interface{}

	err := decoder.Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON value: %w", err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingJSON
	}

	return fromInterface(raw), nil
}

func fromInterface(raw interface{}) Value {
	switch typed := raw.(type) {
	case nil:
		return Null{}
	case bool:
		return Bool(typed)
	case json.Number:
		return Number(typed)
	case float64:
		return Number(strconv.FormatFloat(typed, 'g', -1, 64))
	case string:
		return String(typed)
	case []interface{}:
		arr := make(Array, len(typed))
		for i, elem := range typed {
			arr[i] = fromInterface(elem)
		}

		return arr
	case map[string]interface{}:
		obj := make(Object, len(typed))
		for key, elem := range typed {
			obj[key] = fromInterface(elem)
		}

		return obj
	default:
		return String(fmt.Sprint(typed))
	}
}

// Interface returns the plain Go form of v: nil, bool, int64 or float64,
// string, []interface{} or map[string]interface{}.
func Interface(v Value) interface{} {
	switch typed := v.(type) {
	case nil, Null:
		return nil
	case Bool:
		return bool(typed)
	case Number:
		if i, err := typed.Int64(); err == nil {
			return i
		}

		if f, err := typed.Float64(); err == nil {
			return f
		}

		return string(typed)
	case String:
		return string(typed)
	case Array:
		out := make([]interface{}, len(typed))
		for i, elem := range typed {
			out[i] = Interface(elem)
		}

		return out
	case Object:
		out := make(map[string]interface{}, len(typed))
		for key, elem := range typed {
			out[key] = Interface(elem)
		}

		return out
	default:
		return nil
	}
}

// AsString reports the string held by v, if any.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)

	return string(s), ok
}

// AsBool reports the boolean held by v, if any.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)

	return bool(b), ok
}

// DecodeValue decodes v into target using its JSON encoding.
func DecodeValue(v Value, target interface{}) error {
	if v == nil {
		return ErrNoData
	}

	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}

	err = json.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("decoding value: %w", err)
	}

	return nil
}
