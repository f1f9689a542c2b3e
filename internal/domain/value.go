package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind tags the concrete type of a collected field value.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueNumber
	ValueBool
)

// FieldValue is a collected form value: a string, a number, or a bool,
// decided once at collection time by the field's declared type. It
// marshals to and from the bare JSON scalar.
type FieldValue struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

// StringValue wraps s as a string-kinded value.
func StringValue(s string) FieldValue { return FieldValue{Kind: ValueString, Str: s} }

// NumberValue wraps n as a number-kinded value.
func NumberValue(n float64) FieldValue { return FieldValue{Kind: ValueNumber, Num: n} }

// BoolValue wraps b as a bool-kinded value.
func BoolValue(b bool) FieldValue { return FieldValue{Kind: ValueBool, Bool: b} }

// String renders the value for display and search.
func (v FieldValue) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// IsBlank reports whether the value counts as empty for required-field
// checks. Numbers and bools are never blank: a collected false or 0 is
// still an answer.
func (v FieldValue) IsBlank() bool {
	return v.Kind == ValueString && strings.TrimSpace(v.Str) == ""
}

// MarshalJSON encodes the value as its bare scalar.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueNumber:
		return json.Marshal(v.Num)
	case ValueBool:
		return json.Marshal(v.Bool)
	default:
		return json.Marshal(v.Str)
	}
}

// UnmarshalJSON decodes a bare JSON scalar into a tagged value.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = StringValue(t)
	case float64:
		*v = NumberValue(t)
	case bool:
		*v = BoolValue(t)
	case nil:
		*v = StringValue("")
	default:
		return fmt.Errorf("unsupported field value type %T", t)
	}
	return nil
}

// CoerceValue converts a raw submitted value to the tagged union dictated
// by the field's declared type: number fields become float64, checkbox
// fields become bool, everything else becomes a string. A raw value that
// cannot be coerced (e.g. "abc" for a number field) returns an error.
func CoerceValue(t FieldType, raw any) (FieldValue, error) {
	switch t {
	case FieldNumber:
		switch n := raw.(type) {
		case float64:
			return NumberValue(n), nil
		case string:
			s := strings.TrimSpace(n)
			if s == "" {
				return StringValue(""), nil
			}
			parsed, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return FieldValue{}, fmt.Errorf("not a number: %q", n)
			}
			return NumberValue(parsed), nil
		default:
			return FieldValue{}, fmt.Errorf("not a number: %v", raw)
		}
	case FieldCheckbox:
		switch b := raw.(type) {
		case bool:
			return BoolValue(b), nil
		case string:
			return BoolValue(b == "true" || b == "on" || b == "1"), nil
		case nil:
			return BoolValue(false), nil
		default:
			return FieldValue{}, fmt.Errorf("not a boolean: %v", raw)
		}
	default:
		switch s := raw.(type) {
		case string:
			return StringValue(s), nil
		case float64:
			return StringValue(strconv.FormatFloat(s, 'f', -1, 64)), nil
		case bool:
			return StringValue(strconv.FormatBool(s)), nil
		case nil:
			return StringValue(""), nil
		default:
			return FieldValue{}, fmt.Errorf("unsupported value type %T", raw)
		}
	}
}
