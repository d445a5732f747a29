package api

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a decoded JSON value of any kind. Request bodies are decoded into
// Values first so that missing, null and wrongly typed fields can be told apart.
type Value struct {
	kind Kind
	b    bool
	s    string // String value or number literal.
	arr  []Value
	obj  map[string]Value
}

func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

func NumberValue(n string) Value {
	return Value{kind: KindNumber, s: n}
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any

	err := dec.Decode(&raw)
	if err != nil {
		return err
	}

	*v = valueOf(raw)

	return nil
}

func valueOf(raw any) Value {
	switch t := raw.(type) {
	case bool:
		return Value{kind: KindBool, b: t}
	case json.Number:
		return Value{kind: KindNumber, s: t.String()}
	case string:
		return Value{kind: KindString, s: t}
	case []any:
		arr := make([]Value, 0, len(t))
		for _, e := range t {
			arr = append(arr, valueOf(e))
		}

		return Value{kind: KindArray, arr: arr}
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			obj[k] = valueOf(e)
		}

		return Value{kind: KindObject, obj: obj}
	default:
		return Value{}
	}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Empty reports whether the value counts as absent: null, false, zero, "", "0",
// or an empty array or object.
func (v Value) Empty() bool {
	switch v.kind {
	case KindBool:
		return !v.b
	case KindNumber:
		d, err := decimal.NewFromString(v.s)
		return err == nil && d.IsZero()
	case KindString:
		return v.s == "" || v.s == "0"
	case KindArray:
		return len(v.arr) == 0
	case KindObject:
		return len(v.obj) == 0
	default:
		return true
	}
}

// String returns the scalar as text. Arrays, objects and null are "".
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		if v.b {
			return "1"
		}

		return ""
	case KindNumber, KindString:
		return v.s
	default:
		return ""
	}
}

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)

// Decimal converts the value permissively: the leading numeric part of a string
// is used and anything unparsable is zero.
func (v Value) Decimal() decimal.Decimal {
	switch v.kind {
	case KindBool:
		if v.b {
			return decimal.NewFromInt(1)
		}

		return decimal.Zero
	case KindNumber, KindString:
		return parseDecimalPrefix(v.s)
	case KindArray, KindObject:
		if v.Empty() {
			return decimal.Zero
		}

		return decimal.NewFromInt(1)
	default:
		return decimal.Zero
	}
}

// Money column shape: NUMERIC(12,2).
const (
	amountScale     = 2
	maxAmountDigits = 10
)

// Amount reads the value as money with Decimal's permissive rules, rounded to
// cents. ok is false when the magnitude does not fit the ledger columns.
// Exponents are checked before any arithmetic so "1e2000000000" stays cheap.
func (v Value) Amount() (amount decimal.Decimal, ok bool) {
	d := v.Decimal()
	if d.IsZero() {
		return decimal.Zero, true
	}

	intDigits := int64(d.NumDigits()) + int64(d.Exponent())

	switch {
	case intDigits > maxAmountDigits:
		return decimal.Zero, false
	case intDigits < -amountScale:
		return decimal.Zero, true
	}

	d = d.Round(amountScale)
	if d.IsZero() {
		return decimal.Zero, true
	}

	if int64(d.NumDigits())+int64(d.Exponent()) > maxAmountDigits {
		return decimal.Zero, false
	}

	return d, true
}

func parseDecimalPrefix(s string) decimal.Decimal {
	m := numericPrefix.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if m == "" {
		return decimal.Zero
	}

	neg := strings.HasPrefix(m, "-")
	m = strings.TrimLeft(m, "+-")

	if strings.HasPrefix(m, ".") {
		m = "0" + m
	}

	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}

	if neg {
		return d.Neg()
	}

	return d
}

// Field returns the named member of an object, or null.
func (v Value) Field(name string) Value {
	if v.kind != KindObject {
		return Value{}
	}

	return v.obj[name]
}

// Strings returns the non-empty scalar elements of an array as text.
func (v Value) Strings() []string {
	if v.kind != KindArray {
		return nil
	}

	out := make([]string, 0, len(v.arr))

	for _, e := range v.arr {
		if e.kind == KindArray || e.kind == KindObject {
			continue
		}

		if s := e.String(); s != "" {
			out = append(out, s)
		}
	}

	return out
}
