package expr

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canonicalize renders v as byte-stable JSON per spec.md §4.6: object
// keys are sorted, there is no insignificant whitespace, NaN and
// Infinity collapse to null, a Float with an exact integer value
// serializes as an integer literal, and every other Float uses its
// shortest round-tripping decimal form. Canonicalize is idempotent:
// feeding its own output back through ParseJSON and Canonicalize again
// produces the same bytes.
func Canonicalize(v Value) (string, error) {
	var sb strings.Builder
	if err := writeCanonical(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeCanonical(sb *strings.Builder, v Value) error {
	switch v.Kind() {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.Bool() {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case KindFloat:
		writeCanonicalFloat(sb, v.Float())
	case KindString:
		writeCanonicalString(sb, v.RawString())
	case KindArray:
		sb.WriteByte('[')
		for i, e := range v.Array() {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeCanonical(sb, e); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case KindObject:
		keys := append([]string{}, v.ObjectKeys()...)
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCanonicalString(sb, k)
			sb.WriteByte(':')
			val, _ := v.ObjectGet(k)
			if err := writeCanonical(sb, val); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	case KindDateTime:
		writeCanonicalString(sb, v.String())
	case KindLambda, KindTool:
		writeCanonicalString(sb, v.String())
	default:
		return newEvalError("value has no canonical JSON form")
	}
	return nil
}

func writeCanonicalFloat(sb *strings.Builder, f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		sb.WriteString("null")
		return
	}
	if f == math.Trunc(f) {
		if math.Abs(f) < 1e15 {
			sb.WriteString(strconv.FormatInt(int64(f), 10))
		} else {
			sb.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
		}
		return
	}
	sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}

func writeCanonicalString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if r < 0x20 {
				sb.WriteString("\\u")
				const hex = "0123456789abcdef"
				sb.WriteByte(hex[(r>>12)&0xf])
				sb.WriteByte(hex[(r>>8)&0xf])
				sb.WriteByte(hex[(r>>4)&0xf])
				sb.WriteByte(hex[r&0xf])
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
}

// ParseJSON decodes JSON text into a Value using the standard library
// decoder, then reshapes the result into this package's Value model:
// JSON objects become Objects with keys in sorted order (the source
// order is not kept), JSON
// numbers become Integer when they round-trip losslessly through
// int64, otherwise Float.
func ParseJSON(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return NewNull(), newEvalError("invalid JSON: " + err.Error())
	}
	return jsonToValue(raw)
}

func jsonToValue(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return NewInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return NewNull(), newEvalError("invalid JSON number: " + string(t))
		}
		return NewFloat(f), nil
	case string:
		return NewString(t), nil
	case []any:
		elems := make([]Value, len(t))
		for i, e := range t {
			v, err := jsonToValue(e)
			if err != nil {
				return NewNull(), err
			}
			elems[i] = v
		}
		return NewArray(elems), nil
	case map[string]any:
		return jsonObjectToValue(t)
	default:
		return NewNull(), newEvalError("unsupported JSON value")
	}
}

// jsonObjectToValue builds an Object from a decoded map with its keys
// sorted; map[string]any has already lost the source key order.
func jsonObjectToValue(m map[string]any) (Value, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make(map[string]Value, len(m))
	for _, k := range keys {
		v, err := jsonToValue(m[k])
		if err != nil {
			return NewNull(), err
		}
		values[k] = v
	}
	return NewObjectFromPairs(keys, values), nil
}
