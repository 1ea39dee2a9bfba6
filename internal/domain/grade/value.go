package grade

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// Grade bounds, both inclusive.
const (
	MinGrade = 0.0
	MaxGrade = 100.0
)

// ParseGrade converts raw input into a grade value and checks the bounds.
func ParseGrade(raw any) (float64, error) {
	return parseGrade("ParseGrade", raw)
}

// parseGrade is ParseGrade with errors attributed to op.
func parseGrade(op string, raw any) (float64, error) {
	value, err := parseNumber(op, raw)
	if err != nil {
		return 0, err
	}
	if !InRange(value) {
		return 0, shared.WrapError("grade", op, shared.ErrInvalidGrade,
			fmt.Sprintf("grade %s is out of range (0-100)", FormatValue(value)), shared.ErrValueOutOfRange)
	}
	return value, nil
}

// parseNumber converts raw input into a float without checking the bounds.
func parseNumber(op string, raw any) (float64, error) {
	value, err := toFloat(raw)
	if err != nil {
		return 0, shared.WrapError("grade", op, shared.ErrInvalidGrade,
			fmt.Sprintf("cannot convert %s to a number", quoteRaw(raw)), err)
	}
	return value, nil
}

// InRange reports whether v lies within [MinGrade, MaxGrade].
func InRange(v float64) bool {
	return v >= MinGrade && v <= MaxGrade
}

// FormatValue renders a grade the way reports print it: always with a decimal part.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func toFloat(raw any) (float64, error) {
	var v float64
	switch x := raw.(type) {
	case nil:
		return 0, shared.ErrInvalidFormat
	case float64:
		v = x
	case float32:
		v = float64(x)
	case int:
		v = float64(x)
	case int8:
		v = float64(x)
	case int16:
		v = float64(x)
	case int32:
		v = float64(x)
	case int64:
		v = float64(x)
	case uint:
		v = float64(x)
	case uint8:
		v = float64(x)
	case uint16:
		v = float64(x)
	case uint32:
		v = float64(x)
	case uint64:
		v = float64(x)
	case json.Number:
		return parseText(string(x))
	case string:
		return parseText(x)
	case fmt.Stringer:
		return parseText(x.String())
	default:
		// Named numeric types, e.g. type Score float64.
		rv := reflect.ValueOf(raw)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v = float64(rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			v = float64(rv.Uint())
		case reflect.Float32, reflect.Float64:
			v = rv.Float()
		default:
			return 0, shared.ErrInvalidFormat
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, shared.ErrInvalidFormat
	}
	return v, nil
}

// parseText accepts decimal and exponent notation only; hex floats are rejected.
func parseText(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if isHexText(s) {
		return 0, shared.ErrInvalidFormat
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, shared.ErrInvalidFormat
	}
	return v, nil
}

func isHexText(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func quoteRaw(raw any) string {
	if s, ok := raw.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", raw)
}
