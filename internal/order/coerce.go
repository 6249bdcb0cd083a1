package order

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Form input arrives as decoded JSON. Numbers that cannot be read, or that
// are negative, become zero rather than failing the mutation.

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case fmt.Stringer:
		return strings.TrimSpace(x.String())
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}

func toFloat(v any) float64 {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		s := width.Narrow.String(strings.TrimSpace(x))
		s = strings.ReplaceAll(s, ",", "")
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

func toInt(v any) int {
	f := toFloat(v)
	if f > math.MaxInt32 {
		return 0
	}
	return int(f)
}

func toBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "1", "yes", "on":
			return true
		}
		return false
	case float64:
		return x != 0
	case int:
		return x != 0
	default:
		return false
	}
}

func toTri(v any) Tri {
	switch x := v.(type) {
	case nil:
		return TriUnknown
	case bool:
		return TriOf(x)
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "", "unknown":
			return TriUnknown
		case "no", "false", "0", "off":
			return TriNo
		default:
			return TriOf(toBool(x))
		}
	default:
		return TriOf(toBool(x))
	}
}

// toStrings returns the distinct non-empty strings in v, in input order.
func toStrings(v any) []string {
	var raw []string
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		raw = x
	case []any:
		for _, item := range x {
			raw = append(raw, toString(item))
		}
	case string:
		raw = strings.Split(x, ",")
	default:
		return nil
	}

	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func asEnum[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}

// Digits narrows full-width characters and keeps only ASCII digits.
func Digits(s string) string {
	s = width.Narrow.String(s)
	return strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}
