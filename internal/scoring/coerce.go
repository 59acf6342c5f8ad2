package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// toRating coerces a decoded rating to an int.
//
//	3, 3.0, json.Number("3"), "3", " 3 "  -> 3
//	3.9, json.Number("3.9")               -> 3 (truncated)
//	true / false                          -> 1 / 0
//	"3.5", "abc", nil, objects, arrays    -> error
func toRating(v any) (int, error) {
	switch t := v.(type) {
	case nil:
		return 0, errNullRating
	case int:
		return t, nil
	case int8:
		return int(t), nil
	case int16:
		return int(t), nil
	case int32:
		return int(t), nil
	case int64:
		return int64ToInt(t)
	case uint:
		return uint64ToInt(uint64(t))
	case uint8:
		return int(t), nil
	case uint16:
		return int(t), nil
	case uint32:
		return uint64ToInt(uint64(t))
	case uint64:
		return uint64ToInt(t)
	case float32:
		return floatToInt(float64(t))
	case float64:
		return floatToInt(t)
	case bool:
		if t {
			return 1, nil
		}
		return 0, nil
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int64ToInt(n)
		}
		f, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("invalid rating %q: %w", t.String(), err)
		}
		return floatToInt(f)
	case string:
		s := strings.TrimSpace(t)
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid literal for int: %q", t)
		}
		return int64ToInt(n)
	default:
		return 0, fmt.Errorf("unsupported rating type %T", v)
	}
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert %v to int", f)
	}
	f = math.Trunc(f)
	if f >= math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("rating %v out of range", f)
	}
	return int(f), nil
}

func int64ToInt(n int64) (int, error) {
	if int64(int(n)) != n {
		return 0, fmt.Errorf("rating %d out of range", n)
	}
	return int(n), nil
}

func uint64ToInt(n uint64) (int, error) {
	if n > math.MaxInt {
		return 0, fmt.Errorf("rating %d out of range", n)
	}
	return int(n), nil
}

// addChecked returns a+b or errOverflow.
func addChecked(a, b int) (int, error) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, errOverflow
	}
	return s, nil
}
