package numeric

import (
	"strconv"
	"strings"
)

// ToFloat converts a document value to a float64. The store hands back
// monetary and score fields as float64, int64 or string depending on how the
// mobile clients wrote them; unparsable values collapse to zero.
func ToFloat(v interface{}) float64 {
	f, _ := ToFloatOK(v)
	return f
}

// ToFloatOK reports whether the value was actually numeric alongside the result.
func ToFloatOK(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func ToInt(v interface{}) int {
	f, ok := ToFloatOK(v)
	if !ok {
		return 0
	}
	return int(f)
}

func ToBool(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return false
		}
		return b
	default:
		return false
	}
}

func ToString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// FirstFloat returns the first key in order whose value coerces to a number.
// Used for money fields that appear under different names across collections.
func FirstFloat(doc map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		if raw, ok := doc[key]; ok {
			if f, numeric := ToFloatOK(raw); numeric {
				return f
			}
		}
	}
	return 0
}
