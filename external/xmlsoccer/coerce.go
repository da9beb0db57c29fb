package xmlsoccer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// DateTimeLayout is how time arguments are rendered on the wire.
const DateTimeLayout = "2006-01-02 15:04"

var leadingFloatRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
var leadingIntRegex = regexp.MustCompile(`^[+-]?\d+`)

// coerce converts value to the Go shape of typ. Values that cannot be
// converted fall back to the zero value of the declared type:
//
//	int    int64   strings use their leading integer ("12abc" -> 12), bools are 0/1
//	bool   bool    "", "0", "false", "no", "off" are false, other strings true
//	float  float64 strings use their leading number
//	string string  time.Time uses DateTimeLayout
//	array  []string scalars become a one-element array
//	mixed  string  same rendering as string
func coerce(value any, typ ParamType) any {
	switch typ {
	case ParamInt:
		return coerceInt(value)
	case ParamBool:
		return coerceBool(value)
	case ParamFloat:
		return coerceFloat(value)
	case ParamArray:
		return coerceArray(value)
	default:
		return coerceString(value)
	}
}

func coerceInt(value any) int64 {
	switch v := value.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return leadingInt(v)
	case []byte:
		return leadingInt(string(v))
	case float32:
		return int64(v)
	case float64:
		return int64(v)
	case time.Time:
		return v.Unix()
	}
	out, err := cast.ToInt64E(value)
	if err != nil {
		return 0
	}
	return out
}

func coerceFloat(value any) float64 {
	switch v := value.(type) {
	case nil:
		return 0
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return leadingFloat(v)
	case []byte:
		return leadingFloat(string(v))
	}
	out, err := cast.ToFloat64E(value)
	if err != nil {
		return 0
	}
	return out
}

func coerceBool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return truthyString(v)
	case []byte:
		return truthyString(string(v))
	}
	out, err := cast.ToBoolE(value)
	if err != nil {
		return false
	}
	return out
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(DateTimeLayout)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(DateTimeLayout)
	case fmt.Stringer:
		return v.String()
	}
	out, err := cast.ToStringE(value)
	if err != nil {
		return ""
	}
	return out
}

func coerceArray(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		return append([]string(nil), v...)
	case string, []byte, time.Time, bool:
		return []string{coerceString(v)}
	}
	out, err := cast.ToStringSliceE(value)
	if err != nil {
		return []string{coerceString(value)}
	}
	return out
}

func encodeValue(value any) string {
	switch v := value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case []string:
		return strings.Join(v, ",")
	case string:
		return v
	default:
		return coerceString(v)
	}
}

func leadingInt(raw string) int64 {
	match := leadingIntRegex.FindString(strings.TrimSpace(raw))
	if match == "" {
		return 0
	}
	// ParseInt saturates on overflow, which is the value we want.
	out, _ := strconv.ParseInt(match, 10, 64)
	return out
}

func leadingFloat(raw string) float64 {
	match := leadingFloatRegex.FindString(strings.TrimSpace(raw))
	if match == "" {
		return 0
	}
	out, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return out
}

func truthyString(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "no", "off", "n", "f":
		return false
	default:
		return true
	}
}
