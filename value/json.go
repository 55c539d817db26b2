package value

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/davidroman0O/arazzo/errors"
)

const (
	maxUint64Float = float64(math.MaxUint64)
	maxInt64Float  = float64(math.MaxInt64)
	minInt64Float  = float64(math.MinInt64)
)

// JSONTypeName returns the type name of a parsed JSON tree node
func JSONTypeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "Null"
	case bool:
		return "Boolean"
	case json.Number, float64, int, int64, uint64:
		return "Number"
	case string:
		return "String"
	case []interface{}:
		return "Array"
	case map[string]interface{}:
		return "Object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// FromJSON converts a parsed JSON tree node into a Value. Numbers are classified
// preserving the distinction observable in the source: unsigned 64-bit first, then
// signed 64-bit, then float. Trees decoded with json.Decoder.UseNumber keep full
// numeric fidelity; plain float64 trees are classified by range.
func FromJSON(v interface{}) (Value, error) {
	switch t := v.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		return fromJSONNumber(t)
	case float64:
		return fromFloat64(t), nil
	case int:
		return classifyInt(int64(t)), nil
	case int64:
		return classifyInt(t), nil
	case uint64:
		return UintValue(t), nil
	case []interface{}:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			converted, err := FromJSON(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, converted)
		}
		return ArrayValue(items), nil
	case map[string]interface{}:
		fields := make(map[string]Value, len(t))
		for k, item := range t {
			converted, err := FromJSON(item)
			if err != nil {
				return Value{}, err
			}
			fields[k] = converted
		}
		return ObjectValue(fields), nil
	default:
		return Value{}, errors.UnsupportedValue(fmt.Sprintf("%T", v))
	}
}

func fromJSONNumber(n json.Number) (Value, error) {
	raw := n.String()
	if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return UintValue(u), nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntValue(i), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Value{}, errors.NumericParse(raw, err)
	}
	return FloatValue(f), nil
}

func fromFloat64(f float64) Value {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		if f >= 0 && f < maxUint64Float {
			return UintValue(uint64(f))
		}
		if f >= minInt64Float && f < maxInt64Float {
			return IntValue(int64(f))
		}
	}
	return FloatValue(f)
}

func classifyInt(i int64) Value {
	if i >= 0 {
		return UintValue(uint64(i))
	}
	return IntValue(i)
}

// ExtensionsFromJSON extracts all the specification-extension entries from a parsed
// JSON object, stripping the `x-` prefix off the keys. The prefix match is exact and
// case sensitive. Keys without the prefix are left for typed-field extraction.
func ExtensionsFromJSON(obj map[string]interface{}) (map[string]Value, error) {
	extensions := map[string]Value{}

	for k, v := range obj {
		name, ok := strings.CutPrefix(k, "x-")
		if !ok {
			continue
		}
		converted, err := FromJSON(v)
		if err != nil {
			return nil, err
		}
		extensions[name] = converted
	}

	return extensions, nil
}
