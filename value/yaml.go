package value

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/davidroman0O/arazzo/errors"
)

// YAMLTypeName returns the type name of a YAML tree node
func YAMLTypeName(n *yaml.Node) string {
	if n == nil {
		return "Null"
	}
	switch n.Kind {
	case yaml.DocumentNode:
		return "Document"
	case yaml.SequenceNode:
		return "Array"
	case yaml.MappingNode:
		return "Hash"
	case yaml.AliasNode:
		return "Alias"
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return "Null"
		case "!!bool":
			return "Boolean"
		case "!!int":
			return "Integer"
		case "!!float":
			return "Real"
		default:
			return "String"
		}
	default:
		return "Unknown"
	}
}

// FromYAML converts a YAML tree node into a Value. Integers always classify as
// signed (the source has no unsigned distinction); reals are parsed with a strict
// locale-independent float parser. Alias nodes have no counterpart and are rejected.
func FromYAML(n *yaml.Node) (Value, error) {
	if n == nil {
		return NullValue(), nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return NullValue(), nil
		}
		return FromYAML(n.Content[0])
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			converted, err := FromYAML(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, converted)
		}
		return ArrayValue(items), nil
	case yaml.MappingNode:
		fields := make(map[string]Value, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if !isStringKey(k) {
				return Value{}, errors.UnsupportedKey(YAMLTypeName(k))
			}
			converted, err := FromYAML(v)
			if err != nil {
				return Value{}, err
			}
			fields[k.Value] = converted
		}
		return ObjectValue(fields), nil
	case yaml.AliasNode:
		return Value{}, errors.UnsupportedValue("Alias")
	default:
		return Value{}, errors.UnsupportedValue(YAMLTypeName(n))
	}
}

func fromYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.Tag {
	case "!!null":
		return NullValue(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			b = n.Value == "true"
		}
		return BoolValue(b), nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return Value{}, errors.NumericParse(n.Value, err)
		}
		return IntValue(i), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return Value{}, errors.NumericParse(n.Value, err)
		}
		return FloatValue(f), nil
	default:
		// !!str and any other resolved scalar carries its text verbatim
		return StringValue(n.Value), nil
	}
}

func isStringKey(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode && (n.Tag == "!!str" || n.Tag == "")
}

// ExtensionsFromYAML extracts all the specification-extension entries from a YAML
// mapping node, stripping the `x-` prefix off the keys. Keys that are not strings
// or do not carry the exact prefix are not extension fields and are skipped.
func ExtensionsFromYAML(n *yaml.Node) (map[string]Value, error) {
	extensions := map[string]Value{}
	if n == nil || n.Kind != yaml.MappingNode {
		return extensions, nil
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if !isStringKey(k) {
			continue
		}
		name, ok := strings.CutPrefix(k.Value, "x-")
		if !ok {
			continue
		}
		converted, err := FromYAML(v)
		if err != nil {
			return nil, err
		}
		extensions[name] = converted
	}

	return extensions, nil
}
