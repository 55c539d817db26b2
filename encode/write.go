package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/davidroman0O/arazzo/model"
)

// ToJSON renders a description as indented JSON with deterministic key order.
// Float leaves are written through raw literals so whole-valued floats keep
// their ".0" and reparse as floats rather than integers.
func ToJSON(d *model.Description) ([]byte, error) {
	data, err := json.MarshalIndent(rawFloats(Description(d)), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render JSON: %w", err)
	}
	return data, nil
}

// rawFloats rewrites every finite float64 leaf as a json.RawMessage carrying the
// canonical float text. Non-finite floats pass through untouched; they have no
// JSON form and the marshaller rejects them as before.
func rawFloats(v interface{}) interface{} {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return t
		}
		return json.RawMessage(jsonFloatText(t))
	case []interface{}:
		items := make([]interface{}, 0, len(t))
		for _, item := range t {
			items = append(items, rawFloats(item))
		}
		return items
	case *Tree:
		tree := orderedmap.New[string, interface{}]()
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			tree.Set(pair.Key, rawFloats(pair.Value))
		}
		return tree
	default:
		return t
	}
}

// jsonFloatText formats a float so that a JSON parser resolves it back to a
// float: whole values keep a trailing ".0".
func jsonFloatText(f float64) string {
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eE") {
		text += ".0"
	}
	return text
}

// ToYAML renders a description as YAML with deterministic key order. The tree is
// bridged through explicit yaml nodes so scalar kinds survive the round trip.
func ToYAML(d *model.Description) ([]byte, error) {
	node, err := yamlNode(Description(d))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("failed to render YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to render YAML: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlNode(v interface{}) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}, nil
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(t, 10)}, nil
	case uint64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(t, 10)}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: yamlFloatText(t)}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}, nil
	case []interface{}:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range t {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case *Tree:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for pair := t.Oldest(); pair != nil; pair = pair.Next() {
			child, err := yamlNode(pair.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Key},
				child)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("cannot render %T as YAML", v)
	}
}

// yamlFloatText formats a float so that a YAML parser resolves it back to a
// float: whole values keep a trailing ".0".
func yamlFloatText(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return jsonFloatText(f)
}
