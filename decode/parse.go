package decode

import (
	"bytes"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/davidroman0O/arazzo/errors"
	"github.com/davidroman0O/arazzo/model"
)

// ParseJSON reads a JSON document and decodes it into a Description. Numbers are
// decoded with full textual fidelity so integer and float classification is exact.
func ParseJSON(data []byte) (*model.Description, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root interface{}
	if err := dec.Decode(&root); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse JSON document")
	}
	return FromJSON(root)
}

// ParseYAML reads a YAML document and decodes it into a Description.
func ParseYAML(data []byte) (*model.Description, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse YAML document")
	}
	return FromYAML(&root)
}

// ParseJSONReader is ParseJSON over a stream.
func ParseJSONReader(r io.Reader) (*model.Description, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read JSON document")
	}
	return ParseJSON(data)
}

// ParseYAMLReader is ParseYAML over a stream.
func ParseYAMLReader(r io.Reader) (*model.Description, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read YAML document")
	}
	return ParseYAML(data)
}
