package model

import (
	"github.com/invopop/jsonschema"
)

// Schema returns a JSON Schema representation of the typed model, for editor and
// tooling integration
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	return reflector.Reflect(&Description{})
}
