package encode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidroman0O/arazzo/model"
	"github.com/davidroman0O/arazzo/value"
)

func strPtr(s string) *string { return &s }

func treeKeys(tree *Tree) []string {
	var keys []string
	for pair := tree.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func minimalDescription() *model.Description {
	return &model.Description{
		Arazzo: "1.0.0",
		Info: model.Info{
			Title:      "t",
			Version:    "1.0.0",
			Extensions: model.Extensions{},
		},
		SourceDescriptions: []model.SourceDescription{
			{Name: "n", URL: "https://example.com", Extensions: model.Extensions{}},
		},
		Workflows: []model.Workflow{
			{
				WorkflowID: "w",
				Steps: []model.Step{
					{StepID: "s", Extensions: model.Extensions{}},
				},
				Extensions: model.Extensions{},
			},
		},
		Components: model.Components{Extensions: model.Extensions{}},
		Extensions: model.Extensions{},
	}
}

func TestDescriptionFieldOrder(t *testing.T) {
	tree := Description(minimalDescription())
	assert.Equal(t, []string{"arazzo", "info", "sourceDescriptions", "workflows"}, treeKeys(tree))

	// components joins the fixed order when non-empty
	desc := minimalDescription()
	desc.Components.Parameters = map[string]model.Parameter{
		"p": {Name: "p", Value: value.Second[value.Value, string]("$inputs.p")},
	}
	tree = Description(desc)
	assert.Equal(t, []string{"arazzo", "components", "info", "sourceDescriptions", "workflows"}, treeKeys(tree))
}

func TestStepFieldOrder(t *testing.T) {
	tree := step(model.Step{
		StepID:        "s",
		Description:   strPtr("d"),
		OperationID:   strPtr("op"),
		OperationPath: strPtr("path"),
		WorkflowID:    strPtr("w"),
		Parameters: []value.Either[model.Parameter, model.ReusableObject]{
			value.Second[model.Parameter, model.ReusableObject](model.ReusableObject{Reference: "$r"}),
		},
		RequestBody: &model.RequestBody{ContentType: strPtr("application/json")},
		SuccessCriteria: []model.Criterion{
			{Condition: "$statusCode == 200"},
		},
		OnSuccess: []value.Either[model.SuccessAction, model.ReusableObject]{
			value.First[model.SuccessAction, model.ReusableObject](model.SuccessAction{Name: "a", Type: "end"}),
		},
		OnFailure: []value.Either[model.FailureAction, model.ReusableObject]{
			value.First[model.FailureAction, model.ReusableObject](model.FailureAction{Name: "b", Type: "end"}),
		},
		Outputs: map[string]string{"o": "$response.body"},
	})

	assert.Equal(t, []string{
		"description", "onFailure", "onSuccess", "operationId", "operationPath",
		"outputs", "parameters", "requestBody", "stepId", "successCriteria", "workflowId",
	}, treeKeys(tree))
}

func TestEmptiesOmitted(t *testing.T) {
	tree := step(model.Step{StepID: "s"})
	assert.Equal(t, []string{"stepId"}, treeKeys(tree))

	infoTree := info(model.Info{Title: "t", Version: "1.0.0"})
	assert.Equal(t, []string{"title", "version"}, treeKeys(infoTree))
}

func TestExtensionsAppendedSorted(t *testing.T) {
	tree := info(model.Info{
		Title:   "t",
		Version: "1.0.0",
		Extensions: model.Extensions{
			"zebra": value.StringValue("z"),
			"alpha": value.UintValue(1),
		},
	})
	assert.Equal(t, []string{"title", "version", "x-alpha", "x-zebra"}, treeKeys(tree))

	alpha, ok := tree.Get("x-alpha")
	require.True(t, ok)
	assert.Equal(t, uint64(1), alpha)
}

func TestValueTreeSortsObjectKeys(t *testing.T) {
	rendered := valueTree(value.ObjectValue(map[string]value.Value{
		"b": value.UintValue(2),
		"a": value.UintValue(1),
	}))
	tree, ok := rendered.(*Tree)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, treeKeys(tree))
}

func TestPayloadRendering(t *testing.T) {
	// an explicitly null payload still emits the key, as null
	tree := requestBody(model.RequestBody{Payload: model.EmptyPayload{}})
	rendered, ok := tree.Get("payload")
	require.True(t, ok)
	assert.Nil(t, rendered)

	tree = requestBody(model.RequestBody{Payload: model.StringPayload{Text: "verbatim"}})
	rendered, _ = tree.Get("payload")
	assert.Equal(t, "verbatim", rendered)

	tree = requestBody(model.RequestBody{Payload: model.StructuredPayload{
		Node: map[string]interface{}{"b": int64(2), "a": int64(1)},
	}})
	rendered, _ = tree.Get("payload")
	payloadTree, ok := rendered.(*Tree)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, treeKeys(payloadTree))

	// an absent payload emits nothing at all
	tree = requestBody(model.RequestBody{})
	_, ok = tree.Get("payload")
	assert.False(t, ok)
}

func TestCriterionTypeBranches(t *testing.T) {
	short := value.First[string, model.CriterionExpressionType]("regex")
	tree := criterion(model.Criterion{Condition: "c", Type: &short})
	rendered, _ := tree.Get("type")
	assert.Equal(t, "regex", rendered)

	full := value.Second[string, model.CriterionExpressionType](model.CriterionExpressionType{
		Type:    "jsonpath",
		Version: "draft-goessner-dispatch-jsonpath-00",
	})
	tree = criterion(model.Criterion{Condition: "c", Type: &full})
	rendered, _ = tree.Get("type")
	fullTree, ok := rendered.(*Tree)
	require.True(t, ok)
	assert.Equal(t, []string{"type", "version"}, treeKeys(fullTree))
}

func TestToJSONDeterministic(t *testing.T) {
	desc := minimalDescription()
	first, err := ToJSON(desc)
	require.NoError(t, err)
	second, err := ToJSON(desc)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), `"arazzo": "1.0.0"`)
}

func TestToYAMLDeterministic(t *testing.T) {
	desc := minimalDescription()
	first, err := ToYAML(desc)
	require.NoError(t, err)
	second, err := ToYAML(desc)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), "arazzo: 1.0.0")
}

func TestYAMLFloatText(t *testing.T) {
	assert.Equal(t, "0.5", yamlFloatText(0.5))
	// whole floats keep a trailing .0 so they reparse as floats
	assert.Equal(t, "2.0", yamlFloatText(2))
	assert.Equal(t, ".inf", yamlFloatText(math.Inf(1)))
}

func TestJSONFloatText(t *testing.T) {
	assert.Equal(t, "0.5", jsonFloatText(0.5))
	assert.Equal(t, "2.0", jsonFloatText(2))
	assert.Equal(t, "-3.0", jsonFloatText(-3))
	assert.Equal(t, "1e+21", jsonFloatText(1e21))
}
