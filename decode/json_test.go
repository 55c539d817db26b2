package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidroman0O/arazzo/errors"
	"github.com/davidroman0O/arazzo/model"
	"github.com/davidroman0O/arazzo/value"
)

const petstoreJSON = `{
  "arazzo": "1.0.0",
  "info": {
    "title": "Petstore workflows",
    "summary": "Orchestrates the petstore API",
    "version": "1.0.1",
    "x-internal": true
  },
  "sourceDescriptions": [
    {
      "name": "petstore",
      "url": "https://example.com/openapi.yaml",
      "type": "openapi"
    }
  ],
  "workflows": [
    {
      "workflowId": "buy-a-pet",
      "summary": "Buy the first available pet",
      "inputs": {
        "type": "object",
        "properties": {
          "username": {"type": "string"}
        }
      },
      "dependsOn": ["login"],
      "steps": [
        {
          "stepId": "find-pet",
          "operationId": "findPetsByStatus",
          "parameters": [
            {"name": "status", "in": "query", "value": "available"},
            {"reference": "$components.parameters.page"}
          ],
          "successCriteria": [
            {"condition": "$statusCode == 200"},
            {
              "context": "$response.body",
              "condition": "$[0].status == 'available'",
              "type": {"type": "jsonpath", "version": "draft-goessner-dispatch-jsonpath-00"}
            }
          ],
          "outputs": {"petId": "$response.body#/0/id"}
        },
        {
          "stepId": "place-order",
          "operationId": "placeOrder",
          "requestBody": {
            "contentType": "application/json",
            "payload": {"petId": 1, "quantity": 1},
            "replacements": [
              {"target": "/petId", "value": "$steps.find-pet.outputs.petId"}
            ]
          },
          "onFailure": [
            {"name": "retry-order", "type": "retry", "retryAfter": 0.5, "retryLimit": 3}
          ],
          "outputs": {"orderId": "$response.body#/id"}
        }
      ],
      "outputs": {"orderId": "$steps.place-order.outputs.orderId"}
    }
  ],
  "components": {
    "parameters": {
      "page": {"name": "page", "in": "query", "value": 1}
    }
  },
  "x-audience": "internal"
}`

func TestParseJSONDocument(t *testing.T) {
	desc, err := ParseJSON([]byte(petstoreJSON))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", desc.Arazzo)
	assert.Equal(t, "Petstore workflows", desc.Info.Title)
	assert.Equal(t, "1.0.1", desc.Info.Version)
	require.NotNil(t, desc.Info.Summary)
	assert.Equal(t, "Orchestrates the petstore API", *desc.Info.Summary)
	assert.True(t, desc.Info.Extensions["internal"].Bool())
	assert.Equal(t, "internal", desc.Extensions["audience"].Str())

	require.Len(t, desc.SourceDescriptions, 1)
	assert.Equal(t, "petstore", desc.SourceDescriptions[0].Name)
	assert.Equal(t, "https://example.com/openapi.yaml", desc.SourceDescriptions[0].URL)

	require.Len(t, desc.Workflows, 1)
	workflow := desc.Workflows[0]
	assert.Equal(t, "buy-a-pet", workflow.WorkflowID)
	assert.Equal(t, []string{"login"}, workflow.DependsOn)
	require.NotNil(t, workflow.Inputs)
	assert.Equal(t, map[string]string{"orderId": "$steps.place-order.outputs.orderId"}, workflow.Outputs)

	require.Len(t, workflow.Steps, 2)
	findPet := workflow.Steps[0]
	assert.Equal(t, "find-pet", findPet.StepID)
	require.NotNil(t, findPet.OperationID)
	assert.Equal(t, "findPetsByStatus", *findPet.OperationID)

	require.Len(t, findPet.Parameters, 2)
	param, ok := findPet.Parameters[0].First()
	require.True(t, ok)
	assert.Equal(t, "status", param.Name)
	literal, ok := param.Value.First()
	require.True(t, ok)
	assert.Equal(t, "available", literal.Str())

	reusable, ok := findPet.Parameters[1].Second()
	require.True(t, ok)
	assert.Equal(t, "$components.parameters.page", reusable.Reference)

	require.Len(t, findPet.SuccessCriteria, 2)
	assert.Equal(t, "$statusCode == 200", findPet.SuccessCriteria[0].Condition)
	require.NotNil(t, findPet.SuccessCriteria[1].Type)
	full, ok := findPet.SuccessCriteria[1].Type.Second()
	require.True(t, ok)
	assert.Equal(t, "jsonpath", full.Type)

	placeOrder := workflow.Steps[1]
	require.NotNil(t, placeOrder.RequestBody)
	require.NotNil(t, placeOrder.RequestBody.ContentType)
	assert.Equal(t, "application/json", *placeOrder.RequestBody.ContentType)
	node, structured := placeOrder.RequestBody.Payload.Structured()
	require.True(t, structured)
	assert.Equal(t, map[string]interface{}{"petId": int64(1), "quantity": int64(1)}, node)

	require.Len(t, placeOrder.OnFailure, 1)
	retry, ok := placeOrder.OnFailure[0].First()
	require.True(t, ok)
	assert.Equal(t, "retry", retry.Type)
	require.NotNil(t, retry.RetryAfter)
	assert.Equal(t, 0.5, *retry.RetryAfter)
	require.NotNil(t, retry.RetryLimit)
	assert.Equal(t, int64(3), *retry.RetryLimit)

	require.Contains(t, desc.Components.Parameters, "page")
	page := desc.Components.Parameters["page"]
	pageValue, ok := page.Value.First()
	require.True(t, ok)
	assert.Equal(t, uint64(1), pageValue.Uint())
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{"arazzo": `))
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetCode(err))
}

func TestFromJSONMissingRequiredFields(t *testing.T) {
	base := func() map[string]interface{} {
		return map[string]interface{}{
			"arazzo": "1.0.0",
			"info":   map[string]interface{}{"title": "t", "version": "1.0.0"},
			"sourceDescriptions": []interface{}{
				map[string]interface{}{"name": "n", "url": "https://example.com"},
			},
			"workflows": []interface{}{
				map[string]interface{}{
					"workflowId": "w",
					"steps": []interface{}{
						map[string]interface{}{"stepId": "s"},
					},
				},
			},
		}
	}

	doc := base()
	delete(doc, "arazzo")
	_, err := FromJSON(doc)
	assert.True(t, errors.IsMissingField(err))
	assert.Equal(t, "arazzo", errors.GetField(err))
	assert.Contains(t, err.Error(), "Did not find key 'arazzo' in Object")
	assert.Contains(t, err.Error(), "4.6.1.1 Fixed Fields")

	doc = base()
	delete(doc, "info")
	_, err = FromJSON(doc)
	assert.True(t, errors.IsMissingField(err))

	doc = base()
	delete(doc["info"].(map[string]interface{}), "version")
	_, err = FromJSON(doc)
	assert.True(t, errors.IsMissingField(err))
	assert.Equal(t, "version", errors.GetField(err))

	doc = base()
	doc["sourceDescriptions"] = []interface{}{}
	_, err = FromJSON(doc)
	assert.True(t, errors.IsEmptyList(err))
	assert.Contains(t, err.Error(), "'sourceDescriptions' list must have at least one entry")

	doc = base()
	delete(doc, "workflows")
	_, err = FromJSON(doc)
	assert.True(t, errors.IsEmptyList(err))

	doc = base()
	doc["workflows"].([]interface{})[0].(map[string]interface{})["steps"] = []interface{}{}
	_, err = FromJSON(doc)
	assert.True(t, errors.IsEmptyList(err))
	assert.Equal(t, "steps", errors.GetField(err))
}

func TestFromJSONWrongTypes(t *testing.T) {
	doc := map[string]interface{}{
		"arazzo": true,
		"info":   map[string]interface{}{"title": "t", "version": "1.0.0"},
	}
	_, err := FromJSON(doc)
	assert.True(t, errors.IsWrongType(err))
	assert.Contains(t, err.Error(), "Value for key 'arazzo' in Object was not a string, was Boolean")
}

func TestJSONLiteralOrExpressionSigil(t *testing.T) {
	desc := decodeWorkflowWithParameter(t, "$inputs.username")
	param := firstParameter(t, desc)
	expression, ok := param.Value.Second()
	require.True(t, ok)
	assert.Equal(t, "$inputs.username", expression)

	// a plain string stays a literal
	desc = decodeWorkflowWithParameter(t, "plain")
	param = firstParameter(t, desc)
	literal, ok := param.Value.First()
	require.True(t, ok)
	assert.Equal(t, "plain", literal.Str())
}

func decodeWorkflowWithParameter(t *testing.T, paramValue interface{}) *model.Description {
	t.Helper()
	desc, err := FromJSON(map[string]interface{}{
		"arazzo": "1.0.0",
		"info":   map[string]interface{}{"title": "t", "version": "1.0.0"},
		"sourceDescriptions": []interface{}{
			map[string]interface{}{"name": "n", "url": "https://example.com"},
		},
		"workflows": []interface{}{
			map[string]interface{}{
				"workflowId": "w",
				"steps": []interface{}{
					map[string]interface{}{
						"stepId": "s",
						"parameters": []interface{}{
							map[string]interface{}{"name": "p", "value": paramValue},
						},
					},
				},
			},
		},
	})
	require.NoError(t, err)
	return desc
}

func firstParameter(t *testing.T, desc *model.Description) model.Parameter {
	t.Helper()
	require.Len(t, desc.Workflows, 1)
	require.Len(t, desc.Workflows[0].Steps, 1)
	require.Len(t, desc.Workflows[0].Steps[0].Parameters, 1)
	param, ok := desc.Workflows[0].Steps[0].Parameters[0].First()
	require.True(t, ok)
	return param
}

func TestJSONParameterValueRequired(t *testing.T) {
	_, err := jsonParameter(map[string]interface{}{"name": "p"})
	require.Error(t, err)
	assert.True(t, errors.IsMissingField(err))
	assert.Equal(t, "value", errors.GetField(err))
}

func TestJSONReusableOrListDropsNonObjects(t *testing.T) {
	list, err := jsonReusableOrList(map[string]interface{}{
		"parameters": []interface{}{
			map[string]interface{}{"name": "p", "value": "v"},
			"not-an-object",
			nil,
			map[string]interface{}{"reference": "$components.parameters.q"},
		},
	}, "parameters", jsonParameter)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].IsFirst())
	assert.True(t, list[1].IsSecond())
}

func TestJSONReusableSniffWinsOverShape(t *testing.T) {
	// an entry with both a reference key and the primary shape decodes as reusable
	list, err := jsonReusableOrList(map[string]interface{}{
		"parameters": []interface{}{
			map[string]interface{}{"name": "p", "value": "v", "reference": "$ref"},
		},
	}, "parameters", jsonParameter)
	require.NoError(t, err)
	require.Len(t, list, 1)
	reusable, ok := list[0].Second()
	require.True(t, ok)
	assert.Equal(t, "$ref", reusable.Reference)
}

func TestJSONOutputsDropsNonStringValues(t *testing.T) {
	outputs := jsonOutputs(map[string]interface{}{
		"outputs": map[string]interface{}{
			"kept":    "$response.body#/id",
			"dropped": float64(3),
			"also":    map[string]interface{}{},
		},
	})
	assert.Equal(t, map[string]string{"kept": "$response.body#/id"}, outputs)
}

func TestJSONPayloadForms(t *testing.T) {
	payload, err := jsonPayload(map[string]interface{}{"payload": nil})
	require.NoError(t, err)
	assert.Equal(t, model.EmptyPayload{}, payload)

	payload, err = jsonPayload(map[string]interface{}{"payload": `{"raw": true}`})
	require.NoError(t, err)
	assert.Equal(t, model.StringPayload{Text: `{"raw": true}`}, payload)

	payload, err = jsonPayload(map[string]interface{}{"payload": map[string]interface{}{"a": float64(1)}})
	require.NoError(t, err)
	node, structured := payload.Structured()
	require.True(t, structured)
	assert.Equal(t, map[string]interface{}{"a": int64(1)}, node)

	payload, err = jsonPayload(map[string]interface{}{})
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestJSONRequestBodyMustBeObject(t *testing.T) {
	_, err := jsonStepRequestBody(map[string]interface{}{"requestBody": "nope"})
	require.Error(t, err)
	assert.True(t, errors.IsWrongType(err))
	assert.Contains(t, err.Error(), "4.6.13.1 Fixed Fields")
}

func TestJSONNumericFidelity(t *testing.T) {
	desc, err := ParseJSON([]byte(`{
		"arazzo": "1.0.0",
		"info": {"title": "t", "version": "1.0.0"},
		"sourceDescriptions": [{"name": "n", "url": "u"}],
		"workflows": [{
			"workflowId": "w",
			"steps": [{
				"stepId": "s",
				"parameters": [
					{"name": "big", "value": 18446744073709551615},
					{"name": "neg", "value": -9007199254740993},
					{"name": "frac", "value": 0.1}
				]
			}]
		}]
	}`))
	require.NoError(t, err)

	params := desc.Workflows[0].Steps[0].Parameters
	require.Len(t, params, 3)

	big, _ := params[0].First()
	bigValue, _ := big.Value.First()
	assert.Equal(t, value.KindUint, bigValue.Kind())
	assert.Equal(t, uint64(18446744073709551615), bigValue.Uint())

	neg, _ := params[1].First()
	negValue, _ := neg.Value.First()
	assert.Equal(t, value.KindInt, negValue.Kind())
	assert.Equal(t, int64(-9007199254740993), negValue.Int())

	frac, _ := params[2].First()
	fracValue, _ := frac.Value.First()
	assert.Equal(t, value.KindFloat, fracValue.Kind())
	assert.Equal(t, 0.1, fracValue.Float())
}

func TestJSONCriterionTypeShortName(t *testing.T) {
	criterion, err := jsonCriterion(map[string]interface{}{
		"condition": "$statusCode == 200",
		"type":      "regex",
	})
	require.NoError(t, err)
	require.NotNil(t, criterion.Type)
	name, ok := criterion.Type.First()
	require.True(t, ok)
	assert.Equal(t, "regex", name)
}

func TestJSONComponentsAbsent(t *testing.T) {
	desc := decodeWorkflowWithParameter(t, "v")
	assert.True(t, desc.Components.Empty())
	assert.NotNil(t, desc.Components.Extensions)
}
