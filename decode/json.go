package decode

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/davidroman0O/arazzo/errors"
	"github.com/davidroman0O/arazzo/model"
	"github.com/davidroman0O/arazzo/value"
)

// FromJSON converts a parsed JSON document tree into a typed Description. The tree
// is the generic shape produced by encoding/json (maps, slices, scalars); decoding
// with json.Decoder.UseNumber preserves full numeric fidelity.
func FromJSON(v interface{}) (*model.Description, error) {
	obj, err := jsonRequireObject(v)
	if err != nil {
		return nil, err
	}

	arazzo, err := jsonRequireString(obj, "arazzo")
	if err != nil {
		return nil, errors.WithSpecRef(err, specDescription)
	}
	info, err := jsonInfo(obj)
	if err != nil {
		return nil, err
	}
	sourceDescriptions, err := jsonSourceDescriptions(obj)
	if err != nil {
		return nil, err
	}
	workflows, err := jsonWorkflows(obj)
	if err != nil {
		return nil, err
	}
	components, err := jsonComponents(obj)
	if err != nil {
		return nil, err
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return nil, err
	}

	return &model.Description{
		Arazzo:             arazzo,
		Info:               info,
		SourceDescriptions: sourceDescriptions,
		Workflows:          workflows,
		Components:         components,
		Extensions:         extensions,
	}, nil
}

func jsonInfo(root map[string]interface{}) (model.Info, error) {
	raw, ok := root["info"]
	if !ok {
		return model.Info{}, errors.MissingField("info", specDescription)
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return model.Info{}, errors.WrongType("info", "Object", value.JSONTypeName(raw))
	}

	title, err := jsonRequireString(obj, "title")
	if err != nil {
		return model.Info{}, errors.WithSpecRef(err, specInfo)
	}
	version, err := jsonRequireString(obj, "version")
	if err != nil {
		return model.Info{}, errors.WithSpecRef(err, specInfo)
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.Info{}, err
	}

	return model.Info{
		Title:       title,
		Summary:     jsonLookupString(obj, "summary"),
		Description: jsonLookupString(obj, "description"),
		Version:     version,
		Extensions:  extensions,
	}, nil
}

func jsonSourceDescriptions(root map[string]interface{}) ([]model.SourceDescription, error) {
	arr, ok := root["sourceDescriptions"].([]interface{})
	if !ok || len(arr) == 0 {
		return nil, errors.EmptyList("sourceDescriptions", specDescription)
	}

	list := make([]model.SourceDescription, 0, len(arr))
	for _, item := range arr {
		desc, err := jsonSourceDescription(item)
		if err != nil {
			return nil, err
		}
		list = append(list, desc)
	}
	return list, nil
}

func jsonSourceDescription(v interface{}) (model.SourceDescription, error) {
	obj, err := jsonRequireObject(v)
	if err != nil {
		return model.SourceDescription{}, err
	}

	name, err := jsonRequireString(obj, "name")
	if err != nil {
		return model.SourceDescription{}, errors.WithSpecRef(err, specSourceDescription)
	}
	url, err := jsonRequireString(obj, "url")
	if err != nil {
		return model.SourceDescription{}, errors.WithSpecRef(err, specSourceDescription)
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.SourceDescription{}, err
	}

	return model.SourceDescription{
		Name:       name,
		URL:        url,
		Type:       jsonLookupString(obj, "type"),
		Extensions: extensions,
	}, nil
}

func jsonWorkflows(root map[string]interface{}) ([]model.Workflow, error) {
	arr, ok := root["workflows"].([]interface{})
	if !ok || len(arr) == 0 {
		return nil, errors.EmptyList("workflows", specDescription)
	}

	list := make([]model.Workflow, 0, len(arr))
	for _, item := range arr {
		workflow, err := jsonWorkflow(item)
		if err != nil {
			return nil, err
		}
		list = append(list, workflow)
	}
	return list, nil
}

func jsonWorkflow(v interface{}) (model.Workflow, error) {
	obj, err := jsonRequireObject(v)
	if err != nil {
		return model.Workflow{}, err
	}

	workflowID, err := jsonRequireString(obj, "workflowId")
	if err != nil {
		return model.Workflow{}, errors.WithSpecRef(err, specWorkflow)
	}
	inputs, err := jsonWorkflowInputs(obj)
	if err != nil {
		return model.Workflow{}, err
	}
	steps, err := jsonSteps(obj)
	if err != nil {
		return model.Workflow{}, err
	}
	successActions, err := jsonReusableOrList(obj, "successActions", jsonSuccessAction)
	if err != nil {
		return model.Workflow{}, err
	}
	failureActions, err := jsonReusableOrList(obj, "failureActions", jsonFailureAction)
	if err != nil {
		return model.Workflow{}, err
	}
	parameters, err := jsonReusableOrList(obj, "parameters", jsonParameter)
	if err != nil {
		return model.Workflow{}, err
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.Workflow{}, err
	}

	return model.Workflow{
		WorkflowID:     workflowID,
		Summary:        jsonLookupString(obj, "summary"),
		Description:    jsonLookupString(obj, "description"),
		Inputs:         inputs,
		DependsOn:      jsonStringList(obj, "dependsOn"),
		Steps:          steps,
		SuccessActions: successActions,
		FailureActions: failureActions,
		Outputs:        jsonOutputs(obj),
		Parameters:     parameters,
		Extensions:     extensions,
	}, nil
}

func jsonWorkflowInputs(obj map[string]interface{}) (interface{}, error) {
	raw, ok := obj["inputs"]
	if !ok {
		return nil, nil
	}
	return jsonTree(raw)
}

func jsonSteps(obj map[string]interface{}) ([]model.Step, error) {
	arr, ok := obj["steps"].([]interface{})
	if !ok || len(arr) == 0 {
		return nil, errors.EmptyList("steps", specWorkflow)
	}

	list := make([]model.Step, 0, len(arr))
	for _, item := range arr {
		step, err := jsonStep(item)
		if err != nil {
			return nil, err
		}
		list = append(list, step)
	}
	return list, nil
}

func jsonStep(v interface{}) (model.Step, error) {
	obj, err := jsonRequireObject(v)
	if err != nil {
		return model.Step{}, err
	}

	stepID, err := jsonRequireString(obj, "stepId")
	if err != nil {
		return model.Step{}, errors.WithSpecRef(err, specStep)
	}
	parameters, err := jsonReusableOrList(obj, "parameters", jsonParameter)
	if err != nil {
		return model.Step{}, err
	}
	requestBody, err := jsonStepRequestBody(obj)
	if err != nil {
		return model.Step{}, err
	}
	successCriteria, err := jsonCriterionList(obj, "successCriteria")
	if err != nil {
		return model.Step{}, err
	}
	onSuccess, err := jsonReusableOrList(obj, "onSuccess", jsonSuccessAction)
	if err != nil {
		return model.Step{}, err
	}
	onFailure, err := jsonReusableOrList(obj, "onFailure", jsonFailureAction)
	if err != nil {
		return model.Step{}, err
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.Step{}, err
	}

	return model.Step{
		StepID:          stepID,
		Description:     jsonLookupString(obj, "description"),
		OperationID:     jsonLookupString(obj, "operationId"),
		OperationPath:   jsonLookupString(obj, "operationPath"),
		WorkflowID:      jsonLookupString(obj, "workflowId"),
		Parameters:      parameters,
		RequestBody:     requestBody,
		SuccessCriteria: successCriteria,
		OnSuccess:       onSuccess,
		OnFailure:       onFailure,
		Outputs:         jsonOutputs(obj),
		Extensions:      extensions,
	}, nil
}

func jsonStepRequestBody(obj map[string]interface{}) (*model.RequestBody, error) {
	raw, ok := obj["requestBody"]
	if !ok {
		return nil, nil
	}
	body, err := jsonRequestBody(raw)
	if err != nil {
		return nil, err
	}
	return &body, nil
}

func jsonParameter(v interface{}) (model.Parameter, error) {
	obj, err := jsonRequireObject(v)
	if err != nil {
		return model.Parameter{}, err
	}

	name, err := jsonRequireString(obj, "name")
	if err != nil {
		return model.Parameter{}, errors.WithSpecRef(err, specParameter)
	}
	paramValue, err := jsonLiteralOrExpression(obj, "value", specParameter)
	if err != nil {
		return model.Parameter{}, err
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.Parameter{}, err
	}

	return model.Parameter{
		Name:       name,
		In:         jsonLookupString(obj, "in"),
		Value:      paramValue,
		Extensions: extensions,
	}, nil
}

func jsonSuccessAction(v interface{}) (model.SuccessAction, error) {
	obj, err := jsonRequireObject(v)
	if err != nil {
		return model.SuccessAction{}, err
	}

	name, err := jsonRequireString(obj, "name")
	if err != nil {
		return model.SuccessAction{}, errors.WithSpecRef(err, specSuccessAction)
	}
	actionType, err := jsonRequireString(obj, "type")
	if err != nil {
		return model.SuccessAction{}, errors.WithSpecRef(err, specSuccessAction)
	}
	criteria, err := jsonCriterionList(obj, "criteria")
	if err != nil {
		return model.SuccessAction{}, err
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.SuccessAction{}, err
	}

	return model.SuccessAction{
		Name:       name,
		Type:       actionType,
		WorkflowID: jsonLookupString(obj, "workflowId"),
		StepID:     jsonLookupString(obj, "stepId"),
		Criteria:   criteria,
		Extensions: extensions,
	}, nil
}

func jsonFailureAction(v interface{}) (model.FailureAction, error) {
	obj, err := jsonRequireObject(v)
	if err != nil {
		return model.FailureAction{}, err
	}

	name, err := jsonRequireString(obj, "name")
	if err != nil {
		return model.FailureAction{}, errors.WithSpecRef(err, specFailureAction)
	}
	actionType, err := jsonRequireString(obj, "type")
	if err != nil {
		return model.FailureAction{}, errors.WithSpecRef(err, specFailureAction)
	}
	criteria, err := jsonCriterionList(obj, "criteria")
	if err != nil {
		return model.FailureAction{}, err
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.FailureAction{}, err
	}

	return model.FailureAction{
		Name:       name,
		Type:       actionType,
		WorkflowID: jsonLookupString(obj, "workflowId"),
		StepID:     jsonLookupString(obj, "stepId"),
		RetryAfter: jsonLookupFloat(obj, "retryAfter"),
		RetryLimit: jsonLookupInt(obj, "retryLimit"),
		Criteria:   criteria,
		Extensions: extensions,
	}, nil
}

func jsonReusable(obj map[string]interface{}) (model.ReusableObject, error) {
	reference, err := jsonRequireString(obj, "reference")
	if err != nil {
		return model.ReusableObject{}, errors.WithSpecRef(err, specReusable)
	}
	return model.ReusableObject{
		Reference: reference,
		Value:     jsonLookupString(obj, "value"),
	}, nil
}

func jsonCriterionList(obj map[string]interface{}, key string) ([]model.Criterion, error) {
	arr, ok := obj[key].([]interface{})
	if !ok {
		return nil, nil
	}

	list := make([]model.Criterion, 0, len(arr))
	for _, item := range arr {
		criterion, err := jsonCriterion(item)
		if err != nil {
			return nil, err
		}
		list = append(list, criterion)
	}
	return list, nil
}

func jsonCriterion(v interface{}) (model.Criterion, error) {
	obj, err := jsonRequireObject(v)
	if err != nil {
		return model.Criterion{}, err
	}

	condition, err := jsonRequireString(obj, "condition")
	if err != nil {
		return model.Criterion{}, errors.WithSpecRef(err, specCriterion)
	}
	criterionType, err := jsonCriterionType(obj)
	if err != nil {
		return model.Criterion{}, err
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.Criterion{}, err
	}

	return model.Criterion{
		Context:    jsonLookupString(obj, "context"),
		Condition:  condition,
		Type:       criterionType,
		Extensions: extensions,
	}, nil
}

func jsonCriterionType(obj map[string]interface{}) (*value.Either[string, model.CriterionExpressionType], error) {
	raw, ok := obj["type"]
	if !ok {
		return nil, nil
	}
	if s, ok := raw.(string); ok {
		t := value.First[string, model.CriterionExpressionType](s)
		return &t, nil
	}
	expressionType, err := jsonCriterionExpressionType(raw)
	if err != nil {
		return nil, err
	}
	t := value.Second[string, model.CriterionExpressionType](expressionType)
	return &t, nil
}

func jsonCriterionExpressionType(v interface{}) (model.CriterionExpressionType, error) {
	obj, err := jsonRequireObject(v)
	if err != nil {
		return model.CriterionExpressionType{}, err
	}

	expressionType, err := jsonRequireString(obj, "type")
	if err != nil {
		return model.CriterionExpressionType{}, errors.WithSpecRef(err, specCriterion)
	}
	version, err := jsonRequireString(obj, "version")
	if err != nil {
		return model.CriterionExpressionType{}, errors.WithSpecRef(err, specCriterion)
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.CriterionExpressionType{}, err
	}

	return model.CriterionExpressionType{
		Type:       expressionType,
		Version:    version,
		Extensions: extensions,
	}, nil
}

func jsonRequestBody(v interface{}) (model.RequestBody, error) {
	obj, err := jsonRequireObject(v)
	if err != nil {
		return model.RequestBody{}, errors.WithSpecRef(err, specRequestBody)
	}

	payload, err := jsonPayload(obj)
	if err != nil {
		return model.RequestBody{}, err
	}
	replacements, err := jsonReplacements(obj)
	if err != nil {
		return model.RequestBody{}, err
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.RequestBody{}, err
	}

	return model.RequestBody{
		ContentType:  jsonLookupString(obj, "contentType"),
		Payload:      payload,
		Replacements: replacements,
		Extensions:   extensions,
	}, nil
}

func jsonPayload(obj map[string]interface{}) (model.Payload, error) {
	raw, ok := obj["payload"]
	if !ok {
		return nil, nil
	}
	switch t := raw.(type) {
	case nil:
		return model.EmptyPayload{}, nil
	case string:
		return model.StringPayload{Text: t}, nil
	default:
		node, err := jsonTree(raw)
		if err != nil {
			return nil, err
		}
		return model.StructuredPayload{Node: node}, nil
	}
}

func jsonReplacements(obj map[string]interface{}) ([]model.PayloadReplacement, error) {
	arr, ok := obj["replacements"].([]interface{})
	if !ok {
		return nil, nil
	}

	list := make([]model.PayloadReplacement, 0, len(arr))
	for _, item := range arr {
		replacement, err := jsonPayloadReplacement(item)
		if err != nil {
			return nil, err
		}
		list = append(list, replacement)
	}
	return list, nil
}

func jsonPayloadReplacement(v interface{}) (model.PayloadReplacement, error) {
	obj, err := jsonRequireObject(v)
	if err != nil {
		return model.PayloadReplacement{}, err
	}

	target, err := jsonRequireString(obj, "target")
	if err != nil {
		return model.PayloadReplacement{}, errors.WithSpecRef(err, specPayloadReplacement)
	}
	replacementValue, err := jsonLiteralOrExpression(obj, "value", specPayloadReplacement)
	if err != nil {
		return model.PayloadReplacement{}, err
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.PayloadReplacement{}, err
	}

	return model.PayloadReplacement{
		Target:     target,
		Value:      replacementValue,
		Extensions: extensions,
	}, nil
}

func jsonComponents(root map[string]interface{}) (model.Components, error) {
	raw, ok := root["components"]
	if !ok {
		return model.Components{Extensions: map[string]value.Value{}}, nil
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return model.Components{}, errors.WrongType("components", "Object", value.JSONTypeName(raw))
	}

	inputs, err := jsonComponentInputs(obj)
	if err != nil {
		return model.Components{}, err
	}
	parameters, err := jsonComponentMap(obj, "parameters", jsonParameter)
	if err != nil {
		return model.Components{}, err
	}
	successActions, err := jsonComponentMap(obj, "successActions", jsonSuccessAction)
	if err != nil {
		return model.Components{}, err
	}
	failureActions, err := jsonComponentMap(obj, "failureActions", jsonFailureAction)
	if err != nil {
		return model.Components{}, err
	}
	extensions, err := value.ExtensionsFromJSON(obj)
	if err != nil {
		return model.Components{}, err
	}

	return model.Components{
		Inputs:         inputs,
		Parameters:     parameters,
		SuccessActions: successActions,
		FailureActions: failureActions,
		Extensions:     extensions,
	}, nil
}

func jsonComponentInputs(obj map[string]interface{}) (map[string]interface{}, error) {
	entries, ok := obj["inputs"].(map[string]interface{})
	if !ok {
		return nil, nil
	}

	inputs := make(map[string]interface{}, len(entries))
	for name, entry := range entries {
		node, err := jsonTree(entry)
		if err != nil {
			return nil, err
		}
		inputs[name] = node
	}
	return inputs, nil
}

// jsonComponentMap decodes a components sub-map, keyed by the map's own keys, using
// the same per-entity decoder used elsewhere.
func jsonComponentMap[T any](obj map[string]interface{}, key string, decodeFn func(interface{}) (T, error)) (map[string]T, error) {
	entries, ok := obj[key].(map[string]interface{})
	if !ok {
		return nil, nil
	}

	result := make(map[string]T, len(entries))
	for name, entry := range entries {
		decoded, err := decodeFn(entry)
		if err != nil {
			return nil, err
		}
		result[name] = decoded
	}
	return result, nil
}

// jsonReusableOrList decodes a list whose entries are either the primary shape or a
// reusable reference, discriminated by the presence of a literal `reference` key.
// Entries that are not objects match neither shape and are dropped.
func jsonReusableOrList[T any](obj map[string]interface{}, key string, decodeFn func(interface{}) (T, error)) ([]value.Either[T, model.ReusableObject], error) {
	arr, ok := obj[key].([]interface{})
	if !ok {
		return nil, nil
	}

	var list []value.Either[T, model.ReusableObject]
	for _, item := range arr {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if _, hasReference := entry["reference"]; hasReference {
			reusable, err := jsonReusable(entry)
			if err != nil {
				return nil, err
			}
			list = append(list, value.Second[T, model.ReusableObject](reusable))
		} else {
			decoded, err := decodeFn(item)
			if err != nil {
				return nil, err
			}
			list = append(list, value.First[T, model.ReusableObject](decoded))
		}
	}
	return list, nil
}

// jsonLiteralOrExpression decodes a field that may hold either a literal value or a
// runtime expression. Only string scalars starting with the `$` sigil classify as
// expressions; everything else is a literal.
func jsonLiteralOrExpression(obj map[string]interface{}, key string, specRef string) (value.Either[value.Value, string], error) {
	var zero value.Either[value.Value, string]

	raw, ok := obj[key]
	if !ok {
		return zero, errors.MissingField(key, specRef)
	}
	if s, ok := raw.(string); ok {
		if value.IsExpression(s) {
			return value.Second[value.Value, string](s), nil
		}
		return value.First[value.Value, string](value.StringValue(s)), nil
	}
	converted, err := value.FromJSON(raw)
	if err != nil {
		return zero, err
	}
	return value.First[value.Value, string](converted), nil
}

func jsonRequireObject(v interface{}) (map[string]interface{}, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.New(errors.ErrWrongType,
			fmt.Sprintf("JSON value must be an Object, got %s", value.JSONTypeName(v)))
	}
	return obj, nil
}

func jsonRequireString(obj map[string]interface{}, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", errors.MissingField(key, "")
	}
	s, ok := raw.(string)
	if !ok {
		return "", errors.WrongType(key, "string", value.JSONTypeName(raw))
	}
	return s, nil
}

// jsonLookupString looks up an optional string field. Values easily convertable to
// a string (numbers and booleans) are coerced; other kinds yield nil.
func jsonLookupString(obj map[string]interface{}, key string) *string {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	switch t := raw.(type) {
	case string:
		return &t
	case bool:
		s := strconv.FormatBool(t)
		return &s
	case json.Number:
		s := t.String()
		return &s
	case float64:
		s := strconv.FormatFloat(t, 'g', -1, 64)
		return &s
	default:
		return nil
	}
}

// jsonLookupFloat looks up an optional numeric field as a float, widening integers.
func jsonLookupFloat(obj map[string]interface{}, key string) *float64 {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	switch t := raw.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil
		}
		return &f
	case float64:
		return &t
	default:
		return nil
	}
}

// jsonLookupInt looks up an optional numeric field as an integer, truncating floats.
func jsonLookupInt(obj map[string]interface{}, key string) *int64 {
	raw, ok := obj[key]
	if !ok {
		return nil
	}
	switch t := raw.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return &i
		}
		f, err := t.Float64()
		if err != nil {
			return nil
		}
		i := int64(f)
		return &i
	case float64:
		i := int64(t)
		return &i
	default:
		return nil
	}
}

// jsonStringList looks up an optional list of strings, coercing numbers and booleans
// and ignoring entries of any other kind. A non-array value yields an empty list.
func jsonStringList(obj map[string]interface{}, key string) []string {
	arr, ok := obj[key].([]interface{})
	if !ok {
		return nil
	}

	var list []string
	for _, item := range arr {
		if s := jsonCoerceString(item); s != nil {
			list = append(list, *s)
		}
	}
	return list
}

func jsonCoerceString(v interface{}) *string {
	switch t := v.(type) {
	case string:
		return &t
	case bool:
		s := strconv.FormatBool(t)
		return &s
	case json.Number:
		s := t.String()
		return &s
	case float64:
		s := strconv.FormatFloat(t, 'g', -1, 64)
		return &s
	default:
		return nil
	}
}

// jsonOutputs decodes an outputs mapping, accepting only string-valued entries and
// silently dropping the rest.
func jsonOutputs(obj map[string]interface{}) map[string]string {
	entries, ok := obj["outputs"].(map[string]interface{})
	if !ok {
		return nil
	}

	outputs := make(map[string]string, len(entries))
	for k, v := range entries {
		if s, ok := v.(string); ok {
			outputs[k] = s
		}
	}
	return outputs
}

// jsonTree normalizes a parsed JSON tree into the canonical generic form shared
// with the YAML loader: numbers become int64 when they fit a signed 64-bit range,
// uint64 when only the unsigned range fits, float64 otherwise.
func jsonTree(v interface{}) (interface{}, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool, string, int64, uint64:
		return t, nil
	case int:
		return int64(t), nil
	case json.Number:
		return normalizeNumber(t)
	case float64:
		return normalizeFloat(t), nil
	case []interface{}:
		items := make([]interface{}, 0, len(t))
		for _, item := range t {
			converted, err := jsonTree(item)
			if err != nil {
				return nil, err
			}
			items = append(items, converted)
		}
		return items, nil
	case map[string]interface{}:
		fields := make(map[string]interface{}, len(t))
		for k, item := range t {
			converted, err := jsonTree(item)
			if err != nil {
				return nil, err
			}
			fields[k] = converted
		}
		return fields, nil
	default:
		return nil, errors.UnsupportedValue(fmt.Sprintf("%T", v))
	}
}

func normalizeNumber(n json.Number) (interface{}, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, errors.NumericParse(n.String(), err)
	}
	return f, nil
}

func normalizeFloat(f float64) interface{} {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		if f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
		if f >= 0 && f < math.MaxUint64 {
			return uint64(f)
		}
	}
	return f
}
