package decode

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/davidroman0O/arazzo/errors"
	"github.com/davidroman0O/arazzo/model"
	"github.com/davidroman0O/arazzo/value"
)

// FromYAML converts a parsed YAML document tree into a typed Description, applying
// the same rules as FromJSON. Document nodes unwrap to their content.
func FromYAML(n *yaml.Node) (*model.Description, error) {
	root, err := yamlRequireMapping(unwrapDocument(n))
	if err != nil {
		return nil, err
	}

	arazzo, err := yamlRequireString(root, "arazzo")
	if err != nil {
		return nil, errors.WithSpecRef(err, specDescription)
	}
	info, err := yamlInfo(root)
	if err != nil {
		return nil, err
	}
	sourceDescriptions, err := yamlSourceDescriptions(root)
	if err != nil {
		return nil, err
	}
	workflows, err := yamlWorkflows(root)
	if err != nil {
		return nil, err
	}
	components, err := yamlComponents(root)
	if err != nil {
		return nil, err
	}
	extensions, err := value.ExtensionsFromYAML(root)
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

func yamlInfo(root *yaml.Node) (model.Info, error) {
	raw := yamlLookup(root, "info")
	if raw == nil {
		return model.Info{}, errors.MissingField("info", specDescription)
	}
	obj, err := yamlRequireMapping(raw)
	if err != nil {
		return model.Info{}, errors.WrongType("info", "Object", value.YAMLTypeName(raw))
	}

	title, err := yamlRequireString(obj, "title")
	if err != nil {
		return model.Info{}, errors.WithSpecRef(err, specInfo)
	}
	version, err := yamlRequireString(obj, "version")
	if err != nil {
		return model.Info{}, errors.WithSpecRef(err, specInfo)
	}
	extensions, err := value.ExtensionsFromYAML(obj)
	if err != nil {
		return model.Info{}, err
	}

	return model.Info{
		Title:       title,
		Summary:     yamlLookupString(obj, "summary"),
		Description: yamlLookupString(obj, "description"),
		Version:     version,
		Extensions:  extensions,
	}, nil
}

func yamlSourceDescriptions(root *yaml.Node) ([]model.SourceDescription, error) {
	arr := yamlLookupSequence(root, "sourceDescriptions")
	if len(arr) == 0 {
		return nil, errors.EmptyList("sourceDescriptions", specDescription)
	}

	list := make([]model.SourceDescription, 0, len(arr))
	for _, item := range arr {
		desc, err := yamlSourceDescription(item)
		if err != nil {
			return nil, err
		}
		list = append(list, desc)
	}
	return list, nil
}

func yamlSourceDescription(n *yaml.Node) (model.SourceDescription, error) {
	obj, err := yamlRequireMapping(n)
	if err != nil {
		return model.SourceDescription{}, err
	}

	name, err := yamlRequireString(obj, "name")
	if err != nil {
		return model.SourceDescription{}, errors.WithSpecRef(err, specSourceDescription)
	}
	url, err := yamlRequireString(obj, "url")
	if err != nil {
		return model.SourceDescription{}, errors.WithSpecRef(err, specSourceDescription)
	}
	extensions, err := value.ExtensionsFromYAML(obj)
	if err != nil {
		return model.SourceDescription{}, err
	}

	return model.SourceDescription{
		Name:       name,
		URL:        url,
		Type:       yamlLookupString(obj, "type"),
		Extensions: extensions,
	}, nil
}

func yamlWorkflows(root *yaml.Node) ([]model.Workflow, error) {
	arr := yamlLookupSequence(root, "workflows")
	if len(arr) == 0 {
		return nil, errors.EmptyList("workflows", specDescription)
	}

	list := make([]model.Workflow, 0, len(arr))
	for _, item := range arr {
		workflow, err := yamlWorkflow(item)
		if err != nil {
			return nil, err
		}
		list = append(list, workflow)
	}
	return list, nil
}

func yamlWorkflow(n *yaml.Node) (model.Workflow, error) {
	obj, err := yamlRequireMapping(n)
	if err != nil {
		return model.Workflow{}, err
	}

	workflowID, err := yamlRequireString(obj, "workflowId")
	if err != nil {
		return model.Workflow{}, errors.WithSpecRef(err, specWorkflow)
	}
	inputs, err := yamlWorkflowInputs(obj)
	if err != nil {
		return model.Workflow{}, err
	}
	steps, err := yamlSteps(obj)
	if err != nil {
		return model.Workflow{}, err
	}
	successActions, err := yamlReusableOrList(obj, "successActions", yamlSuccessAction)
	if err != nil {
		return model.Workflow{}, err
	}
	failureActions, err := yamlReusableOrList(obj, "failureActions", yamlFailureAction)
	if err != nil {
		return model.Workflow{}, err
	}
	parameters, err := yamlReusableOrList(obj, "parameters", yamlParameter)
	if err != nil {
		return model.Workflow{}, err
	}
	extensions, err := value.ExtensionsFromYAML(obj)
	if err != nil {
		return model.Workflow{}, err
	}

	return model.Workflow{
		WorkflowID:     workflowID,
		Summary:        yamlLookupString(obj, "summary"),
		Description:    yamlLookupString(obj, "description"),
		Inputs:         inputs,
		DependsOn:      yamlStringList(obj, "dependsOn"),
		Steps:          steps,
		SuccessActions: successActions,
		FailureActions: failureActions,
		Outputs:        yamlOutputs(obj),
		Parameters:     parameters,
		Extensions:     extensions,
	}, nil
}

func yamlWorkflowInputs(obj *yaml.Node) (interface{}, error) {
	raw := yamlLookup(obj, "inputs")
	if raw == nil {
		return nil, nil
	}
	return yamlTree(raw)
}

func yamlSteps(obj *yaml.Node) ([]model.Step, error) {
	arr := yamlLookupSequence(obj, "steps")
	if len(arr) == 0 {
		return nil, errors.EmptyList("steps", specWorkflow)
	}

	list := make([]model.Step, 0, len(arr))
	for _, item := range arr {
		step, err := yamlStep(item)
		if err != nil {
			return nil, err
		}
		list = append(list, step)
	}
	return list, nil
}

func yamlStep(n *yaml.Node) (model.Step, error) {
	obj, err := yamlRequireMapping(n)
	if err != nil {
		return model.Step{}, err
	}

	stepID, err := yamlRequireString(obj, "stepId")
	if err != nil {
		return model.Step{}, errors.WithSpecRef(err, specStep)
	}
	parameters, err := yamlReusableOrList(obj, "parameters", yamlParameter)
	if err != nil {
		return model.Step{}, err
	}
	requestBody, err := yamlStepRequestBody(obj)
	if err != nil {
		return model.Step{}, err
	}
	successCriteria, err := yamlCriterionList(obj, "successCriteria")
	if err != nil {
		return model.Step{}, err
	}
	onSuccess, err := yamlReusableOrList(obj, "onSuccess", yamlSuccessAction)
	if err != nil {
		return model.Step{}, err
	}
	onFailure, err := yamlReusableOrList(obj, "onFailure", yamlFailureAction)
	if err != nil {
		return model.Step{}, err
	}
	extensions, err := value.ExtensionsFromYAML(obj)
	if err != nil {
		return model.Step{}, err
	}

	return model.Step{
		StepID:          stepID,
		Description:     yamlLookupString(obj, "description"),
		OperationID:     yamlLookupString(obj, "operationId"),
		OperationPath:   yamlLookupString(obj, "operationPath"),
		WorkflowID:      yamlLookupString(obj, "workflowId"),
		Parameters:      parameters,
		RequestBody:     requestBody,
		SuccessCriteria: successCriteria,
		OnSuccess:       onSuccess,
		OnFailure:       onFailure,
		Outputs:         yamlOutputs(obj),
		Extensions:      extensions,
	}, nil
}

func yamlStepRequestBody(obj *yaml.Node) (*model.RequestBody, error) {
	raw := yamlLookup(obj, "requestBody")
	if raw == nil {
		return nil, nil
	}
	body, err := yamlRequestBody(raw)
	if err != nil {
		return nil, err
	}
	return &body, nil
}

func yamlParameter(n *yaml.Node) (model.Parameter, error) {
	obj, err := yamlRequireMapping(n)
	if err != nil {
		return model.Parameter{}, err
	}

	name, err := yamlRequireString(obj, "name")
	if err != nil {
		return model.Parameter{}, errors.WithSpecRef(err, specParameter)
	}
	paramValue, err := yamlLiteralOrExpression(obj, "value", specParameter)
	if err != nil {
		return model.Parameter{}, err
	}
	extensions, err := value.ExtensionsFromYAML(obj)
	if err != nil {
		return model.Parameter{}, err
	}

	return model.Parameter{
		Name:       name,
		In:         yamlLookupString(obj, "in"),
		Value:      paramValue,
		Extensions: extensions,
	}, nil
}

func yamlSuccessAction(n *yaml.Node) (model.SuccessAction, error) {
	obj, err := yamlRequireMapping(n)
	if err != nil {
		return model.SuccessAction{}, err
	}

	name, err := yamlRequireString(obj, "name")
	if err != nil {
		return model.SuccessAction{}, errors.WithSpecRef(err, specSuccessAction)
	}
	actionType, err := yamlRequireString(obj, "type")
	if err != nil {
		return model.SuccessAction{}, errors.WithSpecRef(err, specSuccessAction)
	}
	criteria, err := yamlCriterionList(obj, "criteria")
	if err != nil {
		return model.SuccessAction{}, err
	}
	extensions, err := value.ExtensionsFromYAML(obj)
	if err != nil {
		return model.SuccessAction{}, err
	}

	return model.SuccessAction{
		Name:       name,
		Type:       actionType,
		WorkflowID: yamlLookupString(obj, "workflowId"),
		StepID:     yamlLookupString(obj, "stepId"),
		Criteria:   criteria,
		Extensions: extensions,
	}, nil
}

func yamlFailureAction(n *yaml.Node) (model.FailureAction, error) {
	obj, err := yamlRequireMapping(n)
	if err != nil {
		return model.FailureAction{}, err
	}

	name, err := yamlRequireString(obj, "name")
	if err != nil {
		return model.FailureAction{}, errors.WithSpecRef(err, specFailureAction)
	}
	actionType, err := yamlRequireString(obj, "type")
	if err != nil {
		return model.FailureAction{}, errors.WithSpecRef(err, specFailureAction)
	}
	criteria, err := yamlCriterionList(obj, "criteria")
	if err != nil {
		return model.FailureAction{}, err
	}
	extensions, err := value.ExtensionsFromYAML(obj)
	if err != nil {
		return model.FailureAction{}, err
	}

	return model.FailureAction{
		Name:       name,
		Type:       actionType,
		WorkflowID: yamlLookupString(obj, "workflowId"),
		StepID:     yamlLookupString(obj, "stepId"),
		RetryAfter: yamlLookupFloat(obj, "retryAfter"),
		RetryLimit: yamlLookupInt(obj, "retryLimit"),
		Criteria:   criteria,
		Extensions: extensions,
	}, nil
}

func yamlReusable(obj *yaml.Node) (model.ReusableObject, error) {
	reference, err := yamlRequireString(obj, "reference")
	if err != nil {
		return model.ReusableObject{}, errors.WithSpecRef(err, specReusable)
	}
	return model.ReusableObject{
		Reference: reference,
		Value:     yamlLookupString(obj, "value"),
	}, nil
}

func yamlCriterionList(obj *yaml.Node, key string) ([]model.Criterion, error) {
	arr := yamlLookupSequence(obj, key)
	if arr == nil {
		return nil, nil
	}

	list := make([]model.Criterion, 0, len(arr))
	for _, item := range arr {
		criterion, err := yamlCriterion(item)
		if err != nil {
			return nil, err
		}
		list = append(list, criterion)
	}
	return list, nil
}

func yamlCriterion(n *yaml.Node) (model.Criterion, error) {
	obj, err := yamlRequireMapping(n)
	if err != nil {
		return model.Criterion{}, err
	}

	condition, err := yamlRequireString(obj, "condition")
	if err != nil {
		return model.Criterion{}, errors.WithSpecRef(err, specCriterion)
	}
	criterionType, err := yamlCriterionType(obj)
	if err != nil {
		return model.Criterion{}, err
	}
	extensions, err := value.ExtensionsFromYAML(obj)
	if err != nil {
		return model.Criterion{}, err
	}

	return model.Criterion{
		Context:    yamlLookupString(obj, "context"),
		Condition:  condition,
		Type:       criterionType,
		Extensions: extensions,
	}, nil
}

func yamlCriterionType(obj *yaml.Node) (*value.Either[string, model.CriterionExpressionType], error) {
	raw := yamlLookup(obj, "type")
	if raw == nil {
		return nil, nil
	}
	if raw.Kind == yaml.ScalarNode && (raw.Tag == "!!str" || raw.Tag == "") {
		t := value.First[string, model.CriterionExpressionType](raw.Value)
		return &t, nil
	}
	expressionType, err := yamlCriterionExpressionType(raw)
	if err != nil {
		return nil, err
	}
	t := value.Second[string, model.CriterionExpressionType](expressionType)
	return &t, nil
}

func yamlCriterionExpressionType(n *yaml.Node) (model.CriterionExpressionType, error) {
	obj, err := yamlRequireMapping(n)
	if err != nil {
		return model.CriterionExpressionType{}, err
	}

	expressionType, err := yamlRequireString(obj, "type")
	if err != nil {
		return model.CriterionExpressionType{}, errors.WithSpecRef(err, specCriterion)
	}
	version, err := yamlRequireString(obj, "version")
	if err != nil {
		return model.CriterionExpressionType{}, errors.WithSpecRef(err, specCriterion)
	}
	extensions, err := value.ExtensionsFromYAML(obj)
	if err != nil {
		return model.CriterionExpressionType{}, err
	}

	return model.CriterionExpressionType{
		Type:       expressionType,
		Version:    version,
		Extensions: extensions,
	}, nil
}

func yamlRequestBody(n *yaml.Node) (model.RequestBody, error) {
	obj, err := yamlRequireMapping(n)
	if err != nil {
		return model.RequestBody{}, errors.WithSpecRef(err, specRequestBody)
	}

	payload, err := yamlPayload(obj)
	if err != nil {
		return model.RequestBody{}, err
	}
	replacements, err := yamlReplacements(obj)
	if err != nil {
		return model.RequestBody{}, err
	}
	extensions, err := value.ExtensionsFromYAML(obj)
	if err != nil {
		return model.RequestBody{}, err
	}

	return model.RequestBody{
		ContentType:  yamlLookupString(obj, "contentType"),
		Payload:      payload,
		Replacements: replacements,
		Extensions:   extensions,
	}, nil
}

func yamlPayload(obj *yaml.Node) (model.Payload, error) {
	raw := yamlLookup(obj, "payload")
	if raw == nil {
		return nil, nil
	}
	if raw.Kind == yaml.ScalarNode {
		switch raw.Tag {
		case "!!null":
			return model.EmptyPayload{}, nil
		case "!!str", "":
			return model.StringPayload{Text: raw.Value}, nil
		}
	}
	node, err := yamlTree(raw)
	if err != nil {
		return nil, err
	}
	return model.StructuredPayload{Node: node}, nil
}

func yamlReplacements(obj *yaml.Node) ([]model.PayloadReplacement, error) {
	arr := yamlLookupSequence(obj, "replacements")
	if arr == nil {
		return nil, nil
	}

	list := make([]model.PayloadReplacement, 0, len(arr))
	for _, item := range arr {
		replacement, err := yamlPayloadReplacement(item)
		if err != nil {
			return nil, err
		}
		list = append(list, replacement)
	}
	return list, nil
}

func yamlPayloadReplacement(n *yaml.Node) (model.PayloadReplacement, error) {
	obj, err := yamlRequireMapping(n)
	if err != nil {
		return model.PayloadReplacement{}, err
	}

	target, err := yamlRequireString(obj, "target")
	if err != nil {
		return model.PayloadReplacement{}, errors.WithSpecRef(err, specPayloadReplacement)
	}
	replacementValue, err := yamlLiteralOrExpression(obj, "value", specPayloadReplacement)
	if err != nil {
		return model.PayloadReplacement{}, err
	}
	extensions, err := value.ExtensionsFromYAML(obj)
	if err != nil {
		return model.PayloadReplacement{}, err
	}

	return model.PayloadReplacement{
		Target:     target,
		Value:      replacementValue,
		Extensions: extensions,
	}, nil
}

func yamlComponents(root *yaml.Node) (model.Components, error) {
	raw := yamlLookup(root, "components")
	if raw == nil {
		return model.Components{Extensions: map[string]value.Value{}}, nil
	}
	obj, err := yamlRequireMapping(raw)
	if err != nil {
		return model.Components{}, errors.WrongType("components", "Object", value.YAMLTypeName(raw))
	}

	inputs, err := yamlComponentInputs(obj)
	if err != nil {
		return model.Components{}, err
	}
	parameters, err := yamlComponentMap(obj, "parameters", yamlParameter)
	if err != nil {
		return model.Components{}, err
	}
	successActions, err := yamlComponentMap(obj, "successActions", yamlSuccessAction)
	if err != nil {
		return model.Components{}, err
	}
	failureActions, err := yamlComponentMap(obj, "failureActions", yamlFailureAction)
	if err != nil {
		return model.Components{}, err
	}
	extensions, err := value.ExtensionsFromYAML(obj)
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

func yamlComponentInputs(obj *yaml.Node) (map[string]interface{}, error) {
	entries := yamlLookup(obj, "inputs")
	if entries == nil || entries.Kind != yaml.MappingNode {
		return nil, nil
	}

	inputs := make(map[string]interface{}, len(entries.Content)/2)
	for i := 0; i+1 < len(entries.Content); i += 2 {
		k, v := entries.Content[i], entries.Content[i+1]
		if !yamlIsStringKey(k) {
			continue
		}
		node, err := yamlTree(v)
		if err != nil {
			return nil, err
		}
		inputs[k.Value] = node
	}
	return inputs, nil
}

// yamlComponentMap decodes a components sub-map, keyed by the map's own keys, using
// the same per-entity decoder used elsewhere.
func yamlComponentMap[T any](obj *yaml.Node, key string, decodeFn func(*yaml.Node) (T, error)) (map[string]T, error) {
	entries := yamlLookup(obj, key)
	if entries == nil || entries.Kind != yaml.MappingNode {
		return nil, nil
	}

	result := make(map[string]T, len(entries.Content)/2)
	for i := 0; i+1 < len(entries.Content); i += 2 {
		k, v := entries.Content[i], entries.Content[i+1]
		if !yamlIsStringKey(k) {
			continue
		}
		decoded, err := decodeFn(v)
		if err != nil {
			return nil, err
		}
		result[k.Value] = decoded
	}
	return result, nil
}

// yamlReusableOrList decodes a list whose entries are either the primary shape or a
// reusable reference, discriminated by the presence of a literal `reference` key.
// Entries that are not mappings match neither shape and are dropped.
func yamlReusableOrList[T any](obj *yaml.Node, key string, decodeFn func(*yaml.Node) (T, error)) ([]value.Either[T, model.ReusableObject], error) {
	arr := yamlLookupSequence(obj, key)
	if arr == nil {
		return nil, nil
	}

	var list []value.Either[T, model.ReusableObject]
	for _, item := range arr {
		if item.Kind != yaml.MappingNode {
			continue
		}
		if yamlLookup(item, "reference") != nil {
			reusable, err := yamlReusable(item)
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

// yamlLiteralOrExpression decodes a field that may hold either a literal value or a
// runtime expression. Only string scalars starting with the `$` sigil classify as
// expressions; everything else is a literal.
func yamlLiteralOrExpression(obj *yaml.Node, key string, specRef string) (value.Either[value.Value, string], error) {
	var zero value.Either[value.Value, string]

	raw := yamlLookup(obj, key)
	if raw == nil {
		return zero, errors.MissingField(key, specRef)
	}
	if raw.Kind == yaml.ScalarNode && (raw.Tag == "!!str" || raw.Tag == "") {
		if value.IsExpression(raw.Value) {
			return value.Second[value.Value, string](raw.Value), nil
		}
		return value.First[value.Value, string](value.StringValue(raw.Value)), nil
	}
	converted, err := value.FromYAML(raw)
	if err != nil {
		return zero, err
	}
	return value.First[value.Value, string](converted), nil
}

func unwrapDocument(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return n.Content[0]
	}
	return n
}

func yamlRequireMapping(n *yaml.Node) (*yaml.Node, error) {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrWrongType,
			fmt.Sprintf("YAML value must be a Hash, got %s", value.YAMLTypeName(n)))
	}
	return n, nil
}

func yamlIsStringKey(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode && (n.Tag == "!!str" || n.Tag == "")
}

// yamlLookup returns the value node for a string key in a mapping node, or nil.
// Only string keys participate; entries with keys of any other kind never match.
func yamlLookup(obj *yaml.Node, key string) *yaml.Node {
	if obj == nil || obj.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(obj.Content); i += 2 {
		k := obj.Content[i]
		if yamlIsStringKey(k) && k.Value == key {
			return obj.Content[i+1]
		}
	}
	return nil
}

func yamlLookupSequence(obj *yaml.Node, key string) []*yaml.Node {
	raw := yamlLookup(obj, key)
	if raw == nil || raw.Kind != yaml.SequenceNode {
		return nil
	}
	return raw.Content
}

func yamlRequireString(obj *yaml.Node, key string) (string, error) {
	raw := yamlLookup(obj, key)
	if raw == nil {
		return "", errors.MissingField(key, "")
	}
	if raw.Kind != yaml.ScalarNode || (raw.Tag != "!!str" && raw.Tag != "") {
		return "", errors.WrongType(key, "string", value.YAMLTypeName(raw))
	}
	return raw.Value, nil
}

// yamlLookupString looks up an optional string field. Values easily convertable to
// a string (numbers and booleans) are coerced; other kinds yield nil.
func yamlLookupString(obj *yaml.Node, key string) *string {
	return yamlCoerceString(yamlLookup(obj, key))
}

func yamlCoerceString(n *yaml.Node) *string {
	if n == nil || n.Kind != yaml.ScalarNode {
		return nil
	}
	switch n.Tag {
	case "!!str", "":
		s := n.Value
		return &s
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			b = n.Value == "true"
		}
		s := strconv.FormatBool(b)
		return &s
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil
		}
		s := strconv.FormatInt(i, 10)
		return &s
	case "!!float":
		// reals keep their source text verbatim
		s := n.Value
		return &s
	default:
		return nil
	}
}

// yamlLookupFloat looks up an optional numeric field as a float, widening integers.
func yamlLookupFloat(obj *yaml.Node, key string) *float64 {
	raw := yamlLookup(obj, key)
	if raw == nil || raw.Kind != yaml.ScalarNode {
		return nil
	}
	switch raw.Tag {
	case "!!float":
		f, err := strconv.ParseFloat(raw.Value, 64)
		if err != nil {
			return nil
		}
		return &f
	case "!!int":
		i, err := strconv.ParseInt(raw.Value, 0, 64)
		if err != nil {
			return nil
		}
		f := float64(i)
		return &f
	default:
		return nil
	}
}

// yamlLookupInt looks up an optional numeric field as an integer, truncating floats.
func yamlLookupInt(obj *yaml.Node, key string) *int64 {
	raw := yamlLookup(obj, key)
	if raw == nil || raw.Kind != yaml.ScalarNode {
		return nil
	}
	switch raw.Tag {
	case "!!int":
		i, err := strconv.ParseInt(raw.Value, 0, 64)
		if err != nil {
			return nil
		}
		return &i
	case "!!float":
		f, err := strconv.ParseFloat(raw.Value, 64)
		if err != nil {
			return nil
		}
		i := int64(f)
		return &i
	default:
		return nil
	}
}

// yamlStringList looks up an optional list of strings, coercing numbers and booleans
// and ignoring entries of any other kind. A non-sequence value yields an empty list.
func yamlStringList(obj *yaml.Node, key string) []string {
	arr := yamlLookupSequence(obj, key)
	if arr == nil {
		return nil
	}

	var list []string
	for _, item := range arr {
		if s := yamlCoerceString(item); s != nil {
			list = append(list, *s)
		}
	}
	return list
}

// yamlOutputs decodes an outputs mapping, accepting only string-keyed, string-valued
// entries and silently dropping the rest.
func yamlOutputs(obj *yaml.Node) map[string]string {
	entries := yamlLookup(obj, "outputs")
	if entries == nil || entries.Kind != yaml.MappingNode {
		return nil
	}

	outputs := make(map[string]string, len(entries.Content)/2)
	for i := 0; i+1 < len(entries.Content); i += 2 {
		k, v := entries.Content[i], entries.Content[i+1]
		if !yamlIsStringKey(k) {
			continue
		}
		if v.Kind == yaml.ScalarNode && (v.Tag == "!!str" || v.Tag == "") {
			outputs[k.Value] = v.Value
		}
	}
	return outputs
}

// yamlTree converts a YAML tree into the canonical generic JSON-compatible form
// shared with the JSON loader. Mapping keys must be strings; alias nodes have no
// counterpart and are rejected.
func yamlTree(n *yaml.Node) (interface{}, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return yamlTree(n.Content[0])
	case yaml.ScalarNode:
		return yamlTreeScalar(n)
	case yaml.SequenceNode:
		items := make([]interface{}, 0, len(n.Content))
		for _, c := range n.Content {
			converted, err := yamlTree(c)
			if err != nil {
				return nil, err
			}
			items = append(items, converted)
		}
		return items, nil
	case yaml.MappingNode:
		fields := make(map[string]interface{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if !yamlIsStringKey(k) {
				return nil, errors.UnsupportedKey(value.YAMLTypeName(k))
			}
			converted, err := yamlTree(v)
			if err != nil {
				return nil, err
			}
			fields[k.Value] = converted
		}
		return fields, nil
	default:
		return nil, errors.UnsupportedValue(value.YAMLTypeName(n))
	}
}

func yamlTreeScalar(n *yaml.Node) (interface{}, error) {
	switch n.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			b = n.Value == "true"
		}
		return b, nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil, errors.NumericParse(n.Value, err)
		}
		return i, nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, errors.NumericParse(n.Value, err)
		}
		return f, nil
	default:
		return n.Value, nil
	}
}
