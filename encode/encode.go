// Package encode renders a typed Arazzo description back into a deterministic
// document tree and writes it out as JSON or YAML.
//
// The tree is fully ordered: fixed fields come out in a stable order per entity,
// extensions follow the fixed fields with their `x-` prefix restored, and every
// map sourced from unordered model data is emitted ascending by key. Rendering a
// valid model cannot fail, so the tree builders have no error channel.
package encode

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/davidroman0O/arazzo/model"
	"github.com/davidroman0O/arazzo/value"
)

// Tree is the ordered document tree a Description renders to. Leaves are nil,
// bool, int64, uint64, float64 and string; branches are []interface{} and *Tree.
type Tree = orderedmap.OrderedMap[string, interface{}]

// Description renders the root object.
func Description(d *model.Description) *Tree {
	tree := orderedmap.New[string, interface{}]()
	tree.Set("arazzo", d.Arazzo)
	if !d.Components.Empty() {
		tree.Set("components", components(d.Components))
	}
	tree.Set("info", info(d.Info))
	sources := make([]interface{}, 0, len(d.SourceDescriptions))
	for _, s := range d.SourceDescriptions {
		sources = append(sources, sourceDescription(s))
	}
	tree.Set("sourceDescriptions", sources)
	workflows := make([]interface{}, 0, len(d.Workflows))
	for _, w := range d.Workflows {
		workflows = append(workflows, workflow(w))
	}
	tree.Set("workflows", workflows)
	extensions(tree, d.Extensions)
	return tree
}

func info(i model.Info) *Tree {
	tree := orderedmap.New[string, interface{}]()
	setString(tree, "description", i.Description)
	setString(tree, "summary", i.Summary)
	tree.Set("title", i.Title)
	tree.Set("version", i.Version)
	extensions(tree, i.Extensions)
	return tree
}

func sourceDescription(s model.SourceDescription) *Tree {
	tree := orderedmap.New[string, interface{}]()
	tree.Set("name", s.Name)
	setString(tree, "type", s.Type)
	tree.Set("url", s.URL)
	extensions(tree, s.Extensions)
	return tree
}

func workflow(w model.Workflow) *Tree {
	tree := orderedmap.New[string, interface{}]()
	setStringList(tree, "dependsOn", w.DependsOn)
	setString(tree, "description", w.Description)
	setActionList(tree, "failureActions", w.FailureActions, failureAction)
	if w.Inputs != nil {
		tree.Set("inputs", genericTree(w.Inputs))
	}
	setOutputs(tree, w.Outputs)
	setParameterList(tree, w.Parameters)
	steps := make([]interface{}, 0, len(w.Steps))
	for _, s := range w.Steps {
		steps = append(steps, step(s))
	}
	tree.Set("steps", steps)
	setActionList(tree, "successActions", w.SuccessActions, successAction)
	setString(tree, "summary", w.Summary)
	tree.Set("workflowId", w.WorkflowID)
	extensions(tree, w.Extensions)
	return tree
}

func step(s model.Step) *Tree {
	tree := orderedmap.New[string, interface{}]()
	setString(tree, "description", s.Description)
	setActionList(tree, "onFailure", s.OnFailure, failureAction)
	setActionList(tree, "onSuccess", s.OnSuccess, successAction)
	setString(tree, "operationId", s.OperationID)
	setString(tree, "operationPath", s.OperationPath)
	setOutputs(tree, s.Outputs)
	setParameterList(tree, s.Parameters)
	if s.RequestBody != nil {
		tree.Set("requestBody", requestBody(*s.RequestBody))
	}
	tree.Set("stepId", s.StepID)
	setCriterionList(tree, "successCriteria", s.SuccessCriteria)
	setString(tree, "workflowId", s.WorkflowID)
	extensions(tree, s.Extensions)
	return tree
}

func parameter(p model.Parameter) *Tree {
	tree := orderedmap.New[string, interface{}]()
	setString(tree, "in", p.In)
	tree.Set("name", p.Name)
	tree.Set("value", literalOrExpression(p.Value))
	extensions(tree, p.Extensions)
	return tree
}

func successAction(a model.SuccessAction) *Tree {
	tree := orderedmap.New[string, interface{}]()
	setCriterionList(tree, "criteria", a.Criteria)
	tree.Set("name", a.Name)
	setString(tree, "stepId", a.StepID)
	tree.Set("type", a.Type)
	setString(tree, "workflowId", a.WorkflowID)
	extensions(tree, a.Extensions)
	return tree
}

func failureAction(a model.FailureAction) *Tree {
	tree := orderedmap.New[string, interface{}]()
	setCriterionList(tree, "criteria", a.Criteria)
	tree.Set("name", a.Name)
	if a.RetryAfter != nil {
		tree.Set("retryAfter", *a.RetryAfter)
	}
	if a.RetryLimit != nil {
		tree.Set("retryLimit", *a.RetryLimit)
	}
	setString(tree, "stepId", a.StepID)
	tree.Set("type", a.Type)
	setString(tree, "workflowId", a.WorkflowID)
	extensions(tree, a.Extensions)
	return tree
}

func reusableObject(r model.ReusableObject) *Tree {
	tree := orderedmap.New[string, interface{}]()
	tree.Set("reference", r.Reference)
	setString(tree, "value", r.Value)
	return tree
}

func criterion(c model.Criterion) *Tree {
	tree := orderedmap.New[string, interface{}]()
	tree.Set("condition", c.Condition)
	setString(tree, "context", c.Context)
	if c.Type != nil {
		if name, ok := c.Type.First(); ok {
			tree.Set("type", name)
		} else if full, ok := c.Type.Second(); ok {
			tree.Set("type", criterionExpressionType(full))
		}
	}
	extensions(tree, c.Extensions)
	return tree
}

func criterionExpressionType(t model.CriterionExpressionType) *Tree {
	tree := orderedmap.New[string, interface{}]()
	tree.Set("type", t.Type)
	tree.Set("version", t.Version)
	extensions(tree, t.Extensions)
	return tree
}

func requestBody(b model.RequestBody) *Tree {
	tree := orderedmap.New[string, interface{}]()
	setString(tree, "contentType", b.ContentType)
	if b.Payload != nil {
		tree.Set("payload", payload(b.Payload))
	}
	if len(b.Replacements) > 0 {
		replacements := make([]interface{}, 0, len(b.Replacements))
		for _, r := range b.Replacements {
			replacements = append(replacements, payloadReplacement(r))
		}
		tree.Set("replacements", replacements)
	}
	extensions(tree, b.Extensions)
	return tree
}

func payload(p model.Payload) interface{} {
	switch t := p.(type) {
	case model.EmptyPayload:
		return nil
	case model.StringPayload:
		return t.Text
	case model.StructuredPayload:
		return genericTree(t.Node)
	default:
		return nil
	}
}

func payloadReplacement(r model.PayloadReplacement) *Tree {
	tree := orderedmap.New[string, interface{}]()
	tree.Set("target", r.Target)
	tree.Set("value", literalOrExpression(r.Value))
	extensions(tree, r.Extensions)
	return tree
}

func components(c model.Components) *Tree {
	tree := orderedmap.New[string, interface{}]()
	setComponentMap(tree, "failureActions", c.FailureActions, failureAction)
	if len(c.Inputs) > 0 {
		inputs := orderedmap.New[string, interface{}]()
		for _, k := range sortedKeys(c.Inputs) {
			inputs.Set(k, genericTree(c.Inputs[k]))
		}
		tree.Set("inputs", inputs)
	}
	setComponentMap(tree, "parameters", c.Parameters, parameter)
	setComponentMap(tree, "successActions", c.SuccessActions, successAction)
	extensions(tree, c.Extensions)
	return tree
}

// literalOrExpression renders a literal dynamic value or passes an expression
// string through untouched.
func literalOrExpression(e value.Either[value.Value, string]) interface{} {
	if literal, ok := e.First(); ok {
		return valueTree(literal)
	}
	expression, _ := e.Second()
	return expression
}

// valueTree renders a dynamic value, with object fields ascending by key.
func valueTree(v value.Value) interface{} {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		return v.Bool()
	case value.KindInt:
		return v.Int()
	case value.KindUint:
		return v.Uint()
	case value.KindFloat:
		return v.Float()
	case value.KindString:
		return v.Str()
	case value.KindArray:
		items := make([]interface{}, 0, len(v.Items()))
		for _, item := range v.Items() {
			items = append(items, valueTree(item))
		}
		return items
	case value.KindObject:
		fields := v.Fields()
		tree := orderedmap.New[string, interface{}]()
		for _, k := range sortedKeys(fields) {
			tree.Set(k, valueTree(fields[k]))
		}
		return tree
	default:
		return nil
	}
}

// genericTree renders a generic JSON-compatible tree, with map entries ascending
// by key. Leaves pass through as-is.
func genericTree(node interface{}) interface{} {
	switch t := node.(type) {
	case map[string]interface{}:
		tree := orderedmap.New[string, interface{}]()
		for _, k := range sortedKeys(t) {
			tree.Set(k, genericTree(t[k]))
		}
		return tree
	case []interface{}:
		items := make([]interface{}, 0, len(t))
		for _, item := range t {
			items = append(items, genericTree(item))
		}
		return items
	default:
		return t
	}
}

// extensions appends specification extensions after the fixed fields, restoring
// the `x-` prefix, ascending by stripped name.
func extensions(tree *Tree, ext model.Extensions) {
	for _, k := range sortedKeys(ext) {
		tree.Set("x-"+k, valueTree(ext[k]))
	}
}

func setString(tree *Tree, key string, s *string) {
	if s != nil {
		tree.Set(key, *s)
	}
}

func setStringList(tree *Tree, key string, list []string) {
	if len(list) == 0 {
		return
	}
	items := make([]interface{}, 0, len(list))
	for _, s := range list {
		items = append(items, s)
	}
	tree.Set(key, items)
}

func setOutputs(tree *Tree, outputs map[string]string) {
	if len(outputs) == 0 {
		return
	}
	rendered := orderedmap.New[string, interface{}]()
	for _, k := range sortedKeys(outputs) {
		rendered.Set(k, outputs[k])
	}
	tree.Set("outputs", rendered)
}

func setCriterionList(tree *Tree, key string, criteria []model.Criterion) {
	if len(criteria) == 0 {
		return
	}
	items := make([]interface{}, 0, len(criteria))
	for _, c := range criteria {
		items = append(items, criterion(c))
	}
	tree.Set(key, items)
}

func setParameterList(tree *Tree, list []value.Either[model.Parameter, model.ReusableObject]) {
	if len(list) == 0 {
		return
	}
	items := make([]interface{}, 0, len(list))
	for _, entry := range list {
		if p, ok := entry.First(); ok {
			items = append(items, parameter(p))
		} else if r, ok := entry.Second(); ok {
			items = append(items, reusableObject(r))
		}
	}
	tree.Set("parameters", items)
}

func setActionList[T any](tree *Tree, key string, list []value.Either[T, model.ReusableObject], render func(T) *Tree) {
	if len(list) == 0 {
		return
	}
	items := make([]interface{}, 0, len(list))
	for _, entry := range list {
		if action, ok := entry.First(); ok {
			items = append(items, render(action))
		} else if r, ok := entry.Second(); ok {
			items = append(items, reusableObject(r))
		}
	}
	tree.Set(key, items)
}

func setComponentMap[T any](tree *Tree, key string, entries map[string]T, render func(T) *Tree) {
	if len(entries) == 0 {
		return
	}
	rendered := orderedmap.New[string, interface{}]()
	for _, k := range sortedKeys(entries) {
		rendered.Set(k, render(entries[k]))
	}
	tree.Set(key, rendered)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
