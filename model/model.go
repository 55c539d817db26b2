// Package model holds the typed in-memory model of an Arazzo workflow description.
// Instances are produced by the decode package and consumed by the encode package;
// the model itself performs no I/O and holds no shared mutable state.
package model

import (
	"github.com/davidroman0O/arazzo/value"
)

// Extensions maps a specification-extension name (with the `x-` prefix stripped)
// to its dynamic value
type Extensions = map[string]value.Value

// Description is the root object of a loaded Arazzo document
type Description struct {
	// Arazzo is the version number of the Arazzo Specification that the document uses
	Arazzo string `json:"arazzo"`

	// Info provides metadata about the workflows
	Info Info `json:"info"`

	// SourceDescriptions lists the source documents the workflows operate against
	SourceDescriptions []SourceDescription `json:"sourceDescriptions"`

	// Workflows is the ordered list of workflows described by the document
	Workflows []Workflow `json:"workflows"`

	// Components holds reusable objects addressable from the workflows
	Components Components `json:"components,omitempty"`

	// Extensions holds the specification extensions attached to the root object
	Extensions Extensions `json:"-"`
}

// Info provides metadata about the workflows defined in a document
type Info struct {
	Title       string     `json:"title"`
	Summary     *string    `json:"summary,omitempty"`
	Description *string    `json:"description,omitempty"`
	Version     string     `json:"version"`
	Extensions  Extensions `json:"-"`
}

// SourceDescription describes a source document (such as an OpenAPI description)
// that the workflows apply to
type SourceDescription struct {
	Name       string     `json:"name"`
	URL        string     `json:"url"`
	Type       *string    `json:"type,omitempty"`
	Extensions Extensions `json:"-"`
}

// Workflow describes the steps needed to accomplish an orchestrated set of API calls
type Workflow struct {
	WorkflowID  string  `json:"workflowId"`
	Summary     *string `json:"summary,omitempty"`
	Description *string `json:"description,omitempty"`

	// Inputs is the free-form JSON Schema node constraining the workflow inputs.
	// It is kept as a generic JSON-compatible tree, not a dynamic value, because it
	// represents an externally defined schema rather than specification data.
	Inputs interface{} `json:"inputs,omitempty"`

	// DependsOn lists workflows that must complete before this one can run
	DependsOn []string `json:"dependsOn,omitempty"`

	// Steps is the ordered, non-empty list of workflow steps
	Steps []Step `json:"steps"`

	SuccessActions []value.Either[SuccessAction, ReusableObject] `json:"successActions,omitempty"`
	FailureActions []value.Either[FailureAction, ReusableObject] `json:"failureActions,omitempty"`

	// Outputs maps output names to runtime expressions
	Outputs map[string]string `json:"outputs,omitempty"`

	Parameters []value.Either[Parameter, ReusableObject] `json:"parameters,omitempty"`

	Extensions Extensions `json:"-"`
}

// Step describes a single workflow step, normally a call to an API operation
type Step struct {
	StepID        string  `json:"stepId"`
	Description   *string `json:"description,omitempty"`
	OperationID   *string `json:"operationId,omitempty"`
	OperationPath *string `json:"operationPath,omitempty"`
	WorkflowID    *string `json:"workflowId,omitempty"`

	Parameters []value.Either[Parameter, ReusableObject] `json:"parameters,omitempty"`

	RequestBody *RequestBody `json:"requestBody,omitempty"`

	// SuccessCriteria are the assertions used to determine the step succeeded
	SuccessCriteria []Criterion `json:"successCriteria,omitempty"`

	OnSuccess []value.Either[SuccessAction, ReusableObject] `json:"onSuccess,omitempty"`
	OnFailure []value.Either[FailureAction, ReusableObject] `json:"onFailure,omitempty"`

	// Outputs maps output names to runtime expressions
	Outputs map[string]string `json:"outputs,omitempty"`

	Extensions Extensions `json:"-"`
}

// Parameter describes a single parameter to pass to an operation or workflow
type Parameter struct {
	Name string  `json:"name"`
	In   *string `json:"in,omitempty"`

	// Value is either a literal dynamic value or a runtime expression string
	Value value.Either[value.Value, string] `json:"value"`

	Extensions Extensions `json:"-"`
}

// SuccessAction describes an action to take when a step succeeds
type SuccessAction struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	WorkflowID *string `json:"workflowId,omitempty"`
	StepID     *string `json:"stepId,omitempty"`

	// Criteria are the assertions that must pass for the action to be executed
	Criteria []Criterion `json:"criteria,omitempty"`

	Extensions Extensions `json:"-"`
}

// FailureAction describes an action to take when a step fails
type FailureAction struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	WorkflowID *string `json:"workflowId,omitempty"`
	StepID     *string `json:"stepId,omitempty"`

	// RetryAfter is the number of seconds to delay before retrying
	RetryAfter *float64 `json:"retryAfter,omitempty"`

	// RetryLimit is the maximum number of retry attempts
	RetryLimit *int64 `json:"retryLimit,omitempty"`

	// Criteria are the assertions that must pass for the action to be executed
	Criteria []Criterion `json:"criteria,omitempty"`

	Extensions Extensions `json:"-"`
}

// ReusableObject points, by runtime expression, to a reusable object defined in the
// components section. It is discriminated from the primary shape of a list entry by
// the presence of a `reference` key.
type ReusableObject struct {
	Reference string  `json:"reference"`
	Value     *string `json:"value,omitempty"`
}

// Criterion is an assertion used to determine the success or failure of a step
type Criterion struct {
	Context   *string `json:"context,omitempty"`
	Condition string  `json:"condition"`

	// Type is either a short criterion type name or a full expression-type record
	Type *value.Either[string, CriterionExpressionType] `json:"type,omitempty"`

	Extensions Extensions `json:"-"`
}

// CriterionExpressionType names the expression flavour and version a criterion
// condition is written in
type CriterionExpressionType struct {
	Type       string     `json:"type"`
	Version    string     `json:"version"`
	Extensions Extensions `json:"-"`
}

// RequestBody describes the request body to pass with an operation call
type RequestBody struct {
	ContentType *string `json:"contentType,omitempty"`

	// Payload is nil when the document carries no payload field at all
	Payload Payload `json:"payload,omitempty"`

	Replacements []PayloadReplacement `json:"replacements,omitempty"`

	Extensions Extensions `json:"-"`
}

// PayloadReplacement describes a located value substitution within a payload
type PayloadReplacement struct {
	// Target is a JSON Pointer or XPath expression locating the value to replace
	Target string `json:"target"`

	// Value is either a literal dynamic value or a runtime expression string
	Value value.Either[value.Value, string] `json:"value"`

	Extensions Extensions `json:"-"`
}

// Components holds reusable objects, each addressable by the key it is stored under
type Components struct {
	// Inputs maps names to reusable JSON Schema nodes for workflow inputs
	Inputs map[string]interface{} `json:"inputs,omitempty"`

	Parameters     map[string]Parameter     `json:"parameters,omitempty"`
	SuccessActions map[string]SuccessAction `json:"successActions,omitempty"`
	FailureActions map[string]FailureAction `json:"failureActions,omitempty"`

	Extensions Extensions `json:"-"`
}

// Empty returns true if the components section holds nothing worth emitting
func (c Components) Empty() bool {
	return len(c.Inputs) == 0 &&
		len(c.Parameters) == 0 &&
		len(c.SuccessActions) == 0 &&
		len(c.FailureActions) == 0 &&
		len(c.Extensions) == 0
}
