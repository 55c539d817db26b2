// Package decode converts parsed JSON or YAML document trees into the typed Arazzo
// model, enforcing the required-field, non-empty-list and variant-discrimination
// rules of the specification. The two loaders apply identical rules; loading a YAML
// document and its semantically equivalent JSON document yields equal models.
package decode

// Fixed-fields sections of the Arazzo specification cited by loader errors.
const (
	specDescription        = "4.6.1.1 Fixed Fields"
	specInfo               = "4.6.2.1 Fixed Fields"
	specSourceDescription  = "4.6.3.1 Fixed Fields"
	specWorkflow           = "4.6.4.1 Fixed Fields"
	specStep               = "4.6.5.1 Fixed Fields"
	specParameter          = "4.6.6.1 Fixed Fields"
	specSuccessAction      = "4.6.7.1 Fixed Fields"
	specFailureAction      = "4.6.8.1 Fixed Fields"
	specReusable           = "4.6.10.1 Fixed Fields"
	specCriterion          = "4.6.11.1 Fixed Fields"
	specRequestBody        = "4.6.13.1 Fixed Fields"
	specPayloadReplacement = "4.6.14.1 Fixed Fields"
)
