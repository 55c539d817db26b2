package model

import (
	"bytes"
	"encoding/json"
)

// Payload is a request body payload normalized from the different shapes it can
// arrive in (absent/null, raw text, or a structured node)
type Payload interface {
	// Bytes returns the UTF-8 encoding of the payload's string form
	Bytes() []byte

	// String returns the payload as a string
	String() string

	// Structured returns the payload as a generic structured node if the source
	// payload was itself structured, otherwise false
	Structured() (interface{}, bool)
}

// EmptyPayload is a payload that was present in the document but null
type EmptyPayload struct{}

// Bytes implements Payload.Bytes
func (p EmptyPayload) Bytes() []byte {
	return []byte{}
}

// String implements Payload.String
func (p EmptyPayload) String() string {
	return ""
}

// Structured implements Payload.Structured
func (p EmptyPayload) Structured() (interface{}, bool) {
	return nil, false
}

// StringPayload is a payload taken verbatim as text. The text is never reinterpreted,
// even if it looks structured.
type StringPayload struct {
	Text string
}

// Bytes implements Payload.Bytes
func (p StringPayload) Bytes() []byte {
	return []byte(p.Text)
}

// String implements Payload.String
func (p StringPayload) String() string {
	return p.Text
}

// Structured implements Payload.Structured
func (p StringPayload) Structured() (interface{}, bool) {
	return nil, false
}

// StructuredPayload is a payload captured as a generic JSON-compatible node, used
// when the source payload was an object, array, number or boolean
type StructuredPayload struct {
	Node interface{}
}

// Bytes implements Payload.Bytes
func (p StructuredPayload) Bytes() []byte {
	return []byte(p.String())
}

// String implements Payload.String. It renders the canonical compact JSON text of
// the captured node (object keys sorted).
func (p StructuredPayload) String() string {
	data, err := json.Marshal(p.Node)
	if err != nil {
		return ""
	}
	return string(data)
}

// Structured implements Payload.Structured
func (p StructuredPayload) Structured() (interface{}, bool) {
	return p.Node, true
}

// Equal returns true if the other request body carries the same content type,
// extensions, replacement list and payload content. Payloads are compared by their
// byte rendering, not by which variant produced the bytes, so differently shaped
// payloads are equal when their renderings coincide exactly.
func (r *RequestBody) Equal(o *RequestBody) bool {
	if r == nil || o == nil {
		return r == o
	}
	if !stringPtrEqual(r.ContentType, o.ContentType) {
		return false
	}
	if !extensionsEqual(r.Extensions, o.Extensions) {
		return false
	}
	if len(r.Replacements) != len(o.Replacements) {
		return false
	}
	for i := range r.Replacements {
		if !r.Replacements[i].Equal(o.Replacements[i]) {
			return false
		}
	}
	if r.Payload == nil || o.Payload == nil {
		return r.Payload == nil && o.Payload == nil
	}
	return bytes.Equal(r.Payload.Bytes(), o.Payload.Bytes())
}

// Equal returns true if the other replacement targets the same location with a
// structurally equal value and extensions
func (p PayloadReplacement) Equal(o PayloadReplacement) bool {
	return p.Target == o.Target &&
		p.Value.Equal(o.Value) &&
		extensionsEqual(p.Extensions, o.Extensions)
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func extensionsEqual(a, b Extensions) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		other, ok := b[k]
		if !ok || !v.Equal(other) {
			return false
		}
	}
	return true
}
