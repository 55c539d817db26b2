package value

import "reflect"

// Either holds exactly one of two legal shapes for a single logical field. The Arazzo
// specification uses it wherever a field may carry either a literal value or a runtime
// expression string, and for criterion types that may be a short name or a full
// expression-type record. There is no third state: a zero Either holds the zero A.
type Either[A, B any] struct {
	second bool
	a      A
	b      B
}

// First creates an Either holding the first shape
func First[A, B any](a A) Either[A, B] {
	return Either[A, B]{a: a}
}

// Second creates an Either holding the second shape
func Second[A, B any](b B) Either[A, B] {
	return Either[A, B]{second: true, b: b}
}

// IsFirst returns true if the first shape is populated
func (e Either[A, B]) IsFirst() bool {
	return !e.second
}

// IsSecond returns true if the second shape is populated
func (e Either[A, B]) IsSecond() bool {
	return e.second
}

// First returns the first shape value and whether it is the populated branch
func (e Either[A, B]) First() (A, bool) {
	return e.a, !e.second
}

// Second returns the second shape value and whether it is the populated branch
func (e Either[A, B]) Second() (B, bool) {
	return e.b, e.second
}

// Equal returns true if the other Either holds the same branch with structurally
// equal contents
func (e Either[A, B]) Equal(o Either[A, B]) bool {
	if e.second != o.second {
		return false
	}
	if e.second {
		return reflect.DeepEqual(e.b, o.b)
	}
	return reflect.DeepEqual(e.a, o.a)
}
