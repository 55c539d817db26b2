package value

import "strings"

// ExpressionPrefix is the sigil character that disambiguates a runtime expression
// string from a literal string
const ExpressionPrefix = "$"

// IsExpression returns true if the string scalar encodes a runtime expression. The
// rule is exact: a leading `$` and nothing else.
func IsExpression(s string) bool {
	return strings.HasPrefix(s, ExpressionPrefix)
}
