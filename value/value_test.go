package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindNames(t *testing.T) {
	assert.Equal(t, "Null", KindNull.String())
	assert.Equal(t, "Boolean", KindBool.String())
	assert.Equal(t, "Integer", KindInt.String())
	assert.Equal(t, "UInteger", KindUint.String())
	assert.Equal(t, "Float", KindFloat.String())
	assert.Equal(t, "String", KindString.String())
	assert.Equal(t, "Array", KindArray.String())
	assert.Equal(t, "Object", KindObject.String())
}

func TestConstructorsAndAccessors(t *testing.T) {
	assert.True(t, NullValue().IsNull())
	assert.Equal(t, KindNull, NullValue().Kind())

	v := BoolValue(true)
	assert.Equal(t, KindBool, v.Kind())
	assert.True(t, v.Bool())

	v = IntValue(-42)
	assert.Equal(t, KindInt, v.Kind())
	assert.Equal(t, int64(-42), v.Int())

	v = UintValue(42)
	assert.Equal(t, KindUint, v.Kind())
	assert.Equal(t, uint64(42), v.Uint())

	v = FloatValue(1.5)
	assert.Equal(t, KindFloat, v.Kind())
	assert.Equal(t, 1.5, v.Float())

	v = StringValue("hello")
	assert.Equal(t, KindString, v.Kind())
	assert.Equal(t, "hello", v.Str())

	v = ArrayValue([]Value{IntValue(-1), StringValue("two")})
	assert.Equal(t, KindArray, v.Kind())
	assert.Len(t, v.Items(), 2)

	v = ObjectValue(map[string]Value{"a": BoolValue(false)})
	assert.Equal(t, KindObject, v.Kind())
	assert.Len(t, v.Fields(), 1)
}

func TestEqualSameKind(t *testing.T) {
	assert.True(t, NullValue().Equal(NullValue()))
	assert.True(t, StringValue("x").Equal(StringValue("x")))
	assert.False(t, StringValue("x").Equal(StringValue("y")))
	assert.True(t, UintValue(7).Equal(UintValue(7)))
	assert.False(t, UintValue(7).Equal(UintValue(8)))
}

func TestEqualDistinguishesNumericKinds(t *testing.T) {
	// a signed and an unsigned integer are different values even when the
	// magnitude matches
	assert.False(t, IntValue(7).Equal(UintValue(7)))
	assert.False(t, UintValue(7).Equal(FloatValue(7)))
}

func TestEqualDeep(t *testing.T) {
	a := ObjectValue(map[string]Value{
		"list": ArrayValue([]Value{UintValue(1), StringValue("two")}),
		"flag": BoolValue(true),
	})
	b := ObjectValue(map[string]Value{
		"flag": BoolValue(true),
		"list": ArrayValue([]Value{UintValue(1), StringValue("two")}),
	})
	assert.True(t, a.Equal(b))

	c := ObjectValue(map[string]Value{
		"flag": BoolValue(true),
		"list": ArrayValue([]Value{UintValue(1), StringValue("three")}),
	})
	assert.False(t, a.Equal(c))
}

func TestStringRendersSortedKeys(t *testing.T) {
	v := ObjectValue(map[string]Value{
		"b": UintValue(2),
		"a": UintValue(1),
	})
	assert.Equal(t, `{"a": 1, "b": 2}`, v.String())
}

func TestIsExpression(t *testing.T) {
	assert.True(t, IsExpression("$inputs.username"))
	assert.True(t, IsExpression("$response.body#/id"))
	assert.False(t, IsExpression("plain"))
	assert.False(t, IsExpression(""))
	assert.False(t, IsExpression("a$b"))
}
