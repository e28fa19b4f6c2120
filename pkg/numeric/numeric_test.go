package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFloat(t *testing.T) {
	assert.Equal(t, 50.0, ToFloat("50"))
	assert.Equal(t, 30.0, ToFloat(30))
	assert.Equal(t, 12.5, ToFloat(" 12.5 "))
	assert.Equal(t, 7.0, ToFloat(int64(7)))
	assert.Equal(t, 0.0, ToFloat("not a number"))
	assert.Equal(t, 0.0, ToFloat(nil))
	assert.Equal(t, 0.0, ToFloat(map[string]interface{}{}))
}

func TestToFloatOK(t *testing.T) {
	_, ok := ToFloatOK("abc")
	assert.False(t, ok)

	f, ok := ToFloatOK("4.5")
	assert.True(t, ok)
	assert.Equal(t, 4.5, f)
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool("true"))
	assert.False(t, ToBool("yes"))
	assert.False(t, ToBool(nil))
	assert.False(t, ToBool(1))
}

func TestFirstFloat(t *testing.T) {
	doc := map[string]interface{}{
		"amount": "not numeric",
		"fare":   "80",
		"price":  100,
	}
	assert.Equal(t, 80.0, FirstFloat(doc, "amount", "fare", "price"))
	assert.Equal(t, 0.0, FirstFloat(doc, "missing"))
}
