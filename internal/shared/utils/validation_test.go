package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateString(t *testing.T) {
	assert.Error(t, ValidateString("", "area", 1, 10, true))
	assert.NoError(t, ValidateString("", "area", 1, 10, false))
	assert.NoError(t, ValidateString("西安市", "area", 1, 3, true))
	assert.Error(t, ValidateString("西安市区", "area", 1, 3, true))
	assert.Error(t, ValidateString("a\x00b", "area", 1, 10, true))
}

func TestValidateToolID(t *testing.T) {
	assert.NoError(t, ValidateToolID("data.idcard.validate", "tool_id", true))
	assert.Error(t, ValidateToolID("data idcard", "tool_id", true))
	assert.Error(t, ValidateToolID("", "tool_id", true))
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("app_123", "app_id", true))
	assert.Error(t, ValidateID("app.123", "app_id", true))
}

func TestValidateNumber(t *testing.T) {
	assert.NoError(t, ValidateNumber("11010519491231002X", "number"))
	assert.NoError(t, ValidateNumber("4391880006990109", "number"))
	assert.Error(t, ValidateNumber("4391-8800", "number"))
	assert.Error(t, ValidateNumber("X", "number"))
	assert.Error(t, ValidateNumber(strings.Repeat("1", MaxNumberLength+1), "number"))
}

func TestJSONSizeValidator(t *testing.T) {
	v := NewJSONSizeValidator(8)
	assert.NoError(t, v.ValidateJSON([]byte(`{"a":1}`)))
	assert.Error(t, v.ValidateJSON([]byte(`{"abc":123}`)))
	assert.Error(t, DefaultJSONValidator().ValidateJSON([]byte(`{`)))
}

func TestValidateParams(t *testing.T) {
	assert.NoError(t, ValidateParams(map[string]interface{}{"body": "439188000699010"}))

	deep := map[string]interface{}{}
	cur := deep
	for i := 0; i < 15; i++ {
		next := map[string]interface{}{}
		cur["n"] = next
		cur = next
	}
	assert.Error(t, ValidateParams(deep))
}
