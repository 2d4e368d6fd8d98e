package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnyBlank(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   bool
	}{
		{"none", nil, false},
		{"all filled", []string{"a", "b"}, false},
		{"empty element", []string{"a", ""}, true},
		{"whitespace element", []string{" \t\n", "b"}, true},
		{"padded value", []string{" a "}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnyBlank(tt.values...))
		})
	}
}

func TestAllSafe(t *testing.T) {
	assert.True(t, AllSafe("abc", "123", "_,-.|"))
	assert.False(t, AllSafe("abc", "12 3"))
	assert.False(t, AllSafe("abc", "#"))
	assert.False(t, AllSafe("中文"))
	assert.False(t, AllSafe())
	assert.False(t, AllSafe(""))
}

func TestAllDigits(t *testing.T) {
	assert.True(t, AllDigits("123", "0"))
	assert.True(t, AllDigits())
	assert.False(t, AllDigits("123", "12a"))
	assert.False(t, AllDigits("123", ""))
	assert.False(t, AllDigits("-1"))
}

func TestAllLetters(t *testing.T) {
	assert.True(t, AllLetters("abc", "XYZ"))
	assert.True(t, AllLetters("中文"))
	assert.False(t, AllLetters("abc1"))
	assert.False(t, AllLetters("a b"))
	assert.False(t, AllLetters(""))
}

func TestContainsClass(t *testing.T) {
	tests := []struct {
		s     string
		class CharClass
		want  bool
	}{
		{"meiyouzhongwen", CharChinese, false},
		{"有zhongwen", CharChinese, true},
		{"nonnumberstring", CharDigit, false},
		{"number123", CharDigit, true},
		{"１２３", CharDigit, false},
		{"number123", CharClass("emoji"), false},
		{"", CharChinese, false},
	}

	for _, tt := range tests {
		t.Run(tt.s+"/"+string(tt.class), func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsClass(tt.s, tt.class))
		})
	}
}
