package checksum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDCheckCode(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  byte
		valid bool
	}{
		{"digit code", "32012419870101001", '5', true},
		{"code one", "13052219840731647", '1', true},
		{"code ten is X", "11010519491231002", 'X', true},
		{"shenzhen", "44030419900101123", '3', true},
		{"too short", "3201241987010100", 0, false},
		{"too long", "320124198701010012", 0, false},
		{"empty", "", 0, false},
		{"leading zero", "02012419870101001", 0, false},
		{"letter inside", "3201241987010A001", 0, false},
		{"full width digit", "3201241987010100１", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := IDCheckCode(tt.body)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestIDCheckCodeDeterministic(t *testing.T) {
	first, ok := IDCheckCode("61010019900101001")
	require.True(t, ok)

	for i := 0; i < 10; i++ {
		again, ok := IDCheckCode("61010019900101001")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestValidIDNumber(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"320124198701010012", false},
		{"320124198701010015", true},
		{"130522198407316471", true},
		{"11010519491231002X", true},
		{"11010519491231002x", true},
		{"110105194912310021", false},
		{"13052219840731647A", false},
		{"13052219840731647", false},
		{"1305221984073164711", false},
		{"030522198407316471", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := ValidIDNumber(tt.id); got != tt.want {
				t.Errorf("ValidIDNumber(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestValidIDNumberRoundTrip(t *testing.T) {
	bodies := []string{
		"32012419870101001",
		"61010420000229002",
		"99999999999999999",
		"10000000000000000",
		"44030419900101123",
	}

	for _, body := range bodies {
		code, ok := IDCheckCode(body)
		require.True(t, ok, body)
		assert.True(t, ValidIDNumber(body+string(code)), body)
	}
}

func TestCheckIDNumber(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want error
	}{
		{"valid", "130522198407316471", nil},
		{"short", "13052219840731647", ErrInvalidLength},
		{"letter check char", "13052219840731647A", ErrInvalidFormat},
		{"symbol check char", "13052219840731647-", ErrInvalidFormat},
		{"non digit body", "1305221984073164A1", ErrInvalidFormat},
		{"lowercase x mismatch", "13052219840731647x", ErrMismatch},
		{"zero prefix", "030522198407316471", ErrInvalidFormat},
		{"wrong code", "320124198701010012", ErrMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckIDNumber(tt.id)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
