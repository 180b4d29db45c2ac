package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Road Works Begin", "road-works-begin"},
		{"  Café   Opening!! ", "cafe-opening"},
		{"Jallikattu 2026: Alanganallur", "jallikattu-2026-alanganallur"},
		{"---", ""},
		{"சித்திரை திருவிழா", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Make(tt.in), tt.in)
	}
}

func TestMake_Truncates(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "madurai "
	}
	got := Make(long)
	assert.LessOrEqual(t, len(got), maxLen)
	assert.True(t, IsValid(got))
}

func TestWithID(t *testing.T) {
	assert.Equal(t, "road-works-begin-3f2a9c1e", WithID("Road Works Begin", "3f2a9c1e-1111-2222-3333-444455556666"))
	assert.Equal(t, "item-3f2a9c1e", WithID("சித்திரை திருவிழா", "3f2a9c1e-1111-2222-3333-444455556666"))
	assert.Equal(t, "road-works", WithID("Road Works", ""))
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("road-works-begin-3f2a9c1e"))
	assert.False(t, IsValid("Road Works"))
	assert.False(t, IsValid("-road"))
	assert.False(t, IsValid(""))
}
