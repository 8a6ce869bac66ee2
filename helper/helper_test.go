package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUpperAlnum(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"LAB", true},
		{"P001", true},
		{"", false},
		{"lab", false},
		{"P-001", false},
		{"P 001", false},
		{"PÄ1", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsUpperAlnum(tt.in), tt.in)
	}
}

func TestIsDigitsOfLength(t *testing.T) {
	assert.True(t, IsDigitsOfLength("401234567890", 12, 13))
	assert.True(t, IsDigitsOfLength("4012345678901", 12, 13))
	assert.False(t, IsDigitsOfLength("40123456789", 12, 13))
	assert.False(t, IsDigitsOfLength("40123456789A", 12, 13))
	assert.False(t, IsDigitsOfLength("+40123456789", 12, 13))
	assert.False(t, IsDigits(""))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "MED123456", SanitizeFilename("MED123456"))
	assert.Equal(t, "LAB-P001-S123", SanitizeFilename("LAB-P001-S123"))
	assert.Equal(t, "a__b_c", SanitizeFilename("a\r\nb\"c"))
	assert.Equal(t, "x_y", SanitizeFilename("x;y"))

	header, name := ContentDisposition("code128", "evil\r\nSet-Cookie: a=b")
	assert.Equal(t, "code128_evil__Set-Cookie__a_b.png", name)
	assert.Equal(t, `inline; filename="code128_evil__Set-Cookie__a_b.png"`, header)
	assert.NotContains(t, header, "\n")
}

func TestResolveVersion(t *testing.T) {
	assert.Equal(t, DefaultVersion, ResolveVersion(""))
	assert.Equal(t, DefaultVersion, ResolveVersion("not-a-version"))
	assert.Equal(t, "1.2.3", ResolveVersion("v1.2.3"))
	assert.Equal(t, "2.0.0-rc.1", ResolveVersion("2.0.0-rc.1"))
}
