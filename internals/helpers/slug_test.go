package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Grace Fellowship":        "grace-fellowship",
		"  Kota  Baru  Church  ":  "kota-baru-church",
		"St. Peter's!!":           "st-peter-s",
		"---":                     "",
		"":                        "",
		"UPPER case 123":          "upper-case-123",
		"multi   space -- dashes": "multi-space-dashes",
	}
	for in, want := range cases {
		assert.Equal(t, want, GenerateSlug(in), "input %q", in)
	}
}

func TestCutToLen(t *testing.T) {
	assert.Equal(t, "abc", cutToLen("abc", 10))
	assert.Equal(t, "ab", cutToLen("abcd", 2))
	// never end on a dangling dash after the cut
	assert.Equal(t, "ab", cutToLen("ab-cd", 3))
	assert.Equal(t, "abc", cutToLen("abc", 0))
}
