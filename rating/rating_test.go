package rating_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"feedback-analyzer/rating"
)

func TestNormalizeDirectScale(t *testing.T) {
	for v := 1; v <= 5; v++ {
		n, ok := rating.Normalize(strconv.Itoa(v))
		assert.True(t, ok)
		assert.Equal(t, v, n)
	}
}

func TestNormalizeTenPointScale(t *testing.T) {
	expected := map[string]int{
		"6":  3,
		"7":  4, // round(3.5) away from zero
		"8":  4,
		"9":  5, // round(4.5) away from zero
		"10": 5,
	}
	for raw, want := range expected {
		n, ok := rating.Normalize(raw)
		assert.True(t, ok, "value %s", raw)
		assert.Equal(t, want, n, "value %s", raw)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 5)
	}
}

func TestNormalizeOutOfDomain(t *testing.T) {
	for _, raw := range []string{"11", "0", "-3", "100", "abc-not-a-phrase", ""} {
		_, ok := rating.Normalize(raw)
		assert.False(t, ok, "value %q", raw)
	}
}

func TestNormalizeFractionalDirectValueRejected(t *testing.T) {
	// Fractional values on the 1-5 branch are not rounded; they are
	// rejected outright.
	_, ok := rating.Normalize("4.5")
	assert.False(t, ok)
}

func TestNormalizePhrases(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"Very Satisfied", 5},
		{"Satisfied", 4},
		{"Excellent", 4},
		{"Strongly Agree", 5},
		{"Agree", 4},
		{"Very Dissatisfied", 1},
		{"Dissatisfied", 2},
		{"Strongly Disagree", 1},
		{"Poor", 2},
		{"Neutral", 3},
		{"Okay", 3},
	}
	for _, tc := range cases {
		n, ok := rating.Normalize(tc.raw)
		assert.True(t, ok, "value %q", tc.raw)
		assert.Equal(t, tc.want, n, "value %q", tc.raw)
	}
}

func TestNormalizePositiveWinsTieBreak(t *testing.T) {
	// A value containing both a positive and a negative phrase resolves
	// through the positive set first.
	n, ok := rating.Normalize("good but bad")
	assert.True(t, ok)
	assert.Equal(t, 4, n)
}
