package phrases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"feedback-analyzer/phrases"
)

func TestClassifyMultipleCategories(t *testing.T) {
	// A single response can land in several categories at once.
	c := phrases.Classify("Great app but there is a critical bug, I suggest fixing it")
	assert.True(t, c.Praise)
	assert.True(t, c.Bug)
	assert.True(t, c.Suggestion)
	assert.True(t, c.Urgent)
}

func TestClassifyNoMatch(t *testing.T) {
	c := phrases.Classify("the weather was mild on tuesday")
	assert.False(t, c.Praise)
	assert.False(t, c.Bug)
	assert.False(t, c.Suggestion)
	assert.False(t, c.Urgent)
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := phrases.Classify("ABSOLUTELY BROKEN AND FRUSTRATING")
	assert.True(t, c.Bug)
	assert.False(t, c.Praise)
}

func TestIsDemographic(t *testing.T) {
	demographic := []string{
		"I am 34 years old",
		"gender: female",
		"I live in Berlin, moved here last spring",
		"My job is backend engineering",
		"10 years of experience with databases",
	}
	for _, text := range demographic {
		assert.True(t, phrases.IsDemographic(text), "text %q", text)
	}

	assert.False(t, phrases.IsDemographic("the export button crashes the page"))
}
