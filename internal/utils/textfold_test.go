package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceAllFold(t *testing.T) {
	assert.Equal(t, "Paid to Ramesh Kumar", ReplaceAllFold("Paid to ramesh", "Ramesh", "Ramesh Kumar"))
	assert.Equal(t, "X and X", ReplaceAllFold("suresh and SURESH", "suresh", "X"))
	// Regex metacharacters in the old name are literals.
	assert.Equal(t, "B. Traders paid", ReplaceAllFold("A. Sons paid", "a. sons", "B. Traders"))
	assert.Equal(t, "unchanged", ReplaceAllFold("unchanged", "", "X"))
}
