package reporting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSearchTerm(t *testing.T) {
	_, err := ValidateSearchTerm("a")
	assert.Error(t, err, "single-character query is rejected")

	term, err := ValidateSearchTerm("ab")
	require.NoError(t, err, "two characters is the minimum accepted length")
	assert.Equal(t, "ab", term)

	term, err = ValidateSearchTerm("  jane  ")
	require.NoError(t, err)
	assert.Equal(t, "jane", term)

	_, err = ValidateSearchTerm(strings.Repeat("x", 101))
	assert.Error(t, err)

	term, err = ValidateSearchTerm(strings.Repeat("x", 100))
	require.NoError(t, err)
	assert.Len(t, term, 100)

	_, err = ValidateSearchTerm("   ")
	assert.Error(t, err, "whitespace-only query is rejected after trimming")
}
