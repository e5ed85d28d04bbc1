// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationFallbackChain(t *testing.T) {
	require.NoError(t, Initialize("./locales"))

	// Known key in both languages
	assert.NotEmpty(t, T("en", KeyAuthRequired))
	assert.NotEmpty(t, T("zh_TW", KeyAuthRequired))

	// Unknown language falls back to English
	assert.Equal(t, T("en", KeyAuthRequired), T("fr", KeyAuthRequired))

	// Unknown key falls back to the key itself
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))
}

func TestTranslationWithArguments(t *testing.T) {
	require.NoError(t, Initialize("./locales"))

	msg := T("en", KeyValidationInvalid, "input")
	assert.NotEmpty(t, msg)
	assert.NotEqual(t, KeyValidationInvalid, msg)
}
