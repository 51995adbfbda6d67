package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations(t *testing.T) {
	require.NoError(t, Initialize("ko"))

	assert.Equal(t, "Device not found", T("en", KeyDeviceNotFound))
	assert.Equal(t, "기기를 찾을 수 없습니다", T("ko", KeyDeviceNotFound))
	assert.Equal(t, "Invalid input", T("en", KeyValidationInvalid, "input"))

	// Unknown language falls back to the default, unknown keys to the key itself.
	assert.Equal(t, T("ko", KeyAuthRequired), T("fr", KeyAuthRequired))
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))

	assert.ElementsMatch(t, []string{"en", "ko"}, GetSupportedLanguages())
}
