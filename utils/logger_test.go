package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratecard/utils"
)

func TestOpenDailyLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	now := time.Date(2025, time.February, 14, 8, 0, 0, 0, time.UTC)

	f, err := utils.OpenDailyLogFile(dir, now)
	require.NoError(t, err)
	_, err = f.WriteString("first\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = utils.OpenDailyLogFile(dir, now)
	require.NoError(t, err)
	_, err = f.WriteString("second\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(filepath.Join(dir, "app-2025-02-14.log"))
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}
