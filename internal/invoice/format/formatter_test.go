package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	issued := time.Date(2025, 4, 9, 10, 30, 0, 0, time.UTC)

	out, err := Number(DefaultNumberTemplate, issued, 7)
	require.NoError(t, err)
	assert.Equal(t, "GST-20250409-0007", out)

	out, err = Number("INV/{YY}-{SEQ}", issued, 123)
	require.NoError(t, err)
	assert.Equal(t, "INV/25-123", out)
}

func TestNumber_Errors(t *testing.T) {
	issued := time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC)

	_, err := Number("", issued, 1)
	assert.Error(t, err)

	_, err = Number("{SEQ}", issued, 0)
	assert.Error(t, err)

	_, err = Number("{UNKNOWN}-{SEQ}", issued, 1)
	assert.Error(t, err)
}
