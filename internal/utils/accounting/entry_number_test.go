package accounting_test

import (
	"testing"

	"github.com/accubooks/ledger_backend/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestFormatEntryNumber(t *testing.T) {
	assert.Equal(t, "JE-2025-0001", accounting.FormatEntryNumber(2025, 1, 4))
	assert.Equal(t, "JE-2025-0042", accounting.FormatEntryNumber(2025, 42, 4))
	assert.Equal(t, "JE-2024-10000", accounting.FormatEntryNumber(2024, 10000, 4))
	// Zero or negative width falls back to the default.
	assert.Equal(t, "JE-2025-0007", accounting.FormatEntryNumber(2025, 7, 0))
	assert.Equal(t, "JE-2025-000013", accounting.FormatEntryNumber(2025, 13, 6))
}

func TestValidAccountCode(t *testing.T) {
	assert.True(t, accounting.ValidAccountCode("241000", 6))
	assert.False(t, accounting.ValidAccountCode("24100", 6))
	assert.False(t, accounting.ValidAccountCode("24100a", 6))
	assert.False(t, accounting.ValidAccountCode("", 6))
	assert.True(t, accounting.ValidAccountCode("1000", 4))
}
