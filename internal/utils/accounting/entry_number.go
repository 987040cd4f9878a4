package accounting

import "fmt"

// DefaultEntryNumberWidth is the zero-padded width of the sequence part
// of an entry number, e.g. JE-2025-0001.
const DefaultEntryNumberWidth = 4

// FormatEntryNumber renders the entry number for a fiscal year and an
// allocated sequence value.
func FormatEntryNumber(fiscalYear int, sequence int64, width int) string {
	if width <= 0 {
		width = DefaultEntryNumberWidth
	}
	return fmt.Sprintf("JE-%d-%0*d", fiscalYear, width, sequence)
}

// ValidAccountCode reports whether code is an all-digit string of the
// configured length.
func ValidAccountCode(code string, length int) bool {
	if len(code) != length {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
