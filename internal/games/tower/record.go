package tower

import (
	"strconv"
	"strings"
	"unicode"
)

// SlotStore is durable key-value storage for a single named slot.
// The high score lives in one slot as a decimal string.
type SlotStore interface {
	// GetSlot returns the stored value; ok is false if the slot was never written.
	GetSlot(key string) (value string, ok bool, err error)

	// SetSlot stores value under key, replacing any previous value.
	SetSlot(key, value string) error
}

// ParseRecord decodes a persisted high score. Leading whitespace is skipped and
// the leading run of digits is read, so "12abc" and "12.5" read as 12.
// Values without leading digits, negative values and overflows read as 0.
func ParseRecord(value string) int {
	value = strings.TrimLeftFunc(value, unicode.IsSpace)
	value = strings.TrimPrefix(value, "+")

	end := strings.IndexFunc(value, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(value)
	}

	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return 0
	}
	return n
}

// FormatRecord encodes a high score for storage.
func FormatRecord(floor int) string {
	return strconv.Itoa(floor)
}
