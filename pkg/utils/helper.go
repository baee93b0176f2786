package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value. Non-numeric and
// non-positive input falls back to the default, which is how quantity
// fields are coerced to a minimum of 1.
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseID converts a route or query parameter to an int64 id.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}

// FormatRupiah renders a price the way the receipts do: "Rp 12.500"
// with dots as thousand separators, no decimals.
func FormatRupiah(amount float64) string {
	whole := int64(amount)
	digits := strconv.FormatInt(whole, 10)

	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	var b strings.Builder
	pre := len(digits) % 3
	if pre > 0 {
		b.WriteString(digits[:pre])
	}
	for i := pre; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	if negative {
		return "Rp -" + b.String()
	}
	return "Rp " + b.String()
}
