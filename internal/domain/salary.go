package domain

import (
	"fmt"
	"math"
	"strconv"
)

// FormatSalary renders an optional salary range for display.
// Zero or negative bounds count as unknown.
func FormatSalary(minAmount, maxAmount *float64, period string) string {
	hasMin := minAmount != nil && *minAmount > 0
	hasMax := maxAmount != nil && *maxAmount > 0
	if period == "" {
		period = "year"
	}

	switch {
	case hasMin && hasMax:
		return fmt.Sprintf("%s - %s per %s", dollars(*minAmount), dollars(*maxAmount), period)
	case hasMin:
		return fmt.Sprintf("%s+ per %s", dollars(*minAmount), period)
	case hasMax:
		return fmt.Sprintf("Up to %s per %s", dollars(*maxAmount), period)
	default:
		return SalaryNotSpecified
	}
}

// dollars formats an amount truncated to whole units with thousands separators
func dollars(amount float64) string {
	n := int64(math.Trunc(amount))
	digits := strconv.FormatInt(n, 10)

	neg := false
	if n < 0 {
		neg = true
		digits = digits[1:]
	}

	out := make([]byte, 0, len(digits)+len(digits)/3+2)
	if neg {
		out = append(out, '-')
	}
	out = append(out, '$')
	for i := range len(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digits[i])
	}
	return string(out)
}
