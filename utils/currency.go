package utils

import (
	"strconv"
)

// FormatRupees formats a whole amount with Indian digit grouping.
// Example: 1234567 -> "Rs 12,34,567"
func FormatRupees(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return "Rs " + sign + digits
	}

	// last three digits form one group, the rest go in pairs
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var grouped []byte
	for i, d := range []byte(head) {
		if i > 0 && (len(head)-i)%2 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}
	return "Rs " + sign + string(grouped) + "," + tail
}
