// Package numword renders integer rupee amounts as words in the Indian
// numbering system (crore, lakh, thousand).
package numword

import "strings"

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

const (
	crore = 1_00_00_000
	lakh  = 1_00_000
)

// ToWords converts a whole rupee amount to words, suffixed with " Only".
// Fractional amounts must be rounded by the caller.
func ToWords(amount int64) string {
	if amount == 0 {
		return "Zero Only"
	}
	if amount < 0 {
		return "Negative " + ToWords(-amount)
	}

	var b strings.Builder
	crores := amount / crore
	amount %= crore
	lakhs := amount / lakh
	amount %= lakh
	thousands := amount / 1000
	amount %= 1000

	if crores > 0 {
		b.WriteString(upToThousand(crores))
		b.WriteString("Crore ")
	}
	if lakhs > 0 {
		b.WriteString(upToThousand(lakhs))
		b.WriteString("Lakh ")
	}
	if thousands > 0 {
		b.WriteString(upToThousand(thousands))
		b.WriteString("Thousand ")
	}
	if amount > 0 {
		b.WriteString(upToThousand(amount))
	}

	return strings.TrimRight(b.String(), " ") + " Only"
}

// upToThousand converts a group and always leaves a trailing space. The
// crore group may itself exceed 999 for very large amounts, so groups of
// a thousand are peeled off first.
func upToThousand(n int64) string {
	var b strings.Builder
	if n > 999 {
		b.WriteString(upToThousand(n / 1000))
		b.WriteString("Thousand ")
		n %= 1000
	}
	if n > 99 {
		b.WriteString(ones[n/100])
		b.WriteString(" Hundred ")
		n %= 100
	}
	if n > 19 {
		b.WriteString(tens[n/10])
		b.WriteString(" ")
		n %= 10
	}
	if n > 0 {
		b.WriteString(ones[n])
		b.WriteString(" ")
	}
	return b.String()
}
