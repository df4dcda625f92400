package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

const (
	crore    = 10000000
	lakh     = 100000
	thousand = 1000
	hundred  = 100
)

// NumberToWords renders the whole-rupee part of amount in Indian English,
// e.g. 125000 -> "One Lakh Twenty Five Thousand Rupees Only". Paise are
// dropped.
func NumberToWords(amount decimal.Decimal) string {
	n := amount.IntPart()
	if n == 0 {
		return "Zero Rupees Only"
	}
	var words []string
	if n < 0 {
		words = append(words, "Minus")
		n = -n
	}
	words = append(words, indianWords(n)...)
	words = append(words, "Rupees", "Only")
	return strings.Join(words, " ")
}

func indianWords(n int64) []string {
	var w []string
	if n >= crore {
		w = append(w, indianWords(n/crore)...)
		w = append(w, "Crore")
		n %= crore
	}
	if n >= lakh {
		w = append(w, belowHundred(n/lakh), "Lakh")
		n %= lakh
	}
	if n >= thousand {
		w = append(w, belowHundred(n/thousand), "Thousand")
		n %= thousand
	}
	if n >= hundred {
		w = append(w, ones[n/hundred], "Hundred")
		n %= hundred
	}
	if n > 0 {
		if len(w) > 0 {
			w = append(w, "and")
		}
		w = append(w, belowHundred(n))
	}
	return w
}

func belowHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}
