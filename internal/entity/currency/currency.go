package currency

import "strings"

const (
	EUR = "eur"
	USD = "usd"
	GBP = "gbp"
	JPY = "jpy"
	CHF = "chf"
	CNY = "cny"
)

// DefaultAnchor is the pivot currency when none is configured.
const DefaultAnchor = EUR

// Currencies lists the codes suggested to chat users. It is not a validation list.
var Currencies = []string{EUR, USD, GBP, JPY, CHF, CNY}

// Normalize lowercases and trims a currency code.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// IsBlank reports whether code is empty after trimming.
func IsBlank(code string) bool {
	return strings.TrimSpace(code) == ""
}
