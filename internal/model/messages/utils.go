package messages

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	commandParts  = 2
	displayPlaces = 6
)

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	split := strings.SplitN(text, " ", commandParts)
	if len(split) == commandParts {
		return split[0], split[1]
	}
	return text, ""
}

func formatRate(from, to string, rate decimal.Decimal) string {
	return fmt.Sprintf("%s/%s: %s",
		strings.ToUpper(strings.TrimSpace(from)),
		strings.ToUpper(strings.TrimSpace(to)),
		rate.Round(displayPlaces).String())
}

func formatCurrencies(codes []string) string {
	upper := make([]string, 0, len(codes))
	for _, code := range codes {
		upper = append(upper, strings.ToUpper(code))
	}
	return "Known currencies: " + strings.Join(upper, ", ")
}
