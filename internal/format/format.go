// Package format holds the text helpers shared by the card renderers.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mamadbah2/shoecard/internal/domain/models"
)

var printer = message.NewPrinter(language.English)

// FormatPrice renders cents as dollars: $120, $59.99, $1,250.
// Whole-dollar amounts drop the decimals.
func FormatPrice(amount models.Money) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole, cents := int64(amount)/100, int64(amount)%100
	if cents == 0 {
		return sign + "$" + printer.Sprintf("%d", whole)
	}
	return sign + "$" + printer.Sprintf("%d", whole) + fmt.Sprintf(".%02d", cents)
}

// Pluralize prefixes word with count and adds an "s" unless count is one.
func Pluralize(word string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, word)
	}
	return fmt.Sprintf("%d %ss", count, word)
}
