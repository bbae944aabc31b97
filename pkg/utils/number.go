package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formata um valor monetário como "R$ 1.234,56". O arredondamento é feito
// sobre o decimal, sem passar por float64.
func FormatBRL(v decimal.Decimal) string {
	fixed := v.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	integer, fraction, _ := strings.Cut(fixed, ".")
	return "R$ " + sign + groupThousands(integer) + "," + fraction
}

// FormatInt formata um inteiro com separador de milhar "." ("1.234")
func FormatInt(n int64) string {
	return ptBR.Sprintf("%d", n)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
