// Package currency formats raw amounts for API responses. Pricing
// itself never formats money; it only produces numbers.
package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type symbolInfo struct {
	symbol string
	// prefix symbols render "$100", the rest "100 ₸"
	prefix    bool
	precision int
}

var symbols = map[string]symbolInfo{
	"USD": {symbol: "$", prefix: true, precision: 2},
	"EUR": {symbol: "€", prefix: true, precision: 2},
	"KZT": {symbol: "₸", prefix: false, precision: 0},
	"RUB": {symbol: "₽", prefix: false, precision: 0},
}

// Format renders an amount with the currency's symbol and grouping.
// Unknown currency codes fall back to "<amount> <CODE>".
func Format(amount float64, code string) string {
	if math.Signbit(amount) {
		return "-" + Format(math.Abs(amount), code)
	}
	info, ok := symbols[strings.ToUpper(code)]
	if !ok {
		return fmt.Sprintf("%s %s", group(amount, 2), strings.ToUpper(code))
	}
	value := group(amount, info.precision)
	if info.prefix {
		return info.symbol + value
	}
	return value + " " + info.symbol
}

// group renders a non-negative amount with thousands separators and
// the given number of decimal places.
func group(amount float64, precision int) string {
	s := strconv.FormatFloat(amount, 'f', precision, 64)

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return b.String() + fracPart
}
