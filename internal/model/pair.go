package model

import (
	"fmt"
	"strings"

	"github.com/acala-trade/acala/internal/pkg/apperrors"
)

// Pair is one monitored trading pair, e.g. base BTC / quote USDT.
type Pair struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// ParsePair splits a "BASE/QUOTE" symbol.
func ParsePair(symbol string) (Pair, error) {
	base, quote, ok := strings.Cut(symbol, "/")
	if !ok || base == "" || quote == "" {
		return Pair{}, apperrors.NewValidation("trading_pairs",
			fmt.Sprintf("malformed pair symbol %q", symbol))
	}
	return Pair{Base: base, Quote: quote}, nil
}

func (p Pair) Symbol() string {
	return p.Base + "/" + p.Quote
}
