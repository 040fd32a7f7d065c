package common

import (
	"fmt"

	"github.com/pkg/errors"

	"gitlab.com/zlyzol/settlemath/internal/decimal"
)

// Amounts - a pair of balances, pool depths or deposit amounts
type Amounts struct {
	BaseAmount  uint64 `json:"base_amount" mapstructure:"base_amount"`
	QuoteAmount uint64 `json:"quote_amount" mapstructure:"quote_amount"`
}

func ZeroAmounts() Amounts { return Amounts{} }
func (a Amounts) Equal(a2 Amounts) bool {
	return a.BaseAmount == a2.BaseAmount && a.QuoteAmount == a2.QuoteAmount
}
func (a Amounts) IsEmpty() bool {
	return a.BaseAmount == 0 || a.QuoteAmount == 0
}
func (a *Amounts) Flip() {
	a.BaseAmount, a.QuoteAmount = a.QuoteAmount, a.BaseAmount
}
func (a Amounts) String() string {
	return fmt.Sprintf("[b: %d / q: %d]", a.BaseAmount, a.QuoteAmount)
}

type SwapTo int8

const (
	SwapToAsset = SwapTo(0)
	SwapToQuote = SwapTo(1)
)

func (os SwapTo) String() string {
	if os == SwapToAsset {
		return "asset"
	}
	return "quote"
}
func (os SwapTo) Invert() SwapTo {
	if os == SwapToAsset {
		return SwapToQuote
	}
	return SwapToAsset
}

// ParseSwapTo accepts "asset" or "quote"
func ParseSwapTo(s string) (SwapTo, error) {
	switch s {
	case "asset", "base":
		return SwapToAsset, nil
	case "quote":
		return SwapToQuote, nil
	}
	return SwapToAsset, errors.Errorf("unknown swap direction %q", s)
}

// NewPool orients pool depths for a swap: swapping to the asset offers the
// quote side, swapping to the quote offers the asset side
func NewPool(depths Amounts, swap SwapTo, feeRate decimal.Decimal) Pool {
	pool := Pool{OfferDepth: depths.QuoteAmount, ReturnDepth: depths.BaseAmount, FeeRate: feeRate}
	if swap == SwapToQuote {
		pool = pool.Flip()
	}
	return pool
}

func (pool Pool) String() string {
	return fmt.Sprintf("pool [offer: %d / return: %d, fee %s]", pool.OfferDepth, pool.ReturnDepth, pool.FeeRate)
}
