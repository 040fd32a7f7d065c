package common

import (
	"github.com/pkg/errors"
	num "github.com/shabbyrobe/go-num"

	"gitlab.com/zlyzol/settlemath/internal/biguint"
	"gitlab.com/zlyzol/settlemath/internal/decimal"
)

var (
	ErrEmptyPool     = errors.New("pool has no liquidity")
	ErrZeroOffer     = errors.New("offer amount is zero")
	ErrZeroWeight    = errors.New("pool weight is zero")
	ErrFeeRateTooBig = errors.New("fee rate must be below 1")
)

// Pool - snapshot of a two asset constant product pool, oriented from the
// offered asset to the returned asset
type Pool struct {
	OfferDepth  uint64          `json:"offer_depth" mapstructure:"offer_depth"`
	ReturnDepth uint64          `json:"return_depth" mapstructure:"return_depth"`
	FeeRate     decimal.Decimal `json:"fee_rate" mapstructure:"fee_rate"`
}

// WeightedPool - balancer style pool with per asset weights
type WeightedPool struct {
	Pool
	OfferWeight  decimal.Decimal `json:"offer_weight" mapstructure:"offer_weight"`
	ReturnWeight decimal.Decimal `json:"return_weight" mapstructure:"return_weight"`
	// Series bounds the pow expansion, zero means decimal.DefaultSeries
	Series decimal.Series `json:"-" mapstructure:"-"`
}

type SwapResult struct {
	ReturnAmount uint64 `json:"return_amount"`
	FeeAmount    uint64 `json:"fee_amount"`
}

func (pool Pool) IsEmpty() bool {
	return pool.OfferDepth == 0 || pool.ReturnDepth == 0
}

func (pool Pool) Flip() Pool {
	pool.OfferDepth, pool.ReturnDepth = pool.ReturnDepth, pool.OfferDepth
	return pool
}

// takeFee splits the offer into the fee and the amount that enters the pool
func (pool Pool) takeFee(offer uint64) (in, fee uint64, err error) {
	if offer == 0 {
		return 0, 0, ErrZeroOffer
	}
	if pool.IsEmpty() {
		return 0, 0, ErrEmptyPool
	}
	if !pool.FeeRate.LT(decimal.One()) {
		return 0, 0, ErrFeeRateTooBig
	}
	fee, err = pool.FeeRate.MulUint64(offer)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to compute fee")
	}
	return offer - fee, fee, nil
}

// GetSwapReturn - constant product swap, output = Y * x / (X + x) where x is
// the offer after fee
func (pool Pool) GetSwapReturn(offer uint64) (SwapResult, error) {
	x, fee, err := pool.takeFee(offer)
	if err != nil {
		return SwapResult{}, err
	}
	X := biguint.Uint256From64(pool.OfferDepth)
	Y := biguint.Uint256From64(pool.ReturnDepth)
	xx := biguint.Uint256From64(x)
	depth, err := X.Add(xx) // cannot overflow 256 bits
	if err != nil {
		return SwapResult{}, err
	}
	out, err := biguint.MulDiv(Y, xx, depth, biguint.RoundDown)
	if err != nil {
		return SwapResult{}, errors.Wrap(err, "failed to compute swap return")
	}
	amount, err := out.Uint64()
	if err != nil {
		return SwapResult{}, err
	}
	return SwapResult{ReturnAmount: amount, FeeAmount: fee}, nil
}

// GetSlipSwapReturn - THORChain CLP swap where the fee is the slip itself:
// (x*X*Y)/(x+X)^2, ie. (250*1000*100)/(250+1000)^2
func (pool Pool) GetSlipSwapReturn(x uint64) (SwapResult, error) {
	if x == 0 {
		return SwapResult{}, ErrZeroOffer
	}
	if pool.IsEmpty() {
		return SwapResult{}, ErrEmptyPool
	}
	X := biguint.Uint256From64(pool.OfferDepth)
	Y := biguint.Uint256From64(pool.ReturnDepth)
	xx := biguint.Uint256From64(x)
	xX, _ := xx.Mul(X) // 128 bits at most
	sum, _ := xx.Add(X)
	denominator, _ := sum.Mul(sum)
	out, err := biguint.MulDiv(xX, Y, denominator, biguint.RoundDown)
	if err != nil {
		return SwapResult{}, errors.Wrap(err, "failed to compute slip swap return")
	}
	amount, err := out.Uint64()
	if err != nil {
		return SwapResult{}, err
	}
	// what a slip-free swap would have returned minus what the pool gives
	ideal, err := biguint.MulDivUint64(x, pool.ReturnDepth, pool.OfferDepth, biguint.RoundDown)
	if err != nil {
		ideal = amount
	}
	return SwapResult{ReturnAmount: amount, FeeAmount: ideal - amount}, nil
}

// GetSwapReturn - weighted pool swap,
// output = Y * (1 - (X / (X + x)) ^ (wX / wY))
func (pool WeightedPool) GetSwapReturn(offer uint64) (SwapResult, error) {
	if pool.OfferWeight.IsZero() || pool.ReturnWeight.IsZero() {
		return SwapResult{}, ErrZeroWeight
	}
	x, fee, err := pool.takeFee(offer)
	if err != nil {
		return SwapResult{}, err
	}
	exp, err := pool.OfferWeight.Quo(pool.ReturnWeight)
	if err != nil {
		return SwapResult{}, errors.Wrap(err, "failed to compute weight ratio")
	}
	// X + x fits 128 bits, the ratio is at most one
	X := num.U128From64(pool.OfferDepth)
	base, err := decimal.FromRatio(X, X.Add(num.U128From64(x)))
	if err != nil {
		return SwapResult{}, errors.Wrap(err, "failed to compute pool ratio")
	}
	series := pool.Series
	if series.MaxTerms == 0 {
		series = decimal.DefaultSeries
	}
	sub, err := series.Pow(base, exp)
	if err != nil {
		return SwapResult{}, errors.Wrap(err, "failed to compute weighted invariant")
	}
	share, err := decimal.One().Sub(sub)
	if err != nil {
		// rounding pushed base^exp above one, nothing leaves the pool
		return SwapResult{ReturnAmount: 0, FeeAmount: fee}, nil
	}
	amount, err := share.MulUint64(pool.ReturnDepth)
	if err != nil {
		return SwapResult{}, err
	}
	return SwapResult{ReturnAmount: amount, FeeAmount: fee}, nil
}

// GetLiquidityShares - shares minted for a deposit. The first deposit mints
// the geometric mean of both amounts, later ones the smaller proportional
// share of the existing supply.
func GetLiquidityShares(amounts, depths Amounts, totalShares uint64) (uint64, error) {
	if amounts.IsEmpty() {
		return 0, ErrZeroOffer
	}
	if totalShares == 0 {
		return decimal.SqrtUint64(amounts.BaseAmount, amounts.QuoteAmount), nil
	}
	if depths.IsEmpty() {
		return 0, ErrEmptyPool
	}
	base, err := biguint.MulDivUint64(amounts.BaseAmount, totalShares, depths.BaseAmount, biguint.RoundDown)
	if err != nil {
		return 0, errors.Wrap(err, "failed to compute base share")
	}
	quote, err := biguint.MulDivUint64(amounts.QuoteAmount, totalShares, depths.QuoteAmount, biguint.RoundDown)
	if err != nil {
		return 0, errors.Wrap(err, "failed to compute quote share")
	}
	if base < quote {
		return base, nil
	}
	return quote, nil
}
