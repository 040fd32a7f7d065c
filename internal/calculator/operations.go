package calculator

import (
	"strconv"

	"github.com/pkg/errors"

	"gitlab.com/zlyzol/settlemath/internal/biguint"
	"gitlab.com/zlyzol/settlemath/internal/common"
	"gitlab.com/zlyzol/settlemath/internal/decimal"
)

// mulDiv: a*b/c over 256-bit operands with a 512-bit intermediate
func (c *Calculator) mulDiv(args Args) (map[string]string, error) {
	a, err := args.uint256("a")
	if err != nil {
		return nil, err
	}
	b, err := args.uint256("b")
	if err != nil {
		return nil, err
	}
	d, err := args.uint256("c")
	if err != nil {
		return nil, err
	}
	mode, err := args.rounding()
	if err != nil {
		return nil, err
	}
	q, err := biguint.MulDiv(a, b, d, mode)
	if err != nil {
		return nil, err
	}
	return withHex("result", q.Big(), map[string]string{}), nil
}

// div512: a/b over 512-bit operands, both quotient and remainder
func (c *Calculator) div512(args Args) (map[string]string, error) {
	a, err := args.uint512("a")
	if err != nil {
		return nil, err
	}
	b, err := args.uint512("b")
	if err != nil {
		return nil, err
	}
	mode, err := args.rounding()
	if err != nil {
		return nil, err
	}
	q, r, err := a.DivRem(b, mode)
	if err != nil {
		return nil, err
	}
	result := withHex("quotient", q.Big(), map[string]string{})
	return withHex("remainder", r.Big(), result), nil
}

func (c *Calculator) ln(args Args) (map[string]string, error) {
	x, err := args.decimal("x")
	if err != nil {
		return nil, err
	}
	v, err := c.series.Ln(x)
	if err != nil {
		return nil, err
	}
	return map[string]string{"result": v.String()}, nil
}

func (c *Calculator) pow(args Args) (map[string]string, error) {
	base, err := args.decimal("base")
	if err != nil {
		return nil, err
	}
	exp, err := args.decimal("exp")
	if err != nil {
		return nil, err
	}
	v, err := c.series.Pow(base, exp)
	if err != nil {
		return nil, err
	}
	return map[string]string{"result": v.String()}, nil
}

func (c *Calculator) sqrt(args Args) (map[string]string, error) {
	n, err := args.u128("n")
	if err != nil {
		return nil, err
	}
	return map[string]string{"result": decimal.Sqrt(n).String()}, nil
}

func (c *Calculator) feeRateArg(args Args) (decimal.Decimal, error) {
	if args.optional("fee_rate", "") == "" {
		return c.feeRate, nil
	}
	return args.decimal("fee_rate")
}

// pool reads the depths and swap direction of a two asset pool
func (c *Calculator) pool(args Args) (common.Pool, uint64, error) {
	var depths common.Amounts
	var err error
	if depths.BaseAmount, err = args.uint64("base_depth"); err != nil {
		return common.Pool{}, 0, err
	}
	if depths.QuoteAmount, err = args.uint64("quote_depth"); err != nil {
		return common.Pool{}, 0, err
	}
	to, err := common.ParseSwapTo(args.optional("to", common.SwapToAsset.String()))
	if err != nil {
		return common.Pool{}, 0, errors.Wrap(ErrInvalidArgument, err.Error())
	}
	offer, err := args.uint64("offer")
	if err != nil {
		return common.Pool{}, 0, err
	}
	fee, err := c.feeRateArg(args)
	if err != nil {
		return common.Pool{}, 0, err
	}
	return common.NewPool(depths, to, fee), offer, nil
}

func swapResult(r common.SwapResult) map[string]string {
	return map[string]string{
		"return_amount": strconv.FormatUint(r.ReturnAmount, 10),
		"fee_amount":    strconv.FormatUint(r.FeeAmount, 10),
	}
}

func (c *Calculator) swapQuote(args Args) (map[string]string, error) {
	pool, offer, err := c.pool(args)
	if err != nil {
		return nil, err
	}
	r, err := pool.GetSwapReturn(offer)
	if err != nil {
		return nil, err
	}
	return swapResult(r), nil
}

func (c *Calculator) slipSwapQuote(args Args) (map[string]string, error) {
	pool, offer, err := c.pool(args)
	if err != nil {
		return nil, err
	}
	r, err := pool.GetSlipSwapReturn(offer)
	if err != nil {
		return nil, err
	}
	return swapResult(r), nil
}

func (c *Calculator) weightedSwapQuote(args Args) (map[string]string, error) {
	var pool common.WeightedPool
	var err error
	if pool.OfferDepth, err = args.uint64("offer_depth"); err != nil {
		return nil, err
	}
	if pool.ReturnDepth, err = args.uint64("return_depth"); err != nil {
		return nil, err
	}
	if pool.OfferWeight, err = args.decimal("offer_weight"); err != nil {
		return nil, err
	}
	if pool.ReturnWeight, err = args.decimal("return_weight"); err != nil {
		return nil, err
	}
	if pool.FeeRate, err = c.feeRateArg(args); err != nil {
		return nil, err
	}
	pool.Series = c.series
	offer, err := args.uint64("offer")
	if err != nil {
		return nil, err
	}
	r, err := pool.GetSwapReturn(offer)
	if err != nil {
		return nil, err
	}
	return swapResult(r), nil
}

func (c *Calculator) provideLiquidity(args Args) (map[string]string, error) {
	var amounts, depths common.Amounts
	var err error
	if amounts.BaseAmount, err = args.uint64("base_amount"); err != nil {
		return nil, err
	}
	if amounts.QuoteAmount, err = args.uint64("quote_amount"); err != nil {
		return nil, err
	}
	total, err := strconv.ParseUint(args.optional("total_shares", "0"), 0, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "total_shares is not an unsigned 64-bit integer: %q", args["total_shares"])
	}
	if total > 0 {
		if depths.BaseAmount, err = args.uint64("base_depth"); err != nil {
			return nil, err
		}
		if depths.QuoteAmount, err = args.uint64("quote_depth"); err != nil {
			return nil, err
		}
	}
	shares, err := common.GetLiquidityShares(amounts, depths, total)
	if err != nil {
		return nil, err
	}
	return map[string]string{"shares": strconv.FormatUint(shares, 10)}, nil
}
