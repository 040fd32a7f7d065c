package openapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"gitlab.com/zlyzol/settlemath/internal/calculator"
	"gitlab.com/zlyzol/settlemath/internal/models"
)

// Handlers data structure is the api/interface into the calculator service
type Handlers struct {
	calc   *calculator.Calculator
	logger zerolog.Logger
}

// New creates a new service interface on top of the calculator
func New(calc *calculator.Calculator, logger zerolog.Logger) *Handlers {
	return &Handlers{
		calc:   calc,
		logger: logger,
	}
}

// JSON swagger/openapi 3.0 specification endpoint// (GET /v1/swagger.json)
func (h *Handlers) GetSwagger(ctx echo.Context) error {
	swagger, err := GetSwagger()
	if err != nil {
		h.logger.Err(err).Msg("failure with GetSwagger")
		return echo.NewHTTPError(http.StatusInternalServerError, GeneralErrorResponse{Error: err.Error()})
	}
	return ctx.JSONPretty(http.StatusOK, swagger, "   ")
}

// (GET /v1/health)
func (h *Handlers) GetHealth(ctx echo.Context) error {
	health := h.calc.GetHealth()
	return ctx.JSON(http.StatusOK, health)
}

// (GET /v1/stats)
func (h *Handlers) GetStats(ctx echo.Context) error {
	stats, err := h.calc.GetStats()
	if err != nil {
		h.logger.Err(err).Msg("failure with GetStats")
		return echo.NewHTTPError(http.StatusInternalServerError, GeneralErrorResponse{Error: err.Error()})
	}

	response := stats
	return ctx.JSON(http.StatusOK, response)
}

// (GET /v1/calculations)
func (h *Handlers) GetCalculations(ctx echo.Context, params GetCalculationsParams) error {
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	calcs, err := h.calc.GetCalculations(limit)
	if err != nil {
		h.logger.Err(err).Msg("failure with GetCalculations")
		return echo.NewHTTPError(http.StatusInternalServerError, GeneralErrorResponse{Error: err.Error()})
	}

	response := calcs
	return ctx.JSON(http.StatusOK, response)
}

// (GET /v1/muldiv)
func (h *Handlers) GetMulDiv(ctx echo.Context, params GetMulDivParams) error {
	args := calculator.Args{"a": params.A, "b": params.B, "c": params.C}
	setOptional(args, "rounding", params.Rounding)
	return h.respond(ctx, h.calc.MulDiv, args)
}

// (GET /v1/div)
func (h *Handlers) GetDiv(ctx echo.Context, params GetDivParams) error {
	args := calculator.Args{"a": params.A, "b": params.B}
	setOptional(args, "rounding", params.Rounding)
	return h.respond(ctx, h.calc.Div512, args)
}

// (GET /v1/ln)
func (h *Handlers) GetLn(ctx echo.Context, params GetLnParams) error {
	return h.respond(ctx, h.calc.Ln, calculator.Args{"x": params.X})
}

// (GET /v1/pow)
func (h *Handlers) GetPow(ctx echo.Context, params GetPowParams) error {
	return h.respond(ctx, h.calc.Pow, calculator.Args{"base": params.Base, "exp": params.Exp})
}

// (GET /v1/sqrt)
func (h *Handlers) GetSqrt(ctx echo.Context, params GetSqrtParams) error {
	return h.respond(ctx, h.calc.Sqrt, calculator.Args{"n": params.N})
}

// (GET /v1/pool/swap)
func (h *Handlers) GetSwap(ctx echo.Context, params GetSwapParams) error {
	args := calculator.Args{
		"base_depth":  params.BaseDepth,
		"quote_depth": params.QuoteDepth,
		"offer":       params.Offer,
	}
	setOptional(args, "to", params.To)
	setOptional(args, "fee_rate", params.FeeRate)
	op := h.calc.SwapQuote
	if params.Model != nil {
		switch *params.Model {
		case "constant":
		case "slip":
			op = h.calc.SlipSwapQuote
		default:
			return echo.NewHTTPError(http.StatusBadRequest, GeneralErrorResponse{Error: "unknown swap model " + *params.Model})
		}
	}
	return h.respond(ctx, op, args)
}

// (GET /v1/pool/weighted)
func (h *Handlers) GetWeightedSwap(ctx echo.Context, params GetWeightedSwapParams) error {
	args := calculator.Args{
		"offer_depth":   params.OfferDepth,
		"return_depth":  params.ReturnDepth,
		"offer_weight":  params.OfferWeight,
		"return_weight": params.ReturnWeight,
		"offer":         params.Offer,
	}
	setOptional(args, "fee_rate", params.FeeRate)
	return h.respond(ctx, h.calc.WeightedSwapQuote, args)
}

// (GET /v1/pool/liquidity)
func (h *Handlers) GetLiquidity(ctx echo.Context, params GetLiquidityParams) error {
	args := calculator.Args{
		"base_amount":  params.BaseAmount,
		"quote_amount": params.QuoteAmount,
	}
	setOptional(args, "base_depth", params.BaseDepth)
	setOptional(args, "quote_depth", params.QuoteDepth)
	setOptional(args, "total_shares", params.TotalShares)
	return h.respond(ctx, h.calc.ProvideLiquidity, args)
}

func setOptional(args calculator.Args, name string, v *string) {
	if v != nil {
		args[name] = *v
	}
}

// respond runs one calculation. Every calculation error is caused by the
// operands, so it maps to 400 with the recorded calculation attached.
func (h *Handlers) respond(ctx echo.Context, op func(calculator.Args) (*models.Calculation, error), args calculator.Args) error {
	calc, err := op(args)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, CalculationErrorResponse{Error: err.Error(), Calculation: calc})
	}
	return ctx.JSON(http.StatusOK, calc)
}
