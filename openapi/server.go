package openapi

import (
	"fmt"
	"net/http"

	"github.com/deepmap/oapi-codegen/pkg/runtime"
	"github.com/labstack/echo/v4"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /v1/calculations)
	GetCalculations(ctx echo.Context, params GetCalculationsParams) error
	// (GET /v1/div)
	GetDiv(ctx echo.Context, params GetDivParams) error
	// (GET /v1/health)
	GetHealth(ctx echo.Context) error
	// (GET /v1/ln)
	GetLn(ctx echo.Context, params GetLnParams) error
	// (GET /v1/muldiv)
	GetMulDiv(ctx echo.Context, params GetMulDivParams) error
	// (GET /v1/pool/liquidity)
	GetLiquidity(ctx echo.Context, params GetLiquidityParams) error
	// (GET /v1/pool/swap)
	GetSwap(ctx echo.Context, params GetSwapParams) error
	// (GET /v1/pool/weighted)
	GetWeightedSwap(ctx echo.Context, params GetWeightedSwapParams) error
	// (GET /v1/pow)
	GetPow(ctx echo.Context, params GetPowParams) error
	// (GET /v1/sqrt)
	GetSqrt(ctx echo.Context, params GetSqrtParams) error
	// (GET /v1/stats)
	GetStats(ctx echo.Context) error
	// (GET /v1/swagger.json)
	GetSwagger(ctx echo.Context) error
	// (GET /v1/ws)
	GetWs(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// queryBinder collects the first parameter binding failure.
type queryBinder struct {
	ctx echo.Context
	err error
}

func (b *queryBinder) bind(required bool, name string, dest interface{}) {
	if b.err != nil {
		return
	}
	if err := runtime.BindQueryParameter("form", true, required, name, b.ctx.QueryParams(), dest); err != nil {
		b.err = echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
}

// GetCalculations converts echo context to params.
func (w *ServerInterfaceWrapper) GetCalculations(ctx echo.Context) error {
	var params GetCalculationsParams
	b := queryBinder{ctx: ctx}
	b.bind(false, "limit", &params.Limit)
	if b.err != nil {
		return b.err
	}
	return w.Handler.GetCalculations(ctx, params)
}

// GetDiv converts echo context to params.
func (w *ServerInterfaceWrapper) GetDiv(ctx echo.Context) error {
	var params GetDivParams
	b := queryBinder{ctx: ctx}
	b.bind(true, "a", &params.A)
	b.bind(true, "b", &params.B)
	b.bind(false, "rounding", &params.Rounding)
	if b.err != nil {
		return b.err
	}
	return w.Handler.GetDiv(ctx, params)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// GetLn converts echo context to params.
func (w *ServerInterfaceWrapper) GetLn(ctx echo.Context) error {
	var params GetLnParams
	b := queryBinder{ctx: ctx}
	b.bind(true, "x", &params.X)
	if b.err != nil {
		return b.err
	}
	return w.Handler.GetLn(ctx, params)
}

// GetMulDiv converts echo context to params.
func (w *ServerInterfaceWrapper) GetMulDiv(ctx echo.Context) error {
	var params GetMulDivParams
	b := queryBinder{ctx: ctx}
	b.bind(true, "a", &params.A)
	b.bind(true, "b", &params.B)
	b.bind(true, "c", &params.C)
	b.bind(false, "rounding", &params.Rounding)
	if b.err != nil {
		return b.err
	}
	return w.Handler.GetMulDiv(ctx, params)
}

// GetLiquidity converts echo context to params.
func (w *ServerInterfaceWrapper) GetLiquidity(ctx echo.Context) error {
	var params GetLiquidityParams
	b := queryBinder{ctx: ctx}
	b.bind(true, "base_amount", &params.BaseAmount)
	b.bind(true, "quote_amount", &params.QuoteAmount)
	b.bind(false, "base_depth", &params.BaseDepth)
	b.bind(false, "quote_depth", &params.QuoteDepth)
	b.bind(false, "total_shares", &params.TotalShares)
	if b.err != nil {
		return b.err
	}
	return w.Handler.GetLiquidity(ctx, params)
}

// GetSwap converts echo context to params.
func (w *ServerInterfaceWrapper) GetSwap(ctx echo.Context) error {
	var params GetSwapParams
	b := queryBinder{ctx: ctx}
	b.bind(true, "base_depth", &params.BaseDepth)
	b.bind(true, "quote_depth", &params.QuoteDepth)
	b.bind(true, "offer", &params.Offer)
	b.bind(false, "to", &params.To)
	b.bind(false, "fee_rate", &params.FeeRate)
	b.bind(false, "model", &params.Model)
	if b.err != nil {
		return b.err
	}
	return w.Handler.GetSwap(ctx, params)
}

// GetWeightedSwap converts echo context to params.
func (w *ServerInterfaceWrapper) GetWeightedSwap(ctx echo.Context) error {
	var params GetWeightedSwapParams
	b := queryBinder{ctx: ctx}
	b.bind(true, "offer_depth", &params.OfferDepth)
	b.bind(true, "return_depth", &params.ReturnDepth)
	b.bind(true, "offer_weight", &params.OfferWeight)
	b.bind(true, "return_weight", &params.ReturnWeight)
	b.bind(true, "offer", &params.Offer)
	b.bind(false, "fee_rate", &params.FeeRate)
	if b.err != nil {
		return b.err
	}
	return w.Handler.GetWeightedSwap(ctx, params)
}

// GetPow converts echo context to params.
func (w *ServerInterfaceWrapper) GetPow(ctx echo.Context) error {
	var params GetPowParams
	b := queryBinder{ctx: ctx}
	b.bind(true, "base", &params.Base)
	b.bind(true, "exp", &params.Exp)
	if b.err != nil {
		return b.err
	}
	return w.Handler.GetPow(ctx, params)
}

// GetSqrt converts echo context to params.
func (w *ServerInterfaceWrapper) GetSqrt(ctx echo.Context) error {
	var params GetSqrtParams
	b := queryBinder{ctx: ctx}
	b.bind(true, "n", &params.N)
	if b.err != nil {
		return b.err
	}
	return w.Handler.GetSqrt(ctx, params)
}

// GetStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetStats(ctx echo.Context) error {
	return w.Handler.GetStats(ctx)
}

// GetSwagger converts echo context to params.
func (w *ServerInterfaceWrapper) GetSwagger(ctx echo.Context) error {
	return w.Handler.GetSwagger(ctx)
}

// GetWs converts echo context to params.
func (w *ServerInterfaceWrapper) GetWs(ctx echo.Context) error {
	return w.Handler.GetWs(ctx)
}

// EchoRouter is the subset of echo.Echo and echo.Group used for routing.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET("/v1/calculations", wrapper.GetCalculations)
	router.GET("/v1/div", wrapper.GetDiv)
	router.GET("/v1/health", wrapper.GetHealth)
	router.GET("/v1/ln", wrapper.GetLn)
	router.GET("/v1/muldiv", wrapper.GetMulDiv)
	router.GET("/v1/pool/liquidity", wrapper.GetLiquidity)
	router.GET("/v1/pool/swap", wrapper.GetSwap)
	router.GET("/v1/pool/weighted", wrapper.GetWeightedSwap)
	router.GET("/v1/pow", wrapper.GetPow)
	router.GET("/v1/sqrt", wrapper.GetSqrt)
	router.GET("/v1/stats", wrapper.GetStats)
	router.GET("/v1/swagger.json", wrapper.GetSwagger)
	router.GET("/v1/ws", wrapper.GetWs)
}
