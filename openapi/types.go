package openapi

import (
	"gitlab.com/zlyzol/settlemath/internal/models"
)

// GeneralErrorResponse defines model for GeneralErrorResponse.
type GeneralErrorResponse struct {
	Error string `json:"error"`
}

// CalculationErrorResponse is returned when the operands are rejected.
type CalculationErrorResponse struct {
	Error       string              `json:"error"`
	Calculation *models.Calculation `json:"calculation,omitempty"`
}

// GetCalculationsParams defines parameters for GetCalculations.
type GetCalculationsParams struct {
	Limit *int `json:"limit,omitempty"`
}

// GetMulDivParams defines parameters for GetMulDiv.
type GetMulDivParams struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	C        string  `json:"c"`
	Rounding *string `json:"rounding,omitempty"`
}

// GetDivParams defines parameters for GetDiv.
type GetDivParams struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Rounding *string `json:"rounding,omitempty"`
}

// GetLnParams defines parameters for GetLn.
type GetLnParams struct {
	X string `json:"x"`
}

// GetPowParams defines parameters for GetPow.
type GetPowParams struct {
	Base string `json:"base"`
	Exp  string `json:"exp"`
}

// GetSqrtParams defines parameters for GetSqrt.
type GetSqrtParams struct {
	N string `json:"n"`
}

// GetSwapParams defines parameters for GetSwap.
type GetSwapParams struct {
	BaseDepth  string  `json:"base_depth"`
	QuoteDepth string  `json:"quote_depth"`
	Offer      string  `json:"offer"`
	To         *string `json:"to,omitempty"`
	FeeRate    *string `json:"fee_rate,omitempty"`
	Model      *string `json:"model,omitempty"`
}

// GetWeightedSwapParams defines parameters for GetWeightedSwap.
type GetWeightedSwapParams struct {
	OfferDepth   string  `json:"offer_depth"`
	ReturnDepth  string  `json:"return_depth"`
	OfferWeight  string  `json:"offer_weight"`
	ReturnWeight string  `json:"return_weight"`
	Offer        string  `json:"offer"`
	FeeRate      *string `json:"fee_rate,omitempty"`
}

// GetLiquidityParams defines parameters for GetLiquidity.
type GetLiquidityParams struct {
	BaseAmount  string  `json:"base_amount"`
	QuoteAmount string  `json:"quote_amount"`
	BaseDepth   *string `json:"base_depth,omitempty"`
	QuoteDepth  *string `json:"quote_depth,omitempty"`
	TotalShares *string `json:"total_shares,omitempty"`
}
