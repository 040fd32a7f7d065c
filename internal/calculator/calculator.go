package calculator

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gitlab.com/zlyzol/settlemath/internal/config"
	"gitlab.com/zlyzol/settlemath/internal/decimal"
	"gitlab.com/zlyzol/settlemath/internal/models"
	"gitlab.com/zlyzol/settlemath/internal/store"
)

var ErrUnknownOperation = errors.New("unknown operation")

type Calculator struct {
	cfg       *config.Configuration
	logger    zerolog.Logger
	store     store.Store
	startTime time.Time
	series    decimal.Series
	feeRate   decimal.Decimal
	listeners listeners
	now       func() time.Time
}

type operation func(c *Calculator, args Args) (map[string]string, error)

var operations = map[string]operation{
	"muldiv":    (*Calculator).mulDiv,
	"div":       (*Calculator).div512,
	"ln":        (*Calculator).ln,
	"pow":       (*Calculator).pow,
	"sqrt":      (*Calculator).sqrt,
	"swap":      (*Calculator).swapQuote,
	"slip_swap": (*Calculator).slipSwapQuote,
	"weighted":  (*Calculator).weightedSwapQuote,
	"liquidity": (*Calculator).provideLiquidity,
}

// NewCalculator initiate a new Calculator.
func NewCalculator(store store.Store, cfg *config.Configuration) (*Calculator, error) {
	if cfg == nil {
		return nil, errors.New("conf can't be nil")
	}
	if store == nil {
		return nil, errors.New("store can't be nil")
	}
	series, err := cfg.Math.Series()
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure series")
	}
	feeRate, err := cfg.Pool.FeeRate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure pool fee")
	}
	calc := Calculator{
		cfg:     cfg,
		logger:  log.With().Str("module", "calculator").Logger(),
		store:   store,
		series:  series,
		feeRate: feeRate,
		now:     time.Now,
	}
	return &calc, nil
}

// Start calculator
func (c *Calculator) Start() error {
	c.startTime = c.now()
	c.logger.Info().
		Str("epsilon", c.series.Epsilon.String()).
		Int("max_terms", c.series.MaxTerms).
		Str("fee_rate", c.feeRate.String()).
		Msg("calculator started")
	return nil
}

// Stop closes all subscriptions.
func (c *Calculator) Stop() error {
	c.listeners.Lock()
	items := append([]*Listener(nil), c.listeners.items...)
	c.listeners.Unlock()
	for _, w := range items {
		c.listeners.remove(w)
	}
	return nil
}

func (c *Calculator) Ping() error {
	if c.startTime.IsZero() {
		return errors.New("calculator not started")
	}
	return nil
}

// Operations lists the names accepted by Calculate.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	return names
}

// Calculate runs the named operation. The returned calculation carries the
// error text as well when err is not nil.
func (c *Calculator) Calculate(op string, args Args) (*models.Calculation, error) {
	f, ok := operations[op]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOperation, "%q", op)
	}
	return c.run(op, args, f)
}

func (c *Calculator) MulDiv(args Args) (*models.Calculation, error) {
	return c.run("muldiv", args, (*Calculator).mulDiv)
}

func (c *Calculator) Div512(args Args) (*models.Calculation, error) {
	return c.run("div", args, (*Calculator).div512)
}

func (c *Calculator) Ln(args Args) (*models.Calculation, error) {
	return c.run("ln", args, (*Calculator).ln)
}

func (c *Calculator) Pow(args Args) (*models.Calculation, error) {
	return c.run("pow", args, (*Calculator).pow)
}

func (c *Calculator) Sqrt(args Args) (*models.Calculation, error) {
	return c.run("sqrt", args, (*Calculator).sqrt)
}

func (c *Calculator) SwapQuote(args Args) (*models.Calculation, error) {
	return c.run("swap", args, (*Calculator).swapQuote)
}

func (c *Calculator) SlipSwapQuote(args Args) (*models.Calculation, error) {
	return c.run("slip_swap", args, (*Calculator).slipSwapQuote)
}

func (c *Calculator) WeightedSwapQuote(args Args) (*models.Calculation, error) {
	return c.run("weighted", args, (*Calculator).weightedSwapQuote)
}

func (c *Calculator) ProvideLiquidity(args Args) (*models.Calculation, error) {
	return c.run("liquidity", args, (*Calculator).provideLiquidity)
}

// Subscribe registers a listener for recorded calculations. Unsubscribe
// closes its channel.
func (c *Calculator) Subscribe() *Listener {
	w := &Listener{C: make(chan models.Calculation, listenerBuffer)}
	c.listeners.push(w)
	return w
}

func (c *Calculator) Unsubscribe(w *Listener) {
	c.listeners.remove(w)
}

func (c *Calculator) run(op string, args Args, f operation) (*models.Calculation, error) {
	start := c.now()
	inputs := make(map[string]string, len(args))
	for k, v := range args {
		inputs[k] = v
	}
	result, err := f(c, args)
	calc := models.Calculation{
		Time:     start.UTC(),
		Op:       op,
		Inputs:   inputs,
		Result:   result,
		Duration: int64(c.now().Sub(start)),
	}
	if err != nil {
		calc.Result = nil
		calc.Error = err.Error()
		c.logger.Debug().Err(err).Str("op", op).Msg("calculation failed")
	} else {
		c.logger.Debug().Str("op", op).Int64("ns", calc.Duration).Msg("calculation done")
	}
	if serr := c.store.InsertCalculation(calc); serr != nil {
		c.logger.Error().Err(serr).Str("op", op).Msg("failed to store calculation")
	}
	if dropped := c.listeners.publish(calc); dropped > 0 {
		c.logger.Warn().Int("dropped", dropped).Msg("slow listeners skipped a calculation")
	}
	return &calc, err
}
