package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ziflex/lecho/v2"

	"gitlab.com/zlyzol/settlemath/internal/calculator"
	"gitlab.com/zlyzol/settlemath/internal/config"
	"gitlab.com/zlyzol/settlemath/internal/store"
	"gitlab.com/zlyzol/settlemath/internal/store/inmemorydb"
	"gitlab.com/zlyzol/settlemath/internal/store/mongo"
	httpdelivery "gitlab.com/zlyzol/settlemath/openapi"
)

// Server
type Server struct {
	cfg        config.Configuration
	srv        *http.Server
	logger     zerolog.Logger
	echoEngine *echo.Echo
	calc       *calculator.Calculator
	closers    []io.Closer
}

func initLog(level string, pretty bool, file string) (zerolog.Logger, io.Closer, error) {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("%s is not a valid log-level, falling back to 'info'", level)
		l = zerolog.InfoLevel
	}
	var out io.Writer = os.Stdout
	var closer io.Closer
	if file != "" {
		logFile, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Logger{}, nil, errors.Wrap(err, "failed to open log file")
		}
		out = io.MultiWriter(os.Stdout, logFile)
		closer = logFile
	}
	if pretty {
		out = zerolog.ConsoleWriter{Out: out}
	}
	zerolog.TimeFieldFormat = "15:04:05"
	log.Logger = log.Output(out)
	log.Info().Msg("log started")

	zerolog.SetGlobalLevel(l)
	return log.Output(out).With().Str("service", "settlemath").Logger(), closer, nil
}

// newStore picks mongo unless its host is "skip".
func newStore(cfg *config.Configuration) (store.Store, io.Closer, error) {
	if cfg.Mongo.Host == "skip" {
		db, err := inmemorydb.NewClient(cfg.Store.HistoryLimit)
		return db, nil, err
	}
	db, err := mongo.NewClient(cfg.Mongo)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create mongodb client instance")
	}
	return db, disconnector{db}, nil
}

type disconnector struct{ db *mongo.Mongo }

func (d disconnector) Close() error { return d.db.Disconnect() }

func NewServer(cfgFile *string) (*Server, error) {
	// Load config
	cfg, err := config.LoadConfiguration(*cfgFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load calculator service config")
	}
	return newServer(cfg)
}

func newServer(cfg *config.Configuration) (*Server, error) {
	log, logCloser, err := initLog(cfg.LogLevel, cfg.Pretty, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	var closers []io.Closer
	if logCloser != nil {
		closers = append(closers, logCloser)
	}

	db, dbCloser, err := newStore(cfg)
	if err != nil {
		return nil, err
	}
	if dbCloser != nil {
		closers = append(closers, dbCloser)
	}

	calc, err := calculator.NewCalculator(db, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calculator instance")
	}

	// Setup echo
	echoEngine := echo.New()
	echoEngine.HideBanner = true
	echoEngine.Use(middleware.Recover())

	// CORS default
	// Allows requests from any origin wth GET, HEAD, PUT, POST or DELETE method.
	echoEngine.Use(middleware.CORS())

	logger := log.With().Str("module", "httpServer").Logger()

	// Initialise handlers
	h := httpdelivery.New(calc, logger)

	// Register handlers
	httpdelivery.RegisterHandlers(echoEngine, h)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%v", cfg.ListenPort),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		echoEngine: echoEngine,
		cfg:        *cfg,
		srv:        srv,
		logger:     logger,
		calc:       calc,
		closers:    closers,
	}, nil
}

func (s *Server) Start() error {
	// the calculator is running before the first request arrives
	if err := s.calc.Start(); err != nil {
		return err
	}
	s.registerEchoWithLogger()
	go s.startServer()
	return nil
}

func (s *Server) startServer() {
	err := s.echoEngine.StartServer(s.srv)
	if err != nil && err != http.ErrServerClosed {
		s.logger.Fatal().Err(err).Msg("http server stopped")
	}
}

func (s *Server) Stop() error {
	if err := s.calc.Stop(); nil != err {
		s.logger.Error().Err(err).Msg("failed to stop calculator")
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	err := s.echoEngine.Shutdown(ctx)
	for i := len(s.closers) - 1; i >= 0; i-- {
		if cerr := s.closers[i].Close(); cerr != nil {
			s.logger.Error().Err(cerr).Msg("failed to close resource")
		}
	}
	return err
}

func (s *Server) Log() *zerolog.Logger {
	return &s.logger
}

func (s *Server) registerEchoWithLogger() {
	l := lecho.New(s.logger)
	s.echoEngine.Use(lecho.Middleware(lecho.Config{Logger: l}))
	s.echoEngine.Use(middleware.RequestID())
}
