package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gitlab.com/zlyzol/settlemath/internal/decimal"
)

// Configuration for the calculator service
type Configuration struct {
	ListenPort      int                `json:"listen_port" mapstructure:"listen_port"`
	ShutdownTimeout time.Duration      `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
	ReadTimeout     time.Duration      `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    time.Duration      `json:"write_timeout" mapstructure:"write_timeout"`
	LogLevel        string             `json:"log_level" mapstructure:"log_level"`
	LogFile         string             `json:"log_file" mapstructure:"log_file"`
	Pretty          bool               `json:"pretty" mapstructure:"pretty"`
	Mongo           MongoConfiguration `json:"mongo" mapstructure:"mongo"`
	Math            MathConfiguration  `json:"math" mapstructure:"math"`
	Store           StoreConfiguration `json:"store" mapstructure:"store"`
	Pool            PoolConfiguration  `json:"pool" mapstructure:"pool"`
}

// MongoConfiguration selects the history store. Host "skip" keeps the
// history in memory.
type MongoConfiguration struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Database string `json:"database" mapstructure:"database"`
}

type MathConfiguration struct {
	SeriesEpsilon  string `json:"series_epsilon" mapstructure:"series_epsilon"`
	MaxSeriesTerms int    `json:"max_series_terms" mapstructure:"max_series_terms"`
}

type StoreConfiguration struct {
	HistoryLimit int `json:"history_limit" mapstructure:"history_limit"`
}

type PoolConfiguration struct {
	DefaultFeeRate string `json:"default_fee_rate" mapstructure:"default_fee_rate"`
}

// Series returns the convergence policy for ln and pow.
func (c MathConfiguration) Series() (decimal.Series, error) {
	eps, err := decimal.FromString(c.SeriesEpsilon)
	if err != nil {
		return decimal.Series{}, errors.Wrap(err, "invalid math.series_epsilon")
	}
	if eps.IsZero() {
		return decimal.Series{}, errors.New("math.series_epsilon must be positive")
	}
	if c.MaxSeriesTerms <= 0 {
		return decimal.Series{}, errors.Errorf("math.max_series_terms must be positive, got %d", c.MaxSeriesTerms)
	}
	return decimal.Series{Epsilon: eps, MaxTerms: c.MaxSeriesTerms}, nil
}

// FeeRate returns the fee applied to pool quotes that carry none.
func (c PoolConfiguration) FeeRate() (decimal.Decimal, error) {
	fee, err := decimal.FromString(c.DefaultFeeRate)
	if err != nil {
		return decimal.Zero(), errors.Wrap(err, "invalid pool.default_fee_rate")
	}
	if !fee.LT(decimal.One()) {
		return decimal.Zero(), errors.Errorf("pool.default_fee_rate must be below 1, got %s", fee)
	}
	return fee, nil
}

func applyDefaultConfig(v *viper.Viper) {
	v.SetDefault("read_timeout", "30s")
	v.SetDefault("write_timeout", "30s")
	v.SetDefault("shutdown_timeout", "30s")
	v.SetDefault("listen_port", "8082")
	v.SetDefault("log_level", "info") // debug
	v.SetDefault("log_file", "")
	v.SetDefault("pretty", "false")
	v.SetDefault("mongo.host", "skip") // localhost
	v.SetDefault("mongo.port", "27017")
	v.SetDefault("mongo.database", "settlemath")
	v.SetDefault("math.series_epsilon", decimal.DefaultSeries.Epsilon.String())
	v.SetDefault("math.max_series_terms", decimal.DefaultSeries.MaxTerms)
	v.SetDefault("store.history_limit", 1000)
	v.SetDefault("pool.default_fee_rate", "0.003")
}

// LoadConfiguration reads file on top of the defaults. A missing file
// leaves the defaults in place, environment variables override both.
func LoadConfiguration(file string) (*Configuration, error) {
	v := viper.New()
	applyDefaultConfig(v)
	var cfg Configuration
	if file != "" {
		base := filepath.Base(file)
		v.SetConfigName(strings.TrimSuffix(base, filepath.Ext(base)))
		v.AddConfigPath(filepath.Dir(file))
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); nil != err {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "failed to read from config file")
			}
		}
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.Unmarshal(&cfg); nil != err {
		return nil, errors.Wrap(err, "failed to unmarshal")
	}
	return &cfg, nil
}
