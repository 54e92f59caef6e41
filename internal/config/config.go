package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Data struct {
		CSVPath string `yaml:"csv_path"`
		Symbol  string `yaml:"symbol"`
	} `yaml:"data"`
	Indicators struct {
		MomentumPeriod  int     `yaml:"momentum_period"`
		RSIPeriod       int     `yaml:"rsi_period"`
		MACDFast        int     `yaml:"macd_fast"`
		MACDSlow        int     `yaml:"macd_slow"`
		MACDSignal      int     `yaml:"macd_signal"`
		BollingerPeriod int     `yaml:"bollinger_period"`
		BollingerStdDev float64 `yaml:"bollinger_std_dev"`
		SMAShort        int     `yaml:"sma_short"`
		SMALong         int     `yaml:"sma_long"`
		EMAPeriod       int     `yaml:"ema_period"`
		VolumePeriod    int     `yaml:"volume_period"`
		ATRPeriod       int     `yaml:"atr_period"`
		ADXPeriod       int     `yaml:"adx_period"`
		MFIPeriod       int     `yaml:"mfi_period"`
		StochRSIPeriod  int     `yaml:"stoch_rsi_period"`
		StochRSISmoothK int     `yaml:"stoch_rsi_smooth_k"`
		StochRSISmoothD int     `yaml:"stoch_rsi_smooth_d"`
		IchimokuConv    int     `yaml:"ichimoku_conversion"`
		IchimokuBase    int     `yaml:"ichimoku_base"`
		IchimokuSpanB   int     `yaml:"ichimoku_span_b"`
	} `yaml:"indicators"`
	Risk struct {
		AccountSize    float64 `yaml:"account_size"`
		RiskPct        float64 `yaml:"risk_pct"`
		Confidence     float64 `yaml:"confidence"`
		HorizonDays    int     `yaml:"horizon_days"`
		Simulations    int     `yaml:"simulations"`
		SimulationDays int     `yaml:"simulation_days"`
		AnnualVol      float64 `yaml:"annual_volatility"` // 0 means estimate from returns
		ATRMultiple    float64 `yaml:"atr_multiple"`
		StopLookback   int     `yaml:"stop_lookback"`
		Seed           int64   `yaml:"seed"`
	} `yaml:"risk"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		AnalysisCron string `yaml:"analysis_cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CSV_PATH"); v != "" {
		cfg.Data.CSVPath = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.Data.Symbol = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("ANALYSIS_CRON"); v != "" {
		cfg.Schedule.AnalysisCron = v
	}
	if v := os.Getenv("ACCOUNT_SIZE"); v != "" {
		var size float64
		if _, err := fmt.Sscanf(v, "%f", &size); err == nil {
			cfg.Risk.AccountSize = size
		}
	}

	// Defaults
	ind := &cfg.Indicators
	setIntDefault(&ind.MomentumPeriod, 5)
	setIntDefault(&ind.RSIPeriod, 14)
	setIntDefault(&ind.MACDFast, 12)
	setIntDefault(&ind.MACDSlow, 26)
	setIntDefault(&ind.MACDSignal, 9)
	setIntDefault(&ind.BollingerPeriod, 20)
	if ind.BollingerStdDev == 0 {
		ind.BollingerStdDev = 2.0
	}
	setIntDefault(&ind.SMAShort, 20)
	setIntDefault(&ind.SMALong, 50)
	setIntDefault(&ind.EMAPeriod, 20)
	setIntDefault(&ind.VolumePeriod, 20)
	setIntDefault(&ind.ATRPeriod, 20)
	setIntDefault(&ind.ADXPeriod, 14)
	setIntDefault(&ind.MFIPeriod, 14)
	setIntDefault(&ind.StochRSIPeriod, 14)
	setIntDefault(&ind.StochRSISmoothK, 3)
	setIntDefault(&ind.StochRSISmoothD, 3)
	setIntDefault(&ind.IchimokuConv, 9)
	setIntDefault(&ind.IchimokuBase, 26)
	setIntDefault(&ind.IchimokuSpanB, 52)

	r := &cfg.Risk
	if r.AccountSize == 0 {
		r.AccountSize = 100000
	}
	if r.RiskPct == 0 {
		r.RiskPct = 2.0
	}
	if r.Confidence == 0 {
		r.Confidence = 0.95
	}
	setIntDefault(&r.HorizonDays, 1)
	setIntDefault(&r.Simulations, 1000)
	setIntDefault(&r.SimulationDays, 30)
	if r.ATRMultiple == 0 {
		r.ATRMultiple = 2.0
	}
	setIntDefault(&r.StopLookback, 20)

	if cfg.Data.Symbol == "" {
		cfg.Data.Symbol = "SPX500"
	}

	return cfg, nil
}

func setIntDefault(field *int, def int) {
	if *field == 0 {
		*field = def
	}
}

// Validate checks that all required fields are sensible.
func (c *Config) Validate() error {
	if c.Data.CSVPath == "" {
		return fmt.Errorf("data.csv_path is required")
	}
	if c.Risk.RiskPct <= 0 || c.Risk.RiskPct > 100 {
		return fmt.Errorf("risk.risk_pct must be in (0,100], got %g", c.Risk.RiskPct)
	}
	if c.Risk.Confidence <= 0 || c.Risk.Confidence >= 1 {
		return fmt.Errorf("risk.confidence must be in (0,1), got %g", c.Risk.Confidence)
	}
	if c.Indicators.MACDFast >= c.Indicators.MACDSlow {
		return fmt.Errorf("indicators.macd_fast must be below macd_slow")
	}
	for name, p := range map[string]int{
		"momentum_period":  c.Indicators.MomentumPeriod,
		"rsi_period":       c.Indicators.RSIPeriod,
		"bollinger_period": c.Indicators.BollingerPeriod,
		"sma_short":        c.Indicators.SMAShort,
		"sma_long":         c.Indicators.SMALong,
		"atr_period":       c.Indicators.ATRPeriod,
		"adx_period":       c.Indicators.ADXPeriod,
		"mfi_period":       c.Indicators.MFIPeriod,
	} {
		if p <= 0 {
			return fmt.Errorf("indicators.%s must be positive, got %d", name, p)
		}
	}
	return nil
}
