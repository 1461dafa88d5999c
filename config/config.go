package config

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
	configUtil "github.com/fox-one/pkg/config"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/internal/compound"
	"github.com/y4hyya/Stellend/pkg/number"
)

// Load load config file, STELLEND_* environment variables override it
func Load(configFile string, cfg *core.Config) error {
	configUtil.AutomaticLoadEnv("STELLEND")
	if err := configUtil.LoadYaml(configFile, cfg); err != nil {
		return err
	}

	defaults(cfg)
	return Validate(cfg)
}

// DefaultMarkets XLM as collateral, USDC as the borrowable asset
func DefaultMarkets() []core.MarketConfig {
	return []core.MarketConfig{
		{
			Symbol:               "XLM",
			LTV:                  "0.75",
			LiquidationThreshold: "0.8",
			ReserveFactor:        "0.1",
			CollateralEnabled:    true,
			InitialPrice:         "0.3",
		},
		{
			Symbol:               "USDC",
			LTV:                  "0.8",
			LiquidationThreshold: "0.85",
			ReserveFactor:        "0.1",
			CollateralEnabled:    true,
			BorrowEnabled:        true,
			InitialPrice:         "1",
		},
	}
}

func defaults(cfg *core.Config) {
	if cfg.RateModel.Kind == "" {
		cfg.RateModel.Kind = compound.CurveMultiKink
	}

	if cfg.Risk.ThresholdPolicy == "" {
		cfg.Risk.ThresholdPolicy = core.ThresholdPolicyRepresentative
	}

	if cfg.Risk.RepresentativeAsset == "" {
		cfg.Risk.RepresentativeAsset = "XLM"
	}

	if cfg.Oracle.StaleThreshold == 0 {
		cfg.Oracle.StaleThreshold = 3600
	}

	if len(cfg.Markets) == 0 {
		cfg.Markets = DefaultMarkets()
	}
}

// Validate reject configs the services cannot run with
func Validate(cfg *core.Config) error {
	switch cfg.RateModel.Kind {
	case compound.CurveMultiKink, compound.CurveTwoSlope:
	default:
		return fmt.Errorf("unknown rate model %q", cfg.RateModel.Kind)
	}

	switch cfg.Risk.ThresholdPolicy {
	case core.ThresholdPolicyRepresentative, core.ThresholdPolicyWeighted:
	default:
		return fmt.Errorf("unknown threshold policy %q", cfg.Risk.ThresholdPolicy)
	}

	for _, admin := range cfg.Admins {
		if strings.TrimSpace(admin) == "" {
			return fmt.Errorf("empty admin id")
		}
	}

	if cfg.Custody.Endpoint != "" && !govalidator.IsURL(cfg.Custody.Endpoint) {
		return fmt.Errorf("invalid custody endpoint %q", cfg.Custody.Endpoint)
	}

	_, err := MarketParams(cfg.Markets)
	return err
}

// MarketParams parse the configured markets
func MarketParams(markets []core.MarketConfig) ([]*core.MarketParams, error) {
	params := make([]*core.MarketParams, 0, len(markets))
	for _, m := range markets {
		p, err := marketParams(m)
		if err != nil {
			return nil, fmt.Errorf("market %s: %w", m.Symbol, err)
		}

		params = append(params, p)
	}

	return params, nil
}

func marketParams(m core.MarketConfig) (*core.MarketParams, error) {
	p := &core.MarketParams{
		Symbol:            strings.ToUpper(m.Symbol),
		CollateralEnabled: m.CollateralEnabled,
		BorrowEnabled:     m.BorrowEnabled,
	}

	var err error
	if p.LTV, err = number.Scaled(m.LTV); err != nil {
		return nil, err
	}

	if p.LiquidationThreshold, err = number.Scaled(m.LiquidationThreshold); err != nil {
		return nil, err
	}

	if p.ReserveFactor, err = number.Scaled(m.ReserveFactor); err != nil {
		return nil, err
	}

	if p.InitialPrice, err = number.Scaled(m.InitialPrice); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}
