package core

import (
	"github.com/fox-one/pkg/store/db"
	"github.com/fox-one/mixin-sdk-go"
)

// Config stellend config
type Config struct {
	App       App            `json:"app"`
	DB        db.Config      `json:"db"`
	Admins    []string       `json:"admins"`
	RateModel RateModel      `json:"rate_model"`
	Risk      Risk           `json:"risk"`
	Oracle    Oracle         `json:"oracle"`
	Markets   []MarketConfig `json:"markets"`
	Custody   Custody        `json:"custody"`
}

// IsAdmin check if the user is admin
func (c *Config) IsAdmin(userID string) bool {
	if len(c.Admins) <= 0 {
		return false
	}

	for _, a := range c.Admins {
		if a == userID {
			return true
		}
	}

	return false
}

// App app config
type App struct {
	Location string `json:"location"`
	// AccrueSpec cron spec of the interest keeper
	AccrueSpec string `json:"accrue_spec"`
}

// RateModel interest rate curve config, values scaled by 10,000,000
type RateModel struct {
	Kind      string         `json:"kind"`
	MultiKink MultiKinkModel `json:"multi_kink"`
	TwoSlope  TwoSlopeModel  `json:"two_slope"`
}

// MultiKinkModel multi kink params
type MultiKinkModel struct {
	RateMin            uint64 `json:"rate_min"`
	RateOpt            uint64 `json:"rate_opt"`
	RateMax            uint64 `json:"rate_max"`
	OptimalUtilization uint64 `json:"optimal_utilization"`
}

// TwoSlopeModel two slope params
type TwoSlopeModel struct {
	BaseRate           uint64 `json:"base_rate"`
	Slope1             uint64 `json:"slope1"`
	Slope2             uint64 `json:"slope2"`
	OptimalUtilization uint64 `json:"optimal_utilization"`
}

// Risk liquidation and valuation config, values scaled by 10,000,000
type Risk struct {
	CloseFactor         uint64 `json:"close_factor"`
	LiquidationBonus    uint64 `json:"liquidation_bonus"`
	ThresholdPolicy     string `json:"threshold_policy"`
	RepresentativeAsset string `json:"representative_asset"`
}

// Oracle price source config
type Oracle struct {
	// StaleThreshold seconds
	StaleThreshold int64 `json:"stale_threshold"`
	RejectStale    *bool `json:"reject_stale"`
}

// ShouldRejectStale reject stale prices, default true
func (o Oracle) ShouldRejectStale() bool {
	return o.RejectStale == nil || *o.RejectStale
}

// MarketConfig market created by init
type MarketConfig struct {
	Symbol               string `json:"symbol"`
	LTV                  string `json:"ltv"`
	LiquidationThreshold string `json:"liquidation_threshold"`
	ReserveFactor        string `json:"reserve_factor"`
	CollateralEnabled    bool   `json:"collateral_enabled"`
	BorrowEnabled        bool   `json:"borrow_enabled"`
	InitialPrice         string `json:"initial_price"`
}

// Custody custody adapter config
type Custody struct {
	Kind     string            `json:"kind"`
	Endpoint string            `json:"endpoint"`
	Token    string            `json:"token"`
	Mixin    MixinWallet       `json:"mixin"`
	Assets   map[string]string `json:"assets"`
}

// MixinWallet mixin dapp wallet used to pay out
type MixinWallet struct {
	mixin.Keystore
	Pin string `json:"pin"`
}
