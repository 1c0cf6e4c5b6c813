package pricing

import (
	"fmt"
	"math"
)

const (
	// DefaultSweepSize is the number of points in the default sweep.
	DefaultSweepSize = 25
	// MinSweepSize and MaxSweepSize bound a custom sweep's point count.
	MinSweepSize = 5
	MaxSweepSize = 100

	// defaultSweepBand is the symmetric band around spot for the
	// default sweep, as a fraction of spot.
	defaultSweepBand = 0.30
)

// SweepSpec describes a custom scenario sweep: Count equally spaced
// prices spanning [MinPrice, MaxPrice] inclusive of both endpoints.
type SweepSpec struct {
	MinPrice float64 `json:"min_price"`
	MaxPrice float64 `json:"max_price"`
	Count    int     `json:"count"`
}

// Validate checks the sweep bounds and point count.
func (s SweepSpec) Validate() error {
	if s.Count < MinSweepSize || s.Count > MaxSweepSize {
		return fmt.Errorf("%w: count must be in [%d,%d], got %d", ErrInvalidSweep, MinSweepSize, MaxSweepSize, s.Count)
	}
	if math.IsNaN(s.MinPrice) || math.IsNaN(s.MaxPrice) || s.MinPrice >= s.MaxPrice {
		return fmt.Errorf("%w: min price %v must be below max price %v", ErrInvalidSweep, s.MinPrice, s.MaxPrice)
	}
	return nil
}

// Sweep expands the spec into its price points, low to high.
func Sweep(spec SweepSpec) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return linspace(spec.MinPrice, spec.MaxPrice, spec.Count), nil
}

// DefaultSweep returns 25 equally spaced prices spanning a ±30% band
// around spot.
func DefaultSweep(spot float64) []float64 {
	return linspace(spot*(1-defaultSweepBand), spot*(1+defaultSweepBand), DefaultSweepSize)
}

func linspace(min, max float64, n int) []float64 {
	points := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range points {
		points[i] = min + step*float64(i)
	}
	points[n-1] = max // exact endpoint, no accumulated step error
	return points
}

// ScenarioPoint is one row of a scenario table: the hypothetical
// underlying price and the option's outcome if it expires there.
type ScenarioPoint struct {
	ScenarioPrice  float64 `json:"scenario_price"`
	PriceChangePct float64 `json:"price_change_pct"`
	Payoff         float64 `json:"payoff"`
	PnL            float64 `json:"pnl"`
	ROI            float64 `json:"roi"`
}

// GenerateScenarios computes the expiration payoff, P&L, and ROI of a
// held option across a sweep of hypothetical underlying prices. A nil
// or empty sweep means the default ±30% band around spot. The returned
// table has one row per swept price, in sweep order; a caller-supplied
// sweep is never re-sorted.
//
// ROI is defined as 0 whenever premium <= 0, so a zero premium never
// divides by zero.
func GenerateScenarios(params MarketParameters, premium float64, typ OptionType, sweep []float64) ([]ScenarioPoint, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(sweep) == 0 {
		sweep = DefaultSweep(params.Spot)
	}

	table := make([]ScenarioPoint, 0, len(sweep))
	for _, price := range sweep {
		payoff := Payoff(typ, params.Strike, price)
		pnl := payoff - premium

		roi := 0.0
		if premium > 0 {
			roi = pnl / premium * 100
		}

		table = append(table, ScenarioPoint{
			ScenarioPrice:  price,
			PriceChangePct: (price - params.Spot) / params.Spot * 100,
			Payoff:         payoff,
			PnL:            pnl,
			ROI:            roi,
		})
	}
	return table, nil
}

// Payoff is the option's intrinsic value at the given underlying price.
func Payoff(typ OptionType, strike, price float64) float64 {
	if typ == Call {
		return math.Max(0, price-strike)
	}
	return math.Max(0, strike-price)
}

// BreakEven is the underlying price at which expiration P&L is zero:
// strike + premium for a call, strike - premium for a put. It is exact
// by construction, unlike interpolating between sweep points.
func BreakEven(typ OptionType, strike, premium float64) float64 {
	if typ == Call {
		return strike + premium
	}
	return strike - premium
}
