// Package pricing implements the Black-Scholes fair value of European
// call and put options and expiration P&L scenario sweeps. Everything in
// this package is a pure function of its inputs: no logging, no state,
// safe for concurrent use.
package pricing

import (
	"fmt"
	"math"
)

// OptionType selects between the two European option variants.
type OptionType int

const (
	Call OptionType = iota
	Put
)

// String returns the lowercase tag used in JSON payloads.
func (t OptionType) String() string {
	if t == Put {
		return "put"
	}
	return "call"
}

// MarshalJSON encodes the option type as "call" or "put".
func (t OptionType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// ParseOptionType parses the wire tag for an option type. Unknown tags
// are rejected rather than silently treated as puts.
func ParseOptionType(s string) (OptionType, error) {
	switch s {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	default:
		return Call, fmt.Errorf("%w: unknown option type %q", ErrInvalidParameters, s)
	}
}

// MarketParameters holds the inputs to the Black-Scholes formula.
// Rates and volatility are annualized decimals, time is in years.
type MarketParameters struct {
	Spot         float64 `json:"spot"`
	Strike       float64 `json:"strike"`
	TimeToExpiry float64 `json:"time_to_expiry"`
	Volatility   float64 `json:"volatility"`
	RiskFreeRate float64 `json:"risk_free_rate"`
}

// Validate reports whether the parameters are in the pricing formula's
// domain. Zero volatility and zero time-to-expiry are allowed; Price
// handles them as deterministic limits.
func (p MarketParameters) Validate() error {
	for name, v := range map[string]float64{
		"spot":           p.Spot,
		"strike":         p.Strike,
		"time_to_expiry": p.TimeToExpiry,
		"volatility":     p.Volatility,
		"risk_free_rate": p.RiskFreeRate,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidParameters, name)
		}
	}
	if p.Spot <= 0 {
		return fmt.Errorf("%w: spot must be positive, got %v", ErrInvalidParameters, p.Spot)
	}
	if p.Strike <= 0 {
		return fmt.Errorf("%w: strike must be positive, got %v", ErrInvalidParameters, p.Strike)
	}
	if p.TimeToExpiry < 0 {
		return fmt.Errorf("%w: time to expiry must be non-negative, got %v", ErrInvalidParameters, p.TimeToExpiry)
	}
	if p.Volatility < 0 {
		return fmt.Errorf("%w: volatility must be non-negative, got %v", ErrInvalidParameters, p.Volatility)
	}
	return nil
}

// PricingResult is the fair value plus the standardized normal arguments
// of the formula. D1 and D2 are retained so callers can derive Greeks
// without recomputation; in the degenerate limits (zero volatility or
// zero time-to-expiry) they are reported as 0 and carry no meaning.
type PricingResult struct {
	Price float64 `json:"price"`
	D1    float64 `json:"d1"`
	D2    float64 `json:"d2"`
}

// Price computes the Black-Scholes fair value of a European option.
//
// Degenerate inputs take the closed-form limit instead of failing:
// at TimeToExpiry == 0 the price is the expiry payoff, and at
// Volatility == 0 it is the discounted-forward intrinsic value
// max(0, S - K·e^(-rT)) for a call, max(0, K·e^(-rT) - S) for a put.
func Price(params MarketParameters, typ OptionType) (PricingResult, error) {
	if err := params.Validate(); err != nil {
		return PricingResult{}, err
	}

	if params.TimeToExpiry == 0 {
		return PricingResult{Price: Payoff(typ, params.Strike, params.Spot)}, nil
	}
	if params.Volatility == 0 {
		discounted := params.Strike * math.Exp(-params.RiskFreeRate*params.TimeToExpiry)
		if typ == Call {
			return PricingResult{Price: math.Max(0, params.Spot-discounted)}, nil
		}
		return PricingResult{Price: math.Max(0, discounted-params.Spot)}, nil
	}

	d1, d2 := standardizedArgs(params)
	discount := math.Exp(-params.RiskFreeRate * params.TimeToExpiry)

	var price float64
	switch typ {
	case Call:
		price = params.Spot*normCDF(d1) - params.Strike*discount*normCDF(d2)
	case Put:
		price = params.Strike*discount*normCDF(-d2) - params.Spot*normCDF(-d1)
	}

	return PricingResult{Price: price, D1: d1, D2: d2}, nil
}

// standardizedArgs computes d1 and d2. Callers must ensure Volatility
// and TimeToExpiry are strictly positive.
func standardizedArgs(p MarketParameters) (d1, d2 float64) {
	volSqrtT := p.Volatility * math.Sqrt(p.TimeToExpiry)
	d1 = (math.Log(p.Spot/p.Strike) + (p.RiskFreeRate+0.5*p.Volatility*p.Volatility)*p.TimeToExpiry) / volSqrtT
	d2 = d1 - volSqrtT
	return d1, d2
}

// normCDF is the standard normal cumulative distribution function.
func normCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// normPDF is the standard normal density.
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}
