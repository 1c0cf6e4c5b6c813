package pricing

import "math"

// Greeks are the closed-form Black-Scholes sensitivities.
// Theta is per calendar day, Vega per 1.00 change in volatility,
// Rho per 1% change in the risk-free rate.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// ComputeGreeks derives the sensitivities from the same d1/d2 terms as
// Price. In the degenerate limits (zero volatility or time-to-expiry)
// all Greeks are zero.
func ComputeGreeks(params MarketParameters, typ OptionType) (Greeks, error) {
	if err := params.Validate(); err != nil {
		return Greeks{}, err
	}
	if params.TimeToExpiry == 0 || params.Volatility == 0 {
		return Greeks{}, nil
	}

	d1, d2 := standardizedArgs(params)
	sqrtT := math.Sqrt(params.TimeToExpiry)
	discount := math.Exp(-params.RiskFreeRate * params.TimeToExpiry)
	pdfD1 := normPDF(d1)

	g := Greeks{
		Gamma: pdfD1 / (params.Spot * params.Volatility * sqrtT),
		Vega:  params.Spot * pdfD1 * sqrtT,
	}

	switch typ {
	case Call:
		g.Delta = normCDF(d1)
		g.Theta = (-params.Spot*pdfD1*params.Volatility/(2*sqrtT) -
			params.RiskFreeRate*params.Strike*discount*normCDF(d2)) / 365
		g.Rho = params.Strike * params.TimeToExpiry * discount * normCDF(d2) / 100
	case Put:
		g.Delta = normCDF(d1) - 1
		g.Theta = (-params.Spot*pdfD1*params.Volatility/(2*sqrtT) +
			params.RiskFreeRate*params.Strike*discount*normCDF(-d2)) / 365
		g.Rho = -params.Strike * params.TimeToExpiry * discount * normCDF(-d2) / 100
	}

	return g, nil
}
