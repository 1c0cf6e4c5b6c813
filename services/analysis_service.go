package services

import (
	"fmt"

	"options-analyzer/pricing"

	"github.com/sirupsen/logrus"
)

// OptionAnalysisService orchestrates the pricing engine: it prices an
// option, sweeps P&L scenarios using that price as the premium, and
// derives the summary statistics views render alongside the table.
type OptionAnalysisService struct {
	logger *logrus.Logger
}

// NewOptionAnalysisService creates a new option analysis service
func NewOptionAnalysisService() *OptionAnalysisService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return &OptionAnalysisService{logger: logger}
}

// AnalysisRequest carries the scalar market inputs collected by the
// caller. OptionType ("call" or "put") selects the leg for single-leg
// operations and is ignored by AnalyzeBoth. Sweep, when present,
// replaces the default ±30% scenario band.
type AnalysisRequest struct {
	Spot         float64            `json:"spot"`
	Strike       float64            `json:"strike"`
	TimeToExpiry float64            `json:"time_to_expiry"`
	Volatility   float64            `json:"volatility"`
	RiskFreeRate float64            `json:"risk_free_rate"`
	OptionType   string             `json:"option_type"`
	Sweep        *pricing.SweepSpec `json:"sweep,omitempty"`
}

func (r *AnalysisRequest) params() pricing.MarketParameters {
	return pricing.MarketParameters{
		Spot:         r.Spot,
		Strike:       r.Strike,
		TimeToExpiry: r.TimeToExpiry,
		Volatility:   r.Volatility,
		RiskFreeRate: r.RiskFreeRate,
	}
}

// OptionQuote is the priced option: premium, the d1/d2 terms the price
// was built from, and the closed-form Greeks.
type OptionQuote struct {
	OptionType pricing.OptionType `json:"option_type"`
	Premium    float64            `json:"premium"`
	D1         float64            `json:"d1"`
	D2         float64            `json:"d2"`
	Greeks     pricing.Greeks     `json:"greeks"`
}

// Summary holds the view-level statistics derived from a scenario
// table. MaxProfit and MaxLoss come from the swept P&L values;
// BreakEven is the closed-form strike ± premium, since the sweep may
// not land exactly on it.
type Summary struct {
	MaxProfit float64 `json:"max_profit"`
	MaxLoss   float64 `json:"max_loss"`
	BreakEven float64 `json:"break_even"`
}

// OptionAnalysis is a full single-leg result: quote, scenario table,
// and summary statistics.
type OptionAnalysis struct {
	OptionQuote
	Scenarios []pricing.ScenarioPoint `json:"scenarios"`
	Summary   Summary                 `json:"summary"`
}

// DualAnalysis analyses the call and put legs from one parameter set,
// each leg priced and swept with its own premium.
type DualAnalysis struct {
	Parameters pricing.MarketParameters `json:"parameters"`
	Call       *OptionAnalysis          `json:"call"`
	Put        *OptionAnalysis          `json:"put"`
}

// PriceOption prices the requested leg and derives its Greeks.
func (s *OptionAnalysisService) PriceOption(req *AnalysisRequest) (*OptionQuote, error) {
	typ, err := pricing.ParseOptionType(req.OptionType)
	if err != nil {
		return nil, err
	}
	return s.quote(req.params(), typ)
}

// AnalyzeOption prices the requested leg and sweeps its P&L scenarios,
// using the computed premium as the cost basis.
func (s *OptionAnalysisService) AnalyzeOption(req *AnalysisRequest) (*OptionAnalysis, error) {
	typ, err := pricing.ParseOptionType(req.OptionType)
	if err != nil {
		return nil, err
	}
	return s.analyze(req, typ)
}

// AnalyzeBoth runs the full call and put analysis from one parameter
// set, mirroring a dashboard that shows both legs side by side.
func (s *OptionAnalysisService) AnalyzeBoth(req *AnalysisRequest) (*DualAnalysis, error) {
	call, err := s.analyze(req, pricing.Call)
	if err != nil {
		return nil, err
	}
	put, err := s.analyze(req, pricing.Put)
	if err != nil {
		return nil, err
	}

	return &DualAnalysis{
		Parameters: req.params(),
		Call:       call,
		Put:        put,
	}, nil
}

func (s *OptionAnalysisService) quote(params pricing.MarketParameters, typ pricing.OptionType) (*OptionQuote, error) {
	result, err := pricing.Price(params, typ)
	if err != nil {
		return nil, err
	}
	greeks, err := pricing.ComputeGreeks(params, typ)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"type":    typ.String(),
		"spot":    params.Spot,
		"strike":  params.Strike,
		"premium": result.Price,
	}).Debug("Priced option")

	return &OptionQuote{
		OptionType: typ,
		Premium:    result.Price,
		D1:         result.D1,
		D2:         result.D2,
		Greeks:     greeks,
	}, nil
}

func (s *OptionAnalysisService) analyze(req *AnalysisRequest, typ pricing.OptionType) (*OptionAnalysis, error) {
	params := req.params()

	quote, err := s.quote(params, typ)
	if err != nil {
		return nil, err
	}

	var sweep []float64
	if req.Sweep != nil {
		sweep, err = pricing.Sweep(*req.Sweep)
		if err != nil {
			return nil, fmt.Errorf("expanding sweep: %w", err)
		}
	}

	scenarios, err := pricing.GenerateScenarios(params, quote.Premium, typ, sweep)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"type":      typ.String(),
		"scenarios": len(scenarios),
	}).Debug("Generated scenario table")

	return &OptionAnalysis{
		OptionQuote: *quote,
		Scenarios:   scenarios,
		Summary:     summarize(typ, params.Strike, quote.Premium, scenarios),
	}, nil
}

// summarize scans the table for the P&L extremes and attaches the
// closed-form break-even.
func summarize(typ pricing.OptionType, strike, premium float64, table []pricing.ScenarioPoint) Summary {
	sum := Summary{
		MaxProfit: table[0].PnL,
		MaxLoss:   table[0].PnL,
		BreakEven: pricing.BreakEven(typ, strike, premium),
	}
	for _, point := range table[1:] {
		if point.PnL > sum.MaxProfit {
			sum.MaxProfit = point.PnL
		}
		if point.PnL < sum.MaxLoss {
			sum.MaxLoss = point.PnL
		}
	}
	return sum
}
