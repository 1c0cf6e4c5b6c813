package pricing

import "errors"

var (
	// ErrInvalidParameters indicates market parameters the pricing formula
	// is not defined for (non-positive spot/strike, negative vol or time).
	ErrInvalidParameters = errors.New("invalid market parameters")

	// ErrInvalidSweep indicates a scenario sweep configuration with a
	// count outside [5,100] or a non-increasing price range.
	ErrInvalidSweep = errors.New("invalid sweep configuration")
)
