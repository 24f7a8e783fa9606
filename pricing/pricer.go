// Package pricing defines the European option pricer contract and an
// analytic Black-Scholes implementation. Pricers consume the year
// fraction produced by datetime.TimeDelta as their time to maturity and
// treat it as an opaque input.
package pricing

import (
	"fmt"

	"github.com/meenmo/quantdate/datetime"
)

// Pricer values a European option and its sensitivities given the spot
// price of the underlying and the time to maturity tau in years.
//
// Implementations must be immutable after construction and render a
// canonical String form: equality and ordering between pricers are
// defined over that form.
type Pricer interface {
	// Price returns the option value.
	Price(spot, tau float64) float64
	// Delta is the sensitivity to the underlying value.
	Delta(spot, tau float64) float64
	// Gamma is the sensitivity of delta to the underlying value.
	Gamma(spot, tau float64) float64
	// Vega is the sensitivity to volatility.
	Vega(spot, tau float64) float64
	// Rho is the sensitivity to the risk-free rate.
	Rho(spot, tau float64) float64
	// Theta is the sensitivity to the passage of time.
	Theta(spot, tau float64) float64

	// Volatility returns the volatility parameter.
	Volatility() float64
	// RiskFreeRate returns the continuously-compounded risk-free rate.
	RiskFreeRate() float64

	fmt.Stringer
}

// Equal compares two pricers by canonical representation.
func Equal(a, b Pricer) bool {
	return a.String() == b.String()
}

// Less orders two pricers by canonical representation.
func Less(a, b Pricer) bool {
	return a.String() < b.String()
}

// TimeToMaturity bridges the datetime core to pricers: the year fraction
// from valuation to expiry under their shared convention. Expiry must not
// precede valuation.
func TimeToMaturity(valuation, expiry datetime.Datetime) (float64, error) {
	tau, err := valuation.TimeDelta(expiry)
	if err != nil {
		return 0, err
	}
	if tau < 0 {
		return 0, fmt.Errorf("%w: expiry %s precedes valuation %s",
			datetime.ErrOrderingViolation, expiry, valuation)
	}
	return tau, nil
}
