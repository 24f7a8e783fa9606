package pricing

import (
	"fmt"
	"math"
)

// BlackScholes is the analytic Black-Scholes pricer for a European call
// or put with constant volatility and risk-free rate.
type BlackScholes struct {
	strike float64
	vol    float64
	rate   float64
	call   bool
}

// NewBlackScholes validates the parameters. Strike and volatility must be
// positive; the rate may take any sign.
func NewBlackScholes(strike, vol, rate float64, call bool) (*BlackScholes, error) {
	if strike <= 0 {
		return nil, fmt.Errorf("NewBlackScholes: strike must be positive, got %v", strike)
	}
	if vol <= 0 {
		return nil, fmt.Errorf("NewBlackScholes: volatility must be positive, got %v", vol)
	}
	return &BlackScholes{strike: strike, vol: vol, rate: rate, call: call}, nil
}

// dPlus and dMinus are the standard Black-Scholes helper terms.
func (bs *BlackScholes) dPlus(spot, tau float64) float64 {
	return (math.Log(spot/bs.strike) + (bs.rate+bs.vol*bs.vol/2)*tau) / (bs.vol * math.Sqrt(tau))
}

func (bs *BlackScholes) dMinus(spot, tau float64) float64 {
	return bs.dPlus(spot, tau) - bs.vol*math.Sqrt(tau)
}

// Price returns the option value.
func (bs *BlackScholes) Price(spot, tau float64) float64 {
	dp, dm := bs.dPlus(spot, tau), bs.dMinus(spot, tau)
	discounted := bs.strike * math.Exp(-bs.rate*tau)
	if bs.call {
		return normCDF(dp)*spot - normCDF(dm)*discounted
	}
	return normCDF(-dm)*discounted - normCDF(-dp)*spot
}

// Delta is the sensitivity to the underlying value.
func (bs *BlackScholes) Delta(spot, tau float64) float64 {
	if bs.call {
		return normCDF(bs.dPlus(spot, tau))
	}
	return normCDF(bs.dPlus(spot, tau)) - 1
}

// Gamma is the sensitivity of delta to the underlying value. Identical
// for calls and puts.
func (bs *BlackScholes) Gamma(spot, tau float64) float64 {
	return normPDF(bs.dPlus(spot, tau)) / (spot * bs.vol * math.Sqrt(tau))
}

// Vega is the sensitivity to volatility. Identical for calls and puts.
func (bs *BlackScholes) Vega(spot, tau float64) float64 {
	return spot * normPDF(bs.dPlus(spot, tau)) * math.Sqrt(tau)
}

// Rho is the sensitivity to the risk-free rate.
func (bs *BlackScholes) Rho(spot, tau float64) float64 {
	dm := bs.dMinus(spot, tau)
	discounted := bs.strike * tau * math.Exp(-bs.rate*tau)
	if bs.call {
		return discounted * normCDF(dm)
	}
	return -discounted * normCDF(-dm)
}

// Theta is the sensitivity to the passage of time.
func (bs *BlackScholes) Theta(spot, tau float64) float64 {
	dp, dm := bs.dPlus(spot, tau), bs.dMinus(spot, tau)
	decay := -spot * normPDF(dp) * bs.vol / (2 * math.Sqrt(tau))
	carry := bs.rate * bs.strike * math.Exp(-bs.rate*tau)
	if bs.call {
		return decay - carry*normCDF(dm)
	}
	return decay + carry*normCDF(-dm)
}

// Volatility returns the volatility parameter.
func (bs *BlackScholes) Volatility() float64 { return bs.vol }

// RiskFreeRate returns the continuously-compounded risk-free rate.
func (bs *BlackScholes) RiskFreeRate() float64 { return bs.rate }

// String renders the canonical representation used for pricer equality
// and ordering.
func (bs *BlackScholes) String() string {
	kind := "put"
	if bs.call {
		kind = "call"
	}
	return fmt.Sprintf("BlackScholes %s K=%.10g vol=%.10g r=%.10g", kind, bs.strike, bs.vol, bs.rate)
}

// normCDF is the standard normal cumulative distribution function.
func normCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// normPDF is the standard normal density.
func normPDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}
