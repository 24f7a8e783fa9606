package pricing_test

import (
	"math"
	"testing"

	"github.com/meenmo/quantdate/calendar"
	"github.com/meenmo/quantdate/datetime"
	"github.com/meenmo/quantdate/pricing"
)

func approx(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.8f, want %.8f (tol %g)", label, got, want, tol)
	}
}

func mustBS(t *testing.T, strike, vol, rate float64, call bool) *pricing.BlackScholes {
	t.Helper()
	bs, err := pricing.NewBlackScholes(strike, vol, rate, call)
	if err != nil {
		t.Fatalf("NewBlackScholes: %v", err)
	}
	return bs
}

func TestNewBlackScholesValidation(t *testing.T) {
	t.Parallel()

	if _, err := pricing.NewBlackScholes(0, 0.2, 0.05, true); err == nil {
		t.Error("zero strike: expected error")
	}
	if _, err := pricing.NewBlackScholes(100, -0.2, 0.05, true); err == nil {
		t.Error("negative volatility: expected error")
	}
	if _, err := pricing.NewBlackScholes(100, 0.2, -0.01, true); err != nil {
		t.Errorf("negative rate should be allowed: %v", err)
	}
}

// Reference values: S=100, K=100, r=5%, vol=20%, tau=1.
func TestBlackScholesCall(t *testing.T) {
	t.Parallel()

	call := mustBS(t, 100, 0.2, 0.05, true)

	approx(t, "price", call.Price(100, 1), 10.45058, 5e-4)
	approx(t, "delta", call.Delta(100, 1), 0.63683, 1e-4)
	approx(t, "gamma", call.Gamma(100, 1), 0.018762, 1e-5)
	approx(t, "vega", call.Vega(100, 1), 37.52403, 1e-3)
	approx(t, "theta", call.Theta(100, 1), -6.41403, 1e-3)
	approx(t, "rho", call.Rho(100, 1), 53.23248, 1e-3)
}

func TestBlackScholesPut(t *testing.T) {
	t.Parallel()

	put := mustBS(t, 100, 0.2, 0.05, false)

	approx(t, "price", put.Price(100, 1), 5.57353, 5e-4)
	approx(t, "delta", put.Delta(100, 1), -0.36317, 1e-4)
	approx(t, "gamma", put.Gamma(100, 1), 0.018762, 1e-5)
	approx(t, "vega", put.Vega(100, 1), 37.52403, 1e-3)
}

func TestPutCallParity(t *testing.T) {
	t.Parallel()

	call := mustBS(t, 95, 0.25, 0.03, true)
	put := mustBS(t, 95, 0.25, 0.03, false)

	for _, spot := range []float64{80.0, 95.0, 110.0} {
		for _, tau := range []float64{0.25, 1.0, 2.5} {
			lhs := call.Price(spot, tau) - put.Price(spot, tau)
			rhs := spot - 95*math.Exp(-0.03*tau)
			approx(t, "parity", lhs, rhs, 1e-9)
		}
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	bs := mustBS(t, 100, 0.2, 0.05, true)
	if bs.Volatility() != 0.2 {
		t.Errorf("Volatility = %v", bs.Volatility())
	}
	if bs.RiskFreeRate() != 0.05 {
		t.Errorf("RiskFreeRate = %v", bs.RiskFreeRate())
	}
}

func TestPricerOrdering(t *testing.T) {
	t.Parallel()

	a := mustBS(t, 100, 0.2, 0.05, true)
	b := mustBS(t, 100, 0.2, 0.05, true)
	c := mustBS(t, 110, 0.2, 0.05, true)

	if !pricing.Equal(a, b) {
		t.Error("identical pricers compare unequal")
	}
	if pricing.Equal(a, c) {
		t.Error("different strikes compare equal")
	}
	if pricing.Less(a, b) {
		t.Error("Less on equal pricers")
	}
	if pricing.Less(a, c) == pricing.Less(c, a) {
		t.Error("Less is not a strict ordering")
	}
}

func TestTimeToMaturity(t *testing.T) {
	t.Parallel()

	valuation, err := datetime.New(2024, 1, 1,
		datetime.WithCalendar(calendar.NYSE), datetime.WithConvention(datetime.Act365))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	expiry, err := datetime.New(2024, 12, 31,
		datetime.WithCalendar(calendar.NYSE), datetime.WithConvention(datetime.Act365))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tau, err := pricing.TimeToMaturity(valuation, expiry)
	if err != nil {
		t.Fatalf("TimeToMaturity: %v", err)
	}
	if tau != 1.0 {
		t.Errorf("tau = %v, want 1.0", tau)
	}

	if _, err := pricing.TimeToMaturity(expiry, valuation); err == nil {
		t.Error("expiry before valuation: expected error")
	}

	// A year of time value is worth more than a deep-discount sanity floor.
	call := mustBS(t, 100, 0.2, 0.05, true)
	if price := call.Price(100, tau); price <= 0 {
		t.Errorf("Price = %v, want positive", price)
	}
}
