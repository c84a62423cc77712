package circuitbreaker

import (
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/sony/gobreaker/v2"
)

// CreateChargeBreaker guards the payment gateway: after enough consecutive
// failures the breaker opens and further charges fail fast.
func CreateChargeBreaker(name string) *gobreaker.CircuitBreaker[*coreapi.ChargeResponse] {
	var st gobreaker.Settings
	st.Name = name
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	cb := gobreaker.NewCircuitBreaker[*coreapi.ChargeResponse](st)

	return cb
}
