package circuitbreaker

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// CreateCircuitBreaker guards one group of upstream storefront endpoints.
// An open breaker holds for 30 seconds before letting a probe request
// through; meanwhile callers fail fast instead of queueing on a dead
// upstream.
func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.OnStateChange = func(name string, from gobreaker.State, to gobreaker.State) {
		log.Warn().
			Str("component", "CircuitBreaker").
			Str("breaker", name).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("Upstream breaker changed state")
	}

	cb := gobreaker.NewCircuitBreaker[[]byte](st)

	return cb
}
