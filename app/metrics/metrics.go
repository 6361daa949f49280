package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce   sync.Once
	authorizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "editions",
			Subsystem: "mint",
			Name:      "authorizations_total",
			Help:      "Count of mint authorizations classified by result",
		},
		[]string{"result"},
	)

	platformFees = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "editions",
			Subsystem: "mint",
			Name:      "platform_fees_total",
			Help:      "Platform fee amounts computed for authorized mints",
		},
		[]string{"denom", "kind"},
	)
)

func ensureRegistered() {
	registerOnce.Do(func() {
		prometheus.MustRegister(authorizations, platformFees)
	})
}

func AuthorizationsCounter() *prometheus.CounterVec {
	ensureRegistered()
	return authorizations
}

func PlatformFeesCounter() *prometheus.CounterVec {
	ensureRegistered()
	return platformFees
}
