package webserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var govOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "communitygov_operations_total",
	Help: "Governance operations by name and outcome.",
}, []string{"op", "outcome"})

func opResult(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	govOps.WithLabelValues(op, outcome).Inc()
}
