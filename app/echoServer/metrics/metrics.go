package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	loansIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lendingdesk_loans_issued_total",
		Help: "Loans issued.",
	})
	loansReturned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lendingdesk_loans_returned_total",
		Help: "Loans returned.",
	})
	finesAssessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lendingdesk_fines_assessed_total",
		Help: "Total fine amount assessed on returns.",
	})
)

func CountIssued() { loansIssued.Inc() }

func CountReturned(fine float64) {
	loansReturned.Inc()
	finesAssessed.Add(fine)
}

func Handler() http.Handler { return promhttp.Handler() }
