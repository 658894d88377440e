package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Push sends every metric of the gatherer to a Prometheus Pushgateway under the given job,
// replacing what the previous run pushed. A one-shot run never lives long enough to be scraped.
func Push(gatewayURL, job string, gatherer prometheus.Gatherer) error {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if err := push.New(gatewayURL, job).Gatherer(gatherer).Push(); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", gatewayURL, err)
	}
	return nil
}
