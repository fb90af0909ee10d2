// Package metrics exposes per-port device counters as a Prometheus
// collector.
//
// The collector reads hardware counters at scrape time; nothing is
// cached between scrapes. Ports that fail to report are skipped so one
// sick device cannot blank the whole scrape.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/wippyai/ethdev"
)

const (
	namespace = "ethdev"
	subsystem = "port"
)

var portLabels = []string{"name", "port"}

var (
	rxPacketsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "rx_packets_total"),
		"Packets received.", portLabels, nil)
	txPacketsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "tx_packets_total"),
		"Packets transmitted.", portLabels, nil)
	rxBytesDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "rx_bytes_total"),
		"Bytes received.", portLabels, nil)
	txBytesDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "tx_bytes_total"),
		"Bytes transmitted.", portLabels, nil)
	rxMissedDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "rx_missed_total"),
		"Packets dropped by the device for lack of RX descriptors.", portLabels, nil)
	rxErrorsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "rx_errors_total"),
		"Erroneous packets received.", portLabels, nil)
	txErrorsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "tx_errors_total"),
		"Packet transmit failures.", portLabels, nil)
	rxNoMbufDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "rx_nombuf_total"),
		"RX mbuf allocation failures.", portLabels, nil)
)

// Collector walks every attached port on each scrape and emits its
// basic counters. Register it with a prometheus.Registerer.
type Collector struct{}

// NewCollector creates a port stats collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- rxPacketsDesc
	ch <- txPacketsDesc
	ch <- rxBytesDesc
	ch <- txBytesDesc
	ch <- rxMissedDesc
	ch <- rxErrorsDesc
	ch <- txErrorsDesc
	ch <- rxNoMbufDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, port := range ethdev.Ports() {
		stats, err := port.Stats()
		if err != nil {
			Logger().Warn("stats read failed",
				zap.Uint16("port", port.ID()),
				zap.Error(err))
			continue
		}
		name, err := port.Name()
		if err != nil {
			name = ""
		}
		id := strconv.FormatUint(uint64(port.ID()), 10)

		ch <- prometheus.MustNewConstMetric(rxPacketsDesc, prometheus.CounterValue, float64(stats.IPackets), name, id)
		ch <- prometheus.MustNewConstMetric(txPacketsDesc, prometheus.CounterValue, float64(stats.OPackets), name, id)
		ch <- prometheus.MustNewConstMetric(rxBytesDesc, prometheus.CounterValue, float64(stats.IBytes), name, id)
		ch <- prometheus.MustNewConstMetric(txBytesDesc, prometheus.CounterValue, float64(stats.OBytes), name, id)
		ch <- prometheus.MustNewConstMetric(rxMissedDesc, prometheus.CounterValue, float64(stats.IMissed), name, id)
		ch <- prometheus.MustNewConstMetric(rxErrorsDesc, prometheus.CounterValue, float64(stats.IErrors), name, id)
		ch <- prometheus.MustNewConstMetric(txErrorsDesc, prometheus.CounterValue, float64(stats.OErrors), name, id)
		ch <- prometheus.MustNewConstMetric(rxNoMbufDesc, prometheus.CounterValue, float64(stats.RxNombuf), name, id)
	}
}
