package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/benchnet-io/benchmarker/types"
)

type SubmitterMetrics struct {
	runningJobs              prometheus.Gauge
	totalSubmittedBenchmarks prometheus.Counter
	totalFraudFlagged        prometheus.Counter
	totalFailedSubmissions   prometheus.Counter
	totalSubmissionRetries   prometheus.Counter
	lastSubmissionHeight     prometheus.Gauge
	lastSubmissionTime       prometheus.Gauge
	attemptsPerSubmission    prometheus.Histogram
}

var submitterMetricsRegistered sync.Once
var submitterMetricsInstance *SubmitterMetrics

// NewSubmitterMetrics registers the submitter collectors on the given
// registry. Repeated calls return the same instance.
func NewSubmitterMetrics(reg prometheus.Registerer) *SubmitterMetrics {
	submitterMetricsRegistered.Do(func() {
		submitterMetricsInstance = &SubmitterMetrics{
			runningJobs: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "benchmarker_running_submission_jobs",
				Help: "Number of submission jobs currently in flight",
			}),
			totalSubmittedBenchmarks: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "benchmarker_submitted_benchmarks_total",
				Help: "Total number of benchmarks submitted and verified OK",
			}),
			totalFraudFlagged: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "benchmarker_fraud_flagged_benchmarks_total",
				Help: "Total number of benchmarks flagged as fraud by the service",
			}),
			totalFailedSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "benchmarker_failed_submissions_total",
				Help: "Total number of submissions that terminally failed",
			}),
			totalSubmissionRetries: prometheus.NewCounter(prometheus.CounterOpts{
				Name: "benchmarker_submission_retries_total",
				Help: "Total number of submission attempts beyond the first",
			}),
			lastSubmissionHeight: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "benchmarker_last_submission_height",
				Help: "The chain height recorded at the last successful submission",
			}),
			lastSubmissionTime: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "benchmarker_last_submission_seconds",
				Help: "Timestamp of the last successful submission",
			}),
			attemptsPerSubmission: prometheus.NewHistogram(prometheus.HistogramOpts{
				Name:    "benchmarker_attempts_per_submission",
				Help:    "Number of attempts used by successful submissions",
				Buckets: []float64{1, 2, 3},
			}),
		}

		reg.MustRegister(
			submitterMetricsInstance.runningJobs,
			submitterMetricsInstance.totalSubmittedBenchmarks,
			submitterMetricsInstance.totalFraudFlagged,
			submitterMetricsInstance.totalFailedSubmissions,
			submitterMetricsInstance.totalSubmissionRetries,
			submitterMetricsInstance.lastSubmissionHeight,
			submitterMetricsInstance.lastSubmissionTime,
			submitterMetricsInstance.attemptsPerSubmission,
		)
	})

	return submitterMetricsInstance
}

func (sm *SubmitterMetrics) IncrementRunningJobs() {
	sm.runningJobs.Inc()
}

func (sm *SubmitterMetrics) DecrementRunningJobs() {
	sm.runningJobs.Dec()
}

func (sm *SubmitterMetrics) RecordSubmissionSuccess(height types.Height, attempts uint32) {
	sm.totalSubmittedBenchmarks.Inc()
	sm.lastSubmissionHeight.Set(float64(height))
	sm.lastSubmissionTime.SetToCurrentTime()
	sm.attemptsPerSubmission.Observe(float64(attempts))
}

func (sm *SubmitterMetrics) IncrementFraudFlagged() {
	sm.totalFraudFlagged.Inc()
}

func (sm *SubmitterMetrics) IncrementFailedSubmissions() {
	sm.totalFailedSubmissions.Inc()
}

func (sm *SubmitterMetrics) IncrementSubmissionRetries() {
	sm.totalSubmissionRetries.Inc()
}
