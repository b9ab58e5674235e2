package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Deployer Metrics
var (
	DeploymentsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deployer_submitted_total",
		Help: "The total number of contract deployment transactions submitted",
	})

	DeploymentsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deployer_failed_total",
		Help: "The total number of contract deployments that ended in the failed state",
	})

	DeploymentState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "deployer_state",
		Help: "The current deployment state (0 = unsubmitted, 1 = submitted, 2 = confirmations pending, 3 = confirmed, 4 = ready, 5 = failed)",
	})

	DeploymentConfirmations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "deployer_confirmations",
		Help: "The number of confirming blocks observed for the pending deployment",
	})
)

// Chain Metrics
var (
	ChainHead = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chain_head",
		Help: "The latest block number reported by the node",
	})
)

// Stream Metrics
var (
	FilterInstalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stream_filter_installs_total",
		Help: "The total number of log filters installed on the node",
	})

	FilterPolls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stream_filter_polls_total",
		Help: "The total number of filter change polls sent to the node",
	})

	LogsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stream_logs_delivered_total",
		Help: "The total number of matching log entries delivered to the consumer",
	})

	StreamErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stream_errors_total",
		Help: "The total number of terminal stream errors",
	})

	LastDeliveredBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "stream_last_delivered_block",
		Help: "The block number of the last delivered log entry",
	})
)

// Call Metrics
var (
	CallsSucceeded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contract_calls_succeeded_total",
		Help: "The total number of contract calls accepted by the node",
	})

	CallsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contract_calls_failed_total",
		Help: "The total number of contract calls rejected or reverted",
	})
)

// Session Metrics
var (
	TasksCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "session_tasks_completed_total",
		Help: "The total number of composed tasks that reached a terminal state",
	}, []string{"task", "status"})
)

// API Metrics
var (
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "api_requests_total",
		Help: "The total number of requests served by the metrics server",
	}, []string{"route", "status"})
)

// Publisher Metrics
var (
	PublishedLogs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "publisher_logs_total",
		Help: "The number of log entries published",
	})

	PublishDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "publish_duration_seconds",
		Help:    "Time taken to publish a log entry to Kafka",
		Buckets: prometheus.DefBuckets,
	})
)
