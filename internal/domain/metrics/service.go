package metrics

import "context"

// MetricsService defines the query surface of the metrics engine.
type MetricsService interface {
	// GetAgentMetrics computes the Result for one agent over an inclusive
	// date range.
	GetAgentMetrics(ctx context.Context, req AgentMetricsRequest) (Result, error)

	// GenerateReport computes one Result per active agent plus aggregate
	// totals. A failure for one agent is reported as a partial failure,
	// not an abort of the batch.
	GenerateReport(ctx context.Context, req ReportRequest) (Report, error)
}
