package metrics

// Result is the computed metrics for one agent over one date range.
// Percentage fields carry one decimal, hour fields two. Created fresh on
// every query, never persisted.
type Result struct {
	TotalScheduledHours      float64        `json:"total_scheduled_hours"`
	TotalBreakMinutes        int            `json:"total_break_minutes"`
	TotalAllowedBreakMinutes int            `json:"total_allowed_break_minutes"`
	ExceedingBreakMinutes    int            `json:"exceeding_break_minutes"`
	Incidents                int            `json:"incidents"`
	EmergencyCount           int            `json:"emergency_count"`
	OvertimeCount            int            `json:"overtime_count"`
	OvertimeMinutes          int            `json:"overtime_minutes"`
	TotalBreaks              int            `json:"total_breaks"`
	CompletedBreaks          int            `json:"completed_breaks"`
	Utilization              float64        `json:"utilization"`
	Adherence                float64        `json:"adherence"`
	Conformance              float64        `json:"conformance"`
	BreakCounts              map[string]int `json:"break_counts"`
	ShiftsCount              int            `json:"shifts_count"`
}

// AgentResult pairs a Result with the agent it was computed for, one row
// of a batch report.
type AgentResult struct {
	AgentID   string `json:"agent_id"`
	AgentName string `json:"agent_name"`
	Result
}

// AgentFailure reports one agent whose computation failed inside a batch
// report without aborting the batch.
type AgentFailure struct {
	AgentID   string `json:"agent_id"`
	AgentName string `json:"agent_name"`
	Error     string `json:"error"`
}

// Aggregate sums the count metrics and averages the percentage metrics of
// a batch report. Percentage means cover only agents with at least one
// shift in range.
type Aggregate struct {
	TotalScheduledHours   float64 `json:"total_scheduled_hours"`
	TotalBreakMinutes     int     `json:"total_break_minutes"`
	ExceedingBreakMinutes int     `json:"exceeding_break_minutes"`
	Incidents             int     `json:"incidents"`
	TotalBreaks           int     `json:"total_breaks"`
	ShiftsCount           int     `json:"shifts_count"`
	MeanUtilization       float64 `json:"mean_utilization"`
	MeanAdherence         float64 `json:"mean_adherence"`
	MeanConformance       float64 `json:"mean_conformance"`
	ScheduledAgents       int     `json:"scheduled_agents"`
}

// Report is the batch output: one row per agent plus aggregate totals.
type Report struct {
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	GeneratedAt string         `json:"generated_at"`
	Rows        []AgentResult  `json:"rows"`
	Failures    []AgentFailure `json:"failures,omitempty"`
	Totals      Aggregate      `json:"totals"`
}
