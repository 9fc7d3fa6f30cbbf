package offday

import "errors"

var (
	ErrOffDayNotFound = errors.New("off-day not found")
	ErrOffDayExists   = errors.New("agent already has an off-day on that date")
)
