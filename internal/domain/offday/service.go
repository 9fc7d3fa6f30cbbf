package offday

import (
	"context"
	"time"
)

// OffDayService defines business logic for off-day management.
type OffDayService interface {
	CreateOffDay(ctx context.Context, req CreateOffDayRequest) (OffDayResponse, error)
	ListOffDays(ctx context.Context, from, to time.Time) (ListOffDaysResponse, error)
	DeleteOffDay(ctx context.Context, id string) error
}
