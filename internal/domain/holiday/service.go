package holiday

import (
	"context"
	"time"
)

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Get(ctx context.Context, id string) (HolidayResponse, error)
	List(ctx context.Context) ([]HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	ActiveDatesInRange(ctx context.Context, start, end time.Time) (DateSet, error)
}
