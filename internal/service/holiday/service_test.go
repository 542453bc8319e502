package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/holiday"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/validator"
)

type fakeHolidayRepo struct {
	holidays map[string]holiday.Holiday
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{holidays: make(map[string]holiday.Holiday)}
}

func (r *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	for _, existing := range r.holidays {
		if existing.Date.Equal(h.Date) {
			return holiday.Holiday{}, holiday.ErrHolidayDateExists
		}
	}
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now()
	h.UpdatedAt = h.CreatedAt
	r.holidays[h.ID] = h
	return h, nil
}

func (r *fakeHolidayRepo) GetByID(_ context.Context, id string) (holiday.Holiday, error) {
	h, ok := r.holidays[id]
	if !ok {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	return h, nil
}

func (r *fakeHolidayRepo) GetAll(_ context.Context) ([]holiday.Holiday, error) {
	out := make([]holiday.Holiday, 0, len(r.holidays))
	for _, h := range r.holidays {
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHolidayRepo) GetActiveInRange(_ context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range r.holidays {
		if !h.IsActive {
			continue
		}
		if h.Date.Before(start) || h.Date.After(end) {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHolidayRepo) Update(_ context.Context, h holiday.Holiday) error {
	if _, ok := r.holidays[h.ID]; !ok {
		return holiday.ErrHolidayNotFound
	}
	for id, existing := range r.holidays {
		if id != h.ID && existing.Date.Equal(h.Date) {
			return holiday.ErrHolidayDateExists
		}
	}
	h.UpdatedAt = time.Now()
	r.holidays[h.ID] = h
	return nil
}

func (r *fakeHolidayRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.holidays[id]; !ok {
		return holiday.ErrHolidayNotFound
	}
	delete(r.holidays, id)
	return nil
}

func newTestService() (*HolidayServiceImpl, *fakeHolidayRepo) {
	repo := newFakeHolidayRepo()
	return NewHolidayService(repo).(*HolidayServiceImpl), repo
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{
		Date: "2025-12-25",
		Name: "Christmas Day",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2025-12-25", resp.Date)
	assert.Equal(t, "Christmas Day", resp.Name)
	assert.True(t, resp.IsActive)
}

func TestCreateRejectsBadDate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{
		Date: "25-12-2025",
		Name: "Christmas Day",
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
}

func TestCreateDuplicateDate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{
		Date: "2025-12-25",
		Name: "Christmas Day",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), holiday.CreateHolidayRequest{
		Date: "2025-12-25",
		Name: "Christmas",
	})
	assert.ErrorIs(t, err, holiday.ErrHolidayDateExists)
}

func TestUpdateAppliesPartialFields(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{
		Date: "2026-01-26",
		Name: "Republc Day",
	})
	require.NoError(t, err)

	name := "Republic Day"
	updated, err := svc.Update(context.Background(), holiday.UpdateHolidayRequest{
		ID:   created.ID,
		Name: &name,
	})
	require.NoError(t, err)

	assert.Equal(t, "Republic Day", updated.Name)
	assert.Equal(t, "2026-01-26", updated.Date)
}

func TestUpdateUnknownHoliday(t *testing.T) {
	svc, _ := newTestService()

	name := "Anything"
	_, err := svc.Update(context.Background(), holiday.UpdateHolidayRequest{
		ID:   uuid.NewString(),
		Name: &name,
	})
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestDeleteRemovesHoliday(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{
		Date: "2025-08-15",
		Name: "Independence Day",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.holidays)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestActiveDatesInRangeSkipsInactive(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), holiday.CreateHolidayRequest{
		Date: "2025-12-25",
		Name: "Christmas Day",
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Create(context.Background(), holiday.CreateHolidayRequest{
		Date:     "2025-12-26",
		Name:     "Boxing Day",
		IsActive: &inactive,
	})
	require.NoError(t, err)

	start := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	set, err := svc.ActiveDatesInRange(context.Background(), start, end)
	require.NoError(t, err)

	assert.True(t, set.Contains(time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)))
	assert.False(t, set.Contains(time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC)))
}
