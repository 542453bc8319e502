package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/domain/holiday"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func userIDFromClaims(ctx context.Context) *string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil
	}
	return &userID
}

// Create implements holiday.HolidayService.
func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date:      date,
		Name:      req.Name,
		IsActive:  isActive,
		CreatedBy: userIDFromClaims(ctx),
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday.ToHolidayResponse(created), nil
}

// Get implements holiday.HolidayService.
func (s *HolidayServiceImpl) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	h, err := s.getHoliday(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToHolidayResponse(h), nil
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	out := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, holiday.ToHolidayResponse(h))
	}
	return out, nil
}

// Update implements holiday.HolidayService.
func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h, err := s.getHoliday(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Date != nil {
		date, _ := validator.IsValidDate(*req.Date)
		h.Date = date
	}
	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}
	h.UpdatedBy = userIDFromClaims(ctx)

	if err := s.holidayRepo.Update(ctx, h); err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}

	return holiday.ToHolidayResponse(h), nil
}

// Delete implements holiday.HolidayService.
func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.getHoliday(ctx, id); err != nil {
		return err
	}
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

// ActiveDatesInRange implements holiday.HolidayService.
func (s *HolidayServiceImpl) ActiveDatesInRange(ctx context.Context, start, end time.Time) (holiday.DateSet, error) {
	holidays, err := s.holidayRepo.GetActiveInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get holidays in range: %w", err)
	}
	return holiday.NewDateSet(holidays), nil
}

func (s *HolidayServiceImpl) getHoliday(ctx context.Context, id string) (holiday.Holiday, error) {
	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	return h, nil
}
