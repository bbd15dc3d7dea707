package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-backend/models"
	"employee-management-backend/repository"
)

// PunchService owns the punch lifecycle: one open punch per employee per
// calendar day, derived date and total_hours, never client-supplied.
type PunchService struct {
	punches repository.PunchRepository
}

func NewPunchService(punches repository.PunchRepository) *PunchService {
	return &PunchService{punches: punches}
}

// PunchIn opens a work session for today. The open-record check is a
// fast-path; the unique (employee_id, date) index is the real guard, and a
// duplicate-key rejection from a concurrent punch-in surfaces as
// ErrAlreadyPunchedIn as well.
func (s *PunchService) PunchIn(ctx context.Context, employeeID string, now time.Time) (*models.PunchRecord, error) {
	date := now.Format(models.DateLayout)

	open, err := s.punches.FindOpenByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, ErrAlreadyPunchedIn
	}

	record := &models.PunchRecord{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		PunchIn:    now,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.punches.CreatePunch(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicatePunch) {
			return nil, ErrAlreadyPunchedIn
		}
		return nil, err
	}
	return record, nil
}

// PunchOut closes today's open session and derives total_hours. Lookup is by
// the current calendar date: a punch opened before midnight and closed after
// cannot be found and yields ErrNoOpenPunch.
func (s *PunchService) PunchOut(ctx context.Context, employeeID string, now time.Time) (*models.PunchRecord, error) {
	date := now.Format(models.DateLayout)

	open, err := s.punches.FindOpenByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	if open == nil {
		return nil, ErrNoOpenPunch
	}

	if now.Before(open.PunchIn) {
		return nil, ErrPunchOutBeforePunchIn
	}

	totalHours := models.ComputeTotalHours(open.PunchIn, now)
	if err := s.punches.ClosePunch(ctx, open.ID, now, totalHours); err != nil {
		return nil, err
	}

	punchOut := now
	open.PunchOut = &punchOut
	open.TotalHours = &totalHours
	open.UpdatedAt = now
	return open, nil
}
