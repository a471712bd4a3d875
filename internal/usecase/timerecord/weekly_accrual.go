package timerecord

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
)

// ======================================================
// USE CASE — cómputo semanal
// ======================================================

type WeeklyAccrual struct {
	repo domain.Repository
}

func NewWeeklyAccrual(repo domain.Repository) *WeeklyAccrual {
	return &WeeklyAccrual{repo: repo}
}

// Execute suma la semana ISO (lunes–domingo) que contiene referenceDate
// y la compara con las horas contratadas del usuario.
func (uc *WeeklyAccrual) Execute(
	ctx context.Context,
	userID uint,
	referenceDate time.Time,
) (domain.WeeklyAccrual, error) {

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return domain.WeeklyAccrual{}, err
	}

	start := domain.WeekStart(referenceDate)
	end := domain.WeekEnd(referenceDate)

	recs, err := uc.repo.ListClosedRecordsBetween(ctx, userID, start, end)
	if err != nil {
		return domain.WeeklyAccrual{}, err
	}

	return domain.ComputeWeekly(recs, user.WeeklyHours), nil
}
