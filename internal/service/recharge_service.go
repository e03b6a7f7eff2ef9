package service

import (
	"context"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"
	"github.com/angelolorensi/vending-machine-api/internal/dto"
	"github.com/angelolorensi/vending-machine-api/internal/infra"
	"github.com/angelolorensi/vending-machine-api/internal/repository"

	"github.com/rs/zerolog/log"
)

// DayGuard serializes the recharge job to one run per calendar day.
// Acquire returns false when another run already claimed the day.
type DayGuard interface {
	Acquire(ctx context.Context, day string) (bool, error)
}

type RechargeService interface {
	// RunDailyRecharge credits every active employee's active card with the
	// classification's daily recharge amount. Saturdays and Sundays are
	// skipped, as is any day the guard reports already served.
	RunDailyRecharge(ctx context.Context, today time.Time) (*dto.RechargeSummary, error)
}

type rechargeService struct {
	employees repository.EmployeeRepository
	cards     repository.CardRepository
	guard     DayGuard
}

// NewRechargeService builds the recharge job. guard may be nil, in which
// case re-invocation on the same day double-recharges — callers that can
// fire more than once per day must supply one.
func NewRechargeService(employees repository.EmployeeRepository, cards repository.CardRepository, guard DayGuard) RechargeService {
	return &rechargeService{employees: employees, cards: cards, guard: guard}
}

func (s *rechargeService) RunDailyRecharge(ctx context.Context, today time.Time) (*dto.RechargeSummary, error) {
	summary := &dto.RechargeSummary{Date: today.Format("2006-01-02")}

	if wd := today.Weekday(); wd == time.Saturday || wd == time.Sunday {
		summary.Skipped = true
		summary.Reason = "not a business day"
		log.Info().Str("date", summary.Date).Msg("daily recharge skipped: not a business day")
		return summary, nil
	}

	if s.guard != nil {
		acquired, err := s.guard.Acquire(ctx, summary.Date)
		if err != nil {
			// Guard outage degrades to running; a double recharge is
			// recoverable, a missed one is not.
			log.Warn().Err(err).Msg("recharge day guard unavailable, proceeding")
		} else if !acquired {
			summary.Skipped = true
			summary.Reason = "already ran today"
			log.Info().Str("date", summary.Date).Msg("daily recharge skipped: already ran")
			return summary, nil
		}
	}

	employees, err := s.employees.ListRechargeable(ctx)
	if err != nil {
		return nil, apperror.Storage("list rechargeable employees", err)
	}

	for _, employee := range employees {
		if employee.Card == nil || employee.Classification == nil {
			log.Warn().Uint("employee_id", employee.ID).Msg("recharge skipped employee without card or classification")
			continue
		}
		amount := employee.Classification.DailyPointRechargeAmount
		if err := s.cards.CreditBalance(ctx, employee.Card.ID, amount); err != nil {
			return nil, apperror.Storage("credit card balance", err)
		}
		summary.Employees++
		summary.Points += amount
		log.Info().
			Str("employee", employee.Name).
			Int("amount", amount).
			Msg("recharged daily points")
	}

	infra.RechargeRuns.Inc()
	infra.PointsRecharged.Add(float64(summary.Points))
	log.Info().
		Str("date", summary.Date).
		Int("employees", summary.Employees).
		Int("points", summary.Points).
		Msg("daily recharge completed")
	return summary, nil
}
