package finance

import (
	"math"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/shopspring/decimal"
)

// Progress is the completion percentage of a goal, capped at 100.
// A zero target yields 0.
func Progress(current, target decimal.Decimal) float64 {
	if target.IsZero() {
		return 0
	}
	return math.Min(100, Percent(current, target))
}

// MonthsRemaining counts whole calendar months from now until the deadline,
// never negative. Days are ignored.
func MonthsRemaining(deadline domain.Date, now time.Time) int {
	months := (deadline.Year()-now.Year())*12 + int(deadline.Month()-now.Month())
	if months < 0 {
		return 0
	}
	return months
}

// Contribution is the outcome of adding money to a goal.
type Contribution struct {
	NewCurrent    decimal.Decimal
	ReachesTarget bool
}

// Contribute adds amount to the goal's current amount. It does not change the
// goal's status: when ReachesTarget is true the caller decides whether to
// complete the goal as a separate step.
func Contribute(goal domain.Goal, amount decimal.Decimal) (Contribution, error) {
	if !amount.IsPositive() {
		return Contribution{}, &domain.ErrValidation{Field: "amount", Message: "must be greater than 0"}
	}
	newCurrent := goal.CurrentAmount.Add(amount)
	return Contribution{
		NewCurrent:    newCurrent,
		ReachesTarget: newCurrent.GreaterThanOrEqual(goal.TargetAmount),
	}, nil
}

// CanComplete reports whether the goal has reached its target.
func CanComplete(goal domain.Goal) bool {
	return goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)
}

// DecorateGoal attaches progress and months remaining to a goal.
func DecorateGoal(goal domain.Goal, now time.Time) domain.GoalProgress {
	return domain.GoalProgress{
		Goal:            goal,
		Progress:        Progress(goal.CurrentAmount, goal.TargetAmount),
		MonthsRemaining: MonthsRemaining(goal.Deadline, now),
	}
}

// SummarizeGoals totals saved amount, target and monthly commitment over
// the active goals and counts goals per status.
func SummarizeGoals(goals []domain.Goal) domain.GoalSummary {
	s := domain.GoalSummary{
		TotalSaved:        decimal.Zero,
		TotalTarget:       decimal.Zero,
		MonthlyCommitment: decimal.Zero,
	}
	for _, g := range goals {
		switch g.Status {
		case domain.GoalActive:
			s.Active++
			s.TotalSaved = s.TotalSaved.Add(g.CurrentAmount)
			s.TotalTarget = s.TotalTarget.Add(g.TargetAmount)
			s.MonthlyCommitment = s.MonthlyCommitment.Add(g.MonthlyContribution)
		case domain.GoalPaused:
			s.Paused++
		case domain.GoalCompleted:
			s.Completed++
		}
	}
	return s
}
