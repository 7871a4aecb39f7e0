package finance

import (
	"testing"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress(t *testing.T) {
	assert.InDelta(t, 50.0, Progress(dec("500"), dec("1000")), 1e-9)
	assert.InDelta(t, 100.0, Progress(dec("2000"), dec("1000")), 1e-9)
	assert.Zero(t, Progress(dec("10"), dec("0")))
	assert.Zero(t, Progress(dec("0"), dec("1000")))
}

func TestMonthsRemaining(t *testing.T) {
	now := time.Date(2024, time.March, 20, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, MonthsRemaining(day(2024, time.March, 31), now))
	assert.Equal(t, 1, MonthsRemaining(day(2024, time.April, 1), now))
	assert.Equal(t, 10, MonthsRemaining(day(2025, time.January, 15), now))
	assert.Equal(t, 0, MonthsRemaining(day(2023, time.June, 1), now))
}

func TestContribute_ReachesTarget(t *testing.T) {
	goal := domain.Goal{CurrentAmount: dec("9500"), TargetAmount: dec("10000"), Status: domain.GoalActive}

	got, err := Contribute(goal, dec("600"))

	require.NoError(t, err)
	assert.True(t, got.NewCurrent.Equal(dec("10100")))
	assert.True(t, got.ReachesTarget)
}

func TestContribute_BelowTarget(t *testing.T) {
	goal := domain.Goal{CurrentAmount: dec("100"), TargetAmount: dec("1000")}

	got, err := Contribute(goal, dec("0.50"))

	require.NoError(t, err)
	assert.True(t, got.NewCurrent.Equal(dec("100.50")))
	assert.False(t, got.ReachesTarget)
}

func TestContribute_RejectsNonPositive(t *testing.T) {
	goal := domain.Goal{CurrentAmount: dec("100"), TargetAmount: dec("1000")}

	for _, amount := range []string{"0", "-5"} {
		_, err := Contribute(goal, dec(amount))
		var verr *domain.ErrValidation
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "amount", verr.Field)
	}
}

func TestSummarizeGoals(t *testing.T) {
	goals := []domain.Goal{
		{Status: domain.GoalActive, CurrentAmount: dec("100"), TargetAmount: dec("1000"), MonthlyContribution: dec("50")},
		{Status: domain.GoalActive, CurrentAmount: dec("250"), TargetAmount: dec("500"), MonthlyContribution: dec("25")},
		{Status: domain.GoalPaused, CurrentAmount: dec("999"), TargetAmount: dec("9999"), MonthlyContribution: dec("99")},
		{Status: domain.GoalCompleted, CurrentAmount: dec("10"), TargetAmount: dec("10")},
	}

	s := SummarizeGoals(goals)

	assert.True(t, s.TotalSaved.Equal(dec("350")))
	assert.True(t, s.TotalTarget.Equal(dec("1500")))
	assert.True(t, s.MonthlyCommitment.Equal(dec("75")))
	assert.Equal(t, 2, s.Active)
	assert.Equal(t, 1, s.Paused)
	assert.Equal(t, 1, s.Completed)
}

func TestDecorateGoal(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	goal := domain.Goal{CurrentAmount: dec("250"), TargetAmount: dec("1000"), Deadline: day(2024, time.July, 1)}

	got := DecorateGoal(goal, now)

	assert.InDelta(t, 25.0, got.Progress, 1e-9)
	assert.Equal(t, 6, got.MonthsRemaining)
	assert.True(t, CanComplete(domain.Goal{CurrentAmount: dec("10"), TargetAmount: dec("10")}))
	assert.False(t, CanComplete(goal))
}
