package finance

import (
	"testing"
	"time"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpendingInsights(t *testing.T) {
	d := day(2024, time.March, 1)
	cats := AggregateByCategory([]domain.Transaction{
		expense("rent", "Rent", "500", d),
		expense("food", "Food", "300", d),
		expense("fun", "Fun", "150", d),
		expense("misc", "Misc", "50", d),
	})

	in := SpendingInsights(cats, Compare(dec("1000"), dec("800")))

	require.NotNil(t, in.TopCategory)
	assert.Equal(t, "Rent", in.TopCategory.CategoryName)
	assert.True(t, in.SpendingIncrease)
	assert.False(t, in.SpendingDecrease)
	assert.InDelta(t, 95.0, in.TopThreeShare, 1e-9)
}

func TestSpendingInsights_Quiet(t *testing.T) {
	d := day(2024, time.March, 1)
	cats := AggregateByCategory([]domain.Transaction{
		expense("a", "A", "40", d),
		expense("b", "B", "35", d),
		expense("c", "C", "25", d),
	})

	in := SpendingInsights(cats, Compare(dec("100"), dec("125")))

	assert.Nil(t, in.TopCategory, "exactly 40% is not a concentration")
	assert.False(t, in.SpendingIncrease)
	assert.True(t, in.SpendingDecrease)
	assert.InDelta(t, 100.0, in.TopThreeShare, 1e-9)

	assert.Zero(t, SpendingInsights(cats[:2], domain.MonthlyComparison{}).TopThreeShare)
}
