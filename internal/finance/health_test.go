package finance

import (
	"testing"

	"github.com/sanchez1595/Personal-finance/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		fund  bool
		ratio float64
		want  int
	}{
		{"top of every band", 25, true, 0.25, 100},
		{"nothing saved", 0, false, 0, 10},
		{"negative savings", -30, false, -0.3, 10},
		{"middle bands", 12, false, 0.12, 60},
		{"low bands", 5, true, 0.05, 60},
		{"edges", 20, false, 0.2, 80},
		{"just under edges", 9.99, false, 0.099, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.rate, tt.fund, tt.ratio))
		})
	}
}

func TestScore_MonotonicAndBounded(t *testing.T) {
	rates := []float64{-50, -1, 0, 0.5, 5, 9.99, 10, 15, 19.99, 20, 50, 100}
	ratios := []float64{-0.5, 0, 0.01, 0.05, 0.1, 0.15, 0.2, 0.5, 1}
	funds := []bool{false, true}

	for _, fund := range funds {
		for _, ratio := range ratios {
			prev := -1
			for _, rate := range rates {
				s := Score(rate, fund, ratio)
				assert.GreaterOrEqual(t, s, prev)
				assert.GreaterOrEqual(t, s, 0)
				assert.LessOrEqual(t, s, 100)
				prev = s
			}
		}
	}

	for _, fund := range funds {
		for _, rate := range rates {
			prev := -1
			for _, ratio := range ratios {
				s := Score(rate, fund, ratio)
				assert.GreaterOrEqual(t, s, prev)
				prev = s
			}
		}
	}

	for _, rate := range rates {
		for _, ratio := range ratios {
			assert.GreaterOrEqual(t, Score(rate, true, ratio), Score(rate, false, ratio))
		}
	}
}

func TestHasEmergencyFund(t *testing.T) {
	assert.True(t, HasEmergencyFund(dec("3000"), dec("1000")))
	assert.False(t, HasEmergencyFund(dec("2999.99"), dec("1000")))
	assert.True(t, HasEmergencyFund(dec("0"), dec("0")))
	assert.False(t, HasEmergencyFund(dec("-1"), dec("0")))
}

func TestBand(t *testing.T) {
	assert.Equal(t, domain.HealthExcellent, Band(100))
	assert.Equal(t, domain.HealthExcellent, Band(80))
	assert.Equal(t, domain.HealthGood, Band(79))
	assert.Equal(t, domain.HealthGood, Band(60))
	assert.Equal(t, domain.HealthNeedsAttention, Band(40))
	assert.Equal(t, domain.HealthCritical, Band(39))
	assert.Equal(t, domain.HealthCritical, Band(0))
}
