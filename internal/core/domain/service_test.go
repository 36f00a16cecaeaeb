package domain_test

import (
	"testing"

	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestServiceSubscribed_AnnualRevenue(t *testing.T) {
	tests := []struct {
		name    string
		service domain.ServiceSubscribed
		want    string
	}{
		{
			name:    "billable",
			service: domain.ServiceSubscribed{MonthlyRecurringRevenue: decimalPtr(decimal.RequireFromString("125.50"))},
			want:    "1506",
		},
		{
			name:    "non billable",
			service: domain.ServiceSubscribed{NonBillable: true, MonthlyRecurringRevenue: decimalPtr(decimal.NewFromInt(100))},
			want:    "0",
		},
		{
			name:    "no mrr",
			service: domain.ServiceSubscribed{},
			want:    "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.service.AnnualRevenue()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestFrequency_IsValid(t *testing.T) {
	assert.True(t, domain.FrequencySemiMonthly.IsValid())
	assert.False(t, domain.Frequency("Fortnightly").IsValid())
}
