package domain

import "github.com/shopspring/decimal"

// ServiceType is a catalog entry for a kind of service the practice sells.
type ServiceType struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Timestamps
}

// ServiceTypeRef is the id+name pair embedded in a subscription.
type ServiceTypeRef struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Frequency is how often a subscribed service is delivered.
type Frequency string

const (
	FrequencyWeekly      Frequency = "Weekly"
	FrequencyBiWeekly    Frequency = "Bi-weekly"
	FrequencySemiMonthly Frequency = "Semi-Monthly"
	FrequencyMonthly     Frequency = "Monthly"
	FrequencyQuarterly   Frequency = "Quarterly"
	FrequencySemiAnnual  Frequency = "Semi-Annual"
	FrequencyAnnual      Frequency = "Annual"
	FrequencyCasual      Frequency = "Casual"
)

// Frequencies lists every accepted frequency.
var Frequencies = []Frequency{
	FrequencyWeekly, FrequencyBiWeekly, FrequencySemiMonthly, FrequencyMonthly,
	FrequencyQuarterly, FrequencySemiAnnual, FrequencyAnnual, FrequencyCasual,
}

// IsValid reports whether f is one of the known frequencies.
func (f Frequency) IsValid() bool {
	for _, known := range Frequencies {
		if f == known {
			return true
		}
	}
	return false
}

// ServiceSubscribed is a client's subscription to a service type.
type ServiceSubscribed struct {
	ID                      ID               `json:"id"`
	ClientID                ID               `json:"clientId,omitempty"`
	ServiceType             ServiceTypeRef   `json:"serviceType"`
	Frequency               Frequency        `json:"frequency,omitempty"`
	ReportingDate           string           `json:"reportingDate,omitempty"`
	DueDate                 string           `json:"dueDate,omitempty"`
	NonBillable             bool             `json:"nonBillable"`
	PackageBilled           bool             `json:"packageBilled"`
	MonthlyRecurringRevenue *decimal.Decimal `json:"mrr,omitempty"`
	ServiceStartDate        string           `json:"serviceStartDate,omitempty"`
	ServiceEndDate          string           `json:"serviceEndDate,omitempty"`
	Timestamps
}

// AnnualRevenue projects the monthly recurring revenue over a year. Non-billable services yield zero.
func (s ServiceSubscribed) AnnualRevenue() decimal.Decimal {
	if s.NonBillable || s.MonthlyRecurringRevenue == nil {
		return decimal.Zero
	}
	return s.MonthlyRecurringRevenue.Mul(decimal.NewFromInt(12))
}
