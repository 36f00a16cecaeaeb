package dto

import (
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	"github.com/Theakashprasad/practice-tool-client/internal/utils"
)

// ServiceSubscribedResponse adds display-ready revenue figures to a subscription.
type ServiceSubscribedResponse struct {
	domain.ServiceSubscribed
	MRRDisplay           string `json:"mrrDisplay"`
	AnnualRevenueDisplay string `json:"annualRevenue"`
}

// ToServiceSubscribedResponse converts a subscription.
func ToServiceSubscribedResponse(s domain.ServiceSubscribed) ServiceSubscribedResponse {
	annual := s.AnnualRevenue()
	return ServiceSubscribedResponse{
		ServiceSubscribed:    s,
		MRRDisplay:           utils.FormatMoney(s.MonthlyRecurringRevenue),
		AnnualRevenueDisplay: utils.FormatMoney(&annual),
	}
}
