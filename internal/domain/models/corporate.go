package models

import "console/internal/domain"

type Corporate struct {
	ID               domain.ID     `json:"id"`
	Name             string        `json:"name"`
	CreditLimit      float64       `json:"creditLimit"`
	AvailableBalance float64       `json:"availableBalance"`
	Status           domain.Status `json:"status"`
	CreatedDate      string        `json:"createdDate"`
}

type CorporatePage struct {
	Corporates []Corporate `json:"corporates"`
	domain.PageInfo
}

// CorporateDetails is everything the edit screen shows for one corporate.
type CorporateDetails struct {
	BasicInfo           Corporate            `json:"basicInfo"`
	Travelers           []Traveler           `json:"travelers"`
	Bookings            []TripSummary        `json:"bookings"`
	ApprovalProcesses   []NamedItem          `json:"approvalProcesses"`
	TravelPolicies      []NamedItem          `json:"travelPolicies"`
	PriceMarkupSettings []PriceMarkupSetting `json:"priceMarkupSettings"`
}

// NamedItem covers approval processes and travel policies; the console only
// lists them.
type NamedItem struct {
	ID          domain.ID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedDate string    `json:"createdDate"`
}

type PriceMarkupSetting struct {
	ID               domain.ID `json:"id"`
	Airline          string    `json:"airline"`
	CabinClass       string    `json:"cabinClass"`
	PriceFrom        float64   `json:"priceFrom"`
	PriceTo          float64   `json:"priceTo"`
	CommissionAmount float64   `json:"commissionAmount"`
}

type PriceSettings struct {
	PriceMarkupSettings []PriceMarkupSetting `json:"priceMarkupSettings"`
}

type NewCorporate struct {
	CorporateName string `json:"corporateName"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
}

type CorporateUpdate struct {
	Name             string        `json:"name"`
	CreditLimit      float64       `json:"creditLimit"`
	AvailableBalance float64       `json:"availableBalance"`
	Status           domain.Status `json:"status"`
}

type CorporateSearch struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	PageIndex int    `json:"pageIndex"`
	PageSize  int    `json:"pageSize"`
}

// NewPriceSetting omits airline or cabin class when blank.
type NewPriceSetting struct {
	Airline          string  `json:"airline,omitempty"`
	CabinClass       string  `json:"cabinClass,omitempty"`
	PriceFrom        float64 `json:"priceFrom"`
	PriceTo          float64 `json:"priceTo"`
	CommissionAmount float64 `json:"commissionAmount"`
}
