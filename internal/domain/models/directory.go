package models

import "console/internal/domain"

// Option is a text/value pair used by selects (roles, trip statuses).
type Option struct {
	Text     string `json:"text"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled"`
}

type Airline struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type Country struct {
	ID                 domain.ID `json:"id"`
	Name               string    `json:"name"`
	TwoLetterIsoCode   string    `json:"twoLetterIsoCode"`
	ThreeLetterIsoCode string    `json:"threeLetterIsoCode"`
	NumericIsoCode     int       `json:"numericIsoCode"`
}

var CabinClasses = []Option{
	{Text: "Economy", Value: "Y"},
	{Text: "Business", Value: "C"},
}

var TripStatusFilters = []Option{
	{Text: "On Hold", Value: TripOnHold},
	{Text: "Pending Approval", Value: TripPendingApproval},
	{Text: "Pending Issuance", Value: TripPendingIssuance},
	{Text: "Issued", Value: TripIssued},
	{Text: "Rejected", Value: TripRejected},
	{Text: "Refunded", Value: TripRefunded},
	{Text: "Cancelled", Value: TripCancelled},
	{Text: "Upcoming (Disabled)", Value: "upcoming", Disabled: true},
	{Text: "Past (Disabled)", Value: "past", Disabled: true},
	{Text: "Other", Value: "other"},
}

// CabinClassName maps the one-letter cabin code to its label.
func CabinClassName(code string) string {
	for _, o := range CabinClasses {
		if o.Value == code {
			return o.Text
		}
	}
	return code
}
