package models

import "console/internal/domain"

// Trip statuses the backend reports.
const (
	TripOnHold          = "OnHold"
	TripPendingApproval = "Pending Approval"
	TripPendingIssuance = "Pending Issuance"
	TripIssued          = "Issued"
	TripRejected        = "Rejected"
	TripRefunded        = "Refunded"
	TripCancelled       = "Cancelled"
)

type TripSummary struct {
	ID                domain.ID   `json:"id"`
	CustomID          string      `json:"customId"`
	Status            string      `json:"status"`
	ServiceType       string      `json:"serviceType"`
	FlightType        string      `json:"flightType"`
	OrderTotal        domain.Text `json:"orderTotal"`
	CreatedDate       string      `json:"createdDate"`
	NumberOfTravelers int         `json:"numberOfTravelers"`
}

type TripPage struct {
	Trips []TripSummary `json:"trips"`
	domain.PageInfo
}

type TripSearch struct {
	BookingID        string `json:"bookingId"`
	PNRCode          string `json:"pnrCode"`
	Status           string `json:"status"`
	FlightCabinClass string `json:"flightCabinClass"`
	PageIndex        int    `json:"pageIndex"`
	PageSize         int    `json:"pageSize"`
}

type Trip struct {
	ID           domain.ID     `json:"id"`
	CustomID     string        `json:"customId"`
	Status       string        `json:"status"`
	ServiceType  string        `json:"serviceType"`
	FlightType   string        `json:"flightType"`
	StatusDate   string        `json:"statusDate"`
	UserIP       string        `json:"userIp"`
	BookingItems []BookingItem `json:"bookingItems"`
}

// Booking returns the first booking item; the console only ever shows one.
func (t Trip) Booking() *BookingItem {
	if len(t.BookingItems) == 0 {
		return nil
	}
	return &t.BookingItems[0]
}

type BookingItem struct {
	FlightCabinClass        string           `json:"flightCabinClass"`
	NumberOfTravelers       int              `json:"numberOfTravelers"`
	SabrePNRCode            string           `json:"sabrE_PNRCode"`
	FlightFrom              string           `json:"flightFrom"`
	FlightTo                string           `json:"flightTo"`
	FlightDepartureDate     string           `json:"flightDepartureDate"`
	FlightReturnDate        string           `json:"flightReturnDate"`
	Currency                string           `json:"currency"`
	PassengerBaseFareAmount float64          `json:"passengerBaseFareAmount"`
	PassengerTotalTaxAmount float64          `json:"passengerTotalTaxAmount"`
	PassengerTotalAmount    float64          `json:"passengerTotalAmount"`
	MarkupValue             float64          `json:"markupValue"`
	TotalPrice              float64          `json:"totalPrice"`
	Travelers               []TripTraveler   `json:"travelers"`
	TripStatuses            []Option         `json:"tripStatuses"`
	FlightItinGroup         *FlightItinGroup `json:"flightItinGroup"`
}

func (b BookingItem) CurrencyCode() string {
	if b.Currency == "" {
		return "JOD"
	}
	return b.Currency
}

// Options returns the itinerary options, tolerating missing nesting.
func (b BookingItem) Options() []OriginDestinationOption {
	if b.FlightItinGroup == nil {
		return nil
	}
	return b.FlightItinGroup.Itinerary.OriginDestinationOptions.OriginDestinationOption
}

func (b BookingItem) BrandedFares() []FareInfo {
	if b.FlightItinGroup == nil {
		return nil
	}
	return b.FlightItinGroup.FareInfo
}

type TripTraveler struct {
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	Email                  string `json:"email"`
	PassportNumber         string `json:"passportNumber"`
	PassportIssuingCountry string `json:"passportIssuingCountry"`
	PassportExpiryDate     string `json:"passportExpiryDate"`
}

type FlightItinGroup struct {
	Itinerary struct {
		OriginDestinationOptions struct {
			OriginDestinationOption []OriginDestinationOption `json:"originDestinationOption"`
		} `json:"originDestinationOptions"`
	} `json:"itinerary"`
	FareInfo []FareInfo `json:"fareInfo"`
}

type OriginDestinationOption struct {
	TotalFlightTimeText string          `json:"totalFlightTimeText"`
	FlightSegments      []FlightSegment `json:"flightSegments"`
}

type FlightSegment struct {
	FlightCode   string `json:"flightCode"`
	FlightNumber string `json:"flightNumber"`
	Duration     string `json:"duration"`
	Carrier      struct {
		MarketingAirline struct {
			Name string `json:"name"`
			Code string `json:"code"`
		} `json:"marketingAirline"`
	} `json:"carrier"`
	Origin      SegmentPoint `json:"origin"`
	Destination SegmentPoint `json:"destination"`
}

type SegmentPoint struct {
	City         string `json:"city"`
	LocationCode string `json:"locationCode"`
	Time         string `json:"time"`
}

type FareInfo struct {
	FareBasisCode   string      `json:"fareBasisCode"`
	FareAmount      domain.Text `json:"fareAmount"`
	FareCurrency    string      `json:"fareCurrency"`
	TotalFareAmount domain.Text `json:"totalFareAmount"`
	Segment         *struct {
		BookingCode    string `json:"bookingCode"`
		SeatsAvailable int    `json:"seatsAvailable"`
	} `json:"segment"`
}

type TripStatusChange struct {
	Status string `json:"status"`
}
