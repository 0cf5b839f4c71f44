package models

type Dashboard struct {
	TotalSales              float64       `json:"totalSales"`
	TotalCorporates         int           `json:"totalCorporates"`
	TotalTrips              int           `json:"totalTrips"`
	BookingsOverTimes       []DatePoint   `json:"bookingsOverTimes"`
	TopDestinations         []NamedValue  `json:"topDestinations"`
	FlightTypeDistributions []NamedValue  `json:"flightTypeDistributions"`
	RecentCustomers         []Corporate   `json:"recentCustomers"`
	RecentBookings          []TripSummary `json:"recentBookings"`
}

type DatePoint struct {
	Date  string `json:"date"`
	Trips int    `json:"trips"`
}

type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
