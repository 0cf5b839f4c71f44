package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"console/internal/domain"
	"console/internal/domain/models"
)

func sampleTrip(id domain.ID) models.Trip {
	seg := models.FlightSegment{FlightCode: "RJ", FlightNumber: "111", Duration: "3h 10m"}
	seg.Carrier.MarketingAirline.Name = "Royal Jordanian"
	seg.Origin = models.SegmentPoint{City: "Amman", LocationCode: "AMM", Time: "2025-05-01T08:00:00"}
	seg.Destination = models.SegmentPoint{City: "Dubai", LocationCode: "DXB", Time: "2025-05-01T11:10:00"}

	group := &models.FlightItinGroup{}
	group.Itinerary.OriginDestinationOptions.OriginDestinationOption = []models.OriginDestinationOption{
		{TotalFlightTimeText: "3h 10m", FlightSegments: []models.FlightSegment{seg}},
	}

	return models.Trip{
		ID:       id,
		CustomID: "TC-1001",
		Status:   models.TripIssued,
		BookingItems: []models.BookingItem{{
			FlightCabinClass:        "Y",
			SabrePNRCode:            "ABCDEF",
			FlightFrom:              "AMM",
			FlightTo:                "DXB",
			FlightDepartureDate:     "2025-05-01T00:00:00",
			PassengerBaseFareAmount: 100,
			PassengerTotalTaxAmount: 20.5,
			TotalPrice:              120.5,
			Travelers:               []models.TripTraveler{{FirstName: "Lina", LastName: "Haddad", PassportNumber: "N123"}},
			FlightItinGroup:         group,
		}},
	}
}

func TestItineraryServiceGenerate(t *testing.T) {
	svc := ItineraryService{
		Loader: func(_ context.Context, id domain.ID) (models.Trip, error) { return sampleTrip(id), nil },
		Now:    func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) },
	}

	pdf, filename, err := svc.Generate(context.Background(), 9)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "ITINERARY_TC-1001.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

type stubTrips struct {
	token string
	trip  models.Trip
}

func (s *stubTrips) Trip(_ context.Context, token string, id domain.ID) (models.Trip, error) {
	s.token = token
	s.trip.ID = id
	return s.trip, nil
}

func TestItineraryServiceUsesSessionToken(t *testing.T) {
	src := &stubTrips{trip: sampleTrip(0)}
	svc := ItineraryService{Trips: src, Token: "tok-9"}

	if _, _, err := svc.Generate(context.Background(), 4); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if src.token != "tok-9" {
		t.Fatalf("token = %q", src.token)
	}
}

func TestItineraryServiceNoBooking(t *testing.T) {
	svc := ItineraryService{Loader: func(context.Context, domain.ID) (models.Trip, error) {
		return models.Trip{ID: 1}, nil
	}}
	_, _, err := svc.Generate(context.Background(), 1)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestItineraryServiceWithoutSource(t *testing.T) {
	_, _, err := ItineraryService{}.Generate(context.Background(), 1)
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestNewPriceSetting(t *testing.T) {
	tests := []struct {
		name     string
		airline  string
		cabin    string
		from, to float64
		wantErr  string
	}{
		{name: "airline only", airline: "RJ", from: 10, to: 100},
		{name: "cabin only", cabin: "C", from: 0, to: 0},
		{name: "neither", from: 1, to: 2, wantErr: "Select an airline or a cabin class"},
		{name: "bad cabin", cabin: "F", from: 1, to: 2, wantErr: "Unknown cabin class"},
		{name: "inverted range", airline: "RJ", from: 200, to: 100, wantErr: "Price from must not exceed price to"},
		{name: "negative", airline: "RJ", from: -1, to: 100, wantErr: "Amounts cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPriceSetting(tt.airline, tt.cabin, tt.from, tt.to, 5)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.CommissionAmount != 5 || got.Airline != tt.airline || got.CabinClass != tt.cabin {
					t.Fatalf("unexpected setting: %+v", got)
				}
				return
			}
			msg, ok := domain.ValidationMessage(err)
			if !ok || msg != tt.wantErr {
				t.Fatalf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheckPasswordChange(t *testing.T) {
	if err := CheckPasswordChange("a", "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CheckPasswordChange("", "a"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for empty field")
	}
	if err := CheckPasswordChange("a", "b"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for mismatch")
	}
}

func TestArrangeLanguages(t *testing.T) {
	langs := []models.Language{
		{ID: 1, Name: "English", LanguageCulture: "en-US", DisplayOrder: 2},
		{ID: 2, Name: "Arabic", LanguageCulture: "ar-JO", DisplayOrder: 1},
		{ID: 3, Name: "French", LanguageCulture: "fr-FR", DisplayOrder: 3},
	}

	all := ArrangeLanguages(langs, "")
	if len(all) != 3 || all[0].ID != 2 || all[1].ID != 1 || all[2].ID != 3 {
		t.Fatalf("unexpected order: %+v", all)
	}
	if langs[0].ID != 1 {
		t.Fatalf("input was reordered")
	}

	byCulture := ArrangeLanguages(langs, "AR-jo")
	if len(byCulture) != 1 || byCulture[0].ID != 2 {
		t.Fatalf("culture filter: %+v", byCulture)
	}
	byName := ArrangeLanguages(langs, " fren ")
	if len(byName) != 1 || byName[0].ID != 3 {
		t.Fatalf("name filter: %+v", byName)
	}
}
