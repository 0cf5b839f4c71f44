package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TripSource is the part of the backend client the itinerary needs.
type TripSource interface {
	Trip(ctx context.Context, token string, id domain.ID) (models.Trip, error)
}

// ItineraryService renders a trip's flight itinerary as a PDF.
type ItineraryService struct {
	Trips     TripSource
	Token     string
	RequestID string
	Loader    func(context.Context, domain.ID) (models.Trip, error)
	Now       func() time.Time
}

func (s ItineraryService) Generate(ctx context.Context, tripID domain.ID) ([]byte, string, error) {
	trip, err := s.load(ctx, tripID)
	if err != nil {
		return nil, "", err
	}
	if trip.Booking() == nil {
		return nil, "", domain.ValidationError{Field: "trip", Msg: "trip has no booking items"}
	}
	utils.LogEvent(s.RequestID, "itinerary", "generate_pdf", fmt.Sprintf("trip_id=%d", tripID))
	return buildItineraryPDF(trip, s.now())
}

func (s ItineraryService) load(ctx context.Context, id domain.ID) (models.Trip, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	if s.Trips == nil {
		return models.Trip{}, domain.InternalError{Msg: "itinerary: no trip source"}
	}
	return s.Trips.Trip(ctx, s.Token, id)
}

func (s ItineraryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildItineraryPDF(trip models.Trip, printed time.Time) ([]byte, string, error) {
	b := trip.Booking()
	ref := utils.Fallback(trip.CustomID, trip.ID.String())

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Itinerary "+ref, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Booking      : %s", ref),
		fmt.Sprintf("PNR          : %s", utils.Fallback(b.SabrePNRCode, "-")),
		fmt.Sprintf("Status       : %s", utils.Fallback(trip.Status, "-")),
		fmt.Sprintf("Cabin        : %s", utils.Fallback(models.CabinClassName(b.FlightCabinClass), "-")),
		fmt.Sprintf("Route        : %s -> %s", utils.Fallback(b.FlightFrom, "-"), utils.Fallback(b.FlightTo, "-")),
		fmt.Sprintf("Departure    : %s", utils.Fallback(utils.FormatDate(b.FlightDepartureDate), "-")),
		fmt.Sprintf("Return       : %s", utils.Fallback(utils.FormatDate(b.FlightReturnDate), "-")),
		fmt.Sprintf("Printed      : %s", printed.Format("2006-01-02 15:04")),
	}
	for _, l := range lines {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}

	for i, opt := range b.Options() {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		title := fmt.Sprintf("Leg %d", i+1)
		if opt.TotalFlightTimeText != "" {
			title += " (" + opt.TotalFlightTimeText + ")"
		}
		pdf.Cell(0, 7, title)
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 10)
		for _, seg := range opt.FlightSegments {
			pdf.MultiCell(0, 5, segmentLine(seg), "", "", false)
		}
	}

	if len(b.Travelers) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Travelers")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, t := range b.Travelers {
			name := strings.TrimSpace(t.FirstName + " " + t.LastName)
			pdf.Cell(0, 5, fmt.Sprintf("%s  passport %s (%s)", utils.Fallback(name, "-"),
				utils.Fallback(t.PassportNumber, "-"), utils.Fallback(t.PassportIssuingCountry, "-")))
			pdf.Ln(5)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Fare")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	cur := b.CurrencyCode()
	for _, row := range [][2]string{
		{"Base fare", utils.FormatAmount(b.PassengerBaseFareAmount, cur)},
		{"Taxes", utils.FormatAmount(b.PassengerTotalTaxAmount, cur)},
		{"Markup", utils.FormatAmount(b.MarkupValue, cur)},
	} {
		pdf.Cell(40, 5, row[0])
		pdf.Cell(0, 5, row[1])
		pdf.Ln(5)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(40, 6, "Total")
	pdf.Cell(0, 6, utils.FormatAmount(b.TotalPrice, cur))
	pdf.Ln(6)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "itinerary: render pdf", Err: err}
	}

	filename := fmt.Sprintf("ITINERARY_%s.pdf", utils.SafeFilenamePart(ref))
	return buf.Bytes(), filename, nil
}

func segmentLine(seg models.FlightSegment) string {
	airline := utils.Fallback(seg.Carrier.MarketingAirline.Name, seg.FlightCode)
	out := fmt.Sprintf("%s%s %s: %s %s %s -> %s %s %s",
		seg.FlightCode, seg.FlightNumber, airline,
		seg.Origin.LocationCode, seg.Origin.City, utils.FormatDateTime(seg.Origin.Time),
		seg.Destination.LocationCode, seg.Destination.City, utils.FormatDateTime(seg.Destination.Time),
	)
	if seg.Duration != "" {
		out += " (" + seg.Duration + ")"
	}
	return utils.NormalizeSpace(out)
}
