package handlers

import (
	"fmt"
	"net/http"

	"console/internal/domain/models"
	"console/internal/http/middleware"
	"console/internal/listing"
	"console/internal/services"

	"github.com/gin-gonic/gin"
)

type tripsData struct {
	Page         listing.Page[models.TripSummary]
	Query        listing.Query
	Statuses     []models.Option
	CabinClasses []models.Option
}

type tripViewData struct {
	Trip    models.Trip
	Booking *models.BookingItem
}

type tripStatusForm struct {
	Status string `form:"status" binding:"required"`
}

func (h *Handler) Trips(c *gin.Context) {
	q := listing.Parse(c.Request.URL.Query(), h.Paging.DefaultSize, h.Paging.MaxSize,
		"bookingId", "pnrCode", "status", "flightCabinClass")

	res, err := h.API.SearchTrips(h.ctx(c), token(c), models.TripSearch{
		BookingID:        q.Get("bookingId"),
		PNRCode:          q.Get("pnrCode"),
		Status:           q.Get("status"),
		FlightCabinClass: q.Get("flightCabinClass"),
		PageIndex:        q.PageIndex,
		PageSize:         q.PageSize,
	})
	if err != nil && h.loadFailed(c, err) {
		return
	}

	h.render(c, http.StatusOK, "trips.html", "Trips", "/trips", tripsData{
		Page:         listing.NewPage("/trips", q, res.Trips, res.PageInfo),
		Query:        q,
		Statuses:     models.TripStatusFilters,
		CabinClasses: models.CabinClasses,
	})
}

func (h *Handler) ViewTrip(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	trip, err := h.API.Trip(h.ctx(c), token(c), id)
	if err != nil {
		if h.loadFailed(c, err) {
			return
		}
		trip.ID = id
	}

	title := "Trip"
	if trip.CustomID != "" {
		title += " " + trip.CustomID
	}
	h.render(c, http.StatusOK, "trip_view.html", title, "/trips", tripViewData{Trip: trip, Booking: trip.Booking()})
}

func (h *Handler) ChangeTripStatus(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	back := fmt.Sprintf("/trips/%d/view", id)

	var form tripStatusForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, back)
		return
	}
	if _, err := h.API.ChangeTripStatus(h.ctx(c), token(c), id, form.Status); err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, "Trip status updated successfully", back)
}

// TripItinerary downloads the trip's itinerary as a PDF.
func (h *Handler) TripItinerary(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	svc := services.ItineraryService{
		Trips:     h.API,
		Token:     token(c),
		RequestID: middleware.GetRequestID(c),
		Now:       h.Now,
	}
	pdf, filename, err := svc.Generate(h.ctx(c), id)
	if err != nil {
		h.fail(c, err, fmt.Sprintf("/trips/%d/view", id))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
