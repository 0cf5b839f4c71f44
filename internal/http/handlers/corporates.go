package handlers

import (
	"fmt"
	"net/http"

	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/listing"
	"console/internal/services"

	"github.com/gin-gonic/gin"
)

var corporateTabs = []tab{
	{"info", "Info"},
	{"travelers", "Travelers"},
	{"trips", "Trips"},
	{"approvals", "Approval processes"},
	{"policies", "Travel policies"},
	{"pricing", "Price markup settings"},
}

type corporatesData struct {
	Page    listing.Page[models.Corporate]
	Query   listing.Query
	ShowAdd bool
}

type newCorporateForm struct {
	CorporateName string `form:"corporateName" binding:"required"`
	FirstName     string `form:"firstName" binding:"required"`
	LastName      string `form:"lastName" binding:"required"`
	Email         string `form:"email" binding:"required,email"`
	PhoneNumber   string `form:"phoneNumber"`
}

type corporateForm struct {
	Name             string `form:"name" binding:"required"`
	CreditLimit      string `form:"creditLimit" binding:"required"`
	AvailableBalance string `form:"availableBalance"`
	Active           string `form:"active"`
}

type priceSettingForm struct {
	Airline          string `form:"airline"`
	CabinClass       string `form:"cabinClass"`
	PriceFrom        string `form:"priceFrom" binding:"required"`
	PriceTo          string `form:"priceTo" binding:"required"`
	CommissionAmount string `form:"commissionAmount" binding:"required"`
}

type corporateEditData struct {
	Tab           string
	Tabs          []tab
	Details       models.CorporateDetails
	PriceSettings []models.PriceMarkupSetting
	Airlines      []models.Airline
	CabinClasses  []models.Option
}

// Corporates lists corporates. With filters set it uses the search endpoint.
func (h *Handler) Corporates(c *gin.Context) {
	q := listing.Parse(c.Request.URL.Query(), h.Paging.DefaultSize, h.Paging.MaxSize, "name", "status")

	var (
		res models.CorporatePage
		err error
	)
	if q.Filtered() {
		res, err = h.API.SearchCorporates(h.ctx(c), token(c), models.CorporateSearch{
			Name:      q.Get("name"),
			Status:    q.Get("status"),
			PageIndex: q.PageIndex,
			PageSize:  q.PageSize,
		})
	} else {
		res, err = h.API.ListCorporates(h.ctx(c), token(c), q.PageIndex, q.PageSize)
	}
	if err != nil && h.loadFailed(c, err) {
		return
	}

	h.render(c, http.StatusOK, "corporates.html", "Corporates", "/corporates", corporatesData{
		Page:    listing.NewPage("/corporates", q, res.Corporates, res.PageInfo),
		Query:   q,
		ShowAdd: c.Query("add") != "",
	})
}

func (h *Handler) CreateCorporate(c *gin.Context) {
	var form newCorporateForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, "/corporates?add=1")
		return
	}
	msg, err := h.API.CreateCorporate(h.ctx(c), token(c), models.NewCorporate{
		CorporateName: form.CorporateName,
		FirstName:     form.FirstName,
		LastName:      form.LastName,
		Email:         form.Email,
		PhoneNumber:   form.PhoneNumber,
	})
	if err != nil {
		h.fail(c, err, "/corporates?add=1")
		return
	}
	h.done(c, successMessage(msg, "Corporate created"), "/corporates")
}

func corporateTabURL(id domain.ID, tab string) string {
	return fmt.Sprintf("/corporates/%d/edit?tab=%s", id, tab)
}

func (h *Handler) EditCorporate(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	data := corporateEditData{Tab: pickTab(c, corporateTabs), Tabs: corporateTabs, CabinClasses: models.CabinClasses}

	details, err := h.API.Corporate(h.ctx(c), token(c), id)
	if err != nil {
		if h.loadFailed(c, err) {
			return
		}
		details.BasicInfo.ID = id
	}
	data.Details = details

	if data.Tab == "pricing" {
		if data.PriceSettings, err = h.API.PriceSettings(h.ctx(c), token(c), id); err != nil && h.loadFailed(c, err) {
			return
		}
		if data.Airlines, err = h.API.Airlines(h.ctx(c), token(c)); err != nil && h.loadFailed(c, err) {
			return
		}
	}

	title := "Edit corporate"
	if details.BasicInfo.Name != "" {
		title += " - " + details.BasicInfo.Name
	}
	h.render(c, http.StatusOK, "corporate_edit.html", title, "/corporates", data)
}

func (h *Handler) UpdateCorporate(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	back := corporateTabURL(id, "info")

	var form corporateForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, back)
		return
	}
	limit, err := amount(form.CreditLimit)
	if err != nil {
		h.fail(c, err, back)
		return
	}
	balance, err := optionalAmount(form.AvailableBalance)
	if err != nil {
		h.fail(c, err, back)
		return
	}

	msg, err := h.API.UpdateCorporate(h.ctx(c), token(c), id, models.CorporateUpdate{
		Name:             form.Name,
		CreditLimit:      limit,
		AvailableBalance: balance,
		Status:           checkbox(form.Active),
	})
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "Corporate updated"), back)
}

func (h *Handler) CreatePriceSetting(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	back := corporateTabURL(id, "pricing")

	var form priceSettingForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, back)
		return
	}
	var amounts [3]float64
	for i, raw := range []string{form.PriceFrom, form.PriceTo, form.CommissionAmount} {
		v, err := amount(raw)
		if err != nil {
			h.fail(c, err, back)
			return
		}
		amounts[i] = v
	}
	setting, err := services.NewPriceSetting(form.Airline, form.CabinClass, amounts[0], amounts[1], amounts[2])
	if err != nil {
		h.fail(c, err, back)
		return
	}

	msg, err := h.API.CreatePriceSetting(h.ctx(c), token(c), id, setting)
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "Price setting added"), back)
}

func (h *Handler) DeletePriceSetting(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	settingID, ok := h.pathID(c, "settingId")
	if !ok {
		return
	}
	back := corporateTabURL(id, "pricing")

	msg, err := h.API.DeletePriceSetting(h.ctx(c), token(c), settingID)
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "Price setting deleted"), back)
}

// successMessage prefers the backend's own confirmation text.
func successMessage(backend, fallback string) string {
	if backend != "" {
		return backend
	}
	return fallback
}
