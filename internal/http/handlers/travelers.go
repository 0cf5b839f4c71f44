package handlers

import (
	"fmt"
	"net/http"

	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/listing"
	"console/internal/services"
	"console/internal/utils"

	"github.com/gin-gonic/gin"
)

var travelerTabs = []tab{
	{"info", "Info"},
	{"documents", "Travel documents"},
	{"password", "Change password"},
}

type travelersData struct {
	Page  listing.Page[models.Traveler]
	Query listing.Query
	Roles []models.Option
}

type travelerEditData struct {
	Tab       string
	Tabs      []tab
	Traveler  models.Traveler
	Roles     []models.Option
	Countries []models.Country
}

type travelerForm struct {
	FirstName   string `form:"firstName" binding:"required"`
	LastName    string `form:"lastName" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	PhoneNumber string `form:"phoneNumber"`
	RoleID      string `form:"roleId"`
}

type documentForm struct {
	PassportID         string `form:"passportId" binding:"required"`
	DocumentNumber     string `form:"documentNumber" binding:"required"`
	IssuingCountryCode string `form:"issuingCountryCode"`
	DocumentExpiryDate string `form:"documentExpiryDate" binding:"required"`
}

type passwordForm struct {
	NewPassword     string `form:"newPassword"`
	ConfirmPassword string `form:"confirmPassword"`
}

func travelerTabURL(id domain.ID, tab string) string {
	return fmt.Sprintf("/travelers/%d/edit?tab=%s", id, tab)
}

func (h *Handler) Travelers(c *gin.Context) {
	q := listing.Parse(c.Request.URL.Query(), h.Paging.DefaultSize, h.Paging.MaxSize,
		"firstName", "lastName", "email", "phoneNumber", "roleId")

	roles, err := h.API.Roles(h.ctx(c), token(c))
	if err != nil && h.loadFailed(c, err) {
		return
	}

	search := models.TravelerSearch{
		FirstName:   q.Get("firstName"),
		LastName:    q.Get("lastName"),
		Email:       q.Get("email"),
		PhoneNumber: q.Get("phoneNumber"),
		PageIndex:   q.PageIndex,
		PageSize:    q.PageSize,
	}
	if roleID, err := domain.ParseID(q.Get("roleId")); err == nil {
		search.RoleID = &roleID
	}

	res, err := h.API.SearchTravelers(h.ctx(c), token(c), search)
	if err != nil && h.loadFailed(c, err) {
		return
	}

	h.render(c, http.StatusOK, "travelers.html", "Travelers", "/travelers", travelersData{
		Page:  listing.NewPage("/travelers", q, res.Travelers, res.PageInfo),
		Query: q,
		Roles: roles,
	})
}

func (h *Handler) EditTraveler(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	data := travelerEditData{Tab: pickTab(c, travelerTabs), Tabs: travelerTabs}

	traveler, err := h.API.Traveler(h.ctx(c), token(c), id)
	if err != nil {
		if h.loadFailed(c, err) {
			return
		}
		traveler.ID = id
	}
	data.Traveler = traveler

	switch data.Tab {
	case "info":
		if data.Roles, err = h.API.Roles(h.ctx(c), token(c)); err != nil && h.loadFailed(c, err) {
			return
		}
	case "documents":
		if data.Countries, err = h.API.Countries(h.ctx(c), token(c)); err != nil && h.loadFailed(c, err) {
			return
		}
	}

	title := "Edit traveler"
	if name := traveler.FullName(); name != "" {
		title += " - " + name
	}
	h.render(c, http.StatusOK, "traveler_edit.html", title, "/travelers", data)
}

func (h *Handler) UpdateTraveler(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	back := travelerTabURL(id, "info")

	var form travelerForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, back)
		return
	}
	roleID, err := optionalID(form.RoleID)
	if err != nil {
		h.fail(c, domain.ValidationError{Field: "roleId", Msg: "Select a valid role"}, back)
		return
	}

	msg, err := h.API.UpdateTraveler(h.ctx(c), token(c), id, models.TravelerUpdate{
		ID:          id,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		PhoneNumber: form.PhoneNumber,
		RoleID:      roleID,
	})
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "Traveler updated"), back)
}

func (h *Handler) UpdateTravelerDocument(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	back := travelerTabURL(id, "documents")

	var form documentForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, back)
		return
	}
	passportID, err := domain.ParseID(form.PassportID)
	if err != nil {
		h.fail(c, domain.ValidationError{Field: "passportId", Msg: "This traveler has no travel document on file"}, back)
		return
	}
	if _, ok := utils.ParseBackendTime(form.DocumentExpiryDate); !ok {
		h.fail(c, domain.ValidationError{Field: "documentExpiryDate", Msg: "Enter a valid expiry date"}, back)
		return
	}

	msg, err := h.API.UpdateTravelerDocument(h.ctx(c), token(c), passportID, models.DocumentUpdate{
		DocumentNumber:     form.DocumentNumber,
		DocumentExpiryDate: form.DocumentExpiryDate,
		IssuingCountryCode: utils.Fallback(form.IssuingCountryCode, "JO"),
	})
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "Travel document updated"), back)
}

func (h *Handler) ChangeTravelerPassword(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	back := travelerTabURL(id, "password")

	var form passwordForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, back)
		return
	}
	if err := services.CheckPasswordChange(form.NewPassword, form.ConfirmPassword); err != nil {
		h.fail(c, err, back)
		return
	}

	msg, err := h.API.ChangeTravelerPassword(h.ctx(c), token(c), id, form.NewPassword)
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "Password changed"), back)
}
