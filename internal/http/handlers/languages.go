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

var languageTabs = []tab{
	{"info", "Info"},
	{"resources", "Locale resources"},
}

type languagesData struct {
	Languages []models.Language
	Search    string
}

type languageEditData struct {
	Tab       string
	Tabs      []tab
	Language  models.Language
	Resources listing.Page[models.LocaleResource]
	Query     listing.Query
	EditID    domain.ID
}

type resourceForm struct {
	ResourceName  string `form:"resourceName" binding:"required"`
	ResourceValue string `form:"resourceValue" binding:"required"`
}

func (h *Handler) Languages(c *gin.Context) {
	langs, err := h.API.Languages(h.ctx(c), token(c))
	if err != nil && h.loadFailed(c, err) {
		return
	}
	search := c.Query("q")
	h.render(c, http.StatusOK, "languages.html", "Languages", "/languages", languagesData{
		Languages: services.ArrangeLanguages(langs, search),
		Search:    search,
	})
}

func languageResourcesURL(id domain.ID) string {
	return fmt.Sprintf("/languages/%d/edit?tab=resources", id)
}

func (h *Handler) EditLanguage(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	data := languageEditData{Tab: pickTab(c, languageTabs), Tabs: languageTabs}

	lang, err := h.API.Language(h.ctx(c), token(c), id)
	if err != nil {
		if h.loadFailed(c, err) {
			return
		}
		lang.ID = id
	}
	data.Language = lang

	if data.Tab == "resources" {
		q := listing.Parse(c.Request.URL.Query(), h.Paging.DefaultSize, h.Paging.MaxSize, "name", "value")
		res, err := h.API.SearchLocaleResources(h.ctx(c), token(c), id, models.LocaleResourceSearch{
			Name:      q.Get("name"),
			Value:     q.Get("value"),
			PageIndex: q.PageIndex,
			PageSize:  q.PageSize,
		})
		if err != nil && h.loadFailed(c, err) {
			return
		}
		// pager links stay on the resources tab
		q.Filters["tab"] = "resources"
		data.Resources = listing.NewPage(fmt.Sprintf("/languages/%d/edit", id), q, res.LocaleResources, res.PageInfo)
		data.Query = q
		if editID, err := domain.ParseID(c.Query("edit")); err == nil {
			data.EditID = editID
		}
	}

	title := "Edit language"
	if lang.Name != "" {
		title += " - " + lang.Name
	}
	h.render(c, http.StatusOK, "language_edit.html", title, "/languages", data)
}

func (h *Handler) CreateLocaleResource(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	back := languageResourcesURL(id)

	var form resourceForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, back)
		return
	}
	msg, err := h.API.CreateLocaleResource(h.ctx(c), token(c), id, models.LocaleResourceInput(form))
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "Resource added"), back)
}

func (h *Handler) UpdateLocaleResource(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resourceID, ok := h.pathID(c, "resourceId")
	if !ok {
		return
	}
	back := languageResourcesURL(id)

	var form resourceForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, fmt.Sprintf("%s&edit=%d", back, resourceID))
		return
	}
	msg, err := h.API.UpdateLocaleResource(h.ctx(c), token(c), resourceID, models.LocaleResourceInput(form))
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "Resource updated"), back)
}

func (h *Handler) DeleteLocaleResource(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resourceID, ok := h.pathID(c, "resourceId")
	if !ok {
		return
	}
	back := languageResourcesURL(id)

	msg, err := h.API.DeleteLocaleResource(h.ctx(c), token(c), resourceID)
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "Resource deleted"), back)
}
