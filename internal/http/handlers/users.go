package handlers

import (
	"fmt"
	"net/http"

	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/http/middleware"
	"console/internal/listing"
	"console/internal/services"
	"console/internal/session"
	"console/internal/utils"

	"github.com/gin-gonic/gin"
)

type usersData struct {
	Page    listing.Page[models.User]
	Query   listing.Query
	Roles   []models.Option
	ShowAdd bool
}

type userEditData struct {
	User  models.User
	Roles []models.Option
}

type newUserForm struct {
	FirstName string `form:"firstName" binding:"required"`
	LastName  string `form:"lastName" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Password  string `form:"password" binding:"required"`
	RoleID    string `form:"roleId"`
}

type userForm struct {
	FirstName string `form:"firstName" binding:"required"`
	LastName  string `form:"lastName" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	RoleID    string `form:"roleId"`
	Active    string `form:"active"`
}

func (h *Handler) Users(c *gin.Context) {
	q := listing.Parse(c.Request.URL.Query(), h.Paging.DefaultSize, h.Paging.MaxSize,
		"firstName", "lastName", "email", "status")
	showAdd := c.Query("add") != ""

	var (
		res models.UserPage
		err error
	)
	if q.Filtered() {
		res, err = h.API.SearchUsers(h.ctx(c), token(c), models.UserSearch{
			FirstName: q.Get("firstName"),
			LastName:  q.Get("lastName"),
			Email:     q.Get("email"),
			Status:    services.UserStatusFilter(q.Get("status")),
			PageIndex: q.PageIndex,
			PageSize:  q.PageSize,
		})
	} else {
		res, err = h.API.ListUsers(h.ctx(c), token(c), q.PageIndex, q.PageSize)
	}
	if err != nil && h.loadFailed(c, err) {
		return
	}

	var roles []models.Option
	if showAdd {
		if roles, err = h.API.Roles(h.ctx(c), token(c)); err != nil && h.loadFailed(c, err) {
			return
		}
	}

	h.render(c, http.StatusOK, "users.html", "Users", "/users", usersData{
		Page:    listing.NewPage("/users", q, res.Users, res.PageInfo),
		Query:   q,
		Roles:   roles,
		ShowAdd: showAdd,
	})
}

func (h *Handler) CreateUser(c *gin.Context) {
	back := "/users?add=1"

	var form newUserForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, back)
		return
	}
	roleID, err := optionalID(form.RoleID)
	if err != nil {
		h.fail(c, domain.ValidationError{Field: "roleId", Msg: "Select a valid role"}, back)
		return
	}

	msg, err := h.API.CreateUser(h.ctx(c), token(c), models.NewUser{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
		RoleID:    roleID,
	})
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "User created"), "/users")
}

func userURL(id domain.ID) string { return fmt.Sprintf("/users/%d/edit", id) }

// EditUser shows one user. A user the backend cannot return sends the
// operator back to the list.
func (h *Handler) EditUser(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.API.User(h.ctx(c), token(c), id)
	if err != nil {
		if h.navigate(c, err) {
			return
		}
		if !domain.IsNotFound(err) {
			utils.LogFailure(middleware.GetRequestID(c), "users", "load", err)
		}
		session.SetFlash(c.Writer, session.FlashError, errorMessage(err))
		c.Redirect(http.StatusFound, "/users")
		return
	}
	roles, err := h.API.Roles(h.ctx(c), token(c))
	if err != nil && h.loadFailed(c, err) {
		return
	}

	h.render(c, http.StatusOK, "user_edit.html", "Edit user - "+user.Email, "/users", userEditData{User: user, Roles: roles})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	back := userURL(id)

	var form userForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, back)
		return
	}
	roleID, err := optionalID(form.RoleID)
	if err != nil {
		h.fail(c, domain.ValidationError{Field: "roleId", Msg: "Select a valid role"}, back)
		return
	}

	msg, err := h.API.UpdateUser(h.ctx(c), token(c), id, models.UserUpdate{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		RoleID:    roleID,
		Status:    checkbox(form.Active),
	})
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "User updated"), back)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	msg, err := h.API.DeleteUser(h.ctx(c), token(c), id)
	if err != nil {
		h.fail(c, err, userURL(id))
		return
	}
	h.done(c, successMessage(msg, "User deleted"), "/users")
}

func (h *Handler) ChangeUserPassword(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	back := userURL(id)

	var form passwordForm
	if err := bind(c, &form); err != nil {
		h.fail(c, err, back)
		return
	}
	if err := services.CheckPasswordChange(form.NewPassword, form.ConfirmPassword); err != nil {
		h.fail(c, err, back)
		return
	}

	msg, err := h.API.ChangeUserPassword(h.ctx(c), token(c), id, form.NewPassword)
	if err != nil {
		h.fail(c, err, back)
		return
	}
	h.done(c, successMessage(msg, "Password changed"), back)
}
