package models

import "console/internal/domain"

type Traveler struct {
	ID                  domain.ID     `json:"id"`
	Title               string        `json:"title"`
	FirstName           string        `json:"firstName"`
	LastName            string        `json:"lastName"`
	Email               string        `json:"email"`
	DateOfBirth         string        `json:"dateOfBirth"`
	Gender              string        `json:"gender"`
	PhoneNumber         string        `json:"phoneNumber"`
	RoleID              domain.ID     `json:"roleId"`
	RoleName            string        `json:"roleName"`
	EmailVerified       bool          `json:"emailVerified"`
	Status              domain.Status `json:"status"`
	LastLoginDateUtc    string        `json:"lastLoginDateUtc"`
	LastActivityDateUtc string        `json:"lastActivityDateUtc"`
	CreatedDate         string        `json:"createdDate"`
	Passport            Passport      `json:"passport"`
}

func (t Traveler) FullName() string {
	switch {
	case t.FirstName == "":
		return t.LastName
	case t.LastName == "":
		return t.FirstName
	default:
		return t.FirstName + " " + t.LastName
	}
}

type Passport struct {
	ID                 domain.ID `json:"id"`
	DocumentNumber     string    `json:"documentNumber"`
	IssuingCountryCode string    `json:"issuingCountryCode"`
	DocumentExpiryDate string    `json:"documentExpiryDate"`
}

type TravelerPage struct {
	Travelers []Traveler `json:"travelers"`
	domain.PageInfo
}

type TravelerSearch struct {
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PhoneNumber string     `json:"phoneNumber"`
	RoleID      *domain.ID `json:"roleId,omitempty"`
	PageIndex   int        `json:"pageIndex"`
	PageSize    int        `json:"pageSize"`
}

type TravelerUpdate struct {
	ID          domain.ID `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	RoleID      domain.ID `json:"roleId"`
}

type DocumentUpdate struct {
	DocumentNumber     string `json:"documentNumber"`
	DocumentExpiryDate string `json:"documentExpiryDate"`
	IssuingCountryCode string `json:"issuingCountryCode"`
}

type PasswordChange struct {
	NewPassword string `json:"newPassword"`
}
