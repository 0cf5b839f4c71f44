package models

import "console/internal/domain"

type User struct {
	ID          domain.ID     `json:"id"`
	FirstName   string        `json:"firstName"`
	LastName    string        `json:"lastName"`
	Email       string        `json:"email"`
	RoleID      domain.ID     `json:"roleId"`
	RoleName    string        `json:"roleName"`
	Status      domain.Status `json:"status"`
	CreatedDate string        `json:"createdDate"`
}

type UserPage struct {
	Users []User `json:"users"`
	domain.PageInfo
}

type UserSearch struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	RoleID    int    `json:"roleId"`
	Status    string `json:"status"`
	PageIndex int    `json:"pageIndex"`
	PageSize  int    `json:"pageSize"`
}

type NewUser struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	RoleID    domain.ID `json:"roleId"`
}

type UserUpdate struct {
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Email     string        `json:"email"`
	RoleID    domain.ID     `json:"roleId"`
	Status    domain.Status `json:"status"`
}
