package models

import "console/internal/domain"

type Language struct {
	ID              domain.ID `json:"id"`
	Name            string    `json:"name"`
	LanguageCulture string    `json:"languageCulture"`
	UniqueSeoCode   string    `json:"uniqueSeoCode"`
	Rtl             bool      `json:"rtl"`
	Published       bool      `json:"published"`
	DisplayOrder    int       `json:"displayOrder"`
}

type LocaleResource struct {
	ID            domain.ID `json:"id"`
	ResourceName  string    `json:"resourceName"`
	ResourceValue string    `json:"resourceValue"`
}

type LocaleResourcePage struct {
	LocaleResources []LocaleResource `json:"localeResources"`
	domain.PageInfo
}

type LocaleResourceSearch struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	PageIndex int    `json:"pageIndex"`
	PageSize  int    `json:"pageSize"`
}

type LocaleResourceInput struct {
	ResourceName  string `json:"resourceName"`
	ResourceValue string `json:"resourceValue"`
}
