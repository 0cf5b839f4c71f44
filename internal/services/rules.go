package services

import (
	"console/internal/domain"
	"console/internal/domain/models"
	"console/internal/utils"
)

// NewPriceSetting checks the markup rules the backend does not enforce: a
// setting targets an airline, a cabin class or both, and its price range is
// not inverted.
func NewPriceSetting(airline, cabinClass string, priceFrom, priceTo, commission float64) (models.NewPriceSetting, error) {
	airline = utils.TrimOrEmpty(airline)
	cabinClass = utils.TrimOrEmpty(cabinClass)

	if airline == "" && cabinClass == "" {
		return models.NewPriceSetting{}, domain.ValidationError{Field: "airline", Msg: "Select an airline or a cabin class"}
	}
	if cabinClass != "" && models.CabinClassName(cabinClass) == cabinClass {
		return models.NewPriceSetting{}, domain.ValidationError{Field: "cabinClass", Msg: "Unknown cabin class"}
	}
	if priceFrom < 0 || priceTo < 0 || commission < 0 {
		return models.NewPriceSetting{}, domain.ValidationError{Field: "priceFrom", Msg: "Amounts cannot be negative"}
	}
	if priceFrom > priceTo {
		return models.NewPriceSetting{}, domain.ValidationError{Field: "priceTo", Msg: "Price from must not exceed price to"}
	}

	return models.NewPriceSetting{
		Airline:          airline,
		CabinClass:       cabinClass,
		PriceFrom:        priceFrom,
		PriceTo:          priceTo,
		CommissionAmount: commission,
	}, nil
}

// CheckPasswordChange requires both fields and that they match.
func CheckPasswordChange(newPassword, confirm string) error {
	if newPassword == "" || confirm == "" {
		return domain.ValidationError{Field: "newPassword", Msg: "Both password fields are required"}
	}
	if newPassword != confirm {
		return domain.ValidationError{Field: "confirmPassword", Msg: "Passwords do not match"}
	}
	return nil
}

// UserStatusFilter maps the users filter select to the backend flag.
func UserStatusFilter(v string) string {
	switch v {
	case "active", string(domain.StatusActive):
		return string(domain.StatusActive)
	case "inactive", string(domain.StatusInactive):
		return string(domain.StatusInactive)
	default:
		return ""
	}
}
