// Package domain contains the data structures of the application domain
package domain

import (
	"fmt"
	"strings"
	"time"
)

// RankItem is one ranked betting-site entry of the affiliate listing.
type RankItem struct {
	ID               string    `json:"id"`
	SiteName         string    `json:"siteName"`
	Logo             string    `json:"logo"`
	Advantages       []string  `json:"advantages"`
	WelcomeBonus     string    `json:"welcomeBonus"`
	Payments         []string  `json:"payments"`
	PromoCode        string    `json:"promoCode"`
	Rank             int       `json:"rank"` // listing position, unique across items
	CreateAccountURL *string   `json:"createAccountUrl,omitempty"`
	DownloadAppURL   *string   `json:"downloadAppUrl,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// UpdateRankItemRequest carries a partial update. Only non-nil fields are
// applied to the stored record.
type UpdateRankItemRequest struct {
	SiteName         *string   `json:"siteName"`
	Logo             *string   `json:"logo"`
	Advantages       *[]string `json:"advantages"`
	WelcomeBonus     *string   `json:"welcomeBonus"`
	Payments         *[]string `json:"payments"`
	PromoCode        *string   `json:"promoCode"`
	Rank             *int      `json:"rank"`
	CreateAccountURL *string   `json:"createAccountUrl"`
	DownloadAppURL   *string   `json:"downloadAppUrl"`
}

// FieldError points at a single attribute that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every field that failed validation for one
// write request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// Validate checks the required-field rules of the schema. Uniqueness of
// site_name and rank is not checked here, the storage layer is the
// authority for that.
func (i *RankItem) Validate() error {
	var fields []FieldError

	if i.SiteName == "" {
		fields = append(fields, FieldError{Field: "siteName", Message: "is required"})
	}
	if i.Logo == "" {
		fields = append(fields, FieldError{Field: "logo", Message: "is required"})
	}
	if len(i.Advantages) == 0 {
		fields = append(fields, FieldError{Field: "advantages", Message: "must contain at least one entry"})
	}
	if i.WelcomeBonus == "" {
		fields = append(fields, FieldError{Field: "welcomeBonus", Message: "is required"})
	}
	if len(i.Payments) == 0 {
		fields = append(fields, FieldError{Field: "payments", Message: "must contain at least one entry"})
	}
	if i.PromoCode == "" {
		fields = append(fields, FieldError{Field: "promoCode", Message: "is required"})
	}
	if i.Rank <= 0 {
		fields = append(fields, FieldError{Field: "rank", Message: "must be a positive integer"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate rejects partial updates that would blank out a required field.
// Omitted (nil) fields keep their stored value and are not checked.
func (r *UpdateRankItemRequest) Validate() error {
	var fields []FieldError

	if r.SiteName != nil && *r.SiteName == "" {
		fields = append(fields, FieldError{Field: "siteName", Message: "cannot be empty"})
	}
	if r.Logo != nil && *r.Logo == "" {
		fields = append(fields, FieldError{Field: "logo", Message: "cannot be empty"})
	}
	if r.Advantages != nil && len(*r.Advantages) == 0 {
		fields = append(fields, FieldError{Field: "advantages", Message: "must contain at least one entry"})
	}
	if r.WelcomeBonus != nil && *r.WelcomeBonus == "" {
		fields = append(fields, FieldError{Field: "welcomeBonus", Message: "cannot be empty"})
	}
	if r.Payments != nil && len(*r.Payments) == 0 {
		fields = append(fields, FieldError{Field: "payments", Message: "must contain at least one entry"})
	}
	if r.PromoCode != nil && *r.PromoCode == "" {
		fields = append(fields, FieldError{Field: "promoCode", Message: "cannot be empty"})
	}
	if r.Rank != nil && *r.Rank <= 0 {
		fields = append(fields, FieldError{Field: "rank", Message: "must be a positive integer"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
