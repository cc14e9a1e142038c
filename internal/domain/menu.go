package domain

import (
	"fmt"
	"net/url"

	apperrors "github.com/ikaro-souza/warlike-spiders/internal/errors"
)

const (
	maxItemNameLength    = 50
	maxSectionNameLength = 50
	maxDescriptionLength = 100
)

// MenuItem is immutable once fetched; drafts keep their own snapshot of it
// (see OrderItemSnapshot) so menu edits never alter an in-progress cart.
type MenuItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	UnitaryPrice float64 `json:"unitaryPrice"`
	Image        string  `json:"image"`
	Href         string  `json:"href"`
}

func (i MenuItem) Validate() error {
	var details []apperrors.ValidationDetail

	if i.ID == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "id",
			Message: "id is required",
		})
	}
	if i.Name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(i.Name) > maxItemNameLength {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: fmt.Sprintf("name must be at most %d characters", maxItemNameLength),
		})
	}
	if len(i.Description) > maxDescriptionLength {
		details = append(details, apperrors.ValidationDetail{
			Field:   "description",
			Message: fmt.Sprintf("description must be at most %d characters", maxDescriptionLength),
		})
	}
	if i.UnitaryPrice < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "unitaryPrice",
			Message: "unitaryPrice must not be negative",
		})
	}
	if err := validateImageRef(i.Image); err != nil {
		details = append(details, apperrors.ValidationDetail{
			Field:   "image",
			Message: err.Error(),
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid menu item", details...)
	}
	return nil
}

// MenuSection groups items; highlighted sections render first, as a
// featured carousel rather than a plain list.
type MenuSection struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Highlight bool       `json:"highlight"`
	Items     []MenuItem `json:"items"`
}

func (s MenuSection) Validate() error {
	var details []apperrors.ValidationDetail

	if s.ID == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "id",
			Message: "id is required",
		})
	}
	if s.Name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(s.Name) > maxSectionNameLength {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: fmt.Sprintf("name must be at most %d characters", maxSectionNameLength),
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("invalid menu section", details...)
	}

	for _, item := range s.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type Menu struct {
	ID       string        `json:"id"`
	Sections []MenuSection `json:"sections"`
}

func validateImageRef(image string) error {
	if image == "" {
		return fmt.Errorf("image is required")
	}
	u, err := url.Parse(image)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("image must be a well-formed URL")
	}
	return nil
}
