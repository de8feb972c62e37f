package manager

import (
	"strings"

	"callaudit-srv/internal/model"
	pkgErrors "callaudit-srv/pkg/errors"
	"callaudit-srv/pkg/util"
)

// Validate trims in and returns the manager fields it describes.
func Validate(in Input) (model.Manager, error) {
	m := model.Manager{
		Name:       strings.TrimSpace(in.Name),
		Phone:      strings.TrimSpace(in.Phone),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		TeamLead:   strings.TrimSpace(in.TeamLead),
		Department: strings.TrimSpace(in.Department),
	}
	if m.Name == "" {
		return model.Manager{}, pkgErrors.NewValidationError("name is required", "name")
	}
	if m.Email != "" {
		if err := util.IsEmail(m.Email); err != nil {
			return model.Manager{}, pkgErrors.NewValidationError("email is invalid", "email")
		}
	}
	if m.Phone != "" {
		if err := util.IsPhone(m.Phone); err != nil {
			return model.Manager{}, pkgErrors.NewValidationError("phone is invalid", "phone")
		}
	}
	return m, nil
}
