package http

import (
	"errors"

	"callaudit-srv/internal/manager"
	pkgErrors "callaudit-srv/pkg/errors"
)

var (
	errManagerNotFound = pkgErrors.NewHTTPError(404, "Manager not found")
	errInvalidBody     = pkgErrors.NewHTTPError(400, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, manager.ErrManagerNotFound):
		return errManagerNotFound
	default:
		return err
	}
}
