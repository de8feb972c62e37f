package http

import (
	"strings"

	"callaudit-srv/internal/model"
	pkgErrors "callaudit-srv/pkg/errors"
	"callaudit-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processIDRequest(c *gin.Context) (string, model.Scope, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", model.Scope{}, pkgErrors.NewValidationError("id is required", "id")
	}
	return id, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processManagerRequest(c *gin.Context) (managerReq, model.Scope, error) {
	var req managerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errInvalidBody.WithMessage("Invalid request body: " + err.Error())
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}
