package http

import (
	"strings"

	"callaudit-srv/internal/checklist"
	"callaudit-srv/internal/model"
	pkgErrors "callaudit-srv/pkg/errors"
	"callaudit-srv/pkg/scope"
	"callaudit-srv/pkg/upload"

	"github.com/gin-gonic/gin"
)

func (h *handler) processIDRequest(c *gin.Context) (string, model.Scope, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", model.Scope{}, pkgErrors.NewValidationError("id is required", "id")
	}
	return id, scope.GetScopeFromContext(c.Request.Context()), nil
}

func (h *handler) processChecklistRequest(c *gin.Context) (checklistReq, model.Scope, error) {
	var req checklistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errInvalidBody.WithMessage("Invalid request body: " + err.Error())
	}
	return req, scope.GetScopeFromContext(c.Request.Context()), nil
}

// processUploadRequest spools the "file" field. The caller must Close the returned file.
func (h *handler) processUploadRequest(c *gin.Context) (checklist.UploadInput, *upload.File, model.Scope, error) {
	upload.LimitBody(c.Writer, c.Request, h.maxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		if upload.IsTooLarge(err) {
			return checklist.UploadInput{}, nil, model.Scope{}, errFileTooLarge
		}
		return checklist.UploadInput{}, nil, model.Scope{}, errFileRequired
	}
	f, err := upload.Acquire(fh, h.maxUploadBytes)
	if err != nil {
		if upload.IsTooLarge(err) {
			return checklist.UploadInput{}, nil, model.Scope{}, errFileTooLarge
		}
		return checklist.UploadInput{}, nil, model.Scope{}, err
	}
	data, err := f.ReadAll()
	if err != nil {
		_ = f.Close()
		return checklist.UploadInput{}, nil, model.Scope{}, err
	}

	input := checklist.UploadInput{
		FileName: f.Name,
		Data:     data,
		Name:     c.PostForm("name"),
		Version:  c.PostForm("version"),
	}
	return input, f, scope.GetScopeFromContext(c.Request.Context()), nil
}
