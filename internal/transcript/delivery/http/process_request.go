package http

import (
	"strconv"
	"strings"

	"callaudit-srv/internal/model"
	"callaudit-srv/internal/transcript"
	"callaudit-srv/pkg/scope"
	"callaudit-srv/pkg/upload"

	"github.com/gin-gonic/gin"
)

// processTranscribeRequest spools the upload and reads it. The temp file is
// removed before returning on every path.
func (h *handler) processTranscribeRequest(c *gin.Context) (transcript.TranscribeInput, model.Scope, error) {
	var input transcript.TranscribeInput

	upload.LimitBody(c.Writer, c.Request, h.maxUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		if upload.IsTooLarge(err) {
			return input, model.Scope{}, errFileTooLarge
		}
		return input, model.Scope{}, errFileRequired
	}

	if raw := strings.TrimSpace(c.PostForm("duration")); raw != "" {
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil || d < 0 {
			return input, model.Scope{}, errInvalidDuration
		}
		input.Duration = &d
	}

	f, err := upload.Acquire(fh, h.maxUploadBytes)
	if err != nil {
		return input, model.Scope{}, err
	}
	defer f.Close()

	data, err := f.ReadAll()
	if err != nil {
		return input, model.Scope{}, err
	}

	input.Audio = data
	input.FileName = f.Name
	input.MIME = f.ContentType
	input.Language = strings.ToLower(strings.TrimSpace(c.PostForm("language")))
	return input, scope.GetScopeFromContext(c.Request.Context()), nil
}
