package http

import (
	"callaudit-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Transcribe - Transcribe an uploaded call recording
// @Summary Transcribe audio
// @Description Identical audio returns the stored transcript without calling the model
// @Tags Transcripts
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file"
// @Param language formData string false "Language hint"
// @Param duration formData number false "Duration in seconds"
// @Success 200 {object} transcribeResp
// @Failure 400 {object} response.ErrorResp
// @Failure 413 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/transcribe [post]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processTranscribeRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "transcript.delivery.http.Transcribe: processTranscribeRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	out, err := h.uc.Transcribe(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "transcript.delivery.http.Transcribe: usecase Transcribe failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, h.newTranscribeResp(out))
}
