package http

import (
	"callaudit-srv/internal/analysis"
	"callaudit-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Analyze - Evaluate a transcript against a checklist
// @Summary Analyze transcript
// @Description transcript is pasted text or {id, text, source, language}; checklist is an inline checklist or a stored id.
// @Tags Analyses
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Analyze request"
// @Success 200 {object} model.Analysis
// @Failure 400 {object} response.ErrorResp
// @Failure 404 {object} response.ErrorResp
// @Failure 502 {object} response.ErrorResp
// @Failure 503 {object} response.ErrorResp
// @Router /api/analyze [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.Analyze(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, out)
}

// List - Page through stored analyses
// @Summary List analyses
// @Tags Analyses
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Param manager_id query string false "Filter by manager"
// @Param checklist_id query string false "Filter by checklist"
// @Success 200 {object} listResp
// @Router /api/analyses [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, h.newListResp(out))
}

// Get - Get an analysis by id
// @Summary Get analysis
// @Tags Analyses
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} model.Analysis
// @Failure 404 {object} response.ErrorResp
// @Router /api/analyses/{id} [get]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.Get(ctx, sc, id)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, out)
}

// Delete - Delete an analysis
// @Summary Delete analysis
// @Tags Analyses
// @Param id path string true "Analysis ID"
// @Success 200 {object} response.DeletedResp
// @Failure 404 {object} response.ErrorResp
// @Router /api/analyses/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.Deleted(c, id)
}

// Markdown - Download an analysis as Markdown
// @Summary Export analysis as Markdown
// @Tags Analyses
// @Produce text/markdown
// @Param id path string true "Analysis ID"
// @Success 200 {string} string
// @Failure 404 {object} response.ErrorResp
// @Router /api/analyses/{id}/markdown [get]
func (h *handler) Markdown(c *gin.Context) {
	h.export(c, analysis.FormatMarkdown)
}

// PDF - Download an analysis as PDF
// @Summary Export analysis as PDF
// @Tags Analyses
// @Produce application/pdf
// @Param id path string true "Analysis ID"
// @Success 200 {file} file
// @Failure 404 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Router /api/analyses/{id}/pdf [get]
func (h *handler) PDF(c *gin.Context) {
	h.export(c, analysis.FormatPDF)
}

func (h *handler) export(c *gin.Context, format analysis.Format) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.Export(ctx, sc, analysis.ExportInput{ID: id, Format: format})
	if err != nil {
		h.l.Warnf(ctx, "analysis.delivery.http.export: %s failed: %v", format, err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.File(c, out.ContentType, out.FileName, out.Data)
}
