package http

import (
	"callaudit-srv/pkg/response"
	"callaudit-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// List - List stored checklists
// @Summary List checklists
// @Tags Checklists
// @Produce json
// @Success 200 {object} listResp
// @Router /api/checklists [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	list, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "checklist.delivery.http.List: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, h.newListResp(list))
}

// Create - Validate and store a checklist
// @Summary Create checklist
// @Tags Checklists
// @Accept json
// @Produce json
// @Param body body checklistReq true "Checklist"
// @Success 201 {object} model.Checklist
// @Failure 400 {object} response.ErrorResp
// @Router /api/checklists [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processChecklistRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "checklist.delivery.http.Create: processChecklistRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "checklist.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.Created(c, out)
}

// Upload - Parse a checklist file and store it
// @Summary Upload checklist file
// @Tags Checklists
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Checklist file (.txt, .md, .csv, .xlsx, .xls)"
// @Success 201 {object} model.Checklist
// @Failure 400 {object} response.ErrorResp
// @Failure 413 {object} response.ErrorResp
// @Router /api/checklists/upload [post]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	input, f, sc, err := h.processUploadRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "checklist.delivery.http.Upload: processUploadRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	defer f.Close()

	out, err := h.uc.Upload(ctx, sc, input)
	if err != nil {
		h.l.Warnf(ctx, "checklist.delivery.http.Upload: usecase Upload failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.Created(c, out)
}

// Get - Get a checklist by id
// @Summary Get checklist
// @Tags Checklists
// @Produce json
// @Param id path string true "Checklist ID"
// @Success 200 {object} model.Checklist
// @Failure 404 {object} response.ErrorResp
// @Router /api/checklists/{id} [get]
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

// Update - Replace a checklist
// @Summary Update checklist
// @Tags Checklists
// @Accept json
// @Produce json
// @Param id path string true "Checklist ID"
// @Success 200 {object} model.Checklist
// @Failure 400 {object} response.ErrorResp
// @Failure 404 {object} response.ErrorResp
// @Router /api/checklists/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, _, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	req, sc, err := h.processChecklistRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.Update(ctx, sc, id, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "checklist.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, out)
}

// Delete - Delete a checklist; analyses that used it are kept
// @Summary Delete checklist
// @Tags Checklists
// @Param id path string true "Checklist ID"
// @Success 200 {object} response.DeletedResp
// @Failure 404 {object} response.ErrorResp
// @Router /api/checklists/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "checklist.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.Deleted(c, id)
}
