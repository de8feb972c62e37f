package http

import (
	"callaudit-srv/pkg/response"
	"callaudit-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// List - List managers
// @Summary List managers
// @Tags Managers
// @Produce json
// @Success 200 {object} listResp
// @Router /api/managers [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	list, err := h.uc.List(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, h.newListResp(list))
}

// Create - Create a manager
// @Summary Create manager
// @Tags Managers
// @Accept json
// @Produce json
// @Param body body managerReq true "Manager"
// @Success 201 {object} model.Manager
// @Failure 400 {object} response.ErrorResp
// @Router /api/managers [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processManagerRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "manager.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.Created(c, out)
}

// Get - Get a manager by id
// @Summary Get manager
// @Tags Managers
// @Produce json
// @Param id path string true "Manager ID"
// @Success 200 {object} model.Manager
// @Failure 404 {object} response.ErrorResp
// @Router /api/managers/{id} [get]
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

// Update - Replace a manager
// @Summary Update manager
// @Tags Managers
// @Accept json
// @Produce json
// @Param id path string true "Manager ID"
// @Success 200 {object} model.Manager
// @Failure 400 {object} response.ErrorResp
// @Failure 404 {object} response.ErrorResp
// @Router /api/managers/{id} [put]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, _, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	req, sc, err := h.processManagerRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	out, err := h.uc.Update(ctx, sc, id, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "manager.delivery.http.Update: usecase Update failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, out)
}

// Delete - Delete a manager; their analyses are kept without attribution
// @Summary Delete manager
// @Tags Managers
// @Param id path string true "Manager ID"
// @Success 200 {object} response.DeletedResp
// @Failure 404 {object} response.ErrorResp
// @Router /api/managers/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Warnf(ctx, "manager.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.Deleted(c, id)
}
