package http

import (
	"github.com/gin-gonic/gin"

	"todo-assistant/pkg/response"
)

// Create godoc
// @Summary     Create a todo
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller id"
// @Param       body      body   createReq true "Todo data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "todo.http.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// List godoc
// @Summary     List todos
// @Description Newest first. completed=false lists pending todos only.
// @Tags        Todos
// @Produce     json
// @Param       X-User-ID header string true  "Caller id"
// @Param       completed query  bool   false "Completion filter"
// @Param       page      query  int    false "1-based page (default: 1)"
// @Param       limit     query  int    false "Page size (default: 20, max: 100)"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "todo.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a todo
// @Tags        Todos
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       id        path   string true "Todo ID"
// @Success     200 {object} detailResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "todo.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Update godoc
// @Summary     Update a todo
// @Description Partial update; omitted fields keep their value.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller id"
// @Param       id        path   string    true "Todo ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "todo.http.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Toggle godoc
// @Summary     Toggle a todo's completion flag
// @Tags        Todos
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       id        path   string true "Todo ID"
// @Success     200 {object} detailResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.ToggleCompletion(ctx, sc, id)
	if err != nil {
		h.l.Warnf(ctx, "todo.http.Toggle: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Delete godoc
// @Summary     Delete a todo
// @Tags        Todos
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       id        path   string true "Todo ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	deleted, err := h.uc.Delete(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "todo.http.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	if !deleted {
		response.Error(c, errTodoNotFound)
		return
	}

	response.OK(c, deleteResp{Deleted: true})
}
