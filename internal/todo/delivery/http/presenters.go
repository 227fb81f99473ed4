package http

import (
	"todo-assistant/internal/todo"
	"todo-assistant/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"max=255"`
	Description string `json:"description" binding:"max=1000"`
	Completed   bool   `json:"completed"`
}

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

type listReq struct {
	Completed *bool `form:"completed"`
	Page      int   `form:"page"`
	Limit     int   `form:"limit"`
}

func (r listReq) toInput() todo.ListInput {
	return todo.ListInput{
		Completed: r.Completed,
		Page:      r.Page,
		Limit:     r.Limit,
	}
}

type updateReq struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"       binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Completed   *bool   `json:"completed"`
}

func (r updateReq) toInput() todo.UpdateInput {
	return todo.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

// --- Response DTOs ---

type todoResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Completed   bool              `json:"completed"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newTodoResp(t todo.Todo) todoResp {
	return todoResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   response.DateTime(t.CreatedAt),
		UpdatedAt:   response.DateTime(t.UpdatedAt),
	}
}

type detailResp struct {
	Todo todoResp `json:"todo"`
}

func (h *handler) newDetailResp(t todo.Todo) detailResp {
	return detailResp{Todo: newTodoResp(t)}
}

type listResp struct {
	Todos []todoResp `json:"todos"`
	Total int        `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

func (h *handler) newListResp(out todo.ListOutput) listResp {
	todos := make([]todoResp, len(out.Todos))
	for i, t := range out.Todos {
		todos[i] = newTodoResp(t)
	}
	return listResp{
		Todos: todos,
		Total: out.Total,
		Page:  out.Page,
		Limit: out.Limit,
	}
}

type deleteResp struct {
	Deleted bool `json:"deleted"`
}
