package http

import (
	"callaudit-srv/internal/checklist"
	"callaudit-srv/internal/model"
)

// checklistReq is a checklist as posted by the UI or imported as JSON.
type checklistReq struct {
	checklist.Input
}

func (r checklistReq) toInput() checklist.Input {
	return r.Input
}

type listResp struct {
	Checklists []model.Checklist `json:"checklists"`
	Total      int               `json:"total"`
}

func (h *handler) newListResp(list []model.Checklist) listResp {
	if list == nil {
		list = []model.Checklist{}
	}
	return listResp{Checklists: list, Total: len(list)}
}
