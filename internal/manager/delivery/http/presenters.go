package http

import (
	"callaudit-srv/internal/manager"
	"callaudit-srv/internal/model"
)

type managerReq struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	TeamLead   string `json:"teamLead"`
	Department string `json:"department"`
}

func (r managerReq) toInput() manager.Input {
	return manager.Input{
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		TeamLead:   r.TeamLead,
		Department: r.Department,
	}
}

type listResp struct {
	Managers []model.Manager `json:"managers"`
	Total    int             `json:"total"`
}

func (h *handler) newListResp(list []model.Manager) listResp {
	if list == nil {
		list = []model.Manager{}
	}
	return listResp{Managers: list, Total: len(list)}
}
