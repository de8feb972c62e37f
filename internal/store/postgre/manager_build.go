package postgre

import (
	"time"

	"callaudit-srv/internal/model"
)

type managerRow struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Phone      string    `db:"phone"`
	Email      string    `db:"email"`
	TeamLead   string    `db:"team_lead"`
	Department string    `db:"department"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func newManagerRow(m model.Manager) managerRow {
	return managerRow{
		ID:         m.ID,
		Name:       m.Name,
		Phone:      m.Phone,
		Email:      m.Email,
		TeamLead:   m.TeamLead,
		Department: m.Department,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r managerRow) toModel() model.Manager {
	return model.Manager{
		ID:         r.ID,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		TeamLead:   r.TeamLead,
		Department: r.Department,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
