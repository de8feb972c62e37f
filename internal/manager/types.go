package manager

type Input struct {
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	TeamLead   string `json:"teamLead,omitempty"`
	Department string `json:"department,omitempty"`
}
