package models

type Teammate struct {
	ID       string `db:"id" json:"id"`
	TeamID   string `db:"team_id" json:"team_id,omitempty"`
	Name     string `db:"name" json:"name" validate:"required"`
	Email    string `db:"email" json:"email" validate:"required,wellformed_email"`
	Position int    `db:"position" json:"-"`
}

// TeammateParams enumerates the fields a teammate is built from.
// TeamID may be left empty for a teammate that is not yet a member of any team.
type TeammateParams struct {
	Name   string
	Email  string
	TeamID string
}

func NewTeammate(p TeammateParams) *Teammate {
	return &Teammate{
		Name:   p.Name,
		Email:  p.Email,
		TeamID: p.TeamID,
	}
}
