package models

type Team struct {
	ID      string     `db:"id" json:"id"`
	Name    string     `db:"name" json:"name" validate:"required"`
	Members []Teammate `db:"-" json:"members" validate:"dive"`
}

// NewTeam returns a transient team without members.
func NewTeam(name string) *Team {
	return &Team{
		Name:    name,
		Members: []Teammate{},
	}
}

// AddMember appends m to the team and points m back at it.
// The team's copy and m share the same field values after the call.
func (t *Team) AddMember(m *Teammate) *Team {
	m.TeamID = t.ID
	m.Position = len(t.Members)
	t.Members = append(t.Members, *m)
	return t
}

// AssignID sets the team id and refreshes every member's back-reference.
func (t *Team) AssignID(id string) {
	t.ID = id
	for i := range t.Members {
		t.Members[i].TeamID = id
	}
}

// Member returns the member with the given email, if any.
func (t *Team) Member(email string) (Teammate, bool) {
	for _, m := range t.Members {
		if m.Email == email {
			return m, true
		}
	}
	return Teammate{}, false
}
