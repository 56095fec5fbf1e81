package models

type Team struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type TeamMember struct {
	ID     int `db:"id"`
	TeamID int `db:"team_id"`
	UserID int `db:"user_id"`
}
