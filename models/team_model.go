package models

import "github.com/google/uuid"

type LeagueModel struct {
	LeagueId uuid.UUID `db:"league_id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Country  *string   `db:"country" json:"country"`
	Season   *string   `db:"season" json:"season"`
}

type TeamModel struct {
	TeamId   uuid.UUID `db:"team_id" json:"id"`
	Name     string    `db:"name" json:"name"`
	LeagueId uuid.UUID `db:"league_id" json:"leagueId"`
}
