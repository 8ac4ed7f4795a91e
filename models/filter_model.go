package models

import (
	"time"

	"github.com/google/uuid"
)

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// GameFilter selects games by league, date window and team. With HeadToHead
// set, HomeTeamId and AwayTeamId match games between the two teams in either
// arrangement. A zero Limit means no limit.
type GameFilter struct {
	LeagueId   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	HomeTeamId *uuid.UUID
	AwayTeamId *uuid.UUID
	HeadToHead bool
	Order      SortOrder
	Limit      int
}
