package models

import (
	"context"
	"sort"
)

// GamePlayTime is a per-game play time record mirrored on the user document.
type GamePlayTime struct {
	GameID   string  `json:"gameId"`
	PlayTime float64 `json:"playTime"`
}

// GameRating is a per-game rating record mirrored on the user document.
type GameRating struct {
	GameID string `json:"gameId"`
	Rating int    `json:"rating"`
}

// UserComment is the user-side mirror of a comment, capturing the game name at
// comment time.
type UserComment struct {
	GameID   string  `json:"gameId"`
	GameName string  `json:"gameName"`
	Content  string  `json:"content"`
	PlayTime float64 `json:"playTime"`
}

// GameNameResolver resolves a game's display name. The user aggregate needs it
// to label the most-played game; it is injected rather than reached for in
// ambient state.
type GameNameResolver interface {
	GameName(ctx context.Context, gameID string) (string, error)
}

// User represents a user document. Its sub-collections mirror records held on
// the Game documents; the catalog service keeps the two sides consistent.
type User struct {
	ID                 string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string         `gorm:"size:255;not null" json:"name"`
	TotalPlayTime      float64        `json:"totalPlayTime"`
	AverageRating      float64        `json:"averageRating"`
	MostPlayedGameID   string         `json:"mostPlayedGameId"`
	MostPlayedGameName string         `json:"mostPlayedGameName"`
	Comments           []UserComment  `gorm:"type:jsonb;serializer:json" json:"comments"`
	GamePlayTimes      []GamePlayTime `gorm:"type:jsonb;serializer:json" json:"gamePlayTimes"`
	GameRatings        []GameRating   `gorm:"type:jsonb;serializer:json" json:"gameRatings"`
}

// PlayTimeFor returns the user's recorded play time for a game, if any.
func (u *User) PlayTimeFor(gameID string) (float64, bool) {
	for _, rec := range u.GamePlayTimes {
		if rec.GameID == gameID {
			return rec.PlayTime, true
		}
	}
	return 0, false
}

// AddPlayTime mirrors a cumulative play time update onto the user document and
// increments the running total.
func (u *User) AddPlayTime(gameID string, hours float64) {
	for i, rec := range u.GamePlayTimes {
		if rec.GameID == gameID {
			u.GamePlayTimes[i].PlayTime += hours
			u.TotalPlayTime += hours
			return
		}
	}
	u.GamePlayTimes = append(u.GamePlayTimes, GamePlayTime{GameID: gameID, PlayTime: hours})
	u.TotalPlayTime += hours
}

// SetRating upserts the user's rating for a game, replacing any previous value.
func (u *User) SetRating(gameID string, rating int) {
	for i, rec := range u.GameRatings {
		if rec.GameID == gameID {
			u.GameRatings[i].Rating = rating
			return
		}
	}
	u.GameRatings = append(u.GameRatings, GameRating{GameID: gameID, Rating: rating})
}

// RecalculateAverageRating recomputes the unweighted mean of the user's
// ratings, or 0 when the user has rated nothing. Unlike the game-side rating
// there is no natural per-entry weight here.
func (u *User) RecalculateAverageRating() float64 {
	if len(u.GameRatings) == 0 {
		u.AverageRating = 0
		return 0
	}
	var sum float64
	for _, rec := range u.GameRatings {
		sum += float64(rec.Rating)
	}
	u.AverageRating = sum / float64(len(u.GameRatings))
	return u.AverageRating
}

// RefreshMostPlayed recomputes the most-played game from the stored play time
// records. The scan uses a strictly-greater comparison, so the first entry
// wins ties. When the winner changes, the display name is resolved through
// the injected resolver; a game that cannot be resolved leaves the name empty.
func (u *User) RefreshMostPlayed(ctx context.Context, resolver GameNameResolver) {
	if len(u.GamePlayTimes) == 0 {
		u.MostPlayedGameID = ""
		u.MostPlayedGameName = ""
		return
	}

	var maxPlayTime float64
	var mostPlayedID string
	for _, rec := range u.GamePlayTimes {
		if rec.PlayTime > maxPlayTime {
			maxPlayTime = rec.PlayTime
			mostPlayedID = rec.GameID
		}
	}

	if mostPlayedID == u.MostPlayedGameID {
		return
	}
	u.MostPlayedGameID = mostPlayedID
	u.MostPlayedGameName = ""
	if name, err := resolver.GameName(ctx, mostPlayedID); err == nil {
		u.MostPlayedGameName = name
	}
}

// UpsertComment records the user-side mirror of a comment, one per game, with
// content replaced on repeat. The list stays sorted by play time descending.
func (u *User) UpsertComment(gameID, gameName, content string) {
	for i, c := range u.Comments {
		if c.GameID == gameID {
			u.Comments[i].Content = content
			u.SortComments()
			return
		}
	}
	playTime, _ := u.PlayTimeFor(gameID)
	u.Comments = append(u.Comments, UserComment{
		GameID:   gameID,
		GameName: gameName,
		Content:  content,
		PlayTime: playTime,
	})
	u.SortComments()
}

// RefreshCommentPlayTime updates the materialized play time on the user's
// comment mirror for a game (if present) and restores the descending order.
func (u *User) RefreshCommentPlayTime(gameID string) {
	for i, c := range u.Comments {
		if c.GameID == gameID {
			playTime, _ := u.PlayTimeFor(gameID)
			u.Comments[i].PlayTime = playTime
			u.SortComments()
			return
		}
	}
}

// SortComments orders the comment mirrors by play time descending (stable).
func (u *User) SortComments() {
	sort.SliceStable(u.Comments, func(i, j int) bool {
		return u.Comments[i].PlayTime > u.Comments[j].PlayTime
	})
}

// References reports whether the user holds any mirrored record for the game.
func (u *User) References(gameID string) bool {
	if _, ok := u.PlayTimeFor(gameID); ok {
		return true
	}
	for _, rec := range u.GameRatings {
		if rec.GameID == gameID {
			return true
		}
	}
	for _, c := range u.Comments {
		if c.GameID == gameID {
			return true
		}
	}
	return false
}

// RemoveGameRecords strips every mirrored record referencing the game. The
// caller is expected to recompute the user's aggregates afterwards.
func (u *User) RemoveGameRecords(gameID string) {
	contribution, _ := u.PlayTimeFor(gameID)

	playTimes := u.GamePlayTimes[:0]
	for _, rec := range u.GamePlayTimes {
		if rec.GameID != gameID {
			playTimes = append(playTimes, rec)
		}
	}
	u.GamePlayTimes = playTimes
	u.TotalPlayTime -= contribution

	ratings := u.GameRatings[:0]
	for _, rec := range u.GameRatings {
		if rec.GameID != gameID {
			ratings = append(ratings, rec)
		}
	}
	u.GameRatings = ratings

	comments := u.Comments[:0]
	for _, c := range u.Comments {
		if c.GameID != gameID {
			comments = append(comments, c)
		}
	}
	u.Comments = comments
}
