package models

import "sort"

// MaxGenres limits how many genres a game may carry.
const MaxGenres = 5

// UserPlayTime is a per-user play time record mirrored on the game document.
type UserPlayTime struct {
	UserID   string  `json:"userId"`
	PlayTime float64 `json:"playTime"`
}

// UserRating is a per-user rating record mirrored on the game document.
type UserRating struct {
	UserID string `json:"userId"`
	Rating int    `json:"rating"`
}

// GameComment is a user's comment on a game. UserName and PlayTime are
// materialized copies captured at write time so rendering a comment list never
// needs a join; PlayTime is refreshed whenever the user records more play.
type GameComment struct {
	UserID   string  `json:"userId"`
	UserName string  `json:"userName"`
	Content  string  `json:"content"`
	PlayTime float64 `json:"playTime"`
}

// Game represents a game document. The per-user sub-collections are stored as
// JSONB and are kept in sync with the mirrored records on each User document
// by the catalog service.
type Game struct {
	ID                 string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name               string         `gorm:"size:255;not null" json:"name"`
	Genres             []string       `gorm:"type:jsonb;serializer:json" json:"genres"`
	PhotoURL           string         `gorm:"size:512;not null" json:"photoUrl"`
	PlayTime           float64        `json:"playTime"`
	Rating             float64        `json:"rating"`
	RatingEnabled      bool           `json:"ratingEnabled"`
	Comments           []GameComment  `gorm:"type:jsonb;serializer:json" json:"comments"`
	UserPlayTimes      []UserPlayTime `gorm:"type:jsonb;serializer:json" json:"userPlayTimes"`
	UserRatings        []UserRating   `gorm:"type:jsonb;serializer:json" json:"userRatings"`
	OptionalAttributes map[string]any `gorm:"type:jsonb;serializer:json" json:"optionalAttributes"`
}

// PlayTimeFor returns the recorded play time for a user, if any.
func (g *Game) PlayTimeFor(userID string) (float64, bool) {
	for _, rec := range g.UserPlayTimes {
		if rec.UserID == userID {
			return rec.PlayTime, true
		}
	}
	return 0, false
}

// AddPlayTime records additional hours for a user. Entries are cumulative: an
// existing record is incremented, and the game's total is rebuilt from the old
// total minus the prior entry plus the new one.
func (g *Game) AddPlayTime(userID string, hours float64) {
	for i, rec := range g.UserPlayTimes {
		if rec.UserID == userID {
			oldPlayTime := rec.PlayTime
			g.UserPlayTimes[i].PlayTime += hours
			g.PlayTime = g.PlayTime - oldPlayTime + g.UserPlayTimes[i].PlayTime
			return
		}
	}
	g.UserPlayTimes = append(g.UserPlayTimes, UserPlayTime{UserID: userID, PlayTime: hours})
	g.PlayTime += hours
}

// SetRating upserts a user's rating. Repeat ratings replace the previous value.
func (g *Game) SetRating(userID string, rating int) {
	for i, rec := range g.UserRatings {
		if rec.UserID == userID {
			g.UserRatings[i].Rating = rating
			return
		}
	}
	g.UserRatings = append(g.UserRatings, UserRating{UserID: userID, Rating: rating})
}

// RecalculateRating recomputes the game's play-time-weighted rating. Raters
// with no recorded play time (or zero) are excluded entirely; with no
// qualifying rater the rating is 0.
func (g *Game) RecalculateRating() float64 {
	var totalWeightedRating, totalPlayTime float64

	for _, ur := range g.UserRatings {
		playTime, ok := g.PlayTimeFor(ur.UserID)
		if ok && playTime > 0 {
			totalWeightedRating += float64(ur.Rating) * playTime
			totalPlayTime += playTime
		}
	}

	if totalPlayTime > 0 {
		g.Rating = totalWeightedRating / totalPlayTime
	} else {
		g.Rating = 0
	}
	return g.Rating
}

// UpsertComment records a user's comment, one per user: repeat comments
// replace the content in place. New comments capture the user's display name
// and current play time. The list is kept sorted by play time descending.
func (g *Game) UpsertComment(userID, userName, content string) {
	for i, c := range g.Comments {
		if c.UserID == userID {
			g.Comments[i].Content = content
			g.SortComments()
			return
		}
	}
	playTime, _ := g.PlayTimeFor(userID)
	g.Comments = append(g.Comments, GameComment{
		UserID:   userID,
		UserName: userName,
		Content:  content,
		PlayTime: playTime,
	})
	g.SortComments()
}

// RefreshCommentPlayTime updates the materialized play time on a user's
// comment (if present) and restores the descending order.
func (g *Game) RefreshCommentPlayTime(userID string) {
	for i, c := range g.Comments {
		if c.UserID == userID {
			playTime, _ := g.PlayTimeFor(userID)
			g.Comments[i].PlayTime = playTime
			g.SortComments()
			return
		}
	}
}

// SortComments orders comments by play time descending. The sort is stable,
// so comments with equal play time keep their insertion order.
func (g *Game) SortComments() {
	sort.SliceStable(g.Comments, func(i, j int) bool {
		return g.Comments[i].PlayTime > g.Comments[j].PlayTime
	})
}

// References reports whether the game holds any mirrored record for the user.
func (g *Game) References(userID string) bool {
	if _, ok := g.PlayTimeFor(userID); ok {
		return true
	}
	for _, rec := range g.UserRatings {
		if rec.UserID == userID {
			return true
		}
	}
	for _, c := range g.Comments {
		if c.UserID == userID {
			return true
		}
	}
	return false
}

// RemoveUserRecords strips every mirrored record for the user and returns the
// play-time contribution that was removed. The game total is decremented by
// exactly that contribution; the weighted rating is not recomputed here.
func (g *Game) RemoveUserRecords(userID string) float64 {
	contribution, _ := g.PlayTimeFor(userID)

	playTimes := g.UserPlayTimes[:0]
	for _, rec := range g.UserPlayTimes {
		if rec.UserID != userID {
			playTimes = append(playTimes, rec)
		}
	}
	g.UserPlayTimes = playTimes
	g.PlayTime -= contribution

	ratings := g.UserRatings[:0]
	for _, rec := range g.UserRatings {
		if rec.UserID != userID {
			ratings = append(ratings, rec)
		}
	}
	g.UserRatings = ratings

	comments := g.Comments[:0]
	for _, c := range g.Comments {
		if c.UserID != userID {
			comments = append(comments, c)
		}
	}
	g.Comments = comments

	return contribution
}
