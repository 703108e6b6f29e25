package models

import (
	"context"
	"errors"
	"testing"
)

// mapResolver resolves game names from a fixed map.
type mapResolver map[string]string

func (m mapResolver) GameName(_ context.Context, gameID string) (string, error) {
	if name, ok := m[gameID]; ok {
		return name, nil
	}
	return "", errors.New("game not found")
}

func TestRecalculateAverageRating_Empty(t *testing.T) {
	u := &User{ID: "u1", Name: "Ann"}
	if got := u.RecalculateAverageRating(); got != 0 {
		t.Errorf("averageRating = %v, want 0 with no ratings", got)
	}
}

func TestRecalculateAverageRating_Unweighted(t *testing.T) {
	u := &User{ID: "u1", Name: "Ann"}
	u.AddPlayTime("g1", 100)
	u.AddPlayTime("g2", 1)
	u.SetRating("g1", 5)
	u.SetRating("g2", 2)

	// Unweighted mean: (5+2)/2, play times do not matter here.
	if got := u.RecalculateAverageRating(); got != 3.5 {
		t.Errorf("averageRating = %v, want 3.5", got)
	}
}

func TestSetRating_ReplacesOnUser(t *testing.T) {
	u := &User{ID: "u1", Name: "Ann"}
	u.SetRating("g1", 5)
	u.SetRating("g1", 2)
	if len(u.GameRatings) != 1 {
		t.Fatalf("gameRatings has %d entries, want 1", len(u.GameRatings))
	}
	if u.GameRatings[0].Rating != 2 {
		t.Errorf("rating = %d, want 2", u.GameRatings[0].Rating)
	}
}

func TestRefreshMostPlayed_FirstEntryWinsTies(t *testing.T) {
	u := &User{ID: "u1", Name: "Ann"}
	u.AddPlayTime("g1", 5)
	u.AddPlayTime("g2", 5)
	u.RefreshMostPlayed(context.Background(), mapResolver{"g1": "First", "g2": "Second"})

	if u.MostPlayedGameID != "g1" {
		t.Errorf("mostPlayedGameId = %q, want g1 (first entry wins ties)", u.MostPlayedGameID)
	}
	if u.MostPlayedGameName != "First" {
		t.Errorf("mostPlayedGameName = %q, want First", u.MostPlayedGameName)
	}
}

func TestRefreshMostPlayed_StrictlyGreaterWins(t *testing.T) {
	u := &User{ID: "u1", Name: "Ann"}
	u.AddPlayTime("g1", 5)
	u.AddPlayTime("g2", 6)
	u.RefreshMostPlayed(context.Background(), mapResolver{"g1": "First", "g2": "Second"})

	if u.MostPlayedGameID != "g2" {
		t.Errorf("mostPlayedGameId = %q, want g2", u.MostPlayedGameID)
	}
}

func TestRefreshMostPlayed_UnresolvableGameLeavesNameEmpty(t *testing.T) {
	u := &User{ID: "u1", Name: "Ann"}
	u.AddPlayTime("g1", 5)
	u.RefreshMostPlayed(context.Background(), mapResolver{})

	if u.MostPlayedGameID != "g1" {
		t.Errorf("mostPlayedGameId = %q, want g1", u.MostPlayedGameID)
	}
	if u.MostPlayedGameName != "" {
		t.Errorf("mostPlayedGameName = %q, want empty when the game cannot be resolved", u.MostPlayedGameName)
	}
}

func TestRefreshMostPlayed_EmptyResetsBoth(t *testing.T) {
	u := &User{ID: "u1", Name: "Ann", MostPlayedGameID: "g1", MostPlayedGameName: "First"}
	u.RefreshMostPlayed(context.Background(), mapResolver{})

	if u.MostPlayedGameID != "" || u.MostPlayedGameName != "" {
		t.Errorf("most played = (%q, %q), want empty after reset", u.MostPlayedGameID, u.MostPlayedGameName)
	}
}

func TestUserTotalPlayTime_SumOfEntries(t *testing.T) {
	u := &User{ID: "u1", Name: "Ann"}
	u.AddPlayTime("g1", 2)
	u.AddPlayTime("g2", 3)
	u.AddPlayTime("g1", 1)

	if u.TotalPlayTime != 6 {
		t.Errorf("totalPlayTime = %v, want 6", u.TotalPlayTime)
	}
	if got, _ := u.PlayTimeFor("g1"); got != 3 {
		t.Errorf("PlayTimeFor(g1) = %v, want 3", got)
	}
}

func TestRemoveGameRecords_RecomputesDerivedFields(t *testing.T) {
	u := &User{ID: "u1", Name: "Ann"}
	u.AddPlayTime("g1", 10)
	u.AddPlayTime("g2", 4)
	u.SetRating("g1", 5)
	u.SetRating("g2", 1)
	u.UpsertComment("g1", "First", "fun")
	u.RecalculateAverageRating()
	u.RefreshMostPlayed(context.Background(), mapResolver{"g1": "First", "g2": "Second"})

	u.RemoveGameRecords("g1")
	u.RecalculateAverageRating()
	u.RefreshMostPlayed(context.Background(), mapResolver{"g2": "Second"})

	if u.References("g1") {
		t.Error("user still references g1 after removal")
	}
	if u.TotalPlayTime != 4 {
		t.Errorf("totalPlayTime = %v, want 4", u.TotalPlayTime)
	}
	if u.AverageRating != 1 {
		t.Errorf("averageRating = %v, want 1", u.AverageRating)
	}
	if u.MostPlayedGameID != "g2" || u.MostPlayedGameName != "Second" {
		t.Errorf("most played = (%q, %q), want (g2, Second)", u.MostPlayedGameID, u.MostPlayedGameName)
	}
}

func TestUserComments_SortedDescending(t *testing.T) {
	u := &User{ID: "u1", Name: "Ann"}
	u.AddPlayTime("g1", 3)
	u.AddPlayTime("g2", 7)
	u.AddPlayTime("g3", 1)
	u.UpsertComment("g1", "First", "a")
	u.UpsertComment("g2", "Second", "b")
	u.UpsertComment("g3", "Third", "c")

	want := []float64{7, 3, 1}
	for i, w := range want {
		if u.Comments[i].PlayTime != w {
			t.Errorf("comments[%d].playTime = %v, want %v", i, u.Comments[i].PlayTime, w)
		}
	}
}
