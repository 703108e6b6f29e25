package models

import "testing"

func newTestGame() *Game {
	return &Game{
		ID:            "g1",
		Name:          "Test Game",
		PhotoURL:      "http://example.com/g.jpg",
		RatingEnabled: true,
	}
}

func TestAddPlayTime_NewEntry(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 2)
	if g.PlayTime != 2 {
		t.Errorf("playTime = %v, want 2", g.PlayTime)
	}
	if got, ok := g.PlayTimeFor("u1"); !ok || got != 2 {
		t.Errorf("PlayTimeFor(u1) = %v, %v; want 2, true", got, ok)
	}
}

func TestAddPlayTime_Cumulative(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 2)
	g.AddPlayTime("u1", 3)
	if got, _ := g.PlayTimeFor("u1"); got != 5 {
		t.Errorf("PlayTimeFor(u1) = %v, want 5", got)
	}
	if g.PlayTime != 5 {
		t.Errorf("playTime = %v, want 5", g.PlayTime)
	}
}

func TestPlayTimeEqualsSumOfEntries(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 2)
	g.AddPlayTime("u2", 7)
	g.AddPlayTime("u1", 1.5)
	g.AddPlayTime("u3", 0.5)

	var sum float64
	for _, rec := range g.UserPlayTimes {
		sum += rec.PlayTime
	}
	if g.PlayTime != sum {
		t.Errorf("playTime = %v, want sum of entries %v", g.PlayTime, sum)
	}
}

func TestRecalculateRating_NoRaters(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 2)
	if got := g.RecalculateRating(); got != 0 {
		t.Errorf("rating = %v, want 0 with no raters", got)
	}
}

func TestRecalculateRating_SingleRater(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 2)
	g.SetRating("u1", 4)
	if got := g.RecalculateRating(); got != 4 {
		t.Errorf("rating = %v, want 4 for the only qualifying rater", got)
	}

	// More play for the same rater cannot move a single-rater rating.
	g.AddPlayTime("u1", 3)
	if got := g.RecalculateRating(); got != 4 {
		t.Errorf("rating = %v, want 4 after more play by the sole rater", got)
	}
}

func TestRecalculateRating_Weighted(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 5)
	g.SetRating("u1", 4)
	g.AddPlayTime("u2", 5)
	g.SetRating("u2", 2)

	// (4*5 + 2*5) / (5+5) = 3.0
	if got := g.RecalculateRating(); got != 3.0 {
		t.Errorf("rating = %v, want 3.0", got)
	}
}

func TestRecalculateRating_ExcludesRatersWithoutPlayTime(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 10)
	g.SetRating("u1", 5)
	g.SetRating("u2", 1) // no play time recorded

	if got := g.RecalculateRating(); got != 5 {
		t.Errorf("rating = %v, want 5; rater without play time must be excluded", got)
	}
}

func TestSetRating_ReplacesExisting(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 2)
	g.SetRating("u1", 4)
	g.SetRating("u1", 1)
	if len(g.UserRatings) != 1 {
		t.Fatalf("userRatings has %d entries, want 1", len(g.UserRatings))
	}
	if g.UserRatings[0].Rating != 1 {
		t.Errorf("rating entry = %d, want 1", g.UserRatings[0].Rating)
	}
}

func TestComments_SortedByPlayTimeDescending(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 3)
	g.AddPlayTime("u2", 7)
	g.AddPlayTime("u3", 1)
	g.UpsertComment("u1", "Ann", "ok")
	g.UpsertComment("u2", "Bob", "great")
	g.UpsertComment("u3", "Cid", "meh")

	want := []float64{7, 3, 1}
	if len(g.Comments) != len(want) {
		t.Fatalf("comments has %d entries, want %d", len(g.Comments), len(want))
	}
	for i, w := range want {
		if g.Comments[i].PlayTime != w {
			t.Errorf("comments[%d].playTime = %v, want %v", i, g.Comments[i].PlayTime, w)
		}
	}
}

func TestUpsertComment_ReplacesContent(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 2)
	g.UpsertComment("u1", "Ann", "first")
	g.UpsertComment("u1", "Ann", "second")
	if len(g.Comments) != 1 {
		t.Fatalf("comments has %d entries, want 1", len(g.Comments))
	}
	if g.Comments[0].Content != "second" {
		t.Errorf("content = %q, want %q", g.Comments[0].Content, "second")
	}
}

func TestRefreshCommentPlayTime_ReordersComments(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 2)
	g.AddPlayTime("u2", 5)
	g.UpsertComment("u1", "Ann", "ok")
	g.UpsertComment("u2", "Bob", "great")

	g.AddPlayTime("u1", 10) // u1 now at 12, ahead of u2
	g.RefreshCommentPlayTime("u1")

	if g.Comments[0].UserID != "u1" {
		t.Errorf("comments[0].userId = %q, want u1 after play time refresh", g.Comments[0].UserID)
	}
	if g.Comments[0].PlayTime != 12 {
		t.Errorf("comments[0].playTime = %v, want 12", g.Comments[0].PlayTime)
	}
}

func TestRemoveUserRecords(t *testing.T) {
	g := newTestGame()
	g.AddPlayTime("u1", 4)
	g.AddPlayTime("u2", 6)
	g.SetRating("u1", 5)
	g.SetRating("u2", 3)
	g.UpsertComment("u1", "Ann", "ok")
	g.RecalculateRating()

	contribution := g.RemoveUserRecords("u1")
	if contribution != 4 {
		t.Errorf("contribution = %v, want 4", contribution)
	}
	if g.PlayTime != 6 {
		t.Errorf("playTime = %v, want 6", g.PlayTime)
	}
	if g.References("u1") {
		t.Error("game still references u1 after removal")
	}
	if got := g.RecalculateRating(); got != 3 {
		t.Errorf("rating = %v, want 3 from the remaining rater", got)
	}
}
