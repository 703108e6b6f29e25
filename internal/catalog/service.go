package catalog

import (
	"context"
	"fmt"

	"gamevault/backend/internal/logger"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/monitoring"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Store is the document persistence collaborator. It provides per-document
// CRUD and counterpart scans; it does not provide multi-document transactions.
type Store interface {
	models.GameNameResolver

	GetGame(ctx context.Context, id string) (*models.Game, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListGames(ctx context.Context) ([]models.Game, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SaveGame(ctx context.Context, game *models.Game) error
	SaveUser(ctx context.Context, user *models.User) error
	DeleteGame(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error

	// UsersReferencingGame returns every user holding a mirrored play time,
	// rating or comment for the game; GamesReferencingUser is the symmetric
	// scan. Both back the application-level cascade on deletes.
	UsersReferencingGame(ctx context.Context, gameID string) ([]models.User, error)
	GamesReferencingUser(ctx context.Context, userID string) ([]models.Game, error)
}

// Service keeps the Game and User documents mutually consistent. Every
// mutating operation locks the touched entities, applies the in-memory update
// through the model aggregate methods, and persists each document with an
// independent write. The two writes are not atomic: if the second fails after
// the first committed, the error is surfaced and the mirrors stay divergent
// until the next successful operation on the pair.
type Service struct {
	store Store
	locks *entityLocks
}

// NewService creates a Service on top of the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		locks: newEntityLocks(),
	}
}

// region --- Creation and reads ---

// CreateGame validates and persists a new game document.
func (s *Service) CreateGame(ctx context.Context, name, photoURL string, genres []string, optionalAttributes map[string]any) (*models.Game, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if photoURL == "" {
		return nil, ErrPhotoURLRequired
	}
	if len(genres) > models.MaxGenres {
		return nil, ErrTooManyGenres
	}
	if genres == nil {
		genres = []string{}
	}
	if optionalAttributes == nil {
		optionalAttributes = map[string]any{}
	}

	game := &models.Game{
		ID:                 uuid.NewString(),
		Name:               name,
		Genres:             genres,
		PhotoURL:           photoURL,
		RatingEnabled:      true,
		Comments:           []models.GameComment{},
		UserPlayTimes:      []models.UserPlayTime{},
		UserRatings:        []models.UserRating{},
		OptionalAttributes: optionalAttributes,
	}
	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("saving game: %w", err)
	}
	monitoring.CatalogOperations.WithLabelValues("create_game").Inc()
	return game, nil
}

// CreateUser validates and persists a new user document.
func (s *Service) CreateUser(ctx context.Context, name string) (*models.User, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	user := &models.User{
		ID:            uuid.NewString(),
		Name:          name,
		Comments:      []models.UserComment{},
		GamePlayTimes: []models.GamePlayTime{},
		GameRatings:   []models.GameRating{},
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("saving user: %w", err)
	}
	monitoring.CatalogOperations.WithLabelValues("create_user").Inc()
	return user, nil
}

// GetGame returns a single game document.
func (s *Service) GetGame(ctx context.Context, id string) (*models.Game, error) {
	return s.store.GetGame(ctx, id)
}

// ListGames returns all game documents.
func (s *Service) ListGames(ctx context.Context) ([]models.Game, error) {
	return s.store.ListGames(ctx)
}

// GetUser returns a single user document.
func (s *Service) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}

// ListUsers returns all user documents.
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// endregion

// region --- Cross-entity operations ---

// RecordPlay adds hours to the (user, game) play time on both documents.
// Entries are cumulative. The game's weighted rating is recomputed because the
// weights shift even when no rating changed, and any comment the user left on
// the game gets its materialized play time refreshed on both sides.
func (s *Service) RecordPlay(ctx context.Context, gameID, userID string, hours float64) (*models.Game, *models.User, error) {
	if userID == "" {
		return nil, nil, ErrUserIDRequired
	}
	if hours <= 0 {
		return nil, nil, ErrNonPositiveHours
	}

	unlock := s.locks.LockPair(gameID, userID)
	defer unlock()

	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	game.AddPlayTime(userID, hours)
	game.RecalculateRating()
	game.RefreshCommentPlayTime(userID)
	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("saving game: %w", err)
	}

	user.AddPlayTime(gameID, hours)
	user.RefreshMostPlayed(ctx, s.store)
	user.RefreshCommentPlayTime(gameID)
	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("saving user after game write committed: %w", err)
	}

	monitoring.CatalogOperations.WithLabelValues("record_play").Inc()
	return game, user, nil
}

// RateGame upserts the user's 1-5 rating on both documents. Rating must be
// enabled on the game and the user must have at least 1 hour of recorded play.
func (s *Service) RateGame(ctx context.Context, gameID, userID string, rating int) (*models.Game, *models.User, error) {
	if userID == "" {
		return nil, nil, ErrUserIDRequired
	}
	if rating < 1 || rating > 5 {
		return nil, nil, ErrInvalidRating
	}

	unlock := s.locks.LockPair(gameID, userID)
	defer unlock()

	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	if !game.RatingEnabled {
		return nil, nil, ErrRatingDisabled
	}
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if playTime, ok := game.PlayTimeFor(userID); !ok || playTime < 1 {
		return nil, nil, ErrInsufficientPlayTime
	}

	game.SetRating(userID, rating)
	game.RecalculateRating()
	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("saving game: %w", err)
	}

	user.SetRating(gameID, rating)
	user.RecalculateAverageRating()
	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("saving user after game write committed: %w", err)
	}

	monitoring.CatalogOperations.WithLabelValues("rate_game").Inc()
	return game, user, nil
}

// CommentGame upserts the user's comment on both documents, one comment per
// (user, game) pair with content replaced on repeat. Same gates as RateGame.
func (s *Service) CommentGame(ctx context.Context, gameID, userID, content string) (*models.Game, *models.User, error) {
	if userID == "" {
		return nil, nil, ErrUserIDRequired
	}
	if content == "" {
		return nil, nil, ErrEmptyContent
	}

	unlock := s.locks.LockPair(gameID, userID)
	defer unlock()

	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	if !game.RatingEnabled {
		return nil, nil, ErrCommentingDisabled
	}
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if playTime, ok := game.PlayTimeFor(userID); !ok || playTime < 1 {
		return nil, nil, ErrInsufficientPlayTime
	}

	game.UpsertComment(userID, user.Name, content)
	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, nil, fmt.Errorf("saving game: %w", err)
	}

	user.UpsertComment(gameID, game.Name, content)
	if err := s.store.SaveUser(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("saving user after game write committed: %w", err)
	}

	monitoring.CatalogOperations.WithLabelValues("comment_game").Inc()
	return game, user, nil
}

// SetRatingEnabled toggles the rating/commenting gate on a game. Existing
// ratings and comments are untouched; only new submissions are gated.
func (s *Service) SetRatingEnabled(ctx context.Context, gameID string, enabled bool) (*models.Game, error) {
	unlock := s.locks.Lock(gameID)
	defer unlock()

	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	game.RatingEnabled = enabled
	if err := s.store.SaveGame(ctx, game); err != nil {
		return nil, fmt.Errorf("saving game: %w", err)
	}

	monitoring.CatalogOperations.WithLabelValues("set_rating_enabled").Inc()
	return game, nil
}

// endregion

// region --- Deletes with cascade ---

// DeleteGame removes a game document after stripping its mirrored records from
// every user that played, rated or commented on it. Each affected user's
// average rating and most-played game are recomputed, and each user is saved
// with an independent write before the game document itself is deleted.
func (s *Service) DeleteGame(ctx context.Context, gameID string) error {
	if _, err := s.store.GetGame(ctx, gameID); err != nil {
		return err
	}

	affected, err := s.store.UsersReferencingGame(ctx, gameID)
	if err != nil {
		return fmt.Errorf("scanning users: %w", err)
	}

	for i := range affected {
		if err := s.stripGameFromUser(ctx, gameID, affected[i].ID); err != nil {
			return err
		}
	}

	unlock := s.locks.Lock(gameID)
	defer unlock()
	if err := s.store.DeleteGame(ctx, gameID); err != nil {
		return fmt.Errorf("deleting game: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"game_id":        gameID,
		"affected_users": len(affected),
	}).Info("Game deleted with cascade cleanup")
	monitoring.CatalogOperations.WithLabelValues("delete_game").Inc()
	return nil
}

func (s *Service) stripGameFromUser(ctx context.Context, gameID, userID string) error {
	unlock := s.locks.LockPair(gameID, userID)
	defer unlock()

	// Reload under the lock; the scan snapshot may be stale.
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}

	user.RemoveGameRecords(gameID)
	user.RecalculateAverageRating()
	user.RefreshMostPlayed(ctx, s.store)
	if err := s.store.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("saving user %s during cascade: %w", userID, err)
	}
	return nil
}

// DeleteUser removes a user document after stripping the user's mirrored
// records from every game they touched. Each game's total play time drops by
// exactly the user's prior contribution and its weighted rating is recomputed.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return err
	}

	affected, err := s.store.GamesReferencingUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("scanning games: %w", err)
	}

	for i := range affected {
		if err := s.stripUserFromGame(ctx, userID, affected[i].ID); err != nil {
			return err
		}
	}

	unlock := s.locks.Lock(userID)
	defer unlock()
	if err := s.store.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"user_id":        userID,
		"affected_games": len(affected),
	}).Info("User deleted with cascade cleanup")
	monitoring.CatalogOperations.WithLabelValues("delete_user").Inc()
	return nil
}

func (s *Service) stripUserFromGame(ctx context.Context, userID, gameID string) error {
	unlock := s.locks.LockPair(gameID, userID)
	defer unlock()

	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		if IsNotFound(err) {
			return nil
		}
		return err
	}

	game.RemoveUserRecords(userID)
	game.RecalculateRating()
	if err := s.store.SaveGame(ctx, game); err != nil {
		return fmt.Errorf("saving game %s during cascade: %w", gameID, err)
	}
	return nil
}

// endregion
