// Package store implements the document persistence collaborator on top of
// gorm/postgres. Each Game and User is one row; the mirrored sub-collections
// live in JSONB columns, so every save is a single-document write and nothing
// here spans two documents in one transaction.
package store

import (
	"context"
	"errors"

	"gamevault/backend/internal/catalog"
	"gamevault/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the gorm-backed catalog.Store.
type Store struct {
	db *gorm.DB
}

// New creates a Store on the given database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetGame(ctx context.Context, id string) (*models.Game, error) {
	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Store) ListGames(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := s.db.WithContext(ctx).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SaveGame puts the full document, insert-or-replace by ID. IDs are assigned
// by the caller, so a plain gorm Save would never insert.
func (s *Store) SaveGame(ctx context.Context, game *models.Game) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(game).Error
}

// SaveUser puts the full document, insert-or-replace by ID.
func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(user).Error
}

func (s *Store) DeleteGame(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Game{}).Error
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{}).Error
}

// UsersReferencingGame scans the user collection for mirrored records of the
// game. The scan loads full documents because the cascade rewrites them anyway.
func (s *Store) UsersReferencingGame(ctx context.Context, gameID string) ([]models.User, error) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	var affected []models.User
	for i := range users {
		if users[i].References(gameID) {
			affected = append(affected, users[i])
		}
	}
	return affected, nil
}

// GamesReferencingUser is the symmetric scan over the game collection.
func (s *Store) GamesReferencingUser(ctx context.Context, userID string) ([]models.Game, error) {
	games, err := s.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	var affected []models.Game
	for i := range games {
		if games[i].References(userID) {
			affected = append(affected, games[i])
		}
	}
	return affected, nil
}

// GameName resolves a game's display name for the user aggregate.
func (s *Store) GameName(ctx context.Context, gameID string) (string, error) {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return "", err
	}
	return game.Name, nil
}
