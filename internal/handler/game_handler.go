package handler

import (
	"net/http"

	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameInput defines the payload for creating a game.
type GameInput struct {
	Name               string         `json:"name" binding:"required" example:"Hollow Knight"`
	PhotoURL           string         `json:"photoUrl" binding:"required" example:"https://example.com/hk.jpg"`
	Genres             []string       `json:"genres" binding:"max=5"`
	OptionalAttributes map[string]any `json:"optionalAttributes"`
}

// RatingStatusInput toggles the rating/commenting gate on a game.
type RatingStatusInput struct {
	Enable *bool `json:"enable" binding:"required"`
}

// PlayInput defines the payload for recording play time.
type PlayInput struct {
	UserID string  `json:"userId" binding:"required"`
	Hours  float64 `json:"hours" binding:"required"`
}

// RateInput defines the payload for rating a game.
type RateInput struct {
	UserID string `json:"userId" binding:"required"`
	Rating int    `json:"rating" binding:"required"`
}

// CommentInput defines the payload for commenting on a game.
type CommentInput struct {
	UserID  string `json:"userId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// GameUserResponse carries both updated documents after a cross-entity
// operation, matching what the UI renders.
type GameUserResponse struct {
	Game *models.Game `json:"game"`
	User *models.User `json:"user"`
}

// endregion

// region --- Handlers ---

// GetGames godoc
// @Summary      List all games
// @Description  Returns every game document with its aggregates and comments.
// @Tags         games
// @Produce      json
// @Success      200  {array}   models.Game
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	games, err := svc.ListGames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GetGameByID godoc
// @Summary      Get a single game
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200  {object}  models.Game
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	game, err := svc.GetGame(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game with up to 5 genres and optional attributes.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  models.Game
// @Failure      400  {object}  ErrorResponse
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	game, err := svc.CreateGame(c.Request.Context(), input.Name, input.PhotoURL, input.Genres, input.OptionalAttributes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, game)
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game and strips its mirrored records from every user.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	if err := svc.DeleteGame(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

// UpdateRatingStatus godoc
// @Summary      Enable or disable rating and commenting
// @Description  Sets the gate flag; existing ratings and comments stay visible.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path string            true "Game ID"
// @Param        input body RatingStatusInput true "Gate flag"
// @Success      200  {object}  models.Game
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id}/rating-status [patch]
func UpdateRatingStatus(c *gin.Context) {
	var input RatingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	game, err := svc.SetRatingEnabled(c.Request.Context(), c.Param("id"), *input.Enable)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

// RecordPlay godoc
// @Summary      Record play time
// @Description  Adds hours to the user's cumulative play time on both documents.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path string    true "Game ID"
// @Param        input body PlayInput true "User and hours"
// @Success      200  {object}  GameUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id}/play [patch]
func RecordPlay(c *gin.Context) {
	var input PlayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID and positive play hours are required"})
		return
	}

	game, user, err := svc.RecordPlay(c.Request.Context(), c.Param("id"), input.UserID, input.Hours)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, GameUserResponse{Game: game, User: user})
}

// RateGame godoc
// @Summary      Rate a game
// @Description  Upserts a 1-5 rating; requires rating enabled and at least 1 hour played.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path string    true "Game ID"
// @Param        input body RateInput true "User and rating"
// @Success      200  {object}  GameUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id}/rate [post]
func RateGame(c *gin.Context) {
	var input RateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID and rating (1-5) are required"})
		return
	}

	game, user, err := svc.RateGame(c.Request.Context(), c.Param("id"), input.UserID, input.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, GameUserResponse{Game: game, User: user})
}

// CommentGame godoc
// @Summary      Comment on a game
// @Description  Upserts the user's comment; same gates as rating. One comment per user per game.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path string       true "Game ID"
// @Param        input body CommentInput true "User and content"
// @Success      200  {object}  GameUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id}/comment [post]
func CommentGame(c *gin.Context) {
	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID and comment content are required"})
		return
	}

	game, user, err := svc.CommentGame(c.Request.Context(), c.Param("id"), input.UserID, input.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, GameUserResponse{Game: game, User: user})
}

// endregion
