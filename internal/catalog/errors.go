package catalog

import "errors"

// Not-found errors.
var (
	ErrGameNotFound = errors.New("game not found")
	ErrUserNotFound = errors.New("user not found")
)

// Validation errors, reported before any mutation is applied.
var (
	ErrUserIDRequired   = errors.New("user ID is required")
	ErrNameRequired     = errors.New("name is required")
	ErrPhotoURLRequired = errors.New("photo URL is required")
	ErrTooManyGenres    = errors.New("genres exceed the limit of 5")
	ErrNonPositiveHours = errors.New("play hours must be positive")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrEmptyContent     = errors.New("comment content is required")
)

// Gate errors. Gates also fail the whole operation before any mutation.
var (
	ErrRatingDisabled       = errors.New("rating is disabled for this game")
	ErrCommentingDisabled   = errors.New("commenting is disabled for this game")
	ErrInsufficientPlayTime = errors.New("user must play this game for at least 1 hour first")
)

// IsNotFound reports whether err is one of the not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrGameNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsRejected reports whether err is a validation or gate error, i.e. a request
// the caller can fix, as opposed to a persistence failure.
func IsRejected(err error) bool {
	for _, target := range []error{
		ErrUserIDRequired, ErrNameRequired, ErrPhotoURLRequired,
		ErrTooManyGenres, ErrNonPositiveHours, ErrInvalidRating, ErrEmptyContent,
		ErrRatingDisabled, ErrCommentingDisabled, ErrInsufficientPlayTime,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
