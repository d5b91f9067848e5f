package apperror

import "errors"

// Kind - the class of a rejected transition.
type Kind string

const (
	KindNotFound              Kind = "not_found"
	KindInvalidLifecycleState Kind = "invalid_lifecycle_state"
	KindUnauthorized          Kind = "unauthorized"
	KindConflict              Kind = "conflict"
	KindInvalidInput          Kind = "invalid_input"
)

// Rejection - a transition that was refused. The state is never modified when
// one is returned.
type Rejection struct {
	Code string
	Kind Kind
}

func (that *Rejection) Error() string {
	return that.Code
}

// Is - two rejections match when their codes match, so wrapped or re-created
// rejections still satisfy errors.Is against the sentinels below.
func (that *Rejection) Is(target error) bool {
	var other *Rejection
	if !errors.As(target, &other) {
		return false
	}

	return other.Code == that.Code
}

func newRejection(code string, kind Kind) *Rejection {
	return &Rejection{Code: code, Kind: kind}
}

var (
	ErrGameNotFound = newRejection("GAME_NOT_FOUND", KindNotFound)

	ErrGameAlreadyStarted = newRejection("GAME_ALREADY_STARTED", KindInvalidLifecycleState)
	ErrGameNotStarted     = newRejection("GAME_NOT_STARTED", KindInvalidLifecycleState)
	ErrGameEnded          = newRejection("GAME_ENDED", KindInvalidLifecycleState)
	ErrGameAlreadyEnded   = newRejection("GAME_ALREADY_ENDED", KindInvalidLifecycleState)

	ErrPlayerNotInGame = newRejection("PLAYER_NOT_IN_GAME", KindUnauthorized)
	ErrNotYourTurn     = newRejection("NOT_YOUR_TURN", KindUnauthorized)
	ErrCallerNotOwner  = newRejection("CALLER_NOT_OWNER", KindUnauthorized)

	ErrAlreadyInGame     = newRejection("ALREADY_IN_GAME", KindConflict)
	ErrGameAlreadyExists = newRejection("GAME_ALREADY_EXISTS", KindConflict)
	ErrAmbiguousResult   = newRejection("AMBIGUOUS_RESULT", KindConflict)

	ErrUnknownAction = newRejection("UNKNOWN_ACTION", KindInvalidInput)
	ErrInvalidInput  = newRejection("INVALID_INPUT", KindInvalidInput)
)

// KindOf - returns the rejection class of err, or an empty kind when err is not a rejection.
func KindOf(err error) Kind {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection.Kind
	}

	return ""
}

// CodeOf - returns the rejection code of err, or an empty string when err is not a rejection.
func CodeOf(err error) string {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection.Code
	}

	return ""
}
