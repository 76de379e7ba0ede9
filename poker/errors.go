package poker

import (
	"errors"
	"fmt"

	"github.com/lox/pokerengine/card"
	"github.com/lox/pokerengine/lookup"
)

// Sentinel roots for the four error kinds of §7. Every error this package
// returns wraps exactly one of these via %w, so callers can dispatch on
// kind with errors.Is regardless of the specific message.
var (
	// ErrInvalidConfiguration is raised only at construction time: bad
	// street descriptors, bad forced-bet vectors, too few players.
	ErrInvalidConfiguration = errors.New("poker: invalid configuration")
	// ErrInvalidAction is raised when an action is attempted in the wrong
	// phase, by the wrong actor, or is a degenerate move (folding when
	// checking is free).
	ErrInvalidAction = errors.New("poker: invalid action")
	// ErrInvalidCard is raised when a requested card is not available to
	// deal (already dealt, or identity mismatch in replay mode).
	// It wraps card.ErrInvalidCard.
	ErrInvalidCard = fmt.Errorf("poker: %w", card.ErrInvalidCard)
	// ErrInvalidHand wraps lookup.ErrInvalidHand at the state-machine
	// boundary. No function in this package returns it: at showdown a hand
	// that fails to qualify under a hand type is left out of that hand
	// type's share.
	ErrInvalidHand = fmt.Errorf("poker: %w", lookup.ErrInvalidHand)
)

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfiguration}, args...)...)
}

func actionErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidAction}, args...)...)
}

func cardErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidCard}, args...)...)
}
