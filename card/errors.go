package card

import "errors"

// ErrInvalidCard is the sentinel behind every malformed card literal.
// The poker package's error taxonomy (§7) wraps this same sentinel so
// callers can errors.Is against one value regardless of which package
// raised it.
var ErrInvalidCard = errors.New("card: invalid card")
