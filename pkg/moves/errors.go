package moves

import "errors"

// ErrMoveNotRegistered is returned by Apply when a move has a positive base
// power handled generically but also needs registry-level behavior that
// hasn't been implemented, or is a pure-status move with no generic
// fallback at all (e.g. Baton Pass, which needs to transfer boosts/
// volatiles across a switch rather than act on the current Pokémon).
var ErrMoveNotRegistered = errors.New("moves: move not registered")
