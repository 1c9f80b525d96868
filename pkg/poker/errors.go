package poker

import "errors"

// ErrInvalidInput is returned when the caller breaks the contract of an operation,
// i.e., an empty card set or an empty candidate list
var ErrInvalidInput = errors.New("invalid input")

// ErrInternalInconsistency is returned when results that cannot be compared reach
// the tie-breaker, i.e., hands of different ranks
var ErrInternalInconsistency = errors.New("internal inconsistency")
