package bridge

import "errors"

// Operation error kinds. Every check runs before any mutation, so a failed
// operation left no trace, with one deliberate exception: an inbound proof
// stays consumed even when the following custody movement fails.
var (
	ErrNotAuthorized      = errors.New("caller not authorized")
	ErrAssetNotSupported  = errors.New("asset not supported")
	ErrChainNotSupported  = errors.New("chain not supported")
	ErrInvalidAmount      = errors.New("amount is zero or out of configured bounds")
	ErrDailyLimitExceeded = errors.New("daily transfer limit exceeded")
	ErrTimelockActive     = errors.New("timelock has not expired yet")
	ErrAlreadyProcessed   = errors.New("already processed")
	ErrInvalidParameters  = errors.New("invalid parameters")
	ErrCustodyMoveFailed  = errors.New("custody movement failed")
)
