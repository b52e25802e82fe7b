package errors

import "errors"

var (
	ErrEmptyBallotList        = errors.New("ballot list is empty")
	ErrInvalidBudget          = errors.New("voter budget must be positive")
	ErrNoCandidates           = errors.New("ballots name no candidates")
	ErrInsufficientCandidates = errors.New("seat count exceeds distinct candidate count")
	ErrZeroApprovalCandidate  = errors.New("candidate has zero approval")
	ErrInvalidSeatCount       = errors.New("seat count must be non-negative")
	ErrInvalidElectionInput   = errors.New("invalid election input")
	ErrTooManyBallots         = errors.New("ballot list exceeds the configured cap")
	ErrRunNotFound            = errors.New("election run not found")
)
