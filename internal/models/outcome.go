package models

// Outcome is the result of handling one submission. Every outcome leads to
// the same redirect; it only drives logging and metrics.
type Outcome int

const (
	OutcomeAccepted Outcome = iota
	OutcomeRejected
	OutcomeStorageFailed
	OutcomeUnexpectedError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "accepted"
	case OutcomeRejected:
		return "rejected"
	case OutcomeStorageFailed:
		return "storage_failed"
	case OutcomeUnexpectedError:
		return "unexpected_error"
	default:
		return "unknown"
	}
}

// SubmissionResult pairs an outcome with the error that caused it, if any.
// Submission is set only for accepted records.
type SubmissionResult struct {
	Outcome    Outcome
	Err        error
	Submission *Submission
}
