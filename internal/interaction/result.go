package interaction

// Result is the outcome of a lifecycle operation.
// Invalid means preconditions were not met and no capability was invoked.
// Failure means the interactive entity ran and declined.
type Result int

const (
	Invalid Result = iota
	Success
	Failure
)

func (r Result) String() string {
	switch r {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	default:
		return "Invalid"
	}
}
