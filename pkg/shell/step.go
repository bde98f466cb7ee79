package shell

// Step is the outcome of handling one line of customer input.
type Step int

const (
	// Continue keeps taking orders.
	Continue Step = iota
	// Done finalises the order and prints the receipt.
	Done
	// Cancelled drops the order without a receipt.
	Cancelled
)

const (
	doneToken = "done"
	quitToken = "quit"
)

// String returns the lower-case step name used in logs.
func (s Step) String() string {
	switch s {
	case Continue:
		return "continue"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session ends after this step.
func (s Step) Terminal() bool {
	return s == Done || s == Cancelled
}
