package practice

// timerTickMsg is the 1-second countdown tick. It carries the engine
// serial it was scheduled under so ticks for an already-graded question
// can be discarded, and the chain id so a tick orphaned by a pause
// cannot keep decrementing alongside the chain started on resume.
type timerTickMsg struct {
	serial int
	chain  int
}

// feedbackDoneMsg dismisses the feedback overlay and serves the next
// question.
type feedbackDoneMsg struct{}

// sessionEndMsg signals that the session should end.
type sessionEndMsg struct{}

// StatsMsg announces the session's running totals so the root model can
// refresh the header.
type StatsMsg struct {
	Experience int
	Level      int
}
