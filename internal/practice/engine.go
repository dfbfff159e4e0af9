package practice

import "github.com/mentorlabs/mentor/internal/profile"

// QuestionSeconds is the per-question countdown. The timer resets to this
// value after every graded answer, regardless of outcome.
const QuestionSeconds = 30

// Trait deltas emitted with each grading outcome.
var (
	signalCorrect   = profile.Signal{Motivation: 0.05, Confidence: 0.04}
	signalIncorrect = profile.Signal{Motivation: -0.01, Confidence: -0.02}
)

// Outcome describes the result of grading one answer.
type Outcome struct {
	Correct     bool
	TimedOut    bool
	Awarded     int
	LeveledUp   bool
	LeveledDown bool
	Celebrate   bool
	Signal      profile.Signal
	Question    Question // the question that was graded
	Next        Question // the question now being served
}

// Engine runs one practice session: it serves questions, grades answers,
// and advances level, streak, and experience. An Engine is not safe for
// concurrent use; it belongs to a single session loop.
type Engine struct {
	bank *Bank

	level      int
	cursor     int
	streak     int
	experience int

	remaining int
	serial    int

	served  int
	correct int
	peak    int
}

// NewEngine starts a session at level 1 with a full timer.
func NewEngine(bank *Bank) *Engine {
	return &Engine{
		bank:      bank,
		level:     MinLevel,
		remaining: QuestionSeconds,
		peak:      MinLevel,
	}
}

// Current returns the question being served.
func (e *Engine) Current() Question {
	return e.bank.Question(e.level, e.cursor)
}

// Level returns the current difficulty level.
func (e *Engine) Level() int { return e.level }

// Streak returns the current run of consecutive correct answers.
func (e *Engine) Streak() int { return e.streak }

// Experience returns the accumulated experience points.
func (e *Engine) Experience() int { return e.experience }

// Remaining returns the seconds left on the question timer.
func (e *Engine) Remaining() int { return e.remaining }

// Serial identifies the current timer epoch. Each graded answer bumps it,
// which lets a UI discard ticks scheduled for a question already answered.
func (e *Engine) Serial() int { return e.serial }

// Served returns how many questions have been graded this session.
func (e *Engine) Served() int { return e.served }

// CorrectCount returns how many answers were graded correct this session.
func (e *Engine) CorrectCount() int { return e.correct }

// PeakLevel returns the highest level reached this session.
func (e *Engine) PeakLevel() int { return e.peak }

// Submit grades the learner's answer against the current question and
// advances the session.
func (e *Engine) Submit(answer string) Outcome {
	return e.grade(CheckAnswer(answer, e.Current().Answer), false)
}

// Timeout grades the current question as missed. It is equivalent to
// submitting a wrong answer, with the outcome marked as timed out.
func (e *Engine) Timeout() Outcome {
	return e.grade(false, true)
}

// Tick decrements the question timer by one second. It returns true when
// the timer has run out and the caller should invoke Timeout.
func (e *Engine) Tick() bool {
	if e.remaining > 0 {
		e.remaining--
	}
	return e.remaining == 0
}

func (e *Engine) grade(correct, timedOut bool) Outcome {
	out := Outcome{
		Correct:  correct,
		TimedOut: timedOut,
		Question: e.Current(),
	}

	if correct {
		// The streak bonus uses the run length before this answer, so the
		// first correct answer after a miss earns the base award alone.
		out.Awarded = 10 + 2*e.streak
		e.experience += out.Awarded
		out.Signal = signalCorrect
		// Every correct answer flashes the celebration; the UI decides how
		// big to make it when a level up rides along.
		out.Celebrate = true

		if e.streak >= 2 && e.level < MaxLevel {
			e.level++
			out.LeveledUp = true
			if e.level > e.peak {
				e.peak = e.level
			}
		}
		e.streak++
		e.correct++
	} else {
		e.streak = 0
		out.Signal = signalIncorrect
		if e.level > MinLevel {
			e.level--
			out.LeveledDown = true
		}
	}

	// The cursor keeps advancing across level changes, so moving between
	// pools lands mid-rotation rather than restarting at the first entry.
	e.cursor++
	e.served++
	e.remaining = QuestionSeconds
	e.serial++

	out.Next = e.Current()
	return out
}
