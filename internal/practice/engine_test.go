package practice

import "testing"

func testBank(t *testing.T) *Bank {
	t.Helper()
	data := []byte(`{"questions":[
		{"prompt":"What is 1+1?","answer":"2","level":1},
		{"prompt":"What is 2+2?","answer":"4","level":1},
		{"prompt":"What is 3+3?","answer":"6","level":1},
		{"prompt":"Solve for x: x+1=5","answer":"4","level":2},
		{"prompt":"What is 10% of 50?","answer":"5","level":2},
		{"prompt":"Derivative of x^2 is?","answer":"2x","level":3},
		{"prompt":"Derivative of x^3 is?","answer":"3x^2","level":3}
	]}`)
	b, err := LoadBank(data)
	if err != nil {
		t.Fatalf("load test bank: %v", err)
	}
	return b
}

// answerCurrent submits the correct answer for whatever question is served.
func answerCurrent(e *Engine) Outcome {
	return e.Submit(e.Current().Answer)
}

func TestEngineInitialState(t *testing.T) {
	e := NewEngine(testBank(t))

	if e.Level() != 1 {
		t.Errorf("Level = %d, want 1", e.Level())
	}
	if e.Streak() != 0 || e.Experience() != 0 {
		t.Errorf("Streak/Experience = %d/%d, want 0/0", e.Streak(), e.Experience())
	}
	if e.Remaining() != QuestionSeconds {
		t.Errorf("Remaining = %d, want %d", e.Remaining(), QuestionSeconds)
	}
	if e.Current().Prompt != "What is 1+1?" {
		t.Errorf("Current = %q, want first level-1 question", e.Current().Prompt)
	}
}

func TestEngineFirstCorrectAnswer(t *testing.T) {
	e := NewEngine(testBank(t))

	out := e.Submit("2")
	if !out.Correct {
		t.Fatal("answer should be correct")
	}
	if out.Awarded != 10 {
		t.Errorf("Awarded = %d, want 10 (no streak bonus on first correct)", out.Awarded)
	}
	if e.Streak() != 1 {
		t.Errorf("Streak = %d, want 1", e.Streak())
	}
	if out.LeveledUp {
		t.Error("single correct answer must not level up")
	}
	if !out.Celebrate {
		t.Error("correct answer should celebrate even without a level up")
	}
	if out.Signal.Motivation != 0.05 || out.Signal.Confidence != 0.04 {
		t.Errorf("Signal = %+v, want {Motivation:0.05 Confidence:0.04}", out.Signal)
	}
	if e.Remaining() != QuestionSeconds {
		t.Errorf("timer not reset: Remaining = %d", e.Remaining())
	}
}

func TestEngineCelebrateOnEveryCorrect(t *testing.T) {
	e := NewEngine(testBank(t))

	for i := 0; i < 2; i++ {
		out := answerCurrent(e)
		if !out.Celebrate {
			t.Errorf("correct answer %d: Celebrate = false, want true", i+1)
		}
		if out.LeveledUp {
			t.Errorf("correct answer %d: unexpected level up", i+1)
		}
	}

	if out := e.Submit("wrong"); out.Celebrate {
		t.Error("wrong answer must not celebrate")
	}
	if out := e.Timeout(); out.Celebrate {
		t.Error("timeout must not celebrate")
	}
}

func TestEngineAnswerNormalization(t *testing.T) {
	e := NewEngine(testBank(t))

	out := e.Submit("  2  ")
	if !out.Correct {
		t.Error("whitespace-padded answer should be accepted")
	}
}

func TestEngineStreakBonus(t *testing.T) {
	e := NewEngine(testBank(t))

	out := answerCurrent(e)
	if out.Awarded != 10 {
		t.Errorf("first award = %d, want 10", out.Awarded)
	}
	out = answerCurrent(e)
	if out.Awarded != 12 {
		t.Errorf("second award = %d, want 12", out.Awarded)
	}
	out = answerCurrent(e)
	if out.Awarded != 14 {
		t.Errorf("third award = %d, want 14", out.Awarded)
	}
	if e.Experience() != 36 {
		t.Errorf("Experience = %d, want 36", e.Experience())
	}
}

func TestEngineLevelUpOnThirdConsecutiveCorrect(t *testing.T) {
	e := NewEngine(testBank(t))

	if out := answerCurrent(e); out.LeveledUp {
		t.Fatal("leveled up after 1 correct")
	}
	if out := answerCurrent(e); out.LeveledUp {
		t.Fatal("leveled up after 2 correct")
	}

	out := answerCurrent(e)
	if !out.LeveledUp {
		t.Fatal("expected level up on 3rd consecutive correct")
	}
	if !out.Celebrate {
		t.Error("level up should trigger celebration")
	}
	if e.Level() != 2 {
		t.Errorf("Level = %d, want 2", e.Level())
	}
	if e.PeakLevel() != 2 {
		t.Errorf("PeakLevel = %d, want 2", e.PeakLevel())
	}
}

func TestEngineNoLevelUpBeyondMax(t *testing.T) {
	e := NewEngine(testBank(t))

	// Climb to level 3: level up fires on the 3rd and 4th correct answers
	// because the streak keeps growing.
	for i := 0; i < 4; i++ {
		answerCurrent(e)
	}
	if e.Level() != MaxLevel {
		t.Fatalf("Level = %d, want %d", e.Level(), MaxLevel)
	}

	out := answerCurrent(e)
	if out.LeveledUp {
		t.Error("must not level up past max level")
	}
	if e.Level() != MaxLevel {
		t.Errorf("Level = %d, want %d", e.Level(), MaxLevel)
	}
}

func TestEngineIncorrectAnswer(t *testing.T) {
	e := NewEngine(testBank(t))
	answerCurrent(e) // streak 1

	out := e.Submit("999")
	if out.Correct {
		t.Fatal("wrong answer graded correct")
	}
	if out.Awarded != 0 {
		t.Errorf("Awarded = %d, want 0", out.Awarded)
	}
	if e.Streak() != 0 {
		t.Errorf("Streak = %d, want 0 after miss", e.Streak())
	}
	if out.Signal.Motivation != -0.01 || out.Signal.Confidence != -0.02 {
		t.Errorf("Signal = %+v, want {Motivation:-0.01 Confidence:-0.02}", out.Signal)
	}
	if out.LeveledDown {
		t.Error("must not level down below level 1")
	}
	if e.Level() != 1 {
		t.Errorf("Level = %d, want 1", e.Level())
	}
}

func TestEngineLevelDown(t *testing.T) {
	e := NewEngine(testBank(t))
	for i := 0; i < 3; i++ {
		answerCurrent(e)
	}
	if e.Level() != 2 {
		t.Fatalf("Level = %d, want 2", e.Level())
	}

	out := e.Submit("wrong")
	if !out.LeveledDown {
		t.Error("expected level down")
	}
	if e.Level() != 1 {
		t.Errorf("Level = %d, want 1", e.Level())
	}
}

func TestEngineTimeoutEqualsWrongAnswer(t *testing.T) {
	e := NewEngine(testBank(t))
	answerCurrent(e)

	out := e.Timeout()
	if out.Correct {
		t.Fatal("timeout graded correct")
	}
	if !out.TimedOut {
		t.Error("outcome should be marked timed out")
	}
	if e.Streak() != 0 {
		t.Errorf("Streak = %d, want 0 after timeout", e.Streak())
	}
	if out.Signal.Motivation != -0.01 || out.Signal.Confidence != -0.02 {
		t.Errorf("Signal = %+v, want incorrect-answer signal", out.Signal)
	}
	if e.Remaining() != QuestionSeconds {
		t.Errorf("timer not reset after timeout: %d", e.Remaining())
	}
}

func TestEngineCursorSurvivesLevelChange(t *testing.T) {
	e := NewEngine(testBank(t))

	// Three correct answers move the cursor to 3 and the level to 2.
	for i := 0; i < 3; i++ {
		answerCurrent(e)
	}

	// The level-2 pool has 2 questions; cursor 3 wraps to index 1.
	want := e.bank.Pool(2)[1]
	if e.Current() != want {
		t.Errorf("Current = %+v, want %+v (cursor carried across level change)", e.Current(), want)
	}
}

func TestEngineSerialAdvancesPerQuestion(t *testing.T) {
	e := NewEngine(testBank(t))

	s0 := e.Serial()
	answerCurrent(e)
	if e.Serial() != s0+1 {
		t.Errorf("Serial = %d, want %d", e.Serial(), s0+1)
	}
	e.Timeout()
	if e.Serial() != s0+2 {
		t.Errorf("Serial = %d, want %d", e.Serial(), s0+2)
	}
}

func TestEngineTick(t *testing.T) {
	e := NewEngine(testBank(t))

	for i := 0; i < QuestionSeconds-1; i++ {
		if e.Tick() {
			t.Fatalf("timer expired after %d ticks", i+1)
		}
	}
	if !e.Tick() {
		t.Error("timer should expire on the final tick")
	}
	if e.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", e.Remaining())
	}
	// Ticking past zero stays at zero.
	if !e.Tick() {
		t.Error("expired timer should keep reporting expiry")
	}
}

func TestEngineSessionCounters(t *testing.T) {
	e := NewEngine(testBank(t))

	answerCurrent(e)
	e.Submit("wrong")
	answerCurrent(e)

	if e.Served() != 3 {
		t.Errorf("Served = %d, want 3", e.Served())
	}
	if e.CorrectCount() != 2 {
		t.Errorf("CorrectCount = %d, want 2", e.CorrectCount())
	}
}
