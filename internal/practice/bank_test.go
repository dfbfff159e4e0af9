package practice

import "testing"

func TestBuiltinBank(t *testing.T) {
	b := BuiltinBank()

	for level := MinLevel; level <= MaxLevel; level++ {
		if len(b.Pool(level)) == 0 {
			t.Errorf("level %d pool is empty", level)
		}
	}

	total := 0
	for level := MinLevel; level <= MaxLevel; level++ {
		for _, q := range b.Pool(level) {
			if q.Level != level {
				t.Errorf("question %q filed under level %d but has level %d", q.Prompt, level, q.Level)
			}
			if q.Prompt == "" || q.Answer == "" {
				t.Errorf("question at level %d has empty prompt or answer", level)
			}
			total++
		}
	}
	if total != b.Size() {
		t.Errorf("Size() = %d, want %d", b.Size(), total)
	}
}

func TestBankQuestionWraps(t *testing.T) {
	b := BuiltinBank()
	pool := b.Pool(1)

	if got := b.Question(1, 0); got != pool[0] {
		t.Errorf("cursor 0 = %+v, want first question", got)
	}
	if got := b.Question(1, len(pool)); got != pool[0] {
		t.Errorf("cursor %d should wrap to first question, got %+v", len(pool), got)
	}
	if got := b.Question(1, 2*len(pool)+1); got != pool[1] {
		t.Errorf("large cursor did not wrap correctly: %+v", got)
	}
}

func TestLoadBankRejectsEmptyLevel(t *testing.T) {
	data := []byte(`{"questions":[
		{"prompt":"What is 1+1?","answer":"2","level":1},
		{"prompt":"What is 2+2?","answer":"4","level":1},
		{"prompt":"Solve for x: x+1=2","answer":"1","level":2}
	]}`)

	if _, err := LoadBank(data); err == nil {
		t.Fatal("expected error for bank with no level-3 questions")
	}
}

func TestLoadBankRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{questions: nope`},
		{"missing answer", `{"questions":[{"prompt":"What is 1+1?","level":1}]}`},
		{"level out of range", `{"questions":[
			{"prompt":"a","answer":"1","level":1},
			{"prompt":"b","answer":"2","level":2},
			{"prompt":"c","answer":"3","level":4}
		]}`},
		{"empty prompt", `{"questions":[
			{"prompt":"","answer":"1","level":1},
			{"prompt":"b","answer":"2","level":2},
			{"prompt":"c","answer":"3","level":3}
		]}`},
		{"too few questions", `{"questions":[{"prompt":"a","answer":"1","level":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadBank([]byte(tt.data)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadBankValid(t *testing.T) {
	data := []byte(`{"questions":[
		{"prompt":"What is 1+1?","answer":"2","level":1},
		{"prompt":"Solve for x: x+1=2","answer":"1","level":2},
		{"prompt":"Derivative of x^3 is?","answer":"3x^2","level":3}
	]}`)

	b, err := LoadBank(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Size() != 3 {
		t.Errorf("Size() = %d, want 3", b.Size())
	}
}
