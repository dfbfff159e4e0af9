package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within a practice session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("level").
			Comment("Difficulty level the question was drawn from (1-3)"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.String("expected_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.String("given_answer").
			Default("").
			Comment("What the learner entered; empty on timeout"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Bool("timed_out").
			Default(false).
			Comment("True when the countdown expired before a submission"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.Int("streak").
			Default(0).
			Comment("Streak after this answer was graded"),
		field.Int("experience").
			Default(0).
			Comment("Total experience after this answer was graded"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("level"),
		index.Fields("correct"),
	}
}
