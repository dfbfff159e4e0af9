package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatEvent records one tutor chat message, learner or mentor side.
type ChatEvent struct {
	ent.Schema
}

func (ChatEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChatEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping messages in a chat session"),
		field.String("role").
			NotEmpty().
			Comment("learner or mentor"),
		field.Text("content").
			Default("").
			Comment("Message text"),
		field.Bool("offline").
			Default(false).
			Comment("True when the mentor reply came from the offline fallback"),
	}
}

func (ChatEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("role"),
	}
}
