package tutor

import "github.com/mentorlabs/mentor/internal/profile"

// Role identifies the author of a chat message.
type Role string

const (
	RoleLearner Role = "learner"
	RoleMentor  Role = "mentor"
)

// Message is one entry in the chat transcript.
type Message struct {
	Role    Role
	Content string

	// Offline marks replies produced without an LLM round trip.
	Offline bool
}

// Greeting opens every chat session.
const Greeting = "Hey there! I am your AI Mentor. What are you curious about today?"

// offlineReply is served when no provider is configured or the provider
// fails. The session stays usable either way.
const offlineReply = "Love that! I can teach this using your favorite style. Here is a quick, clear breakdown with a small challenge to test mastery."

// MessageSignal is the trait nudge applied for every learner message.
// Asking questions is engagement, so it moves motivation and focus up.
var MessageSignal = profile.Signal{Motivation: 0.02, Focus: 0.03}
