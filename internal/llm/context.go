package llm

import "context"

// Purpose labels for request events. Every Generate call in Mentor is
// tagged with one of these so `mentor llm list` and `mentor llm stats`
// can split usage between chat and bank generation.
const (
	PurposeTutorChat = "tutor-chat"
	PurposeBankGen   = "bank-gen"
)

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose tags the context with a purpose label for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom reads the purpose label back, or "unknown" for an
// untagged context.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok {
		return p
	}
	return "unknown"
}
