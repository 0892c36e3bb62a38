package llm

import "context"

// PurposeDraft tags requests that draft extension problems.
const PurposeDraft = "problem-draft"

// Tag labels a request in logs and the event store.
type Tag struct {
	Purpose string

	// Genre and Tier name the draft target. Empty for other purposes.
	Genre string
	Tier  string
}

type tagKey struct{}

// WithTag attaches tag to ctx.
func WithTag(ctx context.Context, tag Tag) context.Context {
	return context.WithValue(ctx, tagKey{}, tag)
}

// TagFrom returns the tag attached to ctx. Untagged requests get the
// purpose "unknown".
func TagFrom(ctx context.Context) Tag {
	tag, _ := ctx.Value(tagKey{}).(Tag)
	if tag.Purpose == "" {
		tag.Purpose = "unknown"
	}
	return tag
}
