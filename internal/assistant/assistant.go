// Package assistant wraps the external text-generation capability used to
// suggest thumbnail concepts for a video topic.
package assistant

import (
	"context"
	"errors"
)

// ErrDisabled is returned when no generation backend is configured.
var ErrDisabled = errors.New("assistant: no generation backend configured")

// IdeaGenerator produces free-text thumbnail ideas for a video topic.
type IdeaGenerator interface {
	GenerateIdeas(ctx context.Context, topic string) (string, error)
}

// Disabled is the fallback generator used when no API key is set. Every
// call fails with ErrDisabled so the failure is visible to the user
// instead of silently rendering nothing.
type Disabled struct{}

func (Disabled) GenerateIdeas(ctx context.Context, topic string) (string, error) {
	return "", ErrDisabled
}
