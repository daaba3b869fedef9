package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies session_id and variant from an event's context onto the
// event.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if sessionID := GetSessionID(ctx); sessionID != "" {
		e.Str("session_id", sessionID)
	}

	if variant := GetVariant(ctx); variant != "" {
		e.Str("variant", variant)
	}
}
