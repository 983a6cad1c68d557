// Package zerologsink bridges the projection warning side channel into
// rs/zerolog structured logs. The core engine never logs on its own; callers
// opt in by passing the returned sink through ProjectOpt.
package zerologsink

import (
	"github.com/rs/zerolog"

	docproject "github.com/entamburini/docproject"
)

// New returns a warning sink that logs each diagnostic at warn level with
// path and code as structured fields.
func New(logger zerolog.Logger) func(docproject.Warning) {
	return func(w docproject.Warning) {
		ev := logger.Warn().
			Str("path", w.Path).
			Str("code", w.Code)
		if w.Hint != "" {
			ev = ev.Str("hint", w.Hint)
		}
		for k, v := range w.Params {
			ev = ev.Interface(k, v)
		}
		ev.Msg(w.Message)
	}
}
