package labels

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/notes/internal/model"
)

// Creator creates a label on the backend. *api.Client satisfies it.
type Creator interface {
	CreateLabel(ctx context.Context, name, color string) (model.Label, error)
}

// ParseNames splits comma-separated input, trimming each entry and dropping
// empty ones. Order is kept and repeats are not collapsed.
func ParseNames(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Reconciler resolves typed label names against known labels, creating the
// missing ones one at a time.
type Reconciler struct {
	Creator Creator
	Log     zerolog.Logger
}

func NewReconciler(c Creator, log zerolog.Logger) *Reconciler {
	return &Reconciler{Creator: c, Log: log}
}

// Reconcile returns the canonical names to store on a note. Known names
// resolve case-insensitively to their stored spelling. Unknown names are
// created; a creation failure is logged and the typed name is used as is.
// known is not modified.
func (r *Reconciler) Reconcile(ctx context.Context, names []string, known []model.Label) []string {
	pool := make([]model.Label, len(known), len(known)+len(names))
	copy(pool, known)

	out := make([]string, 0, len(names))
	for _, name := range names {
		if l, ok := model.FindLabel(pool, name); ok {
			out = append(out, l.Name)
			continue
		}
		created, err := r.Creator.CreateLabel(ctx, name, "")
		if err != nil {
			r.Log.Warn().Err(err).Str("label", name).Msg("label create failed, keeping typed name")
			out = append(out, name)
			continue
		}
		pool = append(pool, created)
		out = append(out, created.Name)
	}
	return out
}
