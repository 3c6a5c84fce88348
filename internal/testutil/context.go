package testutil

import (
	"context"

	"github.com/Makepad-fr/tada/internal/model"
)

type draftKey struct{}

// The body is consumed by the recording middleware; handlers read it back here.
func withDraft(ctx context.Context, d model.Draft) context.Context {
	return context.WithValue(ctx, draftKey{}, d)
}

func draftFrom(ctx context.Context) model.Draft {
	d, _ := ctx.Value(draftKey{}).(model.Draft)
	return d
}
