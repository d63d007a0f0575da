package cli

import (
	"context"

	"github.com/thenoetrevino/tablero/internal/app"
)

type appKey struct{}

// WithApp returns a context carrying an already opened App.
// Commands run with it use that board instead of opening the configured one.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

func appFromContext(ctx context.Context) (*app.App, bool) {
	a, ok := ctx.Value(appKey{}).(*app.App)
	return a, ok && a != nil
}
