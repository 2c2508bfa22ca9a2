package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/minivenmo/internal/app"
	"github.com/polkiloo/minivenmo/internal/server/http/handlers"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(func(f *app.LedgerFacade) handlers.LedgerFacade { return f }),
	fx.Provide(Setup),
)
