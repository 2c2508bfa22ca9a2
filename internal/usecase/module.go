package usecase

import "go.uber.org/fx"

// Module provides core ledger use cases to the fx container.
var Module = fx.Provide(
	NewAccountUseCase,
	NewPaymentUseCase,
)
