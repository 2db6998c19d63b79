package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storeadmin/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newTokenStrategy),
	fx.Provide(newSealer),
)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.SessionSecret, Options{TTL: p.Config.SessionTTL})
}

func newSealer(p strategyParams) (Sealer, error) {
	return NewSecretboxSealer(p.Config.SessionSecret)
}
