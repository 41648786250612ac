package bootstrap

import (
	"expert-booking/internal/fanout"
	"expert-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var FanoutModule = fx.Module("fanout",
	fx.Provide(
		NewHub,
		func(h *fanout.Hub) fanout.Publisher { return h },
	),
)

func NewHub(cfg config.Config) *fanout.Hub {
	return fanout.NewHub(cfg.Fanout)
}
