package service

import (
	"go.uber.org/fx"

	"canvasflow.dev/backend/internal/pkg/event"
)

func Module() fx.Option {
	return fx.Module("service", fx.Provide(
		event.NewPublisher,
		NewBoard,
		NewHealth,
		NewProject,
		NewActivity,
		NewTimeline,
		NewAssistant,
	))
}
