package connector

import (
	"context"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/events"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
)

// logPublisher records events in the log when no broker is configured
type logPublisher struct {
	logger logger.Logger
}

// NewLogPublisher creates a Publisher that only logs events
func NewLogPublisher(logger logger.Logger) events.Publisher {
	return &logPublisher{logger: logger}
}

func (p *logPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.logger.Debug("Event ", routingKey, ": ", payload)
	return nil
}

func (p *logPublisher) Close() error {
	return nil
}
