package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"health-responder/internal/config"
	"health-responder/internal/health"
	"health-responder/internal/logger"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Responder *health.Responder
}

// Option customises container construction
type Option func(*options)

type options struct {
	logger *logrus.Logger
	clock  health.Clock
}

// WithLogger supplies a prebuilt logger instead of one built from config
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock overrides the responder's clock
func WithClock(clock health.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	log := o.logger
	if log == nil {
		var err error
		log, err = logger.New(cfg.Log)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	responder := health.NewResponder(health.WithLogger(log), health.WithClock(o.clock))

	return &Container{
		Config:    cfg,
		Logger:    log,
		Responder: responder,
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	return nil
}
