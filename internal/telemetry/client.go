package telemetry

import (
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/posthog/posthog-go"
)

const (
	batchSize     = 10
	flushInterval = time.Second
	closeTimeout  = 2 * time.Second
)

// ErrFlushTimeout is returned by Close when queued events could not be
// delivered in time. The events are dropped.
var ErrFlushTimeout = errors.New("telemetry: flush timed out")

// Client records anonymous usage events.
type Client interface {
	// Track queues an event and returns without waiting for delivery.
	Track(event string, properties Properties)
	// Close delivers queued events, giving up after a short timeout.
	Close() error
}

// Properties holds event attributes. Task descriptions never go in here.
type Properties = map[string]any

// sink is the slice of the PostHog client that eventClient needs.
type sink interface {
	Enqueue(msg posthog.Message) error
	Close() error
}

// ClientConfig holds what New needs to build a client.
type ClientConfig struct {
	APIKey   string
	Version  string
	Config   *Config
	Endpoint string // empty means PostHog cloud
}

// New returns a PostHog backed client, or a NoopClient when there is no API
// key, the user has not opted in, or the PostHog client cannot be built.
func New(cfg ClientConfig) Client {
	if cfg.APIKey == "" || !cfg.Config.IsEnabled() {
		return NewNoopClient()
	}

	phConfig := posthog.Config{
		BatchSize: batchSize,
		Interval:  flushInterval,
		Logger:    silentLogger{},
	}
	if cfg.Endpoint != "" {
		phConfig.Endpoint = cfg.Endpoint
	}
	ph, err := posthog.NewWithConfig(cfg.APIKey, phConfig)
	if err != nil {
		return NewNoopClient()
	}
	return newEventClient(ph, cfg.Config.AnonymousID, cfg.Version)
}

type eventClient struct {
	mu         sync.Mutex
	sink       sink
	distinctID string
	common     Properties
	closed     bool
}

func newEventClient(s sink, distinctID, version string) *eventClient {
	return &eventClient{
		sink:       s,
		distinctID: distinctID,
		common: Properties{
			"app_version": version,
			"os":          runtime.GOOS,
			"arch":        runtime.GOARCH,
			// anonymous ids never get a person profile
			"$process_person_profile": false,
		},
	}
}

func (c *eventClient) Track(event string, properties Properties) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	props := posthog.NewProperties()
	for k, v := range properties {
		props.Set(k, v)
	}
	for k, v := range c.common {
		props.Set(k, v)
	}
	_ = c.sink.Enqueue(posthog.Capture{
		DistinctId: c.distinctID,
		Event:      event,
		Properties: props,
	})
}

func (c *eventClient) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	done := make(chan error, 1)
	go func() { done <- c.sink.Close() }()
	select {
	case err := <-done:
		return err
	case <-time.After(closeTimeout):
		return ErrFlushTimeout
	}
}

// NoopClient drops every event.
type NoopClient struct{}

func NewNoopClient() *NoopClient { return &NoopClient{} }

func (*NoopClient) Track(string, Properties) {}
func (*NoopClient) Close() error             { return nil }

type silentLogger struct{}

func (silentLogger) Debugf(string, ...interface{}) {}
func (silentLogger) Logf(string, ...interface{})   {}
func (silentLogger) Warnf(string, ...interface{})  {}
func (silentLogger) Errorf(string, ...interface{}) {}
