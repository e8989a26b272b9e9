package ap

import (
	"context"
	"errors"
	"sync"

	"github.com/muurk/softap/internal/events"
	"github.com/muurk/softap/internal/logging"
	"github.com/muurk/softap/internal/wifi"
	"go.uber.org/zap"
)

// eventBuffer is the depth of the channel between the stack and the
// dispatcher.
const eventBuffer = 16

// Manager owns the access point and drives the stack into AP mode.
type Manager struct {
	stack      wifi.Stack
	dispatcher *events.Dispatcher
	log        *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewManager returns a Manager for stack. Events are routed to dispatcher.
func NewManager(stack wifi.Stack, dispatcher *events.Dispatcher) *Manager {
	if dispatcher == nil {
		dispatcher = events.New(nil)
	}
	return &Manager{
		stack:      stack,
		dispatcher: dispatcher,
		log:        logging.Named("ap"),
	}
}

// Start runs the bring-up sequence with cfg. The dispatcher keeps running
// until ctx is done or Stop is called.
func (m *Manager) Start(ctx context.Context, cfg Config) error {
	if err := m.run(StepNetifInit, m.stack.NetifInit); err != nil {
		return err
	}

	if err := m.stack.EventLoopCreateDefault(); err != nil {
		if !errors.Is(err, wifi.ErrInvalidState) {
			return &NetworkError{Step: StepEventLoop, Err: err}
		}
		m.log.Debug("Default event loop already exists")
	}

	if err := m.run(StepCreateNetif, m.stack.CreateDefaultAPNetif); err != nil {
		return err
	}
	if err := m.run(StepDriverInit, func() error {
		return m.stack.Init(wifi.DefaultInitConfig())
	}); err != nil {
		return err
	}

	ch := make(chan wifi.Event, eventBuffer)
	if err := m.run(StepSubscribe, func() error { return m.stack.Subscribe(ch) }); err != nil {
		return err
	}
	m.startDispatcher(ctx, ch)

	if err := m.run(StepConfigure, func() error {
		if err := m.stack.SetMode(wifi.ModeAP); err != nil {
			return err
		}
		return m.stack.SetAPConfig(cfg.driverConfig())
	}); err != nil {
		m.stopDispatcher()
		return err
	}
	if err := m.run(StepStart, m.stack.Start); err != nil {
		m.stopDispatcher()
		return err
	}

	m.log.Info("WiFi Access Point started",
		zap.String("ssid", cfg.SSID()),
		zap.Stringer("auth_mode", cfg.AuthMode()),
		zap.Int("max_clients", cfg.MaxClients()),
	)
	return nil
}

// Active reports whether the radio is running as an access point.
func (m *Manager) Active() bool {
	st := m.stack.State()
	return st.Started && (st.Mode == wifi.ModeAP || st.Mode == wifi.ModeAPStation)
}

// State returns the stack's current state.
func (m *Manager) State() wifi.State {
	return m.stack.State()
}

// Stop deactivates the radio and stops the dispatcher.
func (m *Manager) Stop() error {
	err := m.stack.Stop()
	m.stopDispatcher()
	return err
}

func (m *Manager) run(step Step, fn func() error) error {
	if err := fn(); err != nil {
		return &NetworkError{Step: step, Err: err}
	}
	m.log.Debug("Bring-up step complete", zap.Stringer("step", step))
	return nil
}

func (m *Manager) startDispatcher(ctx context.Context, ch <-chan wifi.Event) {
	dctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	m.mu.Lock()
	m.cancel = cancel
	m.done = done
	m.mu.Unlock()

	go func() {
		defer close(done)
		m.dispatcher.Run(dctx, ch)
	}()
}

func (m *Manager) stopDispatcher() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
