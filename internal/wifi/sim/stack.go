// Package sim provides an in-process radio stack for running the firmware
// on a host and for tests.
//
// The simulation enforces the driver's call ordering, delivers events from
// its own event-loop goroutine, and supports fault injection per operation:
//
//	s := sim.New()
//	s.FailOn(wifi.OpStart, wifi.ErrNoMem)
package sim

import (
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/muurk/softap/internal/logging"
	"github.com/muurk/softap/internal/wifi"
	"go.uber.org/zap"
)

// queueDepth bounds the number of events waiting for delivery.
const queueDepth = 32

// ErrStationLimit is returned by Connect when the access point is full.
var ErrStationLimit = errors.New("station limit reached")

// Stack simulates the radio driver and network interface stack.
type Stack struct {
	mu sync.Mutex

	netifReady  bool
	loopCreated bool
	apNetif     bool
	driverReady bool
	mode        wifi.Mode
	apConfig    wifi.APConfig
	configured  bool
	started     bool

	stations map[string]uint8
	nextAID  uint8

	subs   []chan<- wifi.Event
	faults map[string]error
	calls  []string

	queue     chan wifi.Event
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

var _ wifi.Stack = (*Stack)(nil)

// New returns a powered-on stack with nothing initialized.
func New() *Stack {
	return &Stack{
		stations: make(map[string]uint8),
		faults:   make(map[string]error),
		queue:    make(chan wifi.Event, queueDepth),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// FailOn makes every later call of op fail with err.
func (s *Stack) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[op] = err
}

// ClearFaults removes all injected faults.
func (s *Stack) ClearFaults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = make(map[string]error)
}

// Calls returns the operations invoked so far, in order.
func (s *Stack) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// enter records op and returns an injected fault, if any. Caller holds mu.
func (s *Stack) enter(op string) error {
	s.calls = append(s.calls, op)
	if err, ok := s.faults[op]; ok {
		return &wifi.StackError{Op: op, Err: err}
	}
	return nil
}

func fail(op string, err error) error {
	return &wifi.StackError{Op: op, Err: err}
}

// NetifInit initializes the network interface subsystem. Idempotent.
func (s *Stack) NetifInit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(wifi.OpNetifInit); err != nil {
		return err
	}
	s.netifReady = true
	return nil
}

// EventLoopCreateDefault creates the default event loop and starts its
// delivery goroutine.
func (s *Stack) EventLoopCreateDefault() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(wifi.OpEventLoopCreate); err != nil {
		return err
	}
	if s.loopCreated {
		return fail(wifi.OpEventLoopCreate, wifi.ErrInvalidState)
	}
	s.loopCreated = true
	go s.run()
	return nil
}

// CreateDefaultAPNetif creates the access-point network interface.
func (s *Stack) CreateDefaultAPNetif() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(wifi.OpCreateAPNetif); err != nil {
		return err
	}
	if !s.netifReady || !s.loopCreated {
		return fail(wifi.OpCreateAPNetif, wifi.ErrNotInit)
	}
	s.apNetif = true
	logging.Named("esp_netif_handlers").Info("softAP netif created",
		zap.String("ip", wifi.DefaultAPAddress),
		zap.String("netmask", "255.255.255.0"),
	)
	return nil
}

// Init initializes the radio driver.
func (s *Stack) Init(cfg wifi.InitConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(wifi.OpInit); err != nil {
		return err
	}
	if !s.loopCreated {
		return fail(wifi.OpInit, wifi.ErrNotInit)
	}
	if cfg.DynamicRxBuffers <= 0 || cfg.DynamicTxBuffers <= 0 {
		return fail(wifi.OpInit, wifi.ErrInvalidArg)
	}
	s.driverReady = true
	logging.Named("wifi").Info("Driver initialized",
		zap.Int("rx_buffers", cfg.DynamicRxBuffers),
		zap.Int("tx_buffers", cfg.DynamicTxBuffers),
	)
	return nil
}

// Subscribe registers ch for every driver event.
func (s *Stack) Subscribe(ch chan<- wifi.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(wifi.OpSubscribe); err != nil {
		return err
	}
	if !s.loopCreated {
		return fail(wifi.OpSubscribe, wifi.ErrInvalidState)
	}
	if ch == nil {
		return fail(wifi.OpSubscribe, wifi.ErrInvalidArg)
	}
	s.subs = append(s.subs, ch)
	return nil
}

// SetMode sets the driver role.
func (s *Stack) SetMode(mode wifi.Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(wifi.OpSetMode); err != nil {
		return err
	}
	if !s.driverReady {
		return fail(wifi.OpSetMode, wifi.ErrNotInit)
	}
	if mode < wifi.ModeNull || mode > wifi.ModeAPStation {
		return fail(wifi.OpSetMode, wifi.ErrInvalidArg)
	}
	s.mode = mode
	return nil
}

// SetAPConfig applies the access-point configuration.
func (s *Stack) SetAPConfig(cfg wifi.APConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(wifi.OpSetAPConfig); err != nil {
		return err
	}
	if !s.driverReady {
		return fail(wifi.OpSetAPConfig, wifi.ErrNotInit)
	}
	if s.mode != wifi.ModeAP && s.mode != wifi.ModeAPStation {
		return fail(wifi.OpSetAPConfig, wifi.ErrInvalidState)
	}
	if len(cfg.SSID) > wifi.MaxSSIDLen || len(cfg.Password) > wifi.MaxPasswordLen ||
		cfg.MaxConnection < 1 || cfg.MaxConnection > wifi.MaxStations || !cfg.AuthMode.Valid() {
		return fail(wifi.OpSetAPConfig, wifi.ErrInvalidArg)
	}
	s.apConfig = cfg
	s.configured = true
	return nil
}

// Start activates the radio.
func (s *Stack) Start() error {
	s.mu.Lock()
	if err := s.enter(wifi.OpStart); err != nil {
		s.mu.Unlock()
		return err
	}
	if !s.driverReady || !s.apNetif {
		s.mu.Unlock()
		return fail(wifi.OpStart, wifi.ErrNotInit)
	}
	if !s.configured {
		s.mu.Unlock()
		return fail(wifi.OpStart, wifi.ErrInvalidState)
	}
	s.started = true
	cfg := s.apConfig
	s.mu.Unlock()

	logging.Named("wifi").Info("mode : softAP",
		zap.String("ssid", cfg.SSID),
		zap.Int("channel", cfg.Channel),
		zap.Stringer("auth_mode", cfg.AuthMode),
	)

	s.publish(wifi.Event{Kind: wifi.EventAPStart})
	return nil
}

// Stop deactivates the radio and drops every station.
func (s *Stack) Stop() error {
	s.mu.Lock()
	if err := s.enter(wifi.OpStop); err != nil {
		s.mu.Unlock()
		return err
	}
	if !s.driverReady {
		s.mu.Unlock()
		return fail(wifi.OpStop, wifi.ErrNotInit)
	}
	wasStarted := s.started
	s.started = false
	s.stations = make(map[string]uint8)
	s.mu.Unlock()

	if wasStarted {
		s.publish(wifi.Event{Kind: wifi.EventAPStop})
	}
	return nil
}

// State returns a snapshot of the driver.
func (s *Stack) State() wifi.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return wifi.State{
		Mode:     s.mode,
		SSID:     s.apConfig.SSID,
		AuthMode: s.apConfig.AuthMode,
		Started:  s.started,
		Stations: len(s.stations),
	}
}

// Connect associates a station with the running access point and
// publishes a station-connected event.
func (s *Stack) Connect(mac net.HardwareAddr) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return fmt.Errorf("connect %s: %w", mac, wifi.ErrInvalidState)
	}
	key := mac.String()
	if _, ok := s.stations[key]; ok {
		s.mu.Unlock()
		return fmt.Errorf("connect %s: already associated", mac)
	}
	if len(s.stations) >= s.apConfig.MaxConnection {
		s.mu.Unlock()
		return fmt.Errorf("connect %s: %w", mac, ErrStationLimit)
	}
	s.nextAID++
	aid := s.nextAID
	s.stations[key] = aid
	s.mu.Unlock()

	logging.Named("wifi").Info("station join", zap.String("mac", key), zap.Uint8("aid", aid))

	s.publish(wifi.Event{Kind: wifi.EventStationConnected, Payload: wifi.EncodeStation(mac, aid)})
	return nil
}

// Disconnect removes a station and publishes a station-disconnected event.
func (s *Stack) Disconnect(mac net.HardwareAddr) error {
	s.mu.Lock()
	key := mac.String()
	aid, ok := s.stations[key]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("disconnect %s: not associated", mac)
	}
	delete(s.stations, key)
	s.mu.Unlock()

	logging.Named("wifi").Info("station leave", zap.String("mac", key), zap.Uint8("aid", aid))

	s.publish(wifi.Event{Kind: wifi.EventStationDisconnected, Payload: wifi.EncodeStation(mac, aid)})
	return nil
}

// Close stops the event loop and closes every subscribed channel.
func (s *Stack) Close() {
	s.mu.Lock()
	loop := s.loopCreated
	s.mu.Unlock()

	s.closeOnce.Do(func() { close(s.quit) })
	if loop {
		<-s.done
	}
}

func (s *Stack) publish(ev wifi.Event) {
	s.mu.Lock()
	loop := s.loopCreated
	s.mu.Unlock()
	if !loop {
		return
	}

	select {
	case s.queue <- ev:
	case <-s.quit:
	}
}

// run is the event loop: it fans each queued event out to subscribers.
func (s *Stack) run() {
	defer close(s.done)
	for {
		select {
		case ev := <-s.queue:
			s.deliver(ev)
		case <-s.quit:
			s.mu.Lock()
			subs := s.subs
			s.subs = nil
			s.mu.Unlock()
			for _, ch := range subs {
				close(ch)
			}
			return
		}
	}
}

func (s *Stack) deliver(ev wifi.Event) {
	s.mu.Lock()
	subs := make([]chan<- wifi.Event, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- ev:
		case <-s.quit:
			return
		}
	}
}
