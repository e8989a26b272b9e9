// Package events routes radio driver notifications to the log.
//
// The Dispatcher is the consumer end of the channel the access point manager
// subscribes to the stack. It holds no state: each event produces at most one
// log line and is then discarded.
package events

import (
	"context"

	"github.com/muurk/softap/internal/logging"
	"github.com/muurk/softap/internal/wifi"
	"go.uber.org/zap"
)

// Subsystem is the logger name used for station events.
const Subsystem = "softap"

// Dispatcher logs station connect and disconnect events.
type Dispatcher struct {
	log *zap.Logger
}

// New returns a Dispatcher that logs through log. A nil log uses the
// named subsystem logger.
func New(log *zap.Logger) *Dispatcher {
	if log == nil {
		log = logging.Named(Subsystem)
	}
	return &Dispatcher{log: log}
}

// Handle logs a single event. It never blocks and never fails.
func (d *Dispatcher) Handle(ev wifi.Event) {
	switch ev.Kind {
	case wifi.EventStationConnected:
		d.log.Info("Station connected", stationFields(ev.Payload)...)
	case wifi.EventStationDisconnected:
		d.log.Info("Station disconnected", stationFields(ev.Payload)...)
	default:
		d.log.Debug("Driver event",
			zap.Stringer("event", ev.Kind),
			zap.Int("payload_len", len(ev.Payload)),
		)
	}
}

// Run handles events from ch until ch is closed or ctx is done.
func (d *Dispatcher) Run(ctx context.Context, ch <-chan wifi.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			d.Handle(ev)
		}
	}
}

func stationFields(payload []byte) []zap.Field {
	mac, aid, ok := wifi.StationInfo(payload)
	if !ok {
		return nil
	}
	return []zap.Field{
		zap.String("mac", mac.String()),
		zap.Uint8("aid", aid),
	}
}
