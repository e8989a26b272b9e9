package boot

import (
	"context"
	"time"

	"github.com/muurk/softap/internal/ap"
	"github.com/muurk/softap/internal/events"
	"github.com/muurk/softap/internal/httpd"
	"github.com/muurk/softap/internal/logging"
	"github.com/muurk/softap/internal/nvs"
	"github.com/muurk/softap/internal/ui"
	"github.com/muurk/softap/internal/wifi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Subsystem is the logger name of the boot sequence.
const Subsystem = "softap"

// QuietSubsystems are lowered to warnings at boot.
var QuietSubsystems = []string{"wifi", "esp_netif_handlers"}

// Advertisement is a running mDNS registration.
type Advertisement interface {
	Shutdown()
}

// AdvertiseFunc registers the web server on port.
type AdvertiseFunc func(port int) (Advertisement, error)

// Orchestrator holds the collaborators of the boot sequence.
type Orchestrator struct {
	Partition  nvs.Partition
	Stack      wifi.Stack
	Config     ap.Config
	HTTP       httpd.Config
	Advertise  AdvertiseFunc      // optional
	Dispatcher *events.Dispatcher // optional
}

// Result is the state left behind by a completed boot sequence.
type Result struct {
	AP      *ap.Manager
	Server  *httpd.Handle // nil when the web server failed to start
	HTTPErr error
	MDNSErr error

	config ap.Config
	adv    Advertisement
	log    *zap.Logger
}

// Run executes the boot sequence once. A non-nil error is always a
// *FatalError.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	for _, name := range QuietSubsystems {
		logging.SetSubsystemLevel(name, zapcore.WarnLevel)
	}
	log := logging.Named(Subsystem)

	if err := nvs.Initialize(o.Partition); err != nil {
		log.Error("Persistent storage unrecoverable", zap.Error(err))
		return nil, &FatalError{Stage: StageNVS, Err: err}
	}
	logging.LogBootStep(StageNVS)

	log.Info("Starting WiFi Access Point")

	manager := ap.NewManager(o.Stack, o.Dispatcher)
	if err := manager.Start(ctx, o.Config); err != nil {
		log.Error("Access point bring-up failed", zap.Error(err))
		return nil, &FatalError{Stage: StageAccessPoint, Err: err}
	}
	logging.LogBootStep(StageAccessPoint, zap.String("ssid", o.Config.SSID()))

	res := &Result{AP: manager, config: o.Config, log: log}

	server, err := httpd.New(o.HTTP).Start()
	if err != nil {
		res.HTTPErr = err
		log.Warn("Web server failed to start, access point remains up", zap.Error(err))
	} else {
		server.RegisterRoutes([]httpd.Route{httpd.RootRoute(o.Config.SSID())})
		res.Server = server
		log.Info("Web server started", zap.String("addr", server.Addr().String()))
		logging.LogBootStep(StageWebServer)
	}

	if res.Server != nil && o.Advertise != nil {
		adv, err := o.Advertise(res.Server.Port())
		if err != nil {
			res.MDNSErr = err
			log.Warn("mDNS advertisement unavailable", zap.Error(err))
		} else {
			res.adv = adv
			logging.LogBootStep(StageMDNS)
		}
	}

	log.Info("ESP32 is running as WiFi Access Point")
	log.Info("Connect to access point",
		zap.String("ssid", o.Config.SSID()),
		zap.String("password", o.Config.Password()),
	)
	log.Info("Then visit the web page in your browser", zap.String("url", o.Config.URL()))

	return res, nil
}

// APActive reports whether the access point is running.
func (r *Result) APActive() bool {
	return r.AP.Active()
}

// Summary describes the boot outcome for the console.
func (r *Result) Summary() ui.Summary {
	s := ui.Summary{
		SSID:      r.config.SSID(),
		Password:  r.config.Password(),
		URL:       r.config.URL(),
		AuthMode:  r.config.AuthMode().String(),
		AccessPt:  r.APActive(),
		WebServer: r.Server != nil,
		MDNS:      r.adv != nil,
	}
	if r.Server != nil {
		s.ListenAddr = r.Server.Addr().String()
	}
	return s
}

// Idle blocks until ctx is done, then withdraws the advertisement, stops
// the web server and the radio.
func (r *Result) Idle(ctx context.Context) {
	<-ctx.Done()
	r.log.Info("Shutting down")

	if r.adv != nil {
		r.adv.Shutdown()
	}
	if r.Server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := r.Server.Shutdown(shutdownCtx); err != nil {
			r.log.Warn("Web server shutdown incomplete", zap.Error(err))
		}
		cancel()
	}
	if err := r.AP.Stop(); err != nil {
		r.log.Warn("Radio stop failed", zap.Error(err))
	}
}
