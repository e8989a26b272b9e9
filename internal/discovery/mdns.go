package discovery

import (
	"fmt"
	"net"
	"sync"

	"github.com/grandcat/zeroconf"
	"github.com/muurk/softap/internal/logging"
	"go.uber.org/zap"
)

const (
	// ServiceType is the mDNS service type of the web page
	ServiceType = "_http._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultInstance is the advertised instance name
	DefaultInstance = "esp32-softap"
)

// registration is a live mDNS registration.
type registration interface {
	Shutdown()
}

// registerFunc matches zeroconf.Register.
type registerFunc func(instance, service, domain string, port int, text []string, ifaces []net.Interface) (registration, error)

func zeroconfRegister(instance, service, domain string, port int, text []string, ifaces []net.Interface) (registration, error) {
	server, err := zeroconf.Register(instance, service, domain, port, text, ifaces)
	if err != nil {
		return nil, err
	}
	return server, nil
}

// Advertiser owns one mDNS service registration.
type Advertiser struct {
	Instance string
	Port     int

	reg  registration
	once sync.Once
}

// Advertise registers the web page on port under instance.
func Advertise(instance string, port int) (*Advertiser, error) {
	return advertise(zeroconfRegister, instance, port)
}

func advertise(register registerFunc, instance string, port int) (*Advertiser, error) {
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port %d", port)
	}
	if instance == "" {
		instance = DefaultInstance
	}

	reg, err := register(instance, ServiceType, ServiceDomain, port, []string{"path=/"}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Named("mdns").Info("mDNS service registered",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)

	return &Advertiser{Instance: instance, Port: port, reg: reg}, nil
}

// Shutdown withdraws the registration. Safe to call more than once.
func (a *Advertiser) Shutdown() {
	a.once.Do(func() {
		a.reg.Shutdown()
		logging.Named("mdns").Info("mDNS service withdrawn", zap.String("instance", a.Instance))
	})
}
