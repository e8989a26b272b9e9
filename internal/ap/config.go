package ap

import (
	"errors"
	"fmt"

	"github.com/muurk/softap/internal/wifi"
)

// Compiled-in access point defaults.
const (
	DefaultSSID       = "ESP Access Point"
	DefaultPassword   = "password"
	DefaultMaxClients = wifi.MaxStations
	DefaultAuthMode   = wifi.AuthWPA3PSK
	DefaultChannel    = 1

	// GatewayAddress is the address the access point serves on.
	GatewayAddress = wifi.DefaultAPAddress
)

// ErrInvalidConfig is wrapped by every NewConfig validation error.
var ErrInvalidConfig = errors.New("invalid access point config")

// Config is the access point configuration. The zero value is not valid;
// use DefaultConfig or NewConfig.
type Config struct {
	ssid       string
	password   string
	maxClients int
	authMode   wifi.AuthMode
}

// NewConfig validates and returns an access point configuration.
func NewConfig(ssid, password string, maxClients int, authMode wifi.AuthMode) (Config, error) {
	if len(ssid) > wifi.MaxSSIDLen {
		return Config{}, fmt.Errorf("%w: ssid is %d bytes, max %d", ErrInvalidConfig, len(ssid), wifi.MaxSSIDLen)
	}
	if len(password) > wifi.MaxPasswordLen {
		return Config{}, fmt.Errorf("%w: password is %d bytes, max %d", ErrInvalidConfig, len(password), wifi.MaxPasswordLen)
	}
	if maxClients < 1 || maxClients > wifi.MaxStations {
		return Config{}, fmt.Errorf("%w: max clients %d outside [1,%d]", ErrInvalidConfig, maxClients, wifi.MaxStations)
	}
	if !authMode.Valid() {
		return Config{}, fmt.Errorf("%w: unknown auth mode %d", ErrInvalidConfig, int(authMode))
	}

	return Config{
		ssid:       ssid,
		password:   password,
		maxClients: maxClients,
		authMode:   authMode,
	}, nil
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() Config {
	return Config{
		ssid:       DefaultSSID,
		password:   DefaultPassword,
		maxClients: DefaultMaxClients,
		authMode:   DefaultAuthMode,
	}
}

// SSID returns the broadcast network name.
func (c Config) SSID() string {
	return c.ssid
}

// Password returns the pre-shared key.
func (c Config) Password() string {
	return c.password
}

// MaxClients returns the station limit.
func (c Config) MaxClients() int {
	return c.maxClients
}

// AuthMode returns the advertised authentication scheme.
func (c Config) AuthMode() wifi.AuthMode {
	return c.authMode
}

// URL is the address stations browse to once connected.
func (c Config) URL() string {
	return "http://" + GatewayAddress
}

// driverConfig converts c to the driver's access point configuration.
func (c Config) driverConfig() wifi.APConfig {
	return wifi.APConfig{
		SSID:          c.ssid,
		Password:      c.password,
		Channel:       DefaultChannel,
		AuthMode:      c.authMode,
		MaxConnection: c.maxClients,
	}
}
