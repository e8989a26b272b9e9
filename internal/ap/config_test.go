package ap

import (
	"errors"
	"strings"
	"testing"

	"github.com/muurk/softap/internal/wifi"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SSID() != "ESP Access Point" {
		t.Errorf("SSID() = %q, want %q", cfg.SSID(), "ESP Access Point")
	}
	if cfg.Password() != "password" {
		t.Errorf("Password() = %q, want %q", cfg.Password(), "password")
	}
	if cfg.MaxClients() != 100 {
		t.Errorf("MaxClients() = %d, want 100", cfg.MaxClients())
	}
	if cfg.AuthMode() != wifi.AuthWPA3PSK {
		t.Errorf("AuthMode() = %v, want WPA3_PSK", cfg.AuthMode())
	}
	if cfg.URL() != "http://192.168.4.1" {
		t.Errorf("URL() = %q, want http://192.168.4.1", cfg.URL())
	}
}

func TestNewConfig_Validation(t *testing.T) {
	tests := []struct {
		name       string
		ssid       string
		password   string
		maxClients int
		auth       wifi.AuthMode
		wantErr    bool
	}{
		{"defaults", DefaultSSID, DefaultPassword, 100, wifi.AuthWPA3PSK, false},
		{"max ssid", strings.Repeat("s", 32), "pw", 1, wifi.AuthWPA2PSK, false},
		{"max password", "net", strings.Repeat("p", 64), 50, wifi.AuthWPA2WPA3PSK, false},
		{"open network", "open", "", 10, wifi.AuthOpen, false},
		{"ssid too long", strings.Repeat("s", 33), "pw", 1, wifi.AuthWPA2PSK, true},
		{"password too long", "net", strings.Repeat("p", 65), 1, wifi.AuthWPA2PSK, true},
		{"zero clients", "net", "pw", 0, wifi.AuthWPA2PSK, true},
		{"too many clients", "net", "pw", 101, wifi.AuthWPA2PSK, true},
		{"unknown auth", "net", "pw", 1, wifi.AuthMode(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.ssid, tt.password, tt.maxClients, tt.auth)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("NewConfig() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewConfig() error = %v", err)
			}
			if cfg.SSID() != tt.ssid || cfg.Password() != tt.password ||
				cfg.MaxClients() != tt.maxClients || cfg.AuthMode() != tt.auth {
				t.Errorf("NewConfig() = %+v, fields do not match input", cfg)
			}
		})
	}
}
