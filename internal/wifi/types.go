package wifi

import (
	"fmt"
	"net"
)

// Mode is the operating role of the radio driver.
type Mode int

const (
	ModeNull Mode = iota
	ModeStation
	ModeAP
	ModeAPStation
)

// String returns the driver name for the mode
func (m Mode) String() string {
	switch m {
	case ModeNull:
		return "null"
	case ModeStation:
		return "sta"
	case ModeAP:
		return "ap"
	case ModeAPStation:
		return "apsta"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// AuthMode is the authentication scheme advertised by the access point.
type AuthMode int

const (
	AuthOpen AuthMode = iota
	AuthWEP
	AuthWPAPSK
	AuthWPA2PSK
	AuthWPAWPA2PSK
	AuthWPA2Enterprise
	AuthWPA3PSK
	AuthWPA2WPA3PSK
)

var authModeNames = map[AuthMode]string{
	AuthOpen:           "OPEN",
	AuthWEP:            "WEP",
	AuthWPAPSK:         "WPA_PSK",
	AuthWPA2PSK:        "WPA2_PSK",
	AuthWPAWPA2PSK:     "WPA_WPA2_PSK",
	AuthWPA2Enterprise: "WPA2_ENTERPRISE",
	AuthWPA3PSK:        "WPA3_PSK",
	AuthWPA2WPA3PSK:    "WPA2_WPA3_PSK",
}

// String returns the conventional name of the auth mode
func (a AuthMode) String() string {
	if name, ok := authModeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AuthMode(%d)", int(a))
}

// Valid reports whether a is a known auth mode.
func (a AuthMode) Valid() bool {
	_, ok := authModeNames[a]
	return ok
}

// Driver limits for access-point configuration.
const (
	MaxSSIDLen     = 32
	MaxPasswordLen = 64
	MaxStations    = 100
)

// DefaultAPAddress is the address of the default access-point interface.
const DefaultAPAddress = "192.168.4.1"

// InitConfig is the capability set the radio driver is initialized with.
type InitConfig struct {
	StaticRxBuffers  int
	DynamicRxBuffers int
	DynamicTxBuffers int
	AMPDURx          bool
	AMPDUTx          bool
	NVSEnabled       bool
}

// DefaultInitConfig returns the driver's default capability set.
func DefaultInitConfig() InitConfig {
	return InitConfig{
		StaticRxBuffers:  10,
		DynamicRxBuffers: 32,
		DynamicTxBuffers: 32,
		AMPDURx:          true,
		AMPDUTx:          true,
		NVSEnabled:       true,
	}
}

// APConfig is the access-point configuration applied to the driver.
type APConfig struct {
	SSID          string
	Password      string
	Channel       int
	AuthMode      AuthMode
	MaxConnection int
}

// State is a snapshot of the driver.
type State struct {
	Mode     Mode
	SSID     string
	AuthMode AuthMode
	Started  bool
	Stations int
}

// EventKind identifies a radio driver event.
type EventKind int

const (
	EventAPStart EventKind = iota
	EventAPStop
	EventStationConnected
	EventStationDisconnected
)

// String returns the event name
func (k EventKind) String() string {
	switch k {
	case EventAPStart:
		return "AP_START"
	case EventAPStop:
		return "AP_STOP"
	case EventStationConnected:
		return "AP_STACONNECTED"
	case EventStationDisconnected:
		return "AP_STADISCONNECTED"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a notification published by the stack. Payload is owned by the
// stack and its layout depends on Kind.
type Event struct {
	Kind    EventKind
	Payload []byte
}

// StationPayloadLen is the size of a station connect/disconnect payload:
// a 6-byte MAC followed by the association id.
const StationPayloadLen = 7

// EncodeStation builds a station event payload.
func EncodeStation(mac net.HardwareAddr, aid uint8) []byte {
	payload := make([]byte, StationPayloadLen)
	copy(payload, mac)
	payload[6] = aid
	return payload
}

// StationInfo decodes a station event payload. ok is false when the
// payload does not have the station layout.
func StationInfo(payload []byte) (mac net.HardwareAddr, aid uint8, ok bool) {
	if len(payload) != StationPayloadLen {
		return nil, 0, false
	}
	mac = make(net.HardwareAddr, 6)
	copy(mac, payload[:6])
	return mac, payload[6], true
}
