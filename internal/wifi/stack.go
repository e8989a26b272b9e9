package wifi

// Stack is the radio and network interface stack driven by the access point
// manager. Implementations must be safe for concurrent use.
type Stack interface {
	// NetifInit initializes the network interface subsystem. Calling it
	// again after success is a no-op.
	NetifInit() error
	// EventLoopCreateDefault creates the default event loop. Returns an
	// error wrapping ErrInvalidState if it already exists.
	EventLoopCreateDefault() error
	// CreateDefaultAPNetif creates a network interface bound to the
	// access-point role.
	CreateDefaultAPNetif() error
	// Init initializes the radio driver.
	Init(cfg InitConfig) error
	// Subscribe registers ch to receive every driver event.
	Subscribe(ch chan<- Event) error
	SetMode(mode Mode) error
	SetAPConfig(cfg APConfig) error
	// Start activates the radio with the applied mode and configuration.
	Start() error
	Stop() error
	State() State
}

// Operation names used in StackError.Op.
const (
	OpNetifInit       = "esp_netif_init"
	OpEventLoopCreate = "esp_event_loop_create_default"
	OpCreateAPNetif   = "esp_netif_create_default_wifi_ap"
	OpInit            = "esp_wifi_init"
	OpSubscribe       = "esp_event_handler_register"
	OpSetMode         = "esp_wifi_set_mode"
	OpSetAPConfig     = "esp_wifi_set_config"
	OpStart           = "esp_wifi_start"
	OpStop            = "esp_wifi_stop"
)
