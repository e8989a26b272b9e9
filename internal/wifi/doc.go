// Package wifi defines the interface to the device's radio and network
// interface stack.
//
// The stack itself is an external collaborator. This package only names the
// operations the firmware drives (netif init, default event loop, AP netif,
// driver init, event subscription, mode/config, start/stop) and the values
// exchanged through them. A real port binds Stack to the vendor driver; on a
// host the sim package provides an in-process implementation.
//
// # Events
//
// The stack publishes Event values on every channel handed to Subscribe.
// Delivery happens on the stack's own event context, never on the caller's
// goroutine, and in the order events occurred.
package wifi
