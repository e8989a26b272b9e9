// Package ui renders the boot summary shown on an interactive console.
//
// The summary repeats what the boot sequence logs (SSID, password, URL and
// the state of each subsystem) in a bordered box. It is only printed when
// stdout is a terminal; the log stream is the authoritative record.
package ui
