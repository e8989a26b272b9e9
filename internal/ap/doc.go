// Package ap brings the radio up as a standalone access point.
//
// Config is an immutable value built once at process entry, either from
// the compiled-in defaults or through NewConfig. Manager.Start drives the
// stack through a fixed sequence; each step must succeed before the next
// begins:
//
//  1. initialize the network interface subsystem
//  2. create the default event loop (an existing loop is accepted)
//  3. create the access-point network interface
//  4. initialize the radio driver with the default capability set
//  5. subscribe the event dispatcher to every driver event
//  6. apply the configuration in access-point mode
//  7. start the radio
//
// The dispatcher is subscribed before the radio starts so that no station
// event is missed. Any failure stops the sequence and is returned as a
// *NetworkError naming the step; nothing is retried.
package ap
