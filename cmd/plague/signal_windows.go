//go:build windows

package main

import (
	"os"
	"os/signal"
)

// notifySignals registers OS signal handlers for graceful shutdown.
// On Windows, only os.Interrupt is supported.
func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt)
}

// stopSignals undoes notifySignals; ch receives nothing once it returns.
func stopSignals(ch chan<- os.Signal) {
	signal.Stop(ch)
}
