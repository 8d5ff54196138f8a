//go:build !windows

package main

import (
	"os"
	"os/signal"
	"syscall"
)

// notifySignals registers OS signal handlers for graceful shutdown.
// On Unix systems, this includes both SIGINT and SIGTERM.
func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
}

// stopSignals undoes notifySignals; ch receives nothing once it returns.
func stopSignals(ch chan<- os.Signal) {
	signal.Stop(ch)
}
