package email

import (
	"errors"
	"fmt"
)

// TransportError is returned when the mail transport fails to send a message
type TransportError struct {
	Provider string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s transport: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SimulationWriteError is produced when a simulated email cannot be written to disk.
// It is logged, never returned to callers of Deliver.
type SimulationWriteError struct {
	Dir string
	Err error
}

func (e *SimulationWriteError) Error() string {
	if e.Dir == "" {
		return fmt.Sprintf("save simulated email: %v", e.Err)
	}
	return fmt.Sprintf("save simulated email in %s: %v", e.Dir, e.Err)
}

func (e *SimulationWriteError) Unwrap() error {
	return e.Err
}

var (
	errNoTransport = errors.New("no mail transport configured")
	errNoOutbox    = errors.New("no outbox configured")
)
