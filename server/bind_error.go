package server

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// BindError is returned when the listener can't acquire the address. It's never retried.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to listen on %s: %s", e.Addr, e.Reason())
}

func (e *BindError) Unwrap() error {
	return e.Err
}

func (e *BindError) Reason() string {
	switch {
	case errors.Is(e.Err, unix.EADDRINUSE):
		return "port already in use"
	case errors.Is(e.Err, unix.EACCES):
		return "insufficient privilege, binding ports below 1024 requires root or CAP_NET_BIND_SERVICE"
	}
	return e.Err.Error()
}
