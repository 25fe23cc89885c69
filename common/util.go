package common

import (
	"fmt"
	"net"
	"time"
)

// IsPortOpen tries to establish a TCP connection to the local port.
func IsPortOpen(port int) bool {
	return IsPortOpenTimeout(port, time.Second)
}

func IsPortOpenTimeout(port int, timeout time.Duration) bool {
	address := fmt.Sprintf("127.0.0.1:%d", port)
	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return false
	}
	if conn == nil {
		return false
	}
	conn.Close()
	return true
}

func IsPortOpenRetry(port int, period time.Duration, maxRetries int) bool {
	if maxRetries == 0 {
		return false
	}
	if IsPortOpenTimeout(port, period) {
		return true
	}
	time.Sleep(period)
	return IsPortOpenRetry(port, period, maxRetries-1)
}

// IsPortCloseRetry waits until nothing accepts connections on the port.
func IsPortCloseRetry(port int, period time.Duration, maxRetries int) bool {
	if maxRetries == 0 {
		return false
	}
	if !IsPortOpenTimeout(port, period) {
		return true
	}
	time.Sleep(period)
	return IsPortCloseRetry(port, period, maxRetries-1)
}

// GetFreePort asks the kernel for a free open port that is ready to use.
// https://gist.github.com/sevkin/96bdae9274465b2d09191384f86ef39d
func GetFreePort() (port int, err error) {
	var a *net.TCPAddr
	if a, err = net.ResolveTCPAddr("tcp", "localhost:0"); err == nil {
		var l *net.TCPListener
		if l, err = net.ListenTCP("tcp", a); err == nil {
			defer l.Close()
			return l.Addr().(*net.TCPAddr).Port, nil
		}
	}
	return
}
