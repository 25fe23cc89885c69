package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/glossd/deployok/common"
)

// Run binds the configured port and serves the deployment page until SIGINT or SIGTERM.
// A bind failure is returned as *BindError before anything is served.
func Run(conf common.ServerConfig, info common.DeploymentInfo) error {
	conf = conf.WithDefaults()
	restoreLog, err := setLogOutput(conf.Logdir)
	if err != nil {
		return err
	}
	defer restoreLog()
	log.SetFlags(log.LstdFlags) // adds time to the log

	// drop a Stop issued while no server was running
	select {
	case <-quit:
	default:
	}
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall.SIGKILL but can't be catch, so don't need add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	lis, err := Listen(conf.Addr())
	if err != nil {
		return err
	}
	log.Printf("Deployment info: commit=%s\n", info.Commit())
	return runWithGracefulShutDown(lis, NewResponder(info).Mux(), conf.ShutdownTimeout())
}

// Listen binds TCP on addr, use ":port" for all interfaces.
func Listen(addr string) (net.Listener, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	return lis, nil
}

var quit = make(chan os.Signal, 1)

// https://github.com/gin-gonic/examples/blob/master/graceful-shutdown/graceful-shutdown/server.go
func runWithGracefulShutDown(lis net.Listener, h http.Handler, timeout time.Duration) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s\n", lis.Addr())
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-quit:
	case err := <-serveErr:
		return fmt.Errorf("server stopped serving: %w", err)
	}
	log.Println("Shutting down deployok server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("deployok server exiting")
	return nil
}

// Stop shuts down a running server the same way SIGTERM does.
// It never blocks, a pending Stop is not queued twice.
func Stop() {
	select {
	case quit <- syscall.SIGTERM:
	default:
	}
}

func setLogOutput(logdir string) (func(), error) {
	if logdir == common.LogdirStdout {
		return func() {}, nil
	}
	path := filepath.Join(logdir, common.LogFileName)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	log.SetOutput(file)
	return func() {
		log.SetOutput(os.Stderr)
		file.Close()
	}, nil
}
