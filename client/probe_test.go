package client

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/glossd/deployok/common"
	"github.com/glossd/deployok/server"
)

func TestProbe(t *testing.T) {
	port, err := common.GetFreePort()
	assert(t, err, nil)
	go server.Run(common.ServerConfig{Port: port}, common.DeploymentInfo{CommitHash: "abc123"})
	t.Cleanup(server.Stop)
	if !common.IsPortOpenRetry(port, 10*time.Millisecond, 50) {
		t.Fatal("server hasn't started")
	}

	assert(t, Probe(port, time.Second), nil)
}

func TestProbe_WrongPage(t *testing.T) {
	port, err := common.GetFreePort()
	assert(t, err, nil)
	mux := &http.ServeMux{}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte(`Hello World`))
	})
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go srv.ListenAndServe()
	t.Cleanup(func() { srv.Close() })
	if !common.IsPortOpenRetry(port, 10*time.Millisecond, 50) {
		t.Fatal("server hasn't started")
	}

	if Probe(port, time.Second) == nil {
		t.Fatal("expected probe to fail")
	}
}

func TestProbe_ServerError(t *testing.T) {
	port, err := common.GetFreePort()
	assert(t, err, nil)
	mux := &http.ServeMux{}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(server.Heading))
	})
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go srv.ListenAndServe()
	t.Cleanup(func() { srv.Close() })
	if !common.IsPortOpenRetry(port, 10*time.Millisecond, 50) {
		t.Fatal("server hasn't started")
	}

	if Probe(port, time.Second) == nil {
		t.Fatal("expected failure on 503 even though the heading is present")
	}
}

func TestProbe_Closed(t *testing.T) {
	port, err := common.GetFreePort()
	assert(t, err, nil)
	if Probe(port, 100*time.Millisecond) == nil {
		t.Fatal("expected probe to fail on a closed port")
	}
}

func assert[T comparable](t *testing.T, got, want T) {
	t.Helper()

	if got != want {
		t.Fatalf("got %v, wanted %v", got, want)
	}
}
