package server

import (
	_ "embed"
	"net/http"

	"github.com/glossd/deployok/common"
)

// Heading is the text every rendering of the page carries.
const Heading = "Deployment Successful"

//go:embed page.html
var page []byte

type Responder struct {
	info common.DeploymentInfo
}

func NewResponder(info common.DeploymentInfo) *Responder {
	return &Responder{info: info}
}

func (rs *Responder) Info() common.DeploymentInfo {
	return rs.info
}

// HandleRoot writes the same document for every request, the commit hash is not rendered.
func (rs *Responder) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page)
}

// Mux serves only the root path. Everything else falls through to the mux's 404.
func (rs *Responder) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", rs.HandleRoot)
	return mux
}
