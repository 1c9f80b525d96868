package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"showdown-server/internal/config"
	"showdown-server/pkg/poker"
)

// maxBodySize is the largest request body accepted
const maxBodySize = 64 << 10

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config    muxConfig
	version   string
	evaluator *poker.Evaluator
}

type muxConfig struct {
	// maxCandidates is the most players accepted in a single showdown
	maxCandidates int
}

// NewMux returns a new HTTP mux
// If evaluator is nil, one is created with the default options.
func NewMux(version string, evaluator *poker.Evaluator) *Mux {
	if evaluator == nil {
		var err error
		if evaluator, err = poker.NewEvaluator(poker.DefaultOptions()); err != nil {
			logrus.WithError(err).Fatal("could not create evaluator")
		}
	}

	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		evaluator: evaluator,
		config: muxConfig{
			maxCandidates: config.Instance().MaxCandidates,
		},
	}

	r := this.Router
	r.Use(limitBodyMiddleware)
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/evaluate").Handler(this.postEvaluate())
	r.Methods(http.MethodPost).Path("/showdown").Handler(this.postShowdown())

	return this
}

func limitBodyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		next.ServeHTTP(w, r)
	})
}
