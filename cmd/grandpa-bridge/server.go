// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	log "github.com/sirupsen/logrus"
)

const (
	// ErrorTypeInvalidRoundNumber error type for a malformed round number
	ErrorTypeInvalidRoundNumber = "InvalidRoundNumber"
	// ErrorTypeRoundNotFound error type for a round outside the chain
	ErrorTypeRoundNotFound = "RoundNotFound"
)

// ErrorResponse is returned by the status API on failure.
type ErrorResponse struct {
	ErrorType    string `json:"errorType"`
	ErrorMessage string `json:"errorMessage"`
}

func accessLogDecorator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("status: -> %s %s", r.Method, r.URL)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := 200
		if ww.Status() != 0 {
			status = ww.Status()
		}

		if status/100 != 2 {
			log.Warnf("status: <- %s %d", r.URL, status)
		} else {
			log.Debugf("status: <- %s %d", r.URL, status)
		}
	})
}

func renderError(w http.ResponseWriter, r *http.Request, status int, errorType, message string) {
	render.Status(r, status)
	render.JSON(w, r, &ErrorResponse{
		ErrorType:    errorType,
		ErrorMessage: message,
	})
}

// NewStatusRouter returns a chi router serving the rounds known to tracker
// and the chain metrics.
func NewStatusRouter(tracker *Tracker, metrics *Metrics) *chi.Mux {
	r := chi.NewRouter()
	r.Use(accessLogDecorator)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "pong")
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/rounds", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, tracker.Rounds())
	})

	r.Get("/rounds/{number}", func(w http.ResponseWriter, r *http.Request) {
		number, err := strconv.ParseUint(chi.URLParam(r, "number"), 10, 64)
		if err != nil {
			renderError(w, r, http.StatusBadRequest, ErrorTypeInvalidRoundNumber, err.Error())
			return
		}

		d, found := tracker.Round(number)
		if !found {
			renderError(w, r, http.StatusNotFound, ErrorTypeRoundNotFound, "round "+strconv.FormatUint(number, 10)+" is not part of this chain")
			return
		}

		render.JSON(w, r, d)
	})

	return r
}

// statusServer is the status API bound to its listener.
type statusServer struct {
	srv      *http.Server
	addr     net.Addr
	serveErr chan error // receives the error that stopped Serve, if any
}

// startHTTPServer binds ipport before returning, so an unusable address is
// reported to the caller instead of from the serving goroutine.
func startHTTPServer(ipport string, tracker *Tracker, metrics *Metrics) (*statusServer, error) {
	listener, err := net.Listen("tcp", ipport)
	if err != nil {
		return nil, fmt.Errorf("status server: %w", err)
	}

	s := &statusServer{
		srv: &http.Server{
			Addr:    ipport,
			Handler: NewStatusRouter(tracker, metrics),
		},
		addr:     listener.Addr(),
		serveErr: make(chan error, 1),
	}

	go func() {
		log.Infof("Listening on %s", s.addr)
		if err := s.srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Status server stopped")
			s.serveErr <- err
		}
	}()

	return s, nil
}
