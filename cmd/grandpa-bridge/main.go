// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Satoshi-Kusumoto/finality-grandpa/grandpa/logging"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"

	log "github.com/sirupsen/logrus"
)

var errNoRounds = errors.New("at least one round is required")

type options struct {
	LogLevel string        `long:"log-level" default:"info" description:"log level"`
	Rounds   uint16        `long:"rounds" default:"3" description:"number of consecutive rounds to run"`
	Step     time.Duration `long:"step" default:"100ms" description:"delay between state transitions of a round"`
	Timeout  time.Duration `long:"timeout" default:"30s" description:"give up if the rounds have not completed by then"`
	Listen   string        `long:"listen" description:"serve round status on this address, e.g. 127.0.0.1:8080"`
}

func main() {
	opts := getCLIArgs()

	if err := logging.SetLogLevel(opts.LogLevel); err != nil {
		log.WithError(err).Fatal("Failed to set log level. Valid log levels are:", log.AllLevels)
	}

	if err := run(opts); err != nil {
		log.WithError(err).Fatal("Rounds did not complete")
	}
}

func getCLIArgs() options {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.WithError(err).Fatal("Failed to parse command line arguments:", os.Args)
	}
	return opts
}

func run(opts options) error {
	if opts.Rounds == 0 {
		return errNoRounds
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.WithField("run", uuid.New().String())
	tracker := NewTracker()
	metrics := NewMetrics()

	var status *statusServer
	if opts.Listen != "" {
		var err error
		if status, err = startHTTPServer(opts.Listen, tracker, metrics); err != nil {
			return err
		}
		defer status.srv.Close()
	}

	runCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	logger.Infof("Starting %d rounds", opts.Rounds)
	if err := NewChain(opts.Rounds, opts.Step, tracker, metrics).Run(runCtx); err != nil {
		return err
	}

	for _, d := range tracker.Rounds() {
		logger.WithField("round", d.Number).Infof("Final state %s", d.State.AsJSON())
	}

	if status != nil {
		logger.Info("Rounds complete, serving status until interrupted")
		select {
		case <-ctx.Done():
			return status.srv.Shutdown(context.Background())
		case err := <-status.serveErr:
			return fmt.Errorf("status server stopped: %w", err)
		}
	}

	return nil
}
