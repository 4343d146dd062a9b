package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jonathan/job-finder/internal/api"
	"github.com/jonathan/job-finder/internal/config"
	"github.com/jonathan/job-finder/internal/render"
	"github.com/jonathan/job-finder/internal/session"
)

// app bundles the objects every command needs: effective config, the session
// (also the client's token source), the API client and the printer.
type app struct {
	cfg     *config.Config
	sess    *session.Session
	client  *api.Client
	printer *render.Printer
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if verboseFlag {
		cfg.Verbose = true
	}

	sess := session.New(session.NewFileStore(cfg.SessionFile))

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	client, err := api.New(cfg.BaseURL, sess, &api.Options{
		Timeout: cfg.Timeout(),
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		sess:    sess,
		client:  client,
		printer: render.NewPrinter(os.Stdout),
	}, nil
}

// requireLogin fails fast on commands that need an authenticated session
// instead of letting the server reject the bare request.
func (a *app) requireLogin() error {
	if !a.sess.LoggedIn() {
		return fmt.Errorf("not logged in; run 'jobfinder login' first")
	}
	if session.Expired(a.sess.Token(), time.Now()) {
		return fmt.Errorf("session expired; run 'jobfinder login' again")
	}
	return nil
}
