package server

import "errors"

var (
	// Configuration errors
	ErrMissingAddress = errors.New("server address is required")
	ErrIncompleteTLS  = errors.New("both TLS certificate and key files are required")
	ErrFailedLoadCert = errors.New("failed to load certificate")

	// Lifecycle errors
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrListen               = errors.New("failed to listen")
)
