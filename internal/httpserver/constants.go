package httpserver

import "time"

const (
	defaultPort = "8080"

	readTimeout       = 3 * time.Second
	readHeaderTimeout = 3 * time.Second
	writeTimeout      = 5 * time.Second
	idleTimeout       = 60 * time.Second
	maxHeaderBytes    = 1 << 12 // 4kb

	// Create provisions synchronously.
	apiWriteTimeout = 30 * time.Second
	maxBodyBytes    = 1 << 20 // 1mb

	apiPrefix = "/api/v1"

	queryTail                 = "tail"
	queryDeleteNamespaceFirst = "delete_namespace_first"
	queryDryRun               = "dry_run"
)
