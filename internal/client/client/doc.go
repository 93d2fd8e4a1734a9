// Package client contains the client-side transport for Mnemos.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     items, settings, categories and Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that retries transient
//     unavailability with exponential backoff and maps gRPC status codes to
//     sentinel errors.
//  3. Local cache bootstrap (InitDatabase, RunMigrations) wiring an SQLite
//     database and applying embedded goose migrations.
//
// # Error Handling
//
// Callers match errors with errors.Is: ErrUnavailable for a server that
// cannot be reached or is still starting up, and the common package
// sentinels (common.ErrorNotFound, common.ErrValidation, ...) for permanent
// failures.
package client
