// Package client talks to the remote SecureDocs encryption service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     three endpoints of the service: Encrypt, Decrypt and Download.
//  2. A concrete HTTP implementation (see HTTPClient) that streams multipart
//     uploads, tags every request with the ephemeral session identifier,
//     decodes JSON results and maps failures to Go errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     preferences database: SQLite with embedded goose migrations.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError carrying the status code and
// the server's detail message; match with errors.As. Transport failures wrap
// ErrUnavailable and undecodable bodies wrap ErrUnexpectedResponse; match
// with errors.Is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every operation accepts a
// context.Context and honours cancellation and deadlines.
package client
