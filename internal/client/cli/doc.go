// Package cli provides the SecureDocs command-line client.
//
// It wires configuration, the preferences database, the HTTP client and the
// workflow state, then either runs an interactive REPL that mirrors the two
// tabs of the web interface or performs a single encrypt / decrypt run.
//
// Commands:
//   - securedocs                       interactive session (type 'help')
//   - securedocs encrypt -i FILE       encrypt and save both artifacts
//   - securedocs decrypt -i FILE -k K  decrypt and save the result
//   - securedocs lang [TAG]            show or save the interface language
//   - securedocs version               print build information
//
// See Execute, App.Run and runREPL for details.
package cli
