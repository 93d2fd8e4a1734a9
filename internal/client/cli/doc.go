// Package cli provides the interactive Mnemos study client.
//
// It wires configuration, the offline cache, the API client and an
// interactive REPL over services.StudyService. Typical flow: load the
// collection (falling back to the cached snapshot when the server is down),
// start a background connectivity watcher and execute user commands.
//
// Key features:
//   - Study list for any view date (today, next, prev, goto)
//   - Review with confident / medium / wtf / custom grades
//   - Add, edit, archive and delete items
//   - Settings and category management
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher and runREPL for details.
package cli
