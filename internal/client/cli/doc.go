// Package cli provides the interactive photo album command-line client.
//
// It wires configuration, the upload backend, the search client, and an
// interactive REPL. Typical flow: add image files to the pending list,
// optionally set an API key, upload the batch, then search by free text.
//
// Key features:
//   - Select local images into an ordered pending list (non-images are
//     dropped at selection time)
//   - Remove individual entries or clear the list
//   - Upload the batch sequentially with per-file progress and per-file
//     failure reporting
//   - Free-text search with per-result label rendering
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
