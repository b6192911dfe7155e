// Package cli provides the interactive job tracker command-line client.
//
// It wires configuration, the local state database, the REST client, the
// session and the application tracker, and runs a REPL on top of them.
// Typical flow: restore the saved session, refresh the application list and
// execute user commands until exit.
//
// Commands:
//   - register / login / logout / whoami
//   - refresh / list / show <id>
//   - add / edit <id> / delete <id>
//   - stats / board / columns [key...|reset]
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
