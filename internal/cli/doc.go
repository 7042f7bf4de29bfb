// Package cli turns command-line arguments into an app.Config. Usage
// mistakes come back as *ExitError carrying the process exit code.
package cli
