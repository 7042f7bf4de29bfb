// Package testutil holds helpers shared by tests across packages: captured
// logging, an in-memory snapshot publisher, a call log and declaration
// builders.
package testutil
