// Package app contains the core application logic. It loads render-graph
// declarations, compiles them on a null execution backend and replays a
// number of frames, decoupled from any specific entrypoint like a CLI.
package app
