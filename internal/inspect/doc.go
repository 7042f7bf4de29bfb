// Package inspect turns a scheduled render graph into a serializable
// snapshot and publishes it to remote viewers over socket.io.
package inspect
