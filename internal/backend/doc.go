// Package backend provides CallbackBackend, an execution backend that forwards
// every operation to application-supplied callbacks. It binds placeholder
// handles to heaps nobody allocated and, unless the application supplies its
// own recorder, dispatches scheduled commands to their callbacks one by one.
package backend
