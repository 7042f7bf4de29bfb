// Package registry maps node names to the callbacks that implement them.
//
// Two sources feed it: built-in nodes reported by the execution backend, and
// callbacks the application binds by name. A binding always wins over a
// built-in of the same name.
package registry
