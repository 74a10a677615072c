// Package courier contains the Courier aggregate and its availability status
// state machine. A courier's status is busy exactly while it is attached to a
// non-terminal order; the workflow engine flips it via Assign and Release,
// and operators may override it manually.
package courier
