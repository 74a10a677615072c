// Package order contains the Order aggregate, its line-item snapshots and the
// order status state machine. An order is created from a customer's cart with
// prices snapshotted at creation time; its status then advances through the
// delivery flow until it reaches a terminal state.
package order
