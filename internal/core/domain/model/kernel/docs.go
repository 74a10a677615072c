// Package kernel contains shared value objects used across all domain aggregates.
// It currently provides the ID identifier type. Types in this package carry no
// business rules of their own; they exist to give aggregates validated,
// immutable building blocks.
package kernel
