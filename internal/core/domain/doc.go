// Package domain defines the core types for linegrep.
//
// This package is the innermost layer of the hexagonal architecture.
// It holds the resolved invocation Config, the SearchRequest text
// model with its line-splitting rules, and the argument-resolution
// errors.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
