// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal
// architecture. Core services depend on these interfaces, and
// infrastructure adapters implement them:
//
//   - FileSource: Supplies the complete text of a named file
//   - ResultSink: Presents matched lines to the user
//
// The search engine itself consumes already-materialised text and
// never performs I/O; both ports exist so that remains true.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
