// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Source: Fetches documents from a data origin
//   - SourceFactory: Creates sources from configuration
//   - Chunker: Splits documents into overlapping chunks
//   - DocumentStore: In-memory document catalog
//   - SearchIndex: Inverted keyword index over chunks
//   - IDGenerator: Document identifier generation
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
