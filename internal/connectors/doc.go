// Package connectors provides Source implementations and the factory
// that builds them from source configuration.
//
// Each connector variant (filesystem, api, database) implements the
// driven.Source port independently. The only state a variant shares
// with the port contract is its own connected flag.
package connectors
