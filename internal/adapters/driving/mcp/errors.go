// Package mcp provides an MCP (Model Context Protocol) server adapter
// for ragkit. It exposes the query and catalog surface to AI assistants
// as MCP tools and resources.
package mcp

import "errors"

// ErrMissingProvider is returned when the provider port is not set.
var ErrMissingProvider = errors.New("mcp: provider is required")
