// Package types provides shared data structures for services, tools and
// HTTP requests.
//
// Core Types:
//   - Service, Tool, Parameter: provider self-description
//   - Context: caller identity passed to tool execution
//   - Result: standard tool result
//
// Request Types:
//   - ExecuteRequest, DiscoverRequest: registry routes
//   - IDGenerateRequest, CardGenerateRequest: generation routes
package types
