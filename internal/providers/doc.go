// Package providers holds the shared result and parameter helpers used by
// the service providers in its subpackages.
//
// Available Providers:
//   - data: identity and bank-card checksums, synthetic numbers, zone,
//     card BIN and bank lookups
//   - common: UUIDs, JSON containment, sorted values, character checks
//
// Provider Interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
//
// Example Usage:
//
//	p := data.NewProvider(store, generator, metrics)
//	result, err := p.Execute(ctx, "data.idcard.validate", params, appCtx)
package providers
