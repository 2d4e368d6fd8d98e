// Package service provides the registry that exposes providers as tools.
//
// The registry keeps a catalog of providers, routes "service.tool" IDs to
// the owning provider, ranks providers against a free-text intent, and
// records a Prometheus timer for every execution.
//
// Discovery Algorithm:
//   - Keyword matching in ID, name and description
//   - Capability matching
//   - Category bonus
//   - Score-based ranking, ties broken by service ID
//
// Example Usage:
//
//	registry := service.NewRegistry(logger, metrics)
//	registry.Register(dataProvider)
//	services := registry.Discover("validate bank card", 5)
//	result, err := registry.Execute(ctx, "data.bankcard.validate", params, appCtx)
package service
