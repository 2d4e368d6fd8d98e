// Package data exposes checksums, synthetic number generation and reference
// lookups as the "data" service.
package data

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/fishkit/internal/generate"
	"github.com/GriffinCanCode/fishkit/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fishkit/internal/shared/types"
)

// Provider implements the data service
type Provider struct {
	checks *ChecksumOps
	gen    *GenerateOps
	lookup *LookupOps
}

// NewProvider creates a data provider. metrics may be nil.
func NewProvider(store Lookup, generator *generate.Generator, metrics *monitoring.Metrics) *Provider {
	ops := &DataOps{Metrics: metrics}

	return &Provider{
		checks: &ChecksumOps{DataOps: ops},
		gen:    &GenerateOps{DataOps: ops, Generator: generator},
		lookup: &LookupOps{DataOps: ops, Store: store},
	}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.checks.GetTools()...)
	tools = append(tools, p.gen.GetTools()...)
	tools = append(tools, p.lookup.GetTools()...)

	return types.Service{
		ID:          "data",
		Name:        "Data Service",
		Description: "Identity and bank card checksum validation, synthetic test numbers, zone and bank lookups",
		Category:    types.CategoryData,
		Capabilities: []string{
			"idcard",
			"bankcard",
			"checksum",
			"luhn",
			"generate",
			"zone_lookup",
		},
		Tools: tools,
		DataModels: []types.DataModel{
			{Name: "Zone", Fields: map[string]string{"zone": "string", "note": "string"}},
			{Name: "CardBin", Fields: map[string]string{"bin": "string", "bank": "string", "card_type": "string", "length": "number"}},
			{Name: "Bank", Fields: map[string]string{"bank": "string", "bankname": "string"}},
		},
	}
}

// Execute routes to the owning module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Checksums
	case "data.idcard.checkcode":
		return p.checks.IDCheckCode(ctx, params, appCtx)
	case "data.idcard.validate":
		return p.checks.ValidateID(ctx, params, appCtx)
	case "data.bankcard.checkcode":
		return p.checks.CardCheckCode(ctx, params, appCtx)
	case "data.bankcard.validate":
		return p.checks.ValidateCard(ctx, params, appCtx)

	// Generation
	case "data.idcard.generate":
		return p.gen.IDNumbers(ctx, params, appCtx)
	case "data.bankcard.generate":
		return p.gen.BankCards(ctx, params, appCtx)

	// Lookups
	case "data.zone.lookup":
		return p.lookup.Zones(ctx, params, appCtx)
	case "data.cardbin.lookup":
		return p.lookup.CardBins(ctx, params, appCtx)
	case "data.bank.lookup":
		return p.lookup.Banks(ctx, params, appCtx)

	default:
		return nil, fmt.Errorf("unknown tool: %s", toolID)
	}
}
