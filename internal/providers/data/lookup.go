package data

import (
	"context"
	"errors"

	"github.com/GriffinCanCode/fishkit/internal/providers"
	"github.com/GriffinCanCode/fishkit/internal/refdata"
	"github.com/GriffinCanCode/fishkit/internal/shared/types"
	"github.com/GriffinCanCode/fishkit/internal/shared/utils"
)

// LookupOps answers reference data queries
type LookupOps struct {
	*DataOps
	Store Lookup
}

// GetTools returns lookup tool definitions
func (l *LookupOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "data.zone.lookup",
			Name:        "Zone Lookup",
			Description: "Find administrative zone codes by area name",
			Parameters: []types.Parameter{
				{Name: "area", Type: "string", Description: "Area name, e.g. 北京市", Required: false},
				{Name: "match", Type: "string", Description: "EXACT (default) or FUZZY", Required: false},
				{Name: "single", Type: "boolean", Description: "Return only the first zone code", Required: false},
				{Name: "random", Type: "boolean", Description: "Ignore area and return one random district", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "data.cardbin.lookup",
			Name:        "Card BIN Lookup",
			Description: "List the card BINs a bank issues for a card type",
			Parameters: []types.Parameter{
				{Name: "bank", Type: "string", Description: "Bank code such as CMB", Required: true},
				{Name: "card_type", Type: "string", Description: "DC, CC, SCC or PC (default DC)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "data.bank.lookup",
			Name:        "Bank Lookup",
			Description: "Find bank codes by full bank name",
			Parameters: []types.Parameter{
				{Name: "name", Type: "string", Description: "Bank name, e.g. 招商银行", Required: true},
			},
			Returns: "object",
		},
	}
}

// Zones looks up zone codes
func (l *LookupOps) Zones(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if providers.GetBool(params, "random", false) {
		zone, err := l.Store.RandomZone(ctx)
		if err != nil {
			return lookupFailure(err)
		}
		return providers.Success(map[string]interface{}{"zone": zone})
	}

	area, err := providers.GetString(params, "area", true)
	if err != nil {
		return providers.Failure(err.Error())
	}
	if err := utils.ValidateString(area, "area", 1, utils.MaxAreaLength, true); err != nil {
		return providers.Failure(err.Error())
	}
	matchName, err := providers.GetString(params, "match", false)
	if err != nil {
		return providers.Failure(err.Error())
	}
	match, err := refdata.ParseMatchType(matchName)
	if err != nil {
		return providers.Failure(err.Error())
	}

	if providers.GetBool(params, "single", false) {
		code, err := l.Store.ZoneCodeByArea(ctx, area, match)
		if err != nil {
			return lookupFailure(err)
		}
		return providers.Success(map[string]interface{}{"code": code})
	}

	zones, err := l.Store.ZonesByArea(ctx, area, match)
	if err != nil {
		return lookupFailure(err)
	}
	return providers.Success(map[string]interface{}{
		"zones": zones,
		"count": len(zones),
	})
}

// CardBins lists a bank's BINs
func (l *LookupOps) CardBins(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	bank, err := providers.GetString(params, "bank", true)
	if err != nil {
		return providers.Failure(err.Error())
	}
	typeName, err := providers.GetString(params, "card_type", false)
	if err != nil {
		return providers.Failure(err.Error())
	}
	cardType := refdata.CardDebit
	if typeName != "" {
		if cardType, err = refdata.ParseCardType(typeName); err != nil {
			return providers.Failure(err.Error())
		}
	}

	bins, err := l.Store.CardBinsByBank(ctx, bank, cardType)
	if err != nil {
		return lookupFailure(err)
	}
	return providers.Success(map[string]interface{}{
		"bins":  bins,
		"count": len(bins),
	})
}

// Banks looks up bank codes by name
func (l *LookupOps) Banks(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, err := providers.GetString(params, "name", true)
	if err != nil {
		return providers.Failure(err.Error())
	}

	banks, err := l.Store.BanksByName(ctx, name)
	if err != nil {
		return lookupFailure(err)
	}
	return providers.Success(map[string]interface{}{
		"banks": banks,
		"count": len(banks),
	})
}

func lookupFailure(err error) (*types.Result, error) {
	switch {
	case errors.Is(err, refdata.ErrEmptyQuery),
		errors.Is(err, refdata.ErrUnknownMatch),
		errors.Is(err, refdata.ErrUnknownCardType):
		return providers.Failure(err.Error())
	default:
		return nil, err
	}
}
