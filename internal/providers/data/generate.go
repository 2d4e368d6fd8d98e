package data

import (
	"context"
	"errors"
	"strings"

	"github.com/GriffinCanCode/fishkit/internal/generate"
	"github.com/GriffinCanCode/fishkit/internal/providers"
	"github.com/GriffinCanCode/fishkit/internal/refdata"
	"github.com/GriffinCanCode/fishkit/internal/shared/types"
)

// GenerateOps builds synthetic identity and card numbers
type GenerateOps struct {
	*DataOps
	Generator *generate.Generator
}

// GetTools returns generation tool definitions
func (g *GenerateOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "data.idcard.generate",
			Name:        "Generate Identity Numbers",
			Description: "Generate synthetic identity numbers with valid check codes for testing",
			Parameters: []types.Parameter{
				{Name: "area", Type: "string", Description: "Zone name to issue from (any zone when empty)", Required: false},
				{Name: "match", Type: "string", Description: "EXACT or FUZZY area matching", Required: false},
				{Name: "gender", Type: "string", Description: "male, female or any", Required: false},
				{Name: "min_age", Type: "number", Description: "Youngest age in years", Required: false},
				{Name: "max_age", Type: "number", Description: "Oldest age in years", Required: false},
				{Name: "count", Type: "number", Description: "How many numbers to build (default 1)", Required: false},
			},
			Returns: "object",
		},
		{
			ID:          "data.bankcard.generate",
			Name:        "Generate Card Numbers",
			Description: "Generate synthetic Luhn-valid bank card numbers for testing",
			Parameters: []types.Parameter{
				{Name: "bank", Type: "string", Description: "Bank code such as CMB", Required: true},
				{Name: "card_type", Type: "string", Description: "DC, CC, SCC or PC (default DC)", Required: false},
				{Name: "count", Type: "number", Description: "How many numbers to build (default 1)", Required: false},
			},
			Returns: "object",
		},
	}
}

// IDNumbers generates identity numbers
func (g *GenerateOps) IDNumbers(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	req, count, err := idRequestParams(params)
	if err != nil {
		return providers.Failure(err.Error())
	}

	numbers, err := g.Generator.IDNumbers(ctx, req, count)
	if err != nil {
		return generateFailure(err)
	}

	g.recordGenerated(KindIDCard, len(numbers))
	return providers.Success(map[string]interface{}{
		"numbers": numbers,
		"count":   len(numbers),
	})
}

// BankCards generates card numbers
func (g *GenerateOps) BankCards(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	bank, err := providers.GetString(params, "bank", true)
	if err != nil {
		return providers.Failure(err.Error())
	}
	cardType, err := providers.GetString(params, "card_type", false)
	if err != nil {
		return providers.Failure(err.Error())
	}
	count, err := providers.GetInt(params, "count", 1)
	if err != nil {
		return providers.Failure(err.Error())
	}

	req := generate.CardRequest{Bank: bank, CardType: refdata.CardType(strings.ToUpper(cardType))}
	numbers, err := g.Generator.BankCards(ctx, req, count)
	if err != nil {
		return generateFailure(err)
	}

	g.recordGenerated(KindBankCard, len(numbers))
	return providers.Success(map[string]interface{}{
		"numbers": numbers,
		"count":   len(numbers),
	})
}

func idRequestParams(params map[string]interface{}) (generate.IDRequest, int, error) {
	var req generate.IDRequest

	area, err := providers.GetString(params, "area", false)
	if err != nil {
		return req, 0, err
	}
	match, err := providers.GetString(params, "match", false)
	if err != nil {
		return req, 0, err
	}
	gender, err := providers.GetString(params, "gender", false)
	if err != nil {
		return req, 0, err
	}
	minAge, err := providers.GetInt(params, "min_age", 0)
	if err != nil {
		return req, 0, err
	}
	maxAge, err := providers.GetInt(params, "max_age", 0)
	if err != nil {
		return req, 0, err
	}
	count, err := providers.GetInt(params, "count", 1)
	if err != nil {
		return req, 0, err
	}

	req = generate.IDRequest{
		Area:   area,
		Match:  refdata.MatchType(match),
		Gender: generate.Gender(strings.ToLower(gender)),
		MinAge: minAge,
		MaxAge: maxAge,
	}
	return req, count, nil
}

// generateFailure turns caller mistakes into a failed result and passes
// everything else up as an execution error.
func generateFailure(err error) (*types.Result, error) {
	switch {
	case errors.Is(err, generate.ErrInvalidRequest),
		errors.Is(err, generate.ErrNoZone),
		errors.Is(err, generate.ErrNoCardBin),
		errors.Is(err, generate.ErrBatchSize):
		return providers.Failure(err.Error())
	default:
		return nil, err
	}
}
