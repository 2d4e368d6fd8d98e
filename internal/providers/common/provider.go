// Package common exposes general purpose helpers as the "common" service.
package common

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/fishkit/internal/providers"
	"github.com/GriffinCanCode/fishkit/internal/shared/id"
	"github.com/GriffinCanCode/fishkit/internal/shared/types"
	"github.com/GriffinCanCode/fishkit/internal/shared/utils"
)

// Element check modes accepted by common.elements.check
const (
	ModeBlank   = "blank"
	ModeSafe    = "safe"
	ModeDigits  = "digits"
	ModeLetters = "letters"
)

// Provider implements the common service
type Provider struct{}

// NewProvider creates a common provider
func NewProvider() *Provider {
	return &Provider{}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "common",
		Name:        "Common Service",
		Description: "General helpers: uuid generation, json containment, sorted values, character checks",
		Category:    types.CategoryCommon,
		Capabilities: []string{
			"uuid",
			"json",
			"sort",
			"string_check",
		},
		Tools: []types.Tool{
			{
				ID:          "common.uuid",
				Name:        "UUID",
				Description: "Generate a time based, random or sortable identifier",
				Parameters: []types.Parameter{
					{Name: "kind", Type: "string", Description: "time, random (default) or sortable", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "common.json.contains",
				Name:        "JSON Contains",
				Description: "Check that every key of left appears in right with an equal value",
				Parameters: []types.Parameter{
					{Name: "left", Type: "object", Description: "Subset object or its JSON text", Required: true},
					{Name: "right", Type: "object", Description: "Superset object or its JSON text", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "common.dict.sorted",
				Name:        "Sorted Values",
				Description: "Return the values of a string map in sorted order",
				Parameters: []types.Parameter{
					{Name: "values", Type: "object", Description: "Map of string values", Required: true},
					{Name: "order", Type: "string", Description: "asc (default) or desc", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "common.string.check",
				Name:        "String Check",
				Description: "Check whether a string contains chinese characters or digits",
				Parameters: []types.Parameter{
					{Name: "value", Type: "string", Description: "String to inspect", Required: true},
					{Name: "class", Type: "string", Description: "chinese or digit", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "common.elements.check",
				Name:        "Elements Check",
				Description: "Check a list of strings for blanks, unsafe characters, digits or letters",
				Parameters: []types.Parameter{
					{Name: "values", Type: "array", Description: "Strings to inspect", Required: true},
					{Name: "mode", Type: "string", Description: "blank, safe, digits or letters", Required: true},
				},
				Returns: "boolean",
			},
		},
	}
}

// Execute routes to the tool implementation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "common.uuid":
		return p.uuid(params)
	case "common.json.contains":
		return p.jsonContains(params)
	case "common.dict.sorted":
		return p.sorted(params)
	case "common.string.check":
		return p.stringCheck(params)
	case "common.elements.check":
		return p.elementsCheck(params)
	default:
		return nil, fmt.Errorf("unknown tool: %s", toolID)
	}
}

func (p *Provider) uuid(params map[string]interface{}) (*types.Result, error) {
	name, err := providers.GetString(params, "kind", false)
	if err != nil {
		return providers.Failure(err.Error())
	}

	kind := id.ParseKind(name)
	return providers.Success(map[string]interface{}{
		"uuid": id.NewUUID(kind),
		"kind": string(kind),
	})
}

func (p *Provider) jsonContains(params map[string]interface{}) (*types.Result, error) {
	left, err := objectParam(params, "left")
	if err != nil {
		return providers.Failure(err.Error())
	}
	right, err := objectParam(params, "right")
	if err != nil {
		return providers.Failure(err.Error())
	}

	return providers.Success(map[string]interface{}{
		"contains": utils.JSONContains(left, right),
	})
}

func (p *Provider) sorted(params map[string]interface{}) (*types.Result, error) {
	values, err := providers.GetStringMap(params, "values")
	if err != nil {
		return providers.Failure(err.Error())
	}
	order, err := providers.GetString(params, "order", false)
	if err != nil {
		return providers.Failure(err.Error())
	}
	if order == "" {
		order = string(utils.OrderAsc)
	}

	out := utils.SortedValues(values, utils.Order(strings.ToLower(order)))
	if out == nil {
		return providers.Failuref("order must be %s or %s", utils.OrderAsc, utils.OrderDesc)
	}
	return providers.Success(map[string]interface{}{"values": out})
}

func (p *Provider) stringCheck(params map[string]interface{}) (*types.Result, error) {
	value, err := providers.GetString(params, "value", false)
	if err != nil {
		return providers.Failure(err.Error())
	}
	class, err := providers.GetString(params, "class", true)
	if err != nil {
		return providers.Failure(err.Error())
	}

	cc := utils.CharClass(strings.ToLower(class))
	if cc != utils.CharChinese && cc != utils.CharDigit {
		return providers.Failuref("class must be %s or %s", utils.CharChinese, utils.CharDigit)
	}
	return providers.Success(map[string]interface{}{
		"contains": utils.ContainsClass(value, cc),
	})
}

func (p *Provider) elementsCheck(params map[string]interface{}) (*types.Result, error) {
	values, err := providers.GetStrings(params, "values")
	if err != nil {
		return providers.Failure(err.Error())
	}
	mode, err := providers.GetString(params, "mode", true)
	if err != nil {
		return providers.Failure(err.Error())
	}

	var ok bool
	switch strings.ToLower(mode) {
	case ModeBlank:
		ok = utils.AnyBlank(values...)
	case ModeSafe:
		ok = utils.AllSafe(values...)
	case ModeDigits:
		ok = utils.AllDigits(values...)
	case ModeLetters:
		ok = utils.AllLetters(values...)
	default:
		return providers.Failuref("mode must be one of %s, %s, %s, %s", ModeBlank, ModeSafe, ModeDigits, ModeLetters)
	}
	return providers.Success(map[string]interface{}{"result": ok})
}

// objectParam accepts either a decoded object or a JSON string holding one
func objectParam(params map[string]interface{}, key string) (map[string]interface{}, error) {
	switch v := params[key].(type) {
	case map[string]interface{}:
		return v, nil
	case string:
		if err := utils.DefaultJSONValidator().ValidateSize([]byte(v)); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		var m map[string]interface{}
		if err := sonic.UnmarshalString(v, &m); err != nil {
			return nil, fmt.Errorf("%s is not a JSON object: %w", key, err)
		}
		if m == nil {
			return nil, fmt.Errorf("%s must be a JSON object", key)
		}
		return m, nil
	case nil:
		return nil, fmt.Errorf("%s parameter required", key)
	default:
		return nil, fmt.Errorf("%s must be object", key)
	}
}
