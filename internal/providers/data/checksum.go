package data

import (
	"context"
	"strings"

	"github.com/GriffinCanCode/fishkit/internal/checksum"
	"github.com/GriffinCanCode/fishkit/internal/providers"
	"github.com/GriffinCanCode/fishkit/internal/shared/types"
	"github.com/GriffinCanCode/fishkit/internal/shared/utils"
)

// ChecksumOps computes and verifies identity and card check characters
type ChecksumOps struct {
	*DataOps
}

// GetTools returns checksum tool definitions
func (c *ChecksumOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "data.idcard.checkcode",
			Name:        "Identity Check Code",
			Description: "Compute the check character for the first 17 digits of an identity number",
			Parameters: []types.Parameter{
				{Name: "number", Type: "string", Description: "First 17 digits", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "data.idcard.validate",
			Name:        "Validate Identity Number",
			Description: "Check an 18 character identity number against its check code",
			Parameters: []types.Parameter{
				{Name: "number", Type: "string", Description: "Full identity number", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "data.bankcard.checkcode",
			Name:        "Card Check Digit",
			Description: "Compute the Luhn check digit for a card number body",
			Parameters: []types.Parameter{
				{Name: "number", Type: "string", Description: "Card number without its check digit", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "data.bankcard.validate",
			Name:        "Validate Card Number",
			Description: "Check a bank card number with the Luhn algorithm",
			Parameters: []types.Parameter{
				{Name: "number", Type: "string", Description: "Full card number", Required: true},
			},
			Returns: "object",
		},
	}
}

// IDCheckCode returns the identity check character
func (c *ChecksumOps) IDCheckCode(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	number, err := numberParam(params)
	if err != nil {
		return providers.Failure(err.Error())
	}

	code, ok := checksum.IDCheckCode(number)
	if !ok {
		return providers.Failure("number must be 17 digits not starting with 0")
	}
	return providers.Success(map[string]interface{}{
		"number":     number,
		"check_code": string(code),
	})
}

// ValidateID reports whether an identity number is valid
func (c *ChecksumOps) ValidateID(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	number, err := numberParam(params)
	if err != nil {
		return providers.Failure(err.Error())
	}

	return c.validation(KindIDCard, number, checksum.CheckIDNumber(number))
}

// CardCheckCode returns the Luhn check digit
func (c *ChecksumOps) CardCheckCode(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	number, err := numberParam(params)
	if err != nil {
		return providers.Failure(err.Error())
	}

	code, ok := checksum.CardCheckCode(number)
	if !ok {
		return providers.Failure("number must contain digits only")
	}
	return providers.Success(map[string]interface{}{
		"number":     number,
		"check_code": string(code),
	})
}

// ValidateCard reports whether a card number passes the Luhn check
func (c *ChecksumOps) ValidateCard(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	number, err := numberParam(params)
	if err != nil {
		return providers.Failure(err.Error())
	}

	return c.validation(KindBankCard, number, checksum.CheckCardNumber(number))
}

// validation reports an invalid number as a successful call with valid=false
func (c *ChecksumOps) validation(kind, number string, err error) (*types.Result, error) {
	c.recordValidation(kind, err == nil)

	data := map[string]interface{}{
		"number": number,
		"valid":  err == nil,
	}
	if err != nil {
		data["reason"] = err.Error()
	}
	return providers.Success(data)
}

func numberParam(params map[string]interface{}) (string, error) {
	number, err := providers.GetString(params, "number", true)
	if err != nil {
		return "", err
	}
	number = strings.TrimSpace(number)
	if err := utils.ValidateNumber(number, "number"); err != nil {
		return "", err
	}
	return number, nil
}
