package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/fishkit/internal/shared/types"
	"github.com/GriffinCanCode/fishkit/internal/shared/utils"
)

// ValidateIDNumber checks the identity number in the path
func (h *Handlers) ValidateIDNumber(c *gin.Context) {
	h.validateNumber(c, "data.idcard.validate")
}

// ValidateCardNumber checks the card number in the path
func (h *Handlers) ValidateCardNumber(c *gin.Context) {
	h.validateNumber(c, "data.bankcard.validate")
}

func (h *Handlers) validateNumber(c *gin.Context, toolID string) {
	number := c.Param("number")
	if err := utils.ValidateNumber(number, "number"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, ok := h.run(c, toolID, map[string]interface{}{"number": number})
	if !ok {
		return
	}

	resp := types.ValidationResponse{Number: number}
	resp.Valid, _ = result.Data["valid"].(bool)
	if reason, ok := result.Data["reason"].(string); ok {
		resp.Reason = &reason
	}
	c.JSON(http.StatusOK, resp)
}

// GenerateIDNumbers builds synthetic identity numbers
func (h *Handlers) GenerateIDNumbers(c *gin.Context) {
	var req types.IDGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := map[string]interface{}{
		"area":    req.Area,
		"match":   req.Match,
		"gender":  req.Gender,
		"min_age": req.MinAge,
		"max_age": req.MaxAge,
		"count":   countOrOne(req.Count),
	}
	if result, ok := h.run(c, "data.idcard.generate", params); ok {
		c.JSON(http.StatusOK, result.Data)
	}
}

// GenerateCardNumbers builds synthetic bank card numbers
func (h *Handlers) GenerateCardNumbers(c *gin.Context) {
	var req types.CardGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := map[string]interface{}{
		"bank":      req.Bank,
		"card_type": req.CardType,
		"count":     countOrOne(req.Count),
	}
	if result, ok := h.run(c, "data.bankcard.generate", params); ok {
		c.JSON(http.StatusOK, result.Data)
	}
}

// run executes a tool and writes the error response itself when the call
// fails; ok reports whether the caller should write the result.
func (h *Handlers) run(c *gin.Context, toolID string, params map[string]interface{}) (*types.Result, bool) {
	result, err := h.execute(c, toolID, params, nil)
	if err != nil {
		h.writeExecuteError(c, toolID, err)
		return nil, false
	}
	if result == nil || !result.Success {
		msg := "request rejected"
		if result != nil && result.Error != nil {
			msg = *result.Error
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return nil, false
	}
	return result, true
}

func countOrOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}
