package types

// ExecuteRequest represents a service execution request
type ExecuteRequest struct {
	ToolID string                 `json:"tool_id" binding:"required"`
	Params map[string]interface{} `json:"params" binding:"required"`
	AppID  *string                `json:"app_id,omitempty"`
}

// DiscoverRequest asks the registry for services matching an intent
type DiscoverRequest struct {
	Intent string `json:"intent" binding:"required"`
	Limit  int    `json:"limit"`
}

// IDGenerateRequest is the body of POST /v1/idcard/generate
type IDGenerateRequest struct {
	Area   string `json:"area"`
	Match  string `json:"match"`
	Gender string `json:"gender"`
	MinAge int    `json:"min_age"`
	MaxAge int    `json:"max_age"`
	Count  int    `json:"count"`
}

// CardGenerateRequest is the body of POST /v1/bankcard/generate
type CardGenerateRequest struct {
	Bank     string `json:"bank" binding:"required"`
	CardType string `json:"card_type"`
	Count    int    `json:"count"`
}

// ValidationResponse reports the outcome of a checksum validation
type ValidationResponse struct {
	Number string  `json:"number"`
	Valid  bool    `json:"valid"`
	Reason *string `json:"reason,omitempty"`
}
