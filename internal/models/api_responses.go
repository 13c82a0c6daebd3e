package models

// GenerateResponse is the success payload for POST /api/generate.
type GenerateResponse struct {
	Keywords    []ScoredKeyword  `json:"keywords"`
	Grouped     *GroupedKeywords `json:"grouped,omitempty"`
	Count       int              `json:"count"`
	Remaining   int              `json:"remaining"`
	IsPro       bool             `json:"isPro"`
	UserProfile UserProfile      `json:"userProfile"`
}

// UsageResponse reports the caller's quota status.
type UsageResponse struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
	IsPro     bool `json:"isPro"`
}

// CheckoutResponse carries the Stripe checkout session for the client redirect.
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
