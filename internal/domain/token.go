package domain

type Collection struct {
	Address Address `json:"address"`
	Name    string  `json:"name"`
	Symbol  string  `json:"symbol"`
	BaseURI string  `json:"base_uri"`
	// Underlying is set for proxy collections.
	Underlying Address `json:"underlying,omitempty"`
}

type Token struct {
	Collection Address `json:"collection"`
	TokenID    int64   `json:"token_id"`
	Owner      Address `json:"owner"`
	Approved   Address `json:"approved"`
}
