package coinmarketcap

// QuotesResponse is the body of a v2 latest quotes response
type QuotesResponse struct {
	Status *ResponseStatus          `json:"status"`
	Data   map[string][]CoinQuotes `json:"data"`
}

// ResponseStatus reports the outcome of a call. ErrorCode 0 means success.
type ResponseStatus struct {
	ErrorCode    *int    `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
	Elapsed      int     `json:"elapsed"`
	CreditCount  int     `json:"credit_count"`
}

// CoinQuotes is one cryptocurrency matching a requested symbol. Several coins may share a
// symbol, the first one is the ranked one.
type CoinQuotes struct {
	ID     int              `json:"id"`
	Name   string           `json:"name"`
	Symbol string           `json:"symbol"`
	Quote  map[string]Quote `json:"quote"`
}

// Quote is the market data of a coin in one convert currency
type Quote struct {
	Price       *float64 `json:"price"`
	LastUpdated string   `json:"last_updated"`
}
