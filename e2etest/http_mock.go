package e2etest

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// QuotesPath is the path of the mocked CoinMarketCap quotes endpoint
const QuotesPath = "/v2/cryptocurrency/quotes/latest"

// MockServer represents a mock CoinMarketCap server for testing quotes requests
type MockServer struct {
	server   *httptest.Server
	mu       sync.RWMutex // protects everything below
	cmcMock  *CoinMarketCapMock
	requests []RecordedRequest
}

// CoinMarketCapMock contains mock data for the CoinMarketCap API
type CoinMarketCapMock struct {
	APIKey string
	// Prices maps a symbol to its USD price. A nil price is served as JSON null, a symbol absent
	// from the map is left out of the response.
	Prices       map[string]*float64
	ErrorCode    int
	ErrorMessage string
}

// RecordedRequest is what the mock saw of one quotes request
type RecordedRequest struct {
	Symbols string
	APIKey  string
}

// NewMockServer creates and returns a new mock server answering with defaultPrices
func NewMockServer(apiKey string) *MockServer {
	ms := &MockServer{
		cmcMock: &CoinMarketCapMock{
			APIKey: apiKey,
			Prices: defaultPrices(),
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc(QuotesPath, ms.handleQuotes)

	// httptest.Server automatically selects a free port
	ms.server = httptest.NewServer(mux)

	return ms
}

// Close closes the mock server
func (ms *MockServer) Close() {
	if ms.server != nil {
		ms.server.Close()
	}
}

// GetURL returns the full URL of the quotes endpoint
func (ms *MockServer) GetURL() string {
	return ms.server.URL + QuotesPath
}

// SetPrice sets the USD price of symbol, nil for a null price
func (ms *MockServer) SetPrice(symbol string, price *float64) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.cmcMock.Prices[symbol] = price
}

// SetAPIError makes every following request fail with code and message
func (ms *MockServer) SetAPIError(code int, message string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.cmcMock.ErrorCode = code
	ms.cmcMock.ErrorMessage = message
}

// Requests returns the requests received so far
func (ms *MockServer) Requests() []RecordedRequest {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return append([]RecordedRequest(nil), ms.requests...)
}

type mockStatus struct {
	ErrorCode    int     `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
}

type mockCoin struct {
	Symbol string                    `json:"symbol"`
	Quote  map[string]map[string]any `json:"quote"`
}

type mockResponse struct {
	Status mockStatus            `json:"status"`
	Data   map[string][]mockCoin `json:"data,omitempty"`
}

// handleQuotes answers a quotes request from the mock data
func (ms *MockServer) handleQuotes(w http.ResponseWriter, r *http.Request) {
	symbols := r.URL.Query().Get("symbol")
	apiKey := r.Header.Get("X-CMC_PRO_API_KEY")

	log.Printf("MockServer: Received quotes request for symbols: %s", symbols)

	ms.mu.Lock()
	ms.requests = append(ms.requests, RecordedRequest{Symbols: symbols, APIKey: apiKey})
	mock := *ms.cmcMock
	prices := make(map[string]*float64, len(mock.Prices))
	for symbol, price := range mock.Prices {
		prices[symbol] = price
	}
	ms.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if apiKey != mock.APIKey {
		writeJSON(w, http.StatusUnauthorized, mockResponse{Status: errorStatus(1001, "This API Key is invalid.")})
		return
	}
	if mock.ErrorCode != 0 {
		writeJSON(w, http.StatusBadRequest, mockResponse{Status: errorStatus(mock.ErrorCode, mock.ErrorMessage)})
		return
	}

	data := make(map[string][]mockCoin)
	for _, symbol := range strings.Split(symbols, ",") {
		price, ok := prices[symbol]
		if !ok {
			continue
		}
		var usd any
		if price != nil {
			usd = *price
		}
		data[symbol] = []mockCoin{{
			Symbol: symbol,
			Quote:  map[string]map[string]any{"USD": {"price": usd}},
		}}
	}

	writeJSON(w, http.StatusOK, mockResponse{Data: data})
}

func errorStatus(code int, message string) mockStatus {
	status := mockStatus{ErrorCode: code}
	if message != "" {
		status.ErrorMessage = &message
	}
	return status
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("MockServer: Failed to write response: %v", err)
	}
}

func price(v float64) *float64 {
	return &v
}

// defaultPrices returns the quotes served unless a test overrides them
func defaultPrices() map[string]*float64 {
	return map[string]*float64{
		"BTC":  price(68000.1234),
		"ETH":  price(2500.456789),
		"SOL":  price(150.256),
		"SHIB": price(0.000024567),
	}
}
