package game

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// Market simulation constants
const (
	MinSharePrice  = 0.01
	HistoryLength  = 50
	MaxSharesTrade = 1_000_000
)

// Listing describes a simulated stock
type Listing struct {
	Symbol     string
	Name       string
	Price      float64
	Drift      float64 // mean log return per step
	Volatility float64 // standard deviation of the log return per step
}

// DefaultListings is the board of the Yates exchange
var DefaultListings = []Listing{
	{Symbol: "YATE", Name: "Yates Inc.", Price: 100, Drift: 0.001, Volatility: 0.03},
	{Symbol: "ROCK", Name: "Rock Solid Holdings", Price: 25, Drift: 0.0005, Volatility: 0.05},
	{Symbol: "PICK", Name: "Pickaxe Partners", Price: 60, Drift: 0.0008, Volatility: 0.04},
	{Symbol: "AIR", Name: "Premium Air Co.", Price: 5, Drift: 0, Volatility: 0.12},
	{Symbol: "WZRD", Name: "Wizard Tower REIT", Price: 250, Drift: 0.002, Volatility: 0.08},
}

// StockQuote is a point-in-time view of a stock
type StockQuote struct {
	Symbol  string    `json:"symbol"`
	Name    string    `json:"name"`
	Price   float64   `json:"price"`
	Change  float64   `json:"change"` // relative to the previous step
	History []float64 `json:"history"`
}

type stock struct {
	Listing
	history []float64
}

// Market is a geometric random walk over a fixed set of listings.
// It is safe for concurrent use.
type Market struct {
	mu     sync.RWMutex
	stocks map[string]*stock
	order  []string
	rng    *rand.Rand
	steps  int64
}

// NewMarket creates a market over listings driven by a PCG source seeded with seed
func NewMarket(listings []Listing, seed uint64) *Market {
	m := &Market{
		stocks: make(map[string]*stock, len(listings)),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	for _, l := range listings {
		m.stocks[l.Symbol] = &stock{Listing: l, history: []float64{l.Price}}
		m.order = append(m.order, l.Symbol)
	}
	return m
}

// Step advances every price by one random walk step
func (m *Market) Step() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, symbol := range m.order {
		st := m.stocks[symbol]
		z := m.rng.NormFloat64()
		logReturn := st.Drift - st.Volatility*st.Volatility/2 + st.Volatility*z
		st.Price = math.Max(st.Price*math.Exp(logReturn), MinSharePrice)

		st.history = append(st.history, st.Price)
		if len(st.history) > HistoryLength {
			st.history = st.history[len(st.history)-HistoryLength:]
		}
	}
	m.steps++
}

// Steps returns how many steps the market has taken
func (m *Market) Steps() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.steps
}

// Run steps the market every interval until ctx is cancelled
func (m *Market) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Step()
		}
	}
}

// Quote returns the current view of symbol
func (m *Market) Quote(symbol string) (StockQuote, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.stocks[symbol]
	if !ok {
		return StockQuote{}, fmt.Errorf("%w: %q", ErrUnknownStock, symbol)
	}
	return st.quote(), nil
}

// Quotes returns every listing in board order
func (m *Market) Quotes() []StockQuote {
	m.mu.RLock()
	defer m.mu.RUnlock()

	quotes := make([]StockQuote, 0, len(m.order))
	for _, symbol := range m.order {
		quotes = append(quotes, m.stocks[symbol].quote())
	}
	return quotes
}

func (st *stock) quote() StockQuote {
	q := StockQuote{
		Symbol:  st.Symbol,
		Name:    st.Name,
		Price:   st.Price,
		History: append([]float64(nil), st.history...),
	}
	if n := len(st.history); n > 1 {
		q.Change = st.history[n-1]/st.history[n-2] - 1
	}
	return q
}

// Trade reports an executed order
type Trade struct {
	Symbol string  `json:"symbol"`
	Shares int64   `json:"shares"`
	Price  float64 `json:"price"`
	Total  float64 `json:"total"`
}

// Buy purchases shares of symbol for the player at the current price
func (m *Market) Buy(s *State, symbol string, shares int64) (*Trade, error) {
	if shares < 1 || shares > MaxSharesTrade {
		return nil, ErrInvalidAmount
	}
	q, err := m.Quote(symbol)
	if err != nil {
		return nil, err
	}
	total := q.Price * float64(shares)
	if s.Dollars < total {
		return nil, ErrInsufficientFunds
	}

	s.Dollars -= total
	if s.Holdings == nil {
		s.Holdings = map[string]int64{}
	}
	s.Holdings[symbol] += shares
	return &Trade{Symbol: symbol, Shares: shares, Price: q.Price, Total: total}, nil
}

// Sell sells shares of symbol at the current price. Proceeds go to the wallet but do
// not count as mining earnings for prestige.
func (m *Market) Sell(s *State, symbol string, shares int64) (*Trade, error) {
	if shares < 1 || shares > MaxSharesTrade {
		return nil, ErrInvalidAmount
	}
	q, err := m.Quote(symbol)
	if err != nil {
		return nil, err
	}
	if s.Holdings[symbol] < shares {
		return nil, ErrNotEnoughShares
	}

	total := q.Price * float64(shares)
	s.Holdings[symbol] -= shares
	if s.Holdings[symbol] == 0 {
		delete(s.Holdings, symbol)
	}
	s.Dollars += total
	return &Trade{Symbol: symbol, Shares: shares, Price: q.Price, Total: total}, nil
}

// PortfolioValue is the worth of the player's holdings at current prices
func (m *Market) PortfolioValue(s *State) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var value float64
	for symbol, shares := range s.Holdings {
		if st, ok := m.stocks[symbol]; ok {
			value += st.Price * float64(shares)
		}
	}
	return value
}
