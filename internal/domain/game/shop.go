package game

import (
	"math/rand/v2"
)

// Lottery prize kinds
const (
	PrizeDollars = "dollars"
	PrizeStokens = "stokens"
	PrizeMiner   = "miner"
	PrizeJackpot = "jackpot"
)

// Prize is what a lottery ticket paid out
type Prize struct {
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount"`
}

type prizeOdds struct {
	kind   string
	weight int
}

// weights out of 100
var lotteryTable = []prizeOdds{
	{kind: PrizeDollars, weight: 50},
	{kind: PrizeStokens, weight: 30},
	{kind: PrizeMiner, weight: 15},
	{kind: PrizeJackpot, weight: 5},
}

const (
	lotteryDollarsPerPower = 100.0
	lotteryStokens         = 2
	lotteryJackpot         = 25_000.0
)

// StokenPrice is the dollar price of one stoken, rising with each prestige
func (s *State) StokenPrice() float64 {
	return StokenBasePrice * float64(1+s.PrestigeCount)
}

// BuyStokens exchanges dollars for n stokens
func (s *State) BuyStokens(n int64) (float64, error) {
	if n < 1 || n > MaxShopOrder {
		return 0, ErrInvalidAmount
	}
	cost := s.StokenPrice() * float64(n)
	if s.Dollars < cost {
		return 0, ErrInsufficientFunds
	}
	s.Dollars -= cost
	s.Stokens += n
	return cost, nil
}

// BuyTickets exchanges stokens for n lottery tickets
func (s *State) BuyTickets(n int64) (int64, error) {
	if n < 1 || n > MaxShopOrder {
		return 0, ErrInvalidAmount
	}
	if n > s.Stokens/TicketPriceStokens {
		return 0, ErrInsufficientStokens
	}
	cost := TicketPriceStokens * n
	s.Stokens -= cost
	s.LotteryTickets += n
	return cost, nil
}

// DrawLottery spends a ticket on a weighted prize drawn from rng
func (s *State) DrawLottery(rng *rand.Rand) (*Prize, error) {
	if s.LotteryTickets < 1 {
		return nil, ErrNoTickets
	}
	s.LotteryTickets--

	roll := rng.IntN(100)
	kind := lotteryTable[len(lotteryTable)-1].kind
	for _, odds := range lotteryTable {
		if roll < odds.weight {
			kind = odds.kind
			break
		}
		roll -= odds.weight
	}

	prize := &Prize{Kind: kind}
	switch kind {
	case PrizeDollars:
		prize.Amount = lotteryDollarsPerPower * s.Pickaxe().Power * s.PrestigeMultiplier()
		s.earn(prize.Amount)
	case PrizeStokens:
		prize.Amount = lotteryStokens
		s.Stokens += lotteryStokens
	case PrizeMiner:
		prize.Amount = 1
		s.Miners++
	case PrizeJackpot:
		prize.Amount = lotteryJackpot
		s.earn(lotteryJackpot)
	}
	return prize, nil
}
