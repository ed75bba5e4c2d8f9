package game

import (
	"fmt"
	"math"
	"time"
)

// MiningResult reports what a click batch or an idle tick produced
type MiningResult struct {
	RocksBroken   int64   `json:"rocks_broken"`
	DollarsEarned float64 `json:"dollars_earned"`
	StokensEarned int64   `json:"stokens_earned"`
}

func (r *MiningResult) add(o MiningResult) {
	r.RocksBroken += o.RocksBroken
	r.DollarsEarned += o.DollarsEarned
	r.StokensEarned += o.StokensEarned
}

// damage applies raw damage to the current rock, paying out broken rocks at multiplier
func (s *State) damage(amount, multiplier float64) MiningResult {
	var res MiningResult
	if amount <= 0 {
		return res
	}

	rock := s.Rock()
	total := s.RockDamage + amount
	broken := math.Floor(total / rock.HP)
	s.RockDamage = total - broken*rock.HP
	if broken == 0 {
		return res
	}

	res.RocksBroken = int64(broken)
	res.DollarsEarned = broken * rock.Reward * multiplier
	s.earn(res.DollarsEarned)

	before := s.RocksBroken
	s.RocksBroken += res.RocksBroken
	res.StokensEarned = s.RocksBroken/RocksPerStoken - before/RocksPerStoken
	s.Stokens += res.StokensEarned

	return res
}

// Click applies n pickaxe swings to the current rock at now
func (s *State) Click(n int, now time.Time) (MiningResult, error) {
	if n < 1 {
		return MiningResult{}, ErrInvalidAmount
	}
	s.expireBuffs(now)
	s.TotalClicks += int64(n)
	return s.damage(float64(n)*s.Pickaxe().Power, s.Multiplier(now)), nil
}

// Tick accrues idle mining by the miners from the last tick to now. Elapsed time is
// capped at offlineCap (no cap when zero). Buff expiries inside the interval are honoured.
func (s *State) Tick(now time.Time, offlineCap time.Duration) MiningResult {
	var res MiningResult
	if s.LastTick.IsZero() || !now.After(s.LastTick) {
		if s.LastTick.IsZero() {
			s.LastTick = now
		}
		return res
	}

	from := s.LastTick
	if offlineCap > 0 && now.Sub(from) > offlineCap {
		from = now.Add(-offlineCap)
	}

	if s.Miners > 0 {
		segmentStart := from
		for _, end := range append(s.breakpoints(from, now), now) {
			seconds := end.Sub(segmentStart).Seconds()
			res.add(s.damage(float64(s.Miners)*MinerPower*seconds, s.Multiplier(segmentStart)))
			segmentStart = end
		}
	}

	s.expireBuffs(now)
	s.LastTick = now
	return res
}

// IdleRate is the dollars per second the miners currently produce at now
func (s *State) IdleRate(now time.Time) float64 {
	rock := s.Rock()
	return float64(s.Miners) * MinerPower / rock.HP * rock.Reward * s.Multiplier(now)
}

// BuyPickaxe purchases a pickaxe and equips it
func (s *State) BuyPickaxe(id string) error {
	p, ok := LookupPickaxe(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPickaxe, id)
	}
	if s.owns(id) {
		return ErrAlreadyOwned
	}
	if s.PrestigeCount < p.RequiresPrestige {
		return fmt.Errorf("%w: %s needs prestige %d", ErrLocked, p.Name, p.RequiresPrestige)
	}
	if s.Dollars < p.Price {
		return ErrInsufficientFunds
	}
	s.Dollars -= p.Price
	s.OwnedPickaxes = append(s.OwnedPickaxes, id)
	s.EquippedPickaxe = id
	return nil
}

// EquipPickaxe switches to an owned pickaxe. If the current rock becomes too hard,
// mining falls back to the hardest rock the pickaxe can handle.
func (s *State) EquipPickaxe(id string) error {
	if _, ok := LookupPickaxe(id); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPickaxe, id)
	}
	if !s.owns(id) {
		return ErrNotOwned
	}
	s.EquippedPickaxe = id

	power := s.Pickaxe().Power
	if s.Rock().MinPower > power {
		best := rockOrder[0]
		for _, r := range rockOrder {
			if r.MinPower <= power {
				best = r
			}
		}
		s.CurrentRock = best.ID
		s.RockDamage = 0
	}
	return nil
}

// SelectRock starts mining another rock, discarding damage dealt to the current one
func (s *State) SelectRock(id string) error {
	r, ok := LookupRock(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRock, id)
	}
	if s.Pickaxe().Power < r.MinPower {
		return fmt.Errorf("%w: %s needs pickaxe power %.0f", ErrLocked, r.Name, r.MinPower)
	}
	if s.CurrentRock != id {
		s.CurrentRock = id
		s.RockDamage = 0
	}
	return nil
}

// MinerCost is the price of hiring n miners on top of the ones already employed
func (s *State) MinerCost(n int64) float64 {
	var total float64
	for k := s.Miners; k < s.Miners+n; k++ {
		total += MinerBaseCost * math.Pow(MinerCostGrowth, float64(k))
	}
	return total
}

// HireMiners buys n miners
func (s *State) HireMiners(n int64) (float64, error) {
	if n < 1 || n > MaxMinersPerHire {
		return 0, fmt.Errorf("%w: hire between 1 and %d miners", ErrInvalidAmount, MaxMinersPerHire)
	}
	cost := s.MinerCost(n)
	if s.Dollars < cost {
		return 0, ErrInsufficientFunds
	}
	s.Dollars -= cost
	s.Miners += n
	return cost, nil
}
