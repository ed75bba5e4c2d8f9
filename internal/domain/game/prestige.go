package game

import (
	"fmt"
	"math"
	"time"
)

// PrestigeResult reports the outcome of a prestige reset
type PrestigeResult struct {
	TokensGained  int64   `json:"tokens_gained"`
	PrestigeCount int64   `json:"prestige_count"`
	Multiplier    float64 `json:"multiplier"`
}

// PrestigeTokensAvailable is the number of tokens a prestige would grant right now
func (s *State) PrestigeTokensAvailable() int64 {
	return int64(math.Floor(math.Sqrt(s.RunDollars / PrestigeUnit)))
}

// Prestige resets the run in exchange for permanent tokens. Stokens, lottery tickets,
// tokens, the wizard tower and an active ritual survive; dollars, pickaxes, the rock,
// miners, the sacrifice buff and stock holdings do not.
func (s *State) Prestige() (*PrestigeResult, error) {
	gained := s.PrestigeTokensAvailable()
	if gained < 1 {
		return nil, ErrPrestigeUnavailable
	}

	s.PrestigeCount++
	s.PrestigeTokens += gained

	s.Dollars = 0
	s.RunDollars = 0
	s.OwnedPickaxes = []string{StarterPickaxe}
	s.EquippedPickaxe = StarterPickaxe
	s.CurrentRock = StarterRock
	s.RockDamage = 0
	s.Miners = 0
	s.Sacrifice = nil
	s.Holdings = map[string]int64{}

	return &PrestigeResult{
		TokensGained:  gained,
		PrestigeCount: s.PrestigeCount,
		Multiplier:    s.PrestigeMultiplier(),
	}, nil
}

// BuildWizardTower unlocks rituals
func (s *State) BuildWizardTower() error {
	if s.WizardTower {
		return fmt.Errorf("%w: wizard tower already built", ErrLocked)
	}
	if s.PrestigeCount < WizardTowerPrestige {
		return fmt.Errorf("%w: wizard tower needs prestige %d", ErrLocked, WizardTowerPrestige)
	}
	if s.Dollars < WizardTowerCost {
		return ErrInsufficientFunds
	}
	s.Dollars -= WizardTowerCost
	s.WizardTower = true
	return nil
}

// PerformRitual spends stokens for a timed multiplier. Only one ritual runs at a time.
func (s *State) PerformRitual(id string, now time.Time) (*ActiveRitual, error) {
	r, ok := LookupRitual(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRitual, id)
	}
	if !s.WizardTower {
		return nil, ErrNoWizardTower
	}
	s.expireBuffs(now)
	if s.Ritual != nil {
		return nil, ErrRitualActive
	}
	if s.Stokens < r.CostStokens {
		return nil, ErrInsufficientStokens
	}

	s.Stokens -= r.CostStokens
	s.Ritual = &ActiveRitual{
		ID:         r.ID,
		Multiplier: r.Multiplier,
		ExpiresAt:  now.Add(r.Duration),
	}
	return s.Ritual, nil
}

// SacrificeMiners trades n miners for a timed multiplier. Sacrifices made while the
// buff is active stack and refresh its duration.
func (s *State) SacrificeMiners(n int64, now time.Time) (*SacrificeBuff, error) {
	if n < 1 {
		return nil, ErrInvalidAmount
	}
	if n > s.Miners {
		return nil, ErrNotEnoughMiners
	}
	s.expireBuffs(now)

	s.Miners -= n
	if s.Sacrifice == nil {
		s.Sacrifice = &SacrificeBuff{}
	}
	s.Sacrifice.Count += n
	s.Sacrifice.ExpiresAt = now.Add(SacrificeDuration)
	return s.Sacrifice, nil
}
