package game

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// ActiveRitual is a ritual currently boosting income
type ActiveRitual struct {
	ID         string    `json:"id"`
	Multiplier float64   `json:"multiplier"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// SacrificeBuff is the income boost bought by sacrificing miners
type SacrificeBuff struct {
	Count     int64     `json:"count"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Multiplier returns the boost granted by the sacrificed miners
func (b *SacrificeBuff) Multiplier() float64 {
	return math.Min(1+SacrificeBonus*float64(b.Count), SacrificeMaxBonus)
}

// State is a player's complete game progress
type State struct {
	Dollars         float64          `json:"dollars"`
	Stokens         int64            `json:"stokens"`
	LotteryTickets  int64            `json:"lottery_tickets"`
	OwnedPickaxes   []string         `json:"owned_pickaxes"`
	EquippedPickaxe string           `json:"equipped_pickaxe"`
	CurrentRock     string           `json:"current_rock"`
	RockDamage      float64          `json:"rock_damage"`
	Miners          int64            `json:"miners"`
	RocksBroken     int64            `json:"rocks_broken"`
	TotalClicks     int64            `json:"total_clicks"`
	RunDollars      float64          `json:"run_dollars"`
	LifetimeDollars float64          `json:"lifetime_dollars"`
	PrestigeCount   int64            `json:"prestige_count"`
	PrestigeTokens  int64            `json:"prestige_tokens"`
	WizardTower     bool             `json:"wizard_tower"`
	Ritual          *ActiveRitual    `json:"ritual,omitempty"`
	Sacrifice       *SacrificeBuff   `json:"sacrifice,omitempty"`
	Holdings        map[string]int64 `json:"holdings"`
	LastTick        time.Time        `json:"last_tick"`
}

// NewState returns the state of a brand new player
func NewState(now time.Time) *State {
	return &State{
		OwnedPickaxes:   []string{StarterPickaxe},
		EquippedPickaxe: StarterPickaxe,
		CurrentRock:     StarterRock,
		Holdings:        map[string]int64{},
		LastTick:        now,
	}
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	c := *s
	c.OwnedPickaxes = append([]string(nil), s.OwnedPickaxes...)
	c.Holdings = make(map[string]int64, len(s.Holdings))
	for k, v := range s.Holdings {
		c.Holdings[k] = v
	}
	if s.Ritual != nil {
		r := *s.Ritual
		c.Ritual = &r
	}
	if s.Sacrifice != nil {
		b := *s.Sacrifice
		c.Sacrifice = &b
	}
	return &c
}

// Validate checks that a state, typically uploaded by a client, is internally consistent
func (s *State) Validate() error {
	if s.Dollars < 0 || s.RunDollars < 0 || s.LifetimeDollars < 0 || math.IsNaN(s.Dollars) || math.IsInf(s.Dollars, 0) {
		return fmt.Errorf("%w: negative or non-finite dollars", ErrInvalidState)
	}
	if s.Stokens < 0 || s.LotteryTickets < 0 || s.Miners < 0 || s.RocksBroken < 0 || s.TotalClicks < 0 {
		return fmt.Errorf("%w: negative counter", ErrInvalidState)
	}
	if s.PrestigeCount < 0 || s.PrestigeTokens < 0 {
		return fmt.Errorf("%w: negative prestige", ErrInvalidState)
	}
	if s.RunDollars > s.LifetimeDollars {
		return fmt.Errorf("%w: run earnings exceed lifetime earnings", ErrInvalidState)
	}
	for _, id := range s.OwnedPickaxes {
		if _, ok := LookupPickaxe(id); !ok {
			return fmt.Errorf("%w: %w %q", ErrInvalidState, ErrUnknownPickaxe, id)
		}
	}
	if !s.owns(s.EquippedPickaxe) {
		return fmt.Errorf("%w: equipped pickaxe %q not owned", ErrInvalidState, s.EquippedPickaxe)
	}
	rock, ok := LookupRock(s.CurrentRock)
	if !ok {
		return fmt.Errorf("%w: %w %q", ErrInvalidState, ErrUnknownRock, s.CurrentRock)
	}
	if s.RockDamage < 0 || s.RockDamage >= rock.HP {
		return fmt.Errorf("%w: rock damage out of range", ErrInvalidState)
	}
	if s.Ritual != nil && !s.WizardTower {
		return fmt.Errorf("%w: ritual without wizard tower", ErrInvalidState)
	}
	for symbol, shares := range s.Holdings {
		if shares < 0 {
			return fmt.Errorf("%w: negative holding of %s", ErrInvalidState, symbol)
		}
	}
	return nil
}

// Pickaxe returns the equipped pickaxe, falling back to the starter one
func (s *State) Pickaxe() Pickaxe {
	if p, ok := LookupPickaxe(s.EquippedPickaxe); ok {
		return p
	}
	p, _ := LookupPickaxe(StarterPickaxe)
	return p
}

// Rock returns the rock being mined, falling back to the starter one
func (s *State) Rock() Rock {
	if r, ok := LookupRock(s.CurrentRock); ok {
		return r
	}
	r, _ := LookupRock(StarterRock)
	return r
}

// PrestigeMultiplier is the permanent bonus from prestige tokens
func (s *State) PrestigeMultiplier() float64 {
	return 1 + PrestigeTokenBonus*float64(s.PrestigeTokens)
}

// Multiplier returns the total income multiplier in effect at now
func (s *State) Multiplier(now time.Time) float64 {
	m := s.PrestigeMultiplier()
	if s.Ritual != nil && now.Before(s.Ritual.ExpiresAt) {
		m *= s.Ritual.Multiplier
	}
	if s.Sacrifice != nil && now.Before(s.Sacrifice.ExpiresAt) {
		m *= s.Sacrifice.Multiplier()
	}
	return m
}

// expireBuffs drops buffs that ended at or before now
func (s *State) expireBuffs(now time.Time) {
	if s.Ritual != nil && !now.Before(s.Ritual.ExpiresAt) {
		s.Ritual = nil
	}
	if s.Sacrifice != nil && !now.Before(s.Sacrifice.ExpiresAt) {
		s.Sacrifice = nil
	}
}

// earn credits income to the wallet and the prestige counters
func (s *State) earn(amount float64) {
	s.Dollars += amount
	s.RunDollars += amount
	s.LifetimeDollars += amount
}

func (s *State) owns(pickaxeID string) bool {
	for _, id := range s.OwnedPickaxes {
		if id == pickaxeID {
			return true
		}
	}
	return false
}

// breakpoints returns the buff expiries strictly inside (from, to), sorted
func (s *State) breakpoints(from, to time.Time) []time.Time {
	var points []time.Time
	if s.Ritual != nil && s.Ritual.ExpiresAt.After(from) && s.Ritual.ExpiresAt.Before(to) {
		points = append(points, s.Ritual.ExpiresAt)
	}
	if s.Sacrifice != nil && s.Sacrifice.ExpiresAt.After(from) && s.Sacrifice.ExpiresAt.Before(to) {
		points = append(points, s.Sacrifice.ExpiresAt)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Before(points[j]) })
	return points
}
