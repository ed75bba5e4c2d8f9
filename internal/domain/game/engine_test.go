//go:build unit
// +build unit

package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func TestState_Click(t *testing.T) {
	s := NewState(t0)

	res, err := s.Click(3, t0)
	require.NoError(t, err)
	assert.Zero(t, res.RocksBroken)
	assert.InDelta(t, 3, s.RockDamage, 1e-9)

	res, err = s.Click(2, t0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RocksBroken)
	assert.InDelta(t, 2, res.DollarsEarned, 1e-9)
	assert.InDelta(t, 2, s.Dollars, 1e-9)
	assert.Zero(t, s.RockDamage)
	assert.Equal(t, int64(5), s.TotalClicks)

	_, err = s.Click(0, t0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestState_ClickGrantsStokens(t *testing.T) {
	s := NewState(t0)

	res, err := s.Click(125, t0)
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.RocksBroken)
	assert.Equal(t, int64(1), res.StokensEarned)
	assert.Equal(t, int64(1), s.Stokens)
	assert.InDelta(t, 50, s.RunDollars, 1e-9)
	assert.InDelta(t, 50, s.LifetimeDollars, 1e-9)
}

func TestState_Tick(t *testing.T) {
	s := NewState(t0)
	s.Miners = 2

	res := s.Tick(t0.Add(10*time.Second), 0)
	assert.Equal(t, int64(4), res.RocksBroken)
	assert.InDelta(t, 8, s.Dollars, 1e-9)
	assert.Equal(t, t0.Add(10*time.Second), s.LastTick)

	res = s.Tick(t0, 0)
	assert.Zero(t, res.RocksBroken)
}

func TestState_TickOfflineCap(t *testing.T) {
	s := NewState(t0)
	s.Miners = 1

	res := s.Tick(t0.Add(10*time.Hour), time.Hour)
	assert.Equal(t, int64(720), res.RocksBroken)
	assert.InDelta(t, 1440, s.Dollars, 1e-6)
}

func TestState_TickHonoursBuffExpiry(t *testing.T) {
	s := NewState(t0)
	s.Miners = 1
	s.WizardTower = true
	s.Ritual = &ActiveRitual{ID: "storm", Multiplier: 2, ExpiresAt: t0.Add(5 * time.Second)}

	res := s.Tick(t0.Add(10*time.Second), 0)
	assert.Equal(t, int64(2), res.RocksBroken)
	assert.InDelta(t, 6, res.DollarsEarned, 1e-9)
	assert.Nil(t, s.Ritual)
}

func TestState_Multiplier(t *testing.T) {
	s := NewState(t0)
	s.PrestigeTokens = 5
	s.Ritual = &ActiveRitual{Multiplier: 2, ExpiresAt: t0.Add(time.Minute)}
	s.Sacrifice = &SacrificeBuff{Count: 10, ExpiresAt: t0.Add(time.Minute)}

	assert.InDelta(t, 1.5*2*1.2, s.Multiplier(t0), 1e-9)
	assert.InDelta(t, 1.5, s.Multiplier(t0.Add(time.Minute)), 1e-9)
}

func TestSacrificeBuff_MultiplierCap(t *testing.T) {
	assert.InDelta(t, 1.02, (&SacrificeBuff{Count: 1}).Multiplier(), 1e-9)
	assert.InDelta(t, SacrificeMaxBonus, (&SacrificeBuff{Count: 500}).Multiplier(), 1e-9)
}

func TestState_BuyPickaxe(t *testing.T) {
	s := NewState(t0)
	s.Dollars = 50

	require.NoError(t, s.BuyPickaxe("stone"))
	assert.Equal(t, "stone", s.EquippedPickaxe)
	assert.Zero(t, s.Dollars)

	assert.ErrorIs(t, s.BuyPickaxe("stone"), ErrAlreadyOwned)
	assert.ErrorIs(t, s.BuyPickaxe("iron"), ErrInsufficientFunds)
	assert.ErrorIs(t, s.BuyPickaxe("yates"), ErrLocked)
	assert.ErrorIs(t, s.BuyPickaxe("plastic"), ErrUnknownPickaxe)
}

func TestState_SelectRockAndEquipFallback(t *testing.T) {
	s := NewState(t0)
	assert.ErrorIs(t, s.SelectRock("granite"), ErrLocked)
	assert.ErrorIs(t, s.SelectRock("lava"), ErrUnknownRock)

	s.OwnedPickaxes = append(s.OwnedPickaxes, "iron")
	require.NoError(t, s.EquipPickaxe("iron"))
	require.NoError(t, s.SelectRock("granite"))
	assert.Equal(t, "granite", s.CurrentRock)

	s.RockDamage = 10
	require.NoError(t, s.EquipPickaxe("wooden"))
	assert.Equal(t, "pebble", s.CurrentRock)
	assert.Zero(t, s.RockDamage)

	assert.ErrorIs(t, s.EquipPickaxe("gold"), ErrNotOwned)
}

func TestState_HireMiners(t *testing.T) {
	s := NewState(t0)
	assert.InDelta(t, 215, s.MinerCost(2), 1e-9)

	s.Dollars = 215
	cost, err := s.HireMiners(2)
	require.NoError(t, err)
	assert.InDelta(t, 215, cost, 1e-9)
	assert.Equal(t, int64(2), s.Miners)
	assert.InDelta(t, 0, s.Dollars, 1e-9)

	_, err = s.HireMiners(1)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = s.HireMiners(MaxMinersPerHire + 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestState_Validate(t *testing.T) {
	require.NoError(t, NewState(t0).Validate())

	tests := map[string]func(s *State){
		"negative dollars":   func(s *State) { s.Dollars = -1 },
		"negative miners":    func(s *State) { s.Miners = -3 },
		"unknown pickaxe":    func(s *State) { s.OwnedPickaxes = append(s.OwnedPickaxes, "laser") },
		"equipped not owned": func(s *State) { s.EquippedPickaxe = "cosmic" },
		"unknown rock":       func(s *State) { s.CurrentRock = "cheese" },
		"damage overflow":    func(s *State) { s.RockDamage = 5 },
		"ritual no tower":    func(s *State) { s.Ritual = &ActiveRitual{ID: "ember"} },
		"run over lifetime":  func(s *State) { s.RunDollars = 10 },
		"negative holding":   func(s *State) { s.Holdings["YATE"] = -1 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewState(t0)
			mutate(s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidState)
		})
	}
}

func TestState_Clone(t *testing.T) {
	s := NewState(t0)
	s.Holdings["ROCK"] = 3
	s.Sacrifice = &SacrificeBuff{Count: 1}

	c := s.Clone()
	c.Holdings["ROCK"] = 7
	c.OwnedPickaxes[0] = "stone"
	c.Sacrifice.Count = 9

	assert.Equal(t, int64(3), s.Holdings["ROCK"])
	assert.Equal(t, StarterPickaxe, s.OwnedPickaxes[0])
	assert.Equal(t, int64(1), s.Sacrifice.Count)
}
