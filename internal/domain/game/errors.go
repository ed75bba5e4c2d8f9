package game

import "errors"

var (
	ErrNotFound            = errors.New("game save not found")
	ErrConflict            = errors.New("game save version conflict")
	ErrInvalidAmount       = errors.New("amount out of range")
	ErrInsufficientFunds   = errors.New("not enough yates dollars")
	ErrInsufficientStokens = errors.New("not enough stokens")
	ErrNoTickets           = errors.New("no lottery tickets left")
	ErrUnknownPickaxe      = errors.New("unknown pickaxe")
	ErrUnknownRock         = errors.New("unknown rock")
	ErrUnknownRitual       = errors.New("unknown ritual")
	ErrUnknownStock        = errors.New("unknown stock")
	ErrAlreadyOwned        = errors.New("pickaxe already owned")
	ErrNotOwned            = errors.New("pickaxe not owned")
	ErrLocked              = errors.New("requirement not met")
	ErrNoWizardTower       = errors.New("wizard tower not built")
	ErrRitualActive        = errors.New("a ritual is already active")
	ErrNotEnoughMiners     = errors.New("not enough miners")
	ErrNotEnoughShares     = errors.New("not enough shares")
	ErrPrestigeUnavailable = errors.New("not enough earnings to prestige")
	ErrInvalidState        = errors.New("invalid game state")
)
