package game

import (
	"context"
	"time"
)

// Save is the persisted game of one account. Version increases by one on every write.
type Save struct {
	UserID    string    `json:"user_id" validate:"required,uuid4"`
	Version   int64     `json:"version" validate:"gte=1"`
	State     *State    `json:"state" validate:"required"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the save envelope and the embedded state
func (s *Save) Validate() error {
	if s.State == nil {
		return ErrInvalidState
	}
	return s.State.Validate()
}

// GameService applies player actions to persisted saves. Every action loads the save,
// accrues idle mining up to now, applies the action and writes it back.
type GameService interface {
	Load(ctx context.Context, userID string) (*Save, error)
	Click(ctx context.Context, userID string, clicks int) (*Save, MiningResult, error)
	BuyPickaxe(ctx context.Context, userID, pickaxeID string) (*Save, error)
	EquipPickaxe(ctx context.Context, userID, pickaxeID string) (*Save, error)
	SelectRock(ctx context.Context, userID, rockID string) (*Save, error)
	HireMiners(ctx context.Context, userID string, count int64) (*Save, float64, error)
	Prestige(ctx context.Context, userID string) (*Save, *PrestigeResult, error)
	BuildWizardTower(ctx context.Context, userID string) (*Save, error)
	PerformRitual(ctx context.Context, userID, ritualID string) (*Save, error)
	SacrificeMiners(ctx context.Context, userID string, count int64) (*Save, error)
	BuyStokens(ctx context.Context, userID string, count int64) (*Save, float64, error)
	BuyTickets(ctx context.Context, userID string, count int64) (*Save, error)
	DrawLottery(ctx context.Context, userID string) (*Save, *Prize, error)
	BuyShares(ctx context.Context, userID, symbol string, shares int64) (*Save, *Trade, error)
	SellShares(ctx context.Context, userID, symbol string, shares int64) (*Save, *Trade, error)

	// Sync replaces the stored state with a client-side one. It is accepted only when
	// baseVersion equals the stored version; otherwise ErrConflict is returned along
	// with the stored save.
	Sync(ctx context.Context, userID string, baseVersion int64, state *State) (*Save, error)
}

// MarketService exposes read access to the simulated exchange
type MarketService interface {
	Quotes() []StockQuote
	Quote(symbol string) (StockQuote, error)
}

// SaveRepository defines persistence of game saves
type SaveRepository interface {
	Get(ctx context.Context, userID string) (*Save, error)
	Create(ctx context.Context, save *Save) error

	// Update writes save when the stored version equals expectedVersion and
	// returns ErrConflict otherwise.
	Update(ctx context.Context, save *Save, expectedVersion int64) error
}
