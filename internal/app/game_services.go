package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/events"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/tracing"
)

// maxSaveAttempts bounds the optimistic retry loop of server-side actions
const maxSaveAttempts = 3

// gameService implements the GameService interface
type gameService struct {
	repo       game.SaveRepository
	market     *game.Market
	publisher  events.Publisher
	offlineCap time.Duration
	maxClicks  int
	logger     logger.Logger
	now        func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewGameService creates a new instance of GameService
func NewGameService(settings *config.GameSettings, repo game.SaveRepository, market *game.Market, publisher events.Publisher, logger logger.Logger) (game.GameService, error) {
	if settings == nil {
		return nil, fmt.Errorf("game settings are required")
	}
	if market == nil {
		return nil, fmt.Errorf("market is required")
	}

	seed := settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &gameService{
		repo:       repo,
		market:     market,
		publisher:  publisher,
		offlineCap: settings.OfflineCap,
		maxClicks:  settings.MaxClicksPerRequest,
		logger:     logger.Named("game"),
		now:        clock,
		rng:        rand.New(rand.NewPCG(seed, seed>>1|1)),
	}, nil
}

// Load returns the save of userID with idle mining accrued up to now. A first visit
// creates a fresh save.
func (s *gameService) Load(ctx context.Context, userID string) (*game.Save, error) {
	save, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := *save
	view.State = save.State.Clone()
	view.State.Tick(s.now(), s.offlineCap)
	return &view, nil
}

func (s *gameService) getOrCreate(ctx context.Context, userID string) (*game.Save, error) {
	save, err := s.repo.Get(ctx, userID)
	if err == nil {
		return save, nil
	}
	if !errors.Is(err, game.ErrNotFound) {
		return nil, err
	}

	now := s.now()
	save = &game.Save{
		UserID:    userID,
		Version:   1,
		State:     game.NewState(now),
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, save); err != nil {
		if errors.Is(err, game.ErrConflict) {
			// created concurrently
			return s.repo.Get(ctx, userID)
		}
		return nil, err
	}
	s.logger.Info("Created game save for ", userID)
	return save, nil
}

// mutate loads the save, accrues idle mining, applies action and writes the result
// back with the next version. A concurrent write is retried on a fresh load.
func (s *gameService) mutate(ctx context.Context, userID string, action func(state *game.State, now time.Time) error) (*game.Save, error) {
	for attempt := 1; ; attempt++ {
		save, err := s.getOrCreate(ctx, userID)
		if err != nil {
			return nil, err
		}

		now := s.now()
		state := save.State.Clone()
		state.Tick(now, s.offlineCap)
		if err := action(state, now); err != nil {
			return nil, err
		}

		next := &game.Save{
			UserID:    userID,
			Version:   save.Version + 1,
			State:     state,
			UpdatedAt: now,
		}
		err = s.repo.Update(ctx, next, save.Version)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, game.ErrConflict) || attempt == maxSaveAttempts {
			return nil, err
		}
		s.logger.Debug("Retrying game save of ", userID, " after version conflict")
	}
}

func (s *gameService) Click(ctx context.Context, userID string, clicks int) (save *game.Save, result game.MiningResult, err error) {
	ctx, span := tracing.Start(ctx, "game.Click")
	defer func() { tracing.End(span, err) }()

	if clicks < 1 || clicks > s.maxClicks {
		return nil, game.MiningResult{}, fmt.Errorf("%w: clicks must be between 1 and %d", game.ErrInvalidAmount, s.maxClicks)
	}

	save, err = s.mutate(ctx, userID, func(state *game.State, now time.Time) error {
		var err error
		result, err = state.Click(clicks, now)
		return err
	})
	return save, result, err
}

func (s *gameService) BuyPickaxe(ctx context.Context, userID, pickaxeID string) (*game.Save, error) {
	return s.mutate(ctx, userID, func(state *game.State, _ time.Time) error {
		return state.BuyPickaxe(pickaxeID)
	})
}

func (s *gameService) EquipPickaxe(ctx context.Context, userID, pickaxeID string) (*game.Save, error) {
	return s.mutate(ctx, userID, func(state *game.State, _ time.Time) error {
		return state.EquipPickaxe(pickaxeID)
	})
}

func (s *gameService) SelectRock(ctx context.Context, userID, rockID string) (*game.Save, error) {
	return s.mutate(ctx, userID, func(state *game.State, _ time.Time) error {
		return state.SelectRock(rockID)
	})
}

func (s *gameService) HireMiners(ctx context.Context, userID string, count int64) (save *game.Save, cost float64, err error) {
	save, err = s.mutate(ctx, userID, func(state *game.State, _ time.Time) error {
		var err error
		cost, err = state.HireMiners(count)
		return err
	})
	return save, cost, err
}

func (s *gameService) Prestige(ctx context.Context, userID string) (save *game.Save, result *game.PrestigeResult, err error) {
	ctx, span := tracing.Start(ctx, "game.Prestige")
	defer func() { tracing.End(span, err) }()

	save, err = s.mutate(ctx, userID, func(state *game.State, _ time.Time) error {
		var err error
		result, err = state.Prestige()
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	payload := events.GamePrestigedPayload{UserID: userID, PrestigeCount: result.PrestigeCount, TokensGained: result.TokensGained}
	if err := s.publisher.Publish(ctx, events.GamePrestiged, payload); err != nil {
		s.logger.Warn("Failed to publish ", events.GamePrestiged, ": ", err)
	}
	s.logger.Info("User ", userID, " prestiged to ", result.PrestigeCount)
	return save, result, nil
}

func (s *gameService) BuildWizardTower(ctx context.Context, userID string) (*game.Save, error) {
	return s.mutate(ctx, userID, func(state *game.State, _ time.Time) error {
		return state.BuildWizardTower()
	})
}

func (s *gameService) PerformRitual(ctx context.Context, userID, ritualID string) (*game.Save, error) {
	return s.mutate(ctx, userID, func(state *game.State, now time.Time) error {
		_, err := state.PerformRitual(ritualID, now)
		return err
	})
}

func (s *gameService) SacrificeMiners(ctx context.Context, userID string, count int64) (*game.Save, error) {
	return s.mutate(ctx, userID, func(state *game.State, now time.Time) error {
		_, err := state.SacrificeMiners(count, now)
		return err
	})
}

func (s *gameService) BuyStokens(ctx context.Context, userID string, count int64) (save *game.Save, cost float64, err error) {
	save, err = s.mutate(ctx, userID, func(state *game.State, _ time.Time) error {
		var err error
		cost, err = state.BuyStokens(count)
		return err
	})
	return save, cost, err
}

func (s *gameService) BuyTickets(ctx context.Context, userID string, count int64) (*game.Save, error) {
	return s.mutate(ctx, userID, func(state *game.State, _ time.Time) error {
		_, err := state.BuyTickets(count)
		return err
	})
}

func (s *gameService) DrawLottery(ctx context.Context, userID string) (save *game.Save, prize *game.Prize, err error) {
	save, err = s.mutate(ctx, userID, func(state *game.State, _ time.Time) error {
		s.rngMu.Lock()
		defer s.rngMu.Unlock()
		var err error
		prize, err = state.DrawLottery(s.rng)
		return err
	})
	return save, prize, err
}

func (s *gameService) BuyShares(ctx context.Context, userID, symbol string, shares int64) (save *game.Save, trade *game.Trade, err error) {
	save, err = s.mutate(ctx, userID, func(state *game.State, _ time.Time) error {
		var err error
		trade, err = s.market.Buy(state, symbol, shares)
		return err
	})
	return save, trade, err
}

func (s *gameService) SellShares(ctx context.Context, userID, symbol string, shares int64) (save *game.Save, trade *game.Trade, err error) {
	save, err = s.mutate(ctx, userID, func(state *game.State, _ time.Time) error {
		var err error
		trade, err = s.market.Sell(state, symbol, shares)
		return err
	})
	return save, trade, err
}

// Sync stores a client-side state on top of baseVersion. A stale base returns the
// stored save together with ErrConflict so the client can rebase.
func (s *gameService) Sync(ctx context.Context, userID string, baseVersion int64, state *game.State) (save *game.Save, err error) {
	ctx, span := tracing.Start(ctx, "game.Sync")
	defer func() { tracing.End(span, err) }()

	if state == nil {
		return nil, game.ErrInvalidState
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored.Version != baseVersion {
		return stored, fmt.Errorf("stored version %d, base version %d: %w", stored.Version, baseVersion, game.ErrConflict)
	}

	now := s.now()
	uploaded := state.Clone()
	if uploaded.LastTick.IsZero() || uploaded.LastTick.After(now) {
		uploaded.LastTick = now
	}
	uploaded.LastTick = uploaded.LastTick.UTC()
	if uploaded.Holdings == nil {
		uploaded.Holdings = map[string]int64{}
	}

	save = &game.Save{
		UserID:    userID,
		Version:   stored.Version + 1,
		State:     uploaded,
		UpdatedAt: now,
	}
	if err := s.repo.Update(ctx, save, baseVersion); err != nil {
		if errors.Is(err, game.ErrConflict) {
			if latest, getErr := s.repo.Get(ctx, userID); getErr == nil {
				return latest, err
			}
		}
		return nil, err
	}

	s.logger.Info("Synced game save of ", userID, " to version ", save.Version)
	return save, nil
}
