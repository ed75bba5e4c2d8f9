package commands

import (
	"fmt"
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// SimulationCommandHandler runs the mining game and the market without a server,
// which is handy for balancing the economy constants.
type SimulationCommandHandler struct {
	logger logger.Logger
}

// NewSimulationCommandHandler initializes and returns a SimulationCommandHandler instance
func NewSimulationCommandHandler() (*SimulationCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &SimulationCommandHandler{
		logger: loggerInstance,
	}, nil
}

// simulateGame plays minutes of the game one minute at a time with a greedy strategy:
// click, buy the next pickaxe when affordable, move to the best rock it can break,
// then spend the rest on miners.
func simulateGame(state *game.State, start time.Time, minutes, clicksPerSecond int) error {
	clicks := clicksPerSecond * 60
	for i := 1; i <= minutes; i++ {
		now := start.Add(time.Duration(i) * time.Minute)
		state.Tick(now, 0)

		if clicks > 0 {
			if _, err := state.Click(clicks, now); err != nil {
				return err
			}
		}

		for _, p := range game.Pickaxes() {
			if err := state.BuyPickaxe(p.ID); err == nil {
				break
			}
		}

		power := state.Pickaxe().Power
		for _, r := range game.Rocks() {
			if r.MinPower <= power {
				_ = state.SelectRock(r.ID)
			}
		}

		for hired := 0; hired < game.MaxMinersPerHire; hired++ {
			if _, err := state.HireMiners(1); err != nil {
				break
			}
		}
	}
	return nil
}

// SimulateGameCmd prints the state reached after the simulated session
func (commandHandler *SimulationCommandHandler) SimulateGameCmd(cmd *cobra.Command, _ []string) {
	minutes, err := cmd.Flags().GetInt("minutes")
	if err != nil {
		commandHandler.logger.Error("invalid minutes flag ", err)
		return
	}
	cps, err := cmd.Flags().GetInt("clicks-per-second")
	if err != nil {
		commandHandler.logger.Error("invalid clicks-per-second flag ", err)
		return
	}

	start := time.Now().UTC()
	state := game.NewState(start)
	if err := simulateGame(state, start, minutes, cps); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	end := start.Add(time.Duration(minutes) * time.Minute)
	fmt.Printf("after %d minutes at %d clicks/s:\n", minutes, cps)
	fmt.Printf("  dollars      %.2f (run total %.2f)\n", state.Dollars, state.RunDollars)
	fmt.Printf("  pickaxe      %s\n", state.Pickaxe().Name)
	fmt.Printf("  rock         %s\n", state.Rock().Name)
	fmt.Printf("  miners       %d (%.2f $/s)\n", state.Miners, state.IdleRate(end))
	fmt.Printf("  rocks broken %d, stokens %d\n", state.RocksBroken, state.Stokens)
	fmt.Printf("  prestige tokens available %d\n", state.PrestigeTokensAvailable())
}

// SimulateMarketCmd steps a seeded market and prints the final board
func (commandHandler *SimulationCommandHandler) SimulateMarketCmd(cmd *cobra.Command, _ []string) {
	steps, err := cmd.Flags().GetInt("steps")
	if err != nil {
		commandHandler.logger.Error("invalid steps flag ", err)
		return
	}
	seed, err := cmd.Flags().GetUint64("seed")
	if err != nil {
		commandHandler.logger.Error("invalid seed flag ", err)
		return
	}

	market := game.NewMarket(game.DefaultListings, seed)
	for i := 0; i < steps; i++ {
		market.Step()
	}

	for _, q := range market.Quotes() {
		first := q.History[0]
		fmt.Printf("%-5s %10.2f  %+7.2f%% over window  %s\n", q.Symbol, q.Price, (q.Price/first-1)*100, q.Name)
	}
}

// InitSimulationCommands registers the offline simulation commands
func InitSimulationCommands(rootCmd *cobra.Command) error {
	handler, err := NewSimulationCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create simulation command handler %w", err)
	}

	var gameCmd = &cobra.Command{
		Use:   "simulate-game",
		Short: "Play the mining game offline with a greedy strategy",
		Run:   handler.SimulateGameCmd,
	}
	gameCmd.Flags().IntP("minutes", "", 60, "Minutes of play to simulate")
	gameCmd.Flags().IntP("clicks-per-second", "", 5, "Clicks per second")
	rootCmd.AddCommand(gameCmd)

	var marketCmd = &cobra.Command{
		Use:   "simulate-market",
		Short: "Run the stock market random walk",
		Run:   handler.SimulateMarketCmd,
	}
	marketCmd.Flags().IntP("steps", "", 100, "Number of price steps")
	marketCmd.Flags().Uint64P("seed", "", 1, "Random seed")
	rootCmd.AddCommand(marketCmd)

	return nil
}
