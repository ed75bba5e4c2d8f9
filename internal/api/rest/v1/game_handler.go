package v1

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
)

// GameHandler defines the interface for the mining game and the stock market
type GameHandler interface {
	Catalog(ctx *gin.Context)
	Load(ctx *gin.Context)
	Click(ctx *gin.Context)
	BuyPickaxe(ctx *gin.Context)
	EquipPickaxe(ctx *gin.Context)
	SelectRock(ctx *gin.Context)
	HireMiners(ctx *gin.Context)
	Prestige(ctx *gin.Context)
	BuildWizardTower(ctx *gin.Context)
	PerformRitual(ctx *gin.Context)
	SacrificeMiners(ctx *gin.Context)
	BuyStokens(ctx *gin.Context)
	BuyTickets(ctx *gin.Context)
	DrawLottery(ctx *gin.Context)
	Sync(ctx *gin.Context)
	ListQuotes(ctx *gin.Context)
	GetQuote(ctx *gin.Context)
	BuyShares(ctx *gin.Context)
	SellShares(ctx *gin.Context)
}

type gameHandler struct {
	gameService   game.GameService
	marketService game.MarketService
	now           func() time.Time
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameService game.GameService, marketService game.MarketService) GameHandler {
	return &gameHandler{gameService: gameService, marketService: marketService, now: time.Now}
}

func (handler *gameHandler) respondSave(ctx *gin.Context, status int, save *game.Save) {
	ctx.JSON(status, newGameSaveResponse(save, handler.now()))
}

// Catalog handles the GET request for pickaxes, rocks and rituals
func (handler *gameHandler) Catalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, CatalogResponse{Pickaxes: game.Pickaxes(), Rocks: game.Rocks(), Rituals: game.Rituals()})
}

// Load handles the GET request for the caller's save
func (handler *gameHandler) Load(ctx *gin.Context) {
	save, err := handler.gameService.Load(ctx, principalFrom(ctx).ID)
	if err != nil {
		respondError(ctx, "error loading game", err)
		return
	}
	handler.respondSave(ctx, http.StatusOK, save)
}

// Click handles the POST request swinging the pickaxe
func (handler *gameHandler) Click(ctx *gin.Context) {
	var request ClickRequest
	if !bindJSON(ctx, &request) {
		return
	}

	save, result, err := handler.gameService.Click(ctx, principalFrom(ctx).ID, request.Clicks)
	if err != nil {
		respondError(ctx, "error mining", err)
		return
	}
	ctx.JSON(http.StatusOK, ClickResponse{Save: newGameSaveResponse(save, handler.now()), Result: result})
}

// BuyPickaxe handles the POST request purchasing a pickaxe
func (handler *gameHandler) BuyPickaxe(ctx *gin.Context) {
	save, err := handler.gameService.BuyPickaxe(ctx, principalFrom(ctx).ID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, "error buying pickaxe", err)
		return
	}
	handler.respondSave(ctx, http.StatusOK, save)
}

// EquipPickaxe handles the POST request equipping an owned pickaxe
func (handler *gameHandler) EquipPickaxe(ctx *gin.Context) {
	save, err := handler.gameService.EquipPickaxe(ctx, principalFrom(ctx).ID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, "error equipping pickaxe", err)
		return
	}
	handler.respondSave(ctx, http.StatusOK, save)
}

// SelectRock handles the PUT request switching rocks
func (handler *gameHandler) SelectRock(ctx *gin.Context) {
	var request SelectRockRequest
	if !bindJSON(ctx, &request) {
		return
	}

	save, err := handler.gameService.SelectRock(ctx, principalFrom(ctx).ID, request.RockID)
	if err != nil {
		respondError(ctx, "error selecting rock", err)
		return
	}
	handler.respondSave(ctx, http.StatusOK, save)
}

// HireMiners handles the POST request hiring miners
func (handler *gameHandler) HireMiners(ctx *gin.Context) {
	var request CountRequest
	if !bindJSON(ctx, &request) {
		return
	}

	save, cost, err := handler.gameService.HireMiners(ctx, principalFrom(ctx).ID, request.Count)
	if err != nil {
		respondError(ctx, "error hiring miners", err)
		return
	}
	ctx.JSON(http.StatusOK, CostResponse{Save: newGameSaveResponse(save, handler.now()), Cost: cost})
}

// Prestige handles the POST request resetting the run for prestige tokens
func (handler *gameHandler) Prestige(ctx *gin.Context) {
	save, result, err := handler.gameService.Prestige(ctx, principalFrom(ctx).ID)
	if err != nil {
		respondError(ctx, "error prestiging", err)
		return
	}
	ctx.JSON(http.StatusOK, PrestigeResponse{Save: newGameSaveResponse(save, handler.now()), Result: result})
}

// BuildWizardTower handles the POST request building the wizard tower
func (handler *gameHandler) BuildWizardTower(ctx *gin.Context) {
	save, err := handler.gameService.BuildWizardTower(ctx, principalFrom(ctx).ID)
	if err != nil {
		respondError(ctx, "error building wizard tower", err)
		return
	}
	handler.respondSave(ctx, http.StatusOK, save)
}

// PerformRitual handles the POST request casting a ritual
func (handler *gameHandler) PerformRitual(ctx *gin.Context) {
	save, err := handler.gameService.PerformRitual(ctx, principalFrom(ctx).ID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, "error performing ritual", err)
		return
	}
	handler.respondSave(ctx, http.StatusOK, save)
}

// SacrificeMiners handles the POST request sacrificing miners for a buff
func (handler *gameHandler) SacrificeMiners(ctx *gin.Context) {
	var request CountRequest
	if !bindJSON(ctx, &request) {
		return
	}

	save, err := handler.gameService.SacrificeMiners(ctx, principalFrom(ctx).ID, request.Count)
	if err != nil {
		respondError(ctx, "error sacrificing miners", err)
		return
	}
	handler.respondSave(ctx, http.StatusOK, save)
}

// BuyStokens handles the POST request exchanging dollars for stokens
func (handler *gameHandler) BuyStokens(ctx *gin.Context) {
	var request CountRequest
	if !bindJSON(ctx, &request) {
		return
	}

	save, cost, err := handler.gameService.BuyStokens(ctx, principalFrom(ctx).ID, request.Count)
	if err != nil {
		respondError(ctx, "error buying stokens", err)
		return
	}
	ctx.JSON(http.StatusOK, CostResponse{Save: newGameSaveResponse(save, handler.now()), Cost: cost})
}

// BuyTickets handles the POST request exchanging stokens for lottery tickets
func (handler *gameHandler) BuyTickets(ctx *gin.Context) {
	var request CountRequest
	if !bindJSON(ctx, &request) {
		return
	}

	save, err := handler.gameService.BuyTickets(ctx, principalFrom(ctx).ID, request.Count)
	if err != nil {
		respondError(ctx, "error buying tickets", err)
		return
	}
	handler.respondSave(ctx, http.StatusOK, save)
}

// DrawLottery handles the POST request spending a ticket
func (handler *gameHandler) DrawLottery(ctx *gin.Context) {
	save, prize, err := handler.gameService.DrawLottery(ctx, principalFrom(ctx).ID)
	if err != nil {
		respondError(ctx, "error drawing lottery", err)
		return
	}
	ctx.JSON(http.StatusOK, LotteryResponse{Save: newGameSaveResponse(save, handler.now()), Prize: prize})
}

// Sync handles the PUT request uploading a client-side save. A stale base version
// answers 409 with the stored save.
func (handler *gameHandler) Sync(ctx *gin.Context) {
	var request SyncRequest
	if !bindJSON(ctx, &request) {
		return
	}

	save, err := handler.gameService.Sync(ctx, principalFrom(ctx).ID, request.BaseVersion, request.State)
	if err != nil {
		if errors.Is(err, game.ErrConflict) && save != nil {
			ctx.JSON(http.StatusConflict, SyncConflictResponse{
				Message: "error syncing game: " + err.Error(),
				Save:    newGameSaveResponse(save, handler.now()),
			})
			return
		}
		respondError(ctx, "error syncing game", err)
		return
	}
	handler.respondSave(ctx, http.StatusOK, save)
}

// ListQuotes handles the GET request for the market board
func (handler *gameHandler) ListQuotes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, handler.marketService.Quotes())
}

// GetQuote handles the GET request for one stock
func (handler *gameHandler) GetQuote(ctx *gin.Context) {
	quote, err := handler.marketService.Quote(strings.ToUpper(ctx.Param("symbol")))
	if err != nil {
		respondError(ctx, "error loading quote", err)
		return
	}
	ctx.JSON(http.StatusOK, quote)
}

// BuyShares handles the POST request buying shares with Yates Dollars
func (handler *gameHandler) BuyShares(ctx *gin.Context) {
	handler.trade(ctx, "error buying shares", handler.gameService.BuyShares)
}

// SellShares handles the POST request selling shares
func (handler *gameHandler) SellShares(ctx *gin.Context) {
	handler.trade(ctx, "error selling shares", handler.gameService.SellShares)
}

type tradeFunc func(ctx context.Context, userID, symbol string, shares int64) (*game.Save, *game.Trade, error)

func (handler *gameHandler) trade(ctx *gin.Context, action string, fn tradeFunc) {
	var request TradeRequest
	if !bindJSON(ctx, &request) {
		return
	}

	save, trade, err := fn(ctx, principalFrom(ctx).ID, strings.ToUpper(ctx.Param("symbol")), request.Shares)
	if err != nil {
		respondError(ctx, action, err)
		return
	}
	ctx.JSON(http.StatusOK, TradeResponse{Save: newGameSaveResponse(save, handler.now()), Trade: trade})
}
