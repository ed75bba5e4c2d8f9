package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
)

// StoreHandler defines the interface for the catalog, quotes and checkout
type StoreHandler interface {
	ListProducts(ctx *gin.Context)
	Quote(ctx *gin.Context)
	Checkout(ctx *gin.Context)
	ListPurchases(ctx *gin.Context)
	GetPurchase(ctx *gin.Context)
}

type storeHandler struct {
	checkoutService store.CheckoutService
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(checkoutService store.CheckoutService) StoreHandler {
	return &storeHandler{checkoutService: checkoutService}
}

// ListProducts handles the GET request for the catalog
func (handler *storeHandler) ListProducts(ctx *gin.Context) {
	listResponse := []ProductResponse{}
	for _, p := range store.Products() {
		listResponse = append(listResponse, ProductResponse{ID: p.ID, Name: p.Name, Description: p.Description, PriceCents: p.PriceCents})
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Quote handles the POST request pricing a cart
func (handler *storeHandler) Quote(ctx *gin.Context) {
	var request QuoteRequest
	if !bindJSON(ctx, &request) {
		return
	}

	quote, err := handler.checkoutService.Quote(ctx, request.CartItems())
	if err != nil {
		respondError(ctx, "error pricing cart", err)
		return
	}
	ctx.JSON(http.StatusOK, newQuoteResponse(quote))
}

// Checkout handles the POST request paying for a cart
func (handler *storeHandler) Checkout(ctx *gin.Context) {
	var request CheckoutRequest
	if !bindJSON(ctx, &request) {
		return
	}

	purchase, err := handler.checkoutService.Checkout(ctx, principalFrom(ctx).ID, request.CartItems(), request.CardToken)
	if err != nil {
		respondError(ctx, "checkout failed", err)
		return
	}

	status := http.StatusCreated
	if purchase.Status == store.StatusPending {
		status = http.StatusAccepted
	}
	ctx.JSON(status, newPurchaseResponse(purchase))
}

// ListPurchases handles the GET request for the caller's purchase history
func (handler *storeHandler) ListPurchases(ctx *gin.Context) {
	purchases, err := handler.checkoutService.ListPurchases(ctx, principalFrom(ctx).ID)
	if err != nil {
		respondError(ctx, "error listing purchases", err)
		return
	}

	listResponse := []PurchaseResponse{}
	for _, p := range purchases {
		listResponse = append(listResponse, newPurchaseResponse(p))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetPurchase handles the GET request for one of the caller's purchases
func (handler *storeHandler) GetPurchase(ctx *gin.Context) {
	purchase, err := handler.checkoutService.GetPurchase(ctx, principalFrom(ctx).ID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, "error loading purchase", err)
		return
	}
	ctx.JSON(http.StatusOK, newPurchaseResponse(purchase))
}
