package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/utils"
)

// BudgetHandler defines the interface for budgets, their ledger and paychecks
type BudgetHandler interface {
	CreateBudget(ctx *gin.Context)
	ListBudgets(ctx *gin.Context)
	DeleteBudget(ctx *gin.Context)
	AddTransaction(ctx *gin.Context)
	ListTransactions(ctx *gin.Context)
	Summary(ctx *gin.Context)
	IssuePaycheck(ctx *gin.Context)
	ListPaychecks(ctx *gin.Context)
}

type budgetHandler struct {
	budgetService  budget.BudgetService
	payrollService budget.PayrollService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService budget.BudgetService, payrollService budget.PayrollService) BudgetHandler {
	return &budgetHandler{budgetService: budgetService, payrollService: payrollService}
}

// CreateBudget handles the POST request creating a budget owned by the caller
func (handler *budgetHandler) CreateBudget(ctx *gin.Context) {
	var request CreateBudgetRequest
	if !bindJSON(ctx, &request) {
		return
	}

	b, err := handler.budgetService.CreateBudget(ctx, principalFrom(ctx).ID, request.Name, request.LimitCents)
	if err != nil {
		respondError(ctx, "error creating budget", err)
		return
	}
	ctx.JSON(http.StatusCreated, newBudgetResponse(b))
}

// ListBudgets handles the GET request listing the caller's budgets
func (handler *budgetHandler) ListBudgets(ctx *gin.Context) {
	budgets, err := handler.budgetService.ListBudgets(ctx, principalFrom(ctx).ID)
	if err != nil {
		respondError(ctx, "error listing budgets", err)
		return
	}

	listResponse := []BudgetResponse{}
	for _, b := range budgets {
		listResponse = append(listResponse, newBudgetResponse(b))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// DeleteBudget handles the DELETE request removing a budget and its ledger
func (handler *budgetHandler) DeleteBudget(ctx *gin.Context) {
	if err := handler.budgetService.DeleteBudget(ctx, principalFrom(ctx).ID, ctx.Param("id")); err != nil {
		respondError(ctx, "error deleting budget", err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// AddTransaction handles the POST request adding a ledger entry
func (handler *budgetHandler) AddTransaction(ctx *gin.Context) {
	var request AddTransactionRequest
	if !bindJSON(ctx, &request) {
		return
	}

	tx, err := handler.budgetService.AddTransaction(ctx, principalFrom(ctx).ID, ctx.Param("id"),
		request.AmountCents, request.Category, request.Note, request.OccurredAt)
	if err != nil {
		respondError(ctx, "error adding transaction", err)
		return
	}
	ctx.JSON(http.StatusCreated, newTransactionResponse(tx))
}

// ListTransactions handles the GET request for a budget's ledger
func (handler *budgetHandler) ListTransactions(ctx *gin.Context) {
	query := &budget.Query{}
	if category := ctx.Query("category"); len(category) > 0 {
		query.Category = category
	}
	if since := ctx.Query("since"); len(since) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, since)
		if err == nil {
			query.Since = parsedTime
		}
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		respondInvalid(ctx, "validation failed", err)
		return
	}

	txs, err := handler.budgetService.ListTransactions(ctx, principalFrom(ctx).ID, ctx.Param("id"), query)
	if err != nil {
		respondError(ctx, "error listing transactions", err)
		return
	}

	listResponse := []TransactionResponse{}
	for _, tx := range txs {
		listResponse = append(listResponse, newTransactionResponse(tx))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Summary handles the GET request aggregating a budget
func (handler *budgetHandler) Summary(ctx *gin.Context) {
	summary, err := handler.budgetService.Summary(ctx, principalFrom(ctx).ID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, "error summarizing budget", err)
		return
	}
	ctx.JSON(http.StatusOK, newSummaryResponse(summary))
}

// IssuePaycheck handles the POST request running payroll for one employee
func (handler *budgetHandler) IssuePaycheck(ctx *gin.Context) {
	var request IssuePaycheckRequest
	if !bindJSON(ctx, &request) {
		return
	}

	paycheck, err := handler.payrollService.IssuePaycheck(ctx, budget.IssueRequest{
		EmployeeID:  request.EmployeeID,
		GrossCents:  request.GrossCents,
		PeriodStart: request.PeriodStart,
		PeriodEnd:   request.PeriodEnd,
		BudgetID:    request.BudgetID,
	})
	if err != nil {
		respondError(ctx, "error issuing paycheck", err)
		return
	}
	ctx.JSON(http.StatusCreated, newPaycheckResponse(paycheck))
}

// ListPaychecks handles the GET request for paychecks. Employees see their own;
// ceo and manager may pass employeeId.
func (handler *budgetHandler) ListPaychecks(ctx *gin.Context) {
	principal := principalFrom(ctx)
	employeeID := principal.ID
	if requested := ctx.Query("employeeId"); len(requested) > 0 && requested != principal.ID {
		if !principal.HasRole(accounts.RoleCEO, accounts.RoleManager) {
			respondError(ctx, "error listing paychecks", accounts.ErrForbidden)
			return
		}
		employeeID = requested
	}

	paychecks, err := handler.payrollService.ListPaychecks(ctx, employeeID)
	if err != nil {
		respondError(ctx, "error listing paychecks", err)
		return
	}

	listResponse := []PaycheckResponse{}
	for _, p := range paychecks {
		listResponse = append(listResponse, newPaycheckResponse(p))
	}
	ctx.JSON(http.StatusOK, listResponse)
}
