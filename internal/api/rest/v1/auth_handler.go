package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"
)

// AuthHandler defines the interface for handling registration, sessions and credentials
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Me(ctx *gin.Context)
	CheckPassword(ctx *gin.Context)
	SetPassword(ctx *gin.Context)
	CurrentAccessCode(ctx *gin.Context)
	VerifyAccessCode(ctx *gin.Context)
}

// authHandler struct holds the services
type authHandler struct {
	accountService   accounts.AccountService
	directoryService accounts.DirectoryService
	accessCodes      accounts.AccessCodeService
	logger           logger.Logger
	now              func() time.Time
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountService accounts.AccountService, directoryService accounts.DirectoryService, accessCodes accounts.AccessCodeService, logger logger.Logger) AuthHandler {
	return &authHandler{
		accountService:   accountService,
		directoryService: directoryService,
		accessCodes:      accessCodes,
		logger:           logger,
		now:              time.Now,
	}
}

// Register handles the POST request creating a client account
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if !bindJSON(ctx, &request) {
		return
	}

	client, err := handler.accountService.Register(ctx, accounts.RegisterRequest{
		Username: request.Username,
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		respondError(ctx, "error registering account", err)
		return
	}

	ctx.JSON(http.StatusCreated, newClientResponse(client))
}

// Login handles the POST request authenticating a client or employee.
// The response carries the principal and token, never the password hash.
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if !bindJSON(ctx, &request) {
		return
	}

	session, err := handler.accountService.Login(ctx, request.Kind, request.Identifier, request.Password)
	if err != nil {
		respondError(ctx, "login failed", err)
		return
	}

	ctx.JSON(http.StatusOK, SessionResponse{
		Principal: newPrincipalResponse(session.Principal),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles the POST request revoking the caller's token
func (handler *authHandler) Logout(ctx *gin.Context) {
	claims := claimsFrom(ctx)
	if claims == nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: "not logged in"})
		return
	}

	if err := handler.accountService.Logout(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "error logging out: " + err.Error()
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "logged out"})
}

// Me handles the GET request returning the caller's account
func (handler *authHandler) Me(ctx *gin.Context) {
	principal := principalFrom(ctx)

	if principal.IsEmployee() {
		employee, err := handler.directoryService.GetEmployee(ctx, principal.ID)
		if err != nil {
			respondError(ctx, "error loading account", err)
			return
		}
		ctx.JSON(http.StatusOK, newEmployeeResponse(employee))
		return
	}

	client, err := handler.directoryService.GetClient(ctx, principal.ID)
	if err != nil {
		respondError(ctx, "error loading account", err)
		return
	}
	ctx.JSON(http.StatusOK, newClientResponse(client))
}

// CheckPassword handles the GET request telling whether an employee must set a password.
// Unknown employees are reported as 404; any other failure falls back to showing the
// password form.
func (handler *authHandler) CheckPassword(ctx *gin.Context) {
	number := ctx.Param("number")

	needs, err := handler.accountService.CheckPassword(ctx, number)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			respondError(ctx, "error checking password", err)
			return
		}
		handler.logger.Warn("Password check for employee ", number, " failed, assuming none is set: ", err)
		needs = true
	}

	ctx.JSON(http.StatusOK, NeedsPasswordResponse{NeedsPassword: needs})
}

// SetPassword handles the PUT request setting or changing an employee password
func (handler *authHandler) SetPassword(ctx *gin.Context) {
	var request SetPasswordRequest
	if !bindJSON(ctx, &request) {
		return
	}

	err := handler.accountService.SetPassword(ctx, accounts.SetPasswordRequest{
		EmployeeNumber:  ctx.Param("number"),
		NewPassword:     request.NewPassword,
		CurrentPassword: request.CurrentPassword,
		AccessCode:      request.AccessCode,
	})
	if err != nil {
		respondError(ctx, "error setting password", err)
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "password set"})
}

// CurrentAccessCode handles the GET request returning the running access code
func (handler *authHandler) CurrentAccessCode(ctx *gin.Context) {
	code, expiresAt := handler.accessCodes.Current(handler.now())
	ctx.JSON(http.StatusOK, AccessCodeResponse{Code: code, ExpiresAt: expiresAt})
}

// VerifyAccessCode handles the POST request checking an access code
func (handler *authHandler) VerifyAccessCode(ctx *gin.Context) {
	var request VerifyAccessCodeRequest
	if !bindJSON(ctx, &request) {
		return
	}

	ctx.JSON(http.StatusOK, VerifyAccessCodeResponse{Valid: handler.accessCodes.Verify(request.Code, handler.now())})
}

// EmployeeHandler defines the interface for staff administration
type EmployeeHandler interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}

type employeeHandler struct {
	directoryService accounts.DirectoryService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(directoryService accounts.DirectoryService) EmployeeHandler {
	return &employeeHandler{directoryService: directoryService}
}

// List handles the GET request listing employees
func (handler *employeeHandler) List(ctx *gin.Context) {
	employees, err := handler.directoryService.ListEmployees(ctx)
	if err != nil {
		respondError(ctx, "error listing employees", err)
		return
	}

	listResponse := []EmployeeResponse{}
	for _, e := range employees {
		listResponse = append(listResponse, newEmployeeResponse(e))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Create handles the POST request adding an employee
func (handler *employeeHandler) Create(ctx *gin.Context) {
	var request CreateEmployeeRequest
	if !bindJSON(ctx, &request) {
		return
	}

	employee, err := handler.directoryService.CreateEmployee(ctx, principalFrom(ctx), accounts.CreateEmployeeRequest{
		EmployeeNumber: request.EmployeeNumber,
		Name:           request.Name,
		Role:           request.Role,
		SalaryCents:    request.SalaryCents,
	})
	if err != nil {
		respondError(ctx, "error creating employee", err)
		return
	}

	ctx.JSON(http.StatusCreated, newEmployeeResponse(employee))
}

// GetByID handles the GET request for one employee
func (handler *employeeHandler) GetByID(ctx *gin.Context) {
	employee, err := handler.directoryService.GetEmployee(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, "error loading employee", err)
		return
	}
	ctx.JSON(http.StatusOK, newEmployeeResponse(employee))
}
