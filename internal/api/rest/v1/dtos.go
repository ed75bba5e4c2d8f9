package v1

import (
	"time"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"
)

// ErrorResponse represents the structure of an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents the structure of an informational message
type InfoResponse struct {
	Message string `json:"message"`
}

// RegisterRequest is the body of a client registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Validate for validating RegisterRequest struct
func (r *RegisterRequest) Validate() error {
	return validators.Struct(r)
}

// LoginRequest is the body of a login. Identifier is a username or email for clients
// and an employee number for employees.
type LoginRequest struct {
	Kind       string `json:"kind" validate:"required,oneof=client employee"`
	Identifier string `json:"identifier" validate:"required,max=254"`
	Password   string `json:"password" validate:"required,max=72"`
}

// Validate for validating LoginRequest struct
func (r *LoginRequest) Validate() error {
	return validators.Struct(r)
}

// SetPasswordRequest is the body of an employee password set or change
type SetPasswordRequest struct {
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
	CurrentPassword string `json:"current_password,omitempty" validate:"omitempty,max=72"`
	AccessCode      string `json:"access_code,omitempty" validate:"omitempty,numeric,max=10"`
}

// Validate for validating SetPasswordRequest struct
func (r *SetPasswordRequest) Validate() error {
	return validators.Struct(r)
}

// VerifyAccessCodeRequest carries a code to check
type VerifyAccessCodeRequest struct {
	Code string `json:"code" validate:"required,numeric,max=10"`
}

// Validate for validating VerifyAccessCodeRequest struct
func (r *VerifyAccessCodeRequest) Validate() error {
	return validators.Struct(r)
}

// CreateEmployeeRequest is the body of a new employee record
type CreateEmployeeRequest struct {
	EmployeeNumber string `json:"employee_number" validate:"required,employeenumber"`
	Name           string `json:"name" validate:"required,min=1,max=100"`
	Role           string `json:"role" validate:"required,oneof=ceo manager engineer sales intern"`
	SalaryCents    int64  `json:"salary_cents" validate:"min=0"`
}

// Validate for validating CreateEmployeeRequest struct
func (r *CreateEmployeeRequest) Validate() error {
	return validators.Struct(r)
}

// PrincipalResponse is the public view of an authenticated account
type PrincipalResponse struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// SessionResponse is returned by a successful login. It never carries password material.
type SessionResponse struct {
	Principal PrincipalResponse `json:"principal"`
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// ClientResponse is the public view of a client
type ClientResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	MailHandle string    `json:"mail_handle,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// EmployeeResponse is the public view of an employee
type EmployeeResponse struct {
	ID             string    `json:"id"`
	EmployeeNumber string    `json:"employee_number"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	MailHandle     string    `json:"mail_handle,omitempty"`
	HasPassword    bool      `json:"has_password"`
	CreatedAt      time.Time `json:"created_at"`
}

// NeedsPasswordResponse answers the employee password check
type NeedsPasswordResponse struct {
	NeedsPassword bool `json:"needs_password"`
}

// AccessCodeResponse carries the running access code
type AccessCodeResponse struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// VerifyAccessCodeResponse answers an access code check
type VerifyAccessCodeResponse struct {
	Valid bool `json:"valid"`
}

func newPrincipalResponse(p *accounts.Principal) PrincipalResponse {
	return PrincipalResponse{ID: p.ID, Kind: p.Kind, Name: p.Name, Role: p.Role}
}

func newClientResponse(c *accounts.Client) ClientResponse {
	return ClientResponse{ID: c.ID, Username: c.Username, Email: c.Email, MailHandle: c.MailHandle, CreatedAt: c.CreatedAt}
}

func newEmployeeResponse(e *accounts.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeNumber: e.EmployeeNumber,
		Name:           e.Name,
		Role:           e.Role,
		MailHandle:     e.MailHandle,
		HasPassword:    e.HasPassword(),
		CreatedAt:      e.CreatedAt,
	}
}

// ClaimHandleRequest asks for a mail handle
type ClaimHandleRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

// Validate for validating ClaimHandleRequest struct
func (r *ClaimHandleRequest) Validate() error {
	return validators.Struct(r)
}

// StartConversationRequest opens a conversation
type StartConversationRequest struct {
	Recipients []string `json:"recipients" validate:"required,min=1,max=20,dive,required,max=64"`
	Subject    string   `json:"subject" validate:"required,min=1,max=200"`
	Body       string   `json:"body" validate:"required,min=1,max=5000"`
}

// Validate for validating StartConversationRequest struct
func (r *StartConversationRequest) Validate() error {
	return validators.Struct(r)
}

// ReplyRequest appends a message
type ReplyRequest struct {
	Body string `json:"body" validate:"required,min=1,max=5000"`
}

// Validate for validating ReplyRequest struct
func (r *ReplyRequest) Validate() error {
	return validators.Struct(r)
}

// HandleResponse is a mail handle
type HandleResponse struct {
	Handle    string    `json:"handle"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageResponse is a mail message
type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Sender         string    `json:"sender"`
	Body           string    `json:"body"`
	SentAt         time.Time `json:"sent_at"`
}

// ConversationResponse is a conversation, with mailbox details when listed
type ConversationResponse struct {
	ID           string           `json:"id"`
	Subject      string           `json:"subject"`
	Participants []string         `json:"participants"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	LastMessage  *MessageResponse `json:"last_message,omitempty"`
	Unread       int              `json:"unread"`
}

func newMessageResponse(m *mail.Message) MessageResponse {
	return MessageResponse{ID: m.ID, ConversationID: m.ConversationID, Sender: m.SenderHandle, Body: m.Body, SentAt: m.SentAt}
}

func newConversationResponse(c *mail.Conversation) ConversationResponse {
	return ConversationResponse{ID: c.ID, Subject: c.Subject, Participants: c.Participants, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func newConversationSummaryResponse(s *mail.ConversationSummary) ConversationResponse {
	resp := newConversationResponse(s.Conversation)
	resp.Unread = s.Unread
	if s.LastMessage != nil {
		last := newMessageResponse(s.LastMessage)
		resp.LastMessage = &last
	}
	return resp
}

// CreateTaskRequest is the body of a new task. EmployeeID defaults to the caller.
type CreateTaskRequest struct {
	EmployeeID  string     `json:"employee_id,omitempty" validate:"omitempty,uuid4"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// Validate for validating CreateTaskRequest struct
func (r *CreateTaskRequest) Validate() error {
	return validators.Struct(r)
}

// UpdateTaskStatusRequest moves a task
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=todo in_progress done"`
}

// Validate for validating UpdateTaskStatusRequest struct
func (r *UpdateTaskStatusRequest) Validate() error {
	return validators.Struct(r)
}

// TaskResponse is a task
type TaskResponse struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Overdue     bool       `json:"overdue"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResponse(t *tasks.Task, now time.Time) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		EmployeeID:  t.EmployeeID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
		Overdue:     t.Overdue(now),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// CreateBudgetRequest is the body of a new budget
type CreateBudgetRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100"`
	LimitCents int64  `json:"limit_cents" validate:"required,gt=0"`
}

// Validate for validating CreateBudgetRequest struct
func (r *CreateBudgetRequest) Validate() error {
	return validators.Struct(r)
}

// AddTransactionRequest is the body of a ledger entry
type AddTransactionRequest struct {
	AmountCents int64     `json:"amount_cents" validate:"required,ne=0"`
	Category    string    `json:"category" validate:"required,min=1,max=50"`
	Note        string    `json:"note" validate:"max=500"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Validate for validating AddTransactionRequest struct
func (r *AddTransactionRequest) Validate() error {
	return validators.Struct(r)
}

// IssuePaycheckRequest is the body of a payroll run for one employee
type IssuePaycheckRequest struct {
	EmployeeID  string    `json:"employee_id" validate:"required,uuid4"`
	GrossCents  int64     `json:"gross_cents" validate:"min=0"`
	PeriodStart time.Time `json:"period_start" validate:"required"`
	PeriodEnd   time.Time `json:"period_end" validate:"required,gtfield=PeriodStart"`
	BudgetID    string    `json:"budget_id,omitempty" validate:"omitempty,uuid4"`
}

// Validate for validating IssuePaycheckRequest struct
func (r *IssuePaycheckRequest) Validate() error {
	return validators.Struct(r)
}

// BudgetResponse is a budget
type BudgetResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Name       string    `json:"name"`
	LimitCents int64     `json:"limit_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

// TransactionResponse is a ledger entry
type TransactionResponse struct {
	ID          string    `json:"id"`
	BudgetID    string    `json:"budget_id"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Note        string    `json:"note,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// SummaryResponse aggregates a budget
type SummaryResponse struct {
	Budget         BudgetResponse `json:"budget"`
	IncomeCents    int64          `json:"income_cents"`
	ExpenseCents   int64          `json:"expense_cents"`
	BalanceCents   int64          `json:"balance_cents"`
	RemainingCents int64          `json:"remaining_cents"`
	OverLimit      bool           `json:"over_limit"`
}

// PaycheckResponse is a paycheck
type PaycheckResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	GrossCents  int64     `json:"gross_cents"`
	TaxCents    int64     `json:"tax_cents"`
	NetCents    int64     `json:"net_cents"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	IssuedAt    time.Time `json:"issued_at"`
}

func newBudgetResponse(b *budget.Budget) BudgetResponse {
	return BudgetResponse{ID: b.ID, OwnerID: b.OwnerID, Name: b.Name, LimitCents: b.LimitCents, CreatedAt: b.CreatedAt}
}

func newTransactionResponse(t *budget.Transaction) TransactionResponse {
	return TransactionResponse{ID: t.ID, BudgetID: t.BudgetID, AmountCents: t.AmountCents, Category: t.Category, Note: t.Note, OccurredAt: t.OccurredAt}
}

func newSummaryResponse(s *budget.Summary) SummaryResponse {
	return SummaryResponse{
		Budget:         newBudgetResponse(s.Budget),
		IncomeCents:    s.IncomeCents,
		ExpenseCents:   s.ExpenseCents,
		BalanceCents:   s.BalanceCents,
		RemainingCents: s.RemainingCents,
		OverLimit:      s.OverLimit,
	}
}

func newPaycheckResponse(p *budget.Paycheck) PaycheckResponse {
	return PaycheckResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		GrossCents:  p.GrossCents,
		TaxCents:    p.TaxCents,
		NetCents:    p.NetCents,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		IssuedAt:    p.IssuedAt,
	}
}

// CartItemRequest is a product and quantity in a cart
type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Quantity  int    `json:"quantity" validate:"min=1,max=99"`
}

// QuoteRequest prices a cart
type QuoteRequest struct {
	Items []CartItemRequest `json:"items" validate:"required,min=1,max=50,dive"`
}

// Validate for validating QuoteRequest struct
func (r *QuoteRequest) Validate() error {
	return validators.Struct(r)
}

// CartItems converts the request into domain cart items
func (r *QuoteRequest) CartItems() []store.CartItem {
	items := make([]store.CartItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = store.CartItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return items
}

// CheckoutRequest prices and pays a cart
type CheckoutRequest struct {
	QuoteRequest
	CardToken string `json:"card_token" validate:"required,max=128"`
}

// Validate for validating CheckoutRequest struct
func (r *CheckoutRequest) Validate() error {
	return validators.Struct(r)
}

// ProductResponse is a catalog entry
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
}

// LineItemResponse is a priced cart line
type LineItemResponse struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TotalCents     int64  `json:"total_cents"`
}

// QuoteResponse is a priced cart
type QuoteResponse struct {
	Lines         []LineItemResponse `json:"lines"`
	SubtotalCents int64              `json:"subtotal_cents"`
	TaxCents      int64              `json:"tax_cents"`
	ShippingCents int64              `json:"shipping_cents"`
	TotalCents    int64              `json:"total_cents"`
}

// PurchaseResponse is a recorded checkout
type PurchaseResponse struct {
	QuoteResponse
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Currency  string    `json:"currency"`
	ChargeID  string    `json:"charge_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func newLineItemResponses(lines []store.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(lines))
	for i, l := range lines {
		out[i] = LineItemResponse(l)
	}
	return out
}

func newQuoteResponse(q *store.Quote) QuoteResponse {
	return QuoteResponse{
		Lines:         newLineItemResponses(q.Lines),
		SubtotalCents: q.SubtotalCents,
		TaxCents:      q.TaxCents,
		ShippingCents: q.ShippingCents,
		TotalCents:    q.TotalCents,
	}
}

func newPurchaseResponse(p *store.Purchase) PurchaseResponse {
	return PurchaseResponse{
		QuoteResponse: QuoteResponse{
			Lines:         newLineItemResponses(p.Lines),
			SubtotalCents: p.SubtotalCents,
			TaxCents:      p.TaxCents,
			ShippingCents: p.ShippingCents,
			TotalCents:    p.TotalCents,
		},
		ID:        p.ID,
		ClientID:  p.ClientID,
		Currency:  p.Currency,
		ChargeID:  p.ChargeID,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

// ClickRequest swings the pickaxe
type ClickRequest struct {
	Clicks int `json:"clicks" validate:"min=1"`
}

// Validate for validating ClickRequest struct
func (r *ClickRequest) Validate() error {
	return validators.Struct(r)
}

// SelectRockRequest switches rocks
type SelectRockRequest struct {
	RockID string `json:"rock_id" validate:"required,max=64"`
}

// Validate for validating SelectRockRequest struct
func (r *SelectRockRequest) Validate() error {
	return validators.Struct(r)
}

// CountRequest carries a positive amount for hires, purchases and sacrifices
type CountRequest struct {
	Count int64 `json:"count" validate:"min=1"`
}

// Validate for validating CountRequest struct
func (r *CountRequest) Validate() error {
	return validators.Struct(r)
}

// TradeRequest buys or sells shares
type TradeRequest struct {
	Shares int64 `json:"shares" validate:"min=1"`
}

// Validate for validating TradeRequest struct
func (r *TradeRequest) Validate() error {
	return validators.Struct(r)
}

// SyncRequest uploads a client-side game state on top of BaseVersion
type SyncRequest struct {
	BaseVersion int64       `json:"base_version" validate:"min=1"`
	State       *game.State `json:"state" validate:"required"`
}

// Validate for validating SyncRequest struct
func (r *SyncRequest) Validate() error {
	return validators.Struct(r)
}

// GameSaveResponse is a game save with derived figures
type GameSaveResponse struct {
	Version    int64       `json:"version"`
	State      *game.State `json:"state"`
	Multiplier float64     `json:"multiplier"`
	IdleRate   float64     `json:"idle_rate"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// ClickResponse is the save after a click together with what it mined
type ClickResponse struct {
	Save   GameSaveResponse  `json:"save"`
	Result game.MiningResult `json:"result"`
}

// CostResponse is the save after a purchase together with what it cost
type CostResponse struct {
	Save GameSaveResponse `json:"save"`
	Cost float64          `json:"cost"`
}

// PrestigeResponse is the save after a prestige
type PrestigeResponse struct {
	Save   GameSaveResponse     `json:"save"`
	Result *game.PrestigeResult `json:"result"`
}

// LotteryResponse is the save after a draw together with the prize
type LotteryResponse struct {
	Save  GameSaveResponse `json:"save"`
	Prize *game.Prize      `json:"prize"`
}

// TradeResponse is the save after a trade
type TradeResponse struct {
	Save  GameSaveResponse `json:"save"`
	Trade *game.Trade      `json:"trade"`
}

// CatalogResponse lists the game's pickaxes, rocks and rituals
type CatalogResponse struct {
	Pickaxes []game.Pickaxe `json:"pickaxes"`
	Rocks    []game.Rock    `json:"rocks"`
	Rituals  []game.Ritual  `json:"rituals"`
}

func newGameSaveResponse(s *game.Save, now time.Time) GameSaveResponse {
	return GameSaveResponse{
		Version:    s.Version,
		State:      s.State,
		Multiplier: s.State.Multiplier(now),
		IdleRate:   s.State.IdleRate(now),
		UpdatedAt:  s.UpdatedAt,
	}
}

// SyncConflictResponse is returned when an upload is based on a stale version
type SyncConflictResponse struct {
	Message string           `json:"message"`
	Save    GameSaveResponse `json:"save"`
}
