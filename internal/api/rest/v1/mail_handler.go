package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
)

// MailHandler defines the interface for the internal mail endpoints
type MailHandler interface {
	ClaimHandle(ctx *gin.Context)
	GetHandle(ctx *gin.Context)
	StartConversation(ctx *gin.Context)
	ListConversations(ctx *gin.Context)
	ListMessages(ctx *gin.Context)
	Reply(ctx *gin.Context)
	MarkRead(ctx *gin.Context)
}

type mailHandler struct {
	mailService mail.MailService
}

// NewMailHandler creates a new MailHandler
func NewMailHandler(mailService mail.MailService) MailHandler {
	return &mailHandler{mailService: mailService}
}

// ClaimHandle handles the POST request binding a handle to the caller
func (handler *mailHandler) ClaimHandle(ctx *gin.Context) {
	var request ClaimHandleRequest
	if !bindJSON(ctx, &request) {
		return
	}

	handle, err := handler.mailService.ClaimHandle(ctx, principalFrom(ctx), request.Name)
	if err != nil {
		respondError(ctx, "error claiming handle", err)
		return
	}
	ctx.JSON(http.StatusCreated, HandleResponse{Handle: handle.Handle, CreatedAt: handle.CreatedAt})
}

// GetHandle handles the GET request for the caller's handle
func (handler *mailHandler) GetHandle(ctx *gin.Context) {
	handle, err := handler.mailService.HandleOf(ctx, principalFrom(ctx))
	if err != nil {
		respondError(ctx, "error loading handle", err)
		return
	}
	ctx.JSON(http.StatusOK, HandleResponse{Handle: handle.Handle, CreatedAt: handle.CreatedAt})
}

// StartConversation handles the POST request opening a conversation
func (handler *mailHandler) StartConversation(ctx *gin.Context) {
	var request StartConversationRequest
	if !bindJSON(ctx, &request) {
		return
	}

	conversation, message, err := handler.mailService.Start(ctx, principalFrom(ctx), mail.StartRequest{
		Recipients: request.Recipients,
		Subject:    request.Subject,
		Body:       request.Body,
	})
	if err != nil {
		respondError(ctx, "error starting conversation", err)
		return
	}

	response := newConversationResponse(conversation)
	last := newMessageResponse(message)
	response.LastMessage = &last
	ctx.JSON(http.StatusCreated, response)
}

// ListConversations handles the GET request for the caller's mailbox
func (handler *mailHandler) ListConversations(ctx *gin.Context) {
	summaries, err := handler.mailService.ListConversations(ctx, principalFrom(ctx))
	if err != nil {
		respondError(ctx, "error listing conversations", err)
		return
	}

	listResponse := []ConversationResponse{}
	for _, s := range summaries {
		listResponse = append(listResponse, newConversationSummaryResponse(s))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// ListMessages handles the GET request for the messages of a conversation
func (handler *mailHandler) ListMessages(ctx *gin.Context) {
	messages, err := handler.mailService.ListMessages(ctx, principalFrom(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "error listing messages", err)
		return
	}

	listResponse := []MessageResponse{}
	for _, m := range messages {
		listResponse = append(listResponse, newMessageResponse(m))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// Reply handles the POST request appending a message
func (handler *mailHandler) Reply(ctx *gin.Context) {
	var request ReplyRequest
	if !bindJSON(ctx, &request) {
		return
	}

	message, err := handler.mailService.Reply(ctx, principalFrom(ctx), ctx.Param("id"), request.Body)
	if err != nil {
		respondError(ctx, "error replying", err)
		return
	}
	ctx.JSON(http.StatusCreated, newMessageResponse(message))
}

// MarkRead handles the POST request marking a conversation read
func (handler *mailHandler) MarkRead(ctx *gin.Context) {
	if err := handler.mailService.MarkRead(ctx, principalFrom(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, "error marking conversation read", err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: "conversation marked read"})
}
