package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Govind-17/chat-with-syllbus/internal/pkg/errcode"
	"github.com/Govind-17/chat-with-syllbus/internal/pkg/response"
	"github.com/Govind-17/chat-with-syllbus/internal/service"
)

type ChatHandler struct {
	chat *service.ChatService
}

func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type askRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

func (h *ChatHandler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request body")
		return
	}
	sessionID, answer := h.chat.Ask(c.Request.Context(), strings.TrimSpace(req.SessionID), req.Question)
	response.Success(c, gin.H{
		"session_id":             sessionID,
		"answer":                 answer.Answer,
		"sources":                answer.Sources,
		"confidence":             answer.Confidence,
		"confidence_explanation": answer.ConfidenceExplanation,
		"follow_up_question":     answer.FollowUp,
	})
}

func (h *ChatHandler) History(c *gin.Context) {
	msgs, err := h.chat.History(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"session_id": c.Param("id"), "messages": msgs})
}

func (h *ChatHandler) Sessions(c *gin.Context) {
	response.Success(c, h.chat.Sessions())
}

func (h *ChatHandler) DeleteSession(c *gin.Context) {
	if err := h.chat.DeleteSession(c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"ok": true})
}
