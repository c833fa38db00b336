package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Govind-17/chat-with-syllbus/internal/pkg/errcode"
	"github.com/Govind-17/chat-with-syllbus/internal/pkg/response"
	"github.com/Govind-17/chat-with-syllbus/internal/service"
)

type DocumentHandler struct {
	documents *service.DocumentService
}

func NewDocumentHandler(documents *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

func (h *DocumentHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, errcode.ErrInvalid, "multipart field 'file' is required")
		return
	}
	src, err := file.Open()
	if err != nil {
		response.Error(c, errcode.ErrUploadFailed, "failed to read upload")
		return
	}
	defer src.Close()

	status, err := h.documents.Upload(c.Request.Context(), file.Filename, file.Size, src)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, status)
}

func (h *DocumentHandler) List(c *gin.Context) {
	response.Success(c, h.documents.List())
}

func (h *DocumentHandler) Status(c *gin.Context) {
	status, err := h.documents.Status(c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, status)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.documents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"ok": true})
}

func (h *DocumentHandler) IndexStats(c *gin.Context) {
	count, err := h.documents.IndexCount(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"vectors": count})
}
