package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/backlinehq/backline/internal/dto"
	"github.com/backlinehq/backline/internal/service"
	"github.com/backlinehq/backline/pkg/response"
)

// AttachmentHandler handles the child entities of events, opportunities, and
// contacts. Each route is registered with the parent kind baked in, so the
// URL structure decides which parent the service authorizes against.
type AttachmentHandler struct {
	attachmentService service.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler
func NewAttachmentHandler(attachmentService service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService}
}

// AddNote handles POST /{parent}/:id/notes
func (h *AttachmentHandler) AddNote(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var req dto.CreateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
			return
		}

		note, err := h.attachmentService.AddNote(c.Request.Context(), userID, parentType, c.Param("id"), &req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, response.Success(note))
	}
}

// ListNotes handles GET /{parent}/:id/notes
func (h *AttachmentHandler) ListNotes(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		notes, err := h.attachmentService.ListNotes(c.Request.Context(), userID, parentType, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, response.Success(notes))
	}
}

// DeleteNote handles DELETE /{parent}/:id/notes/:noteId
func (h *AttachmentHandler) DeleteNote(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		if err := h.attachmentService.DeleteNote(c.Request.Context(), userID, parentType, c.Param("id"), c.Param("noteId")); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Note deleted"}))
	}
}

// AddComment handles POST /{parent}/:id/comments
func (h *AttachmentHandler) AddComment(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var req dto.CreateCommentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
			return
		}

		comment, err := h.attachmentService.AddComment(c.Request.Context(), userID, parentType, c.Param("id"), &req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, response.Success(comment))
	}
}

// ListComments handles GET /{parent}/:id/comments
func (h *AttachmentHandler) ListComments(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		comments, err := h.attachmentService.ListComments(c.Request.Context(), userID, parentType, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, response.Success(comments))
	}
}

// DeleteComment handles DELETE /{parent}/:id/comments/:commentId
func (h *AttachmentHandler) DeleteComment(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		if err := h.attachmentService.DeleteComment(c.Request.Context(), userID, parentType, c.Param("id"), c.Param("commentId")); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Comment deleted"}))
	}
}

// AddDocument handles POST /{parent}/:id/documents
func (h *AttachmentHandler) AddDocument(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var req dto.CreateDocumentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
			return
		}

		doc, err := h.attachmentService.AddDocument(c.Request.Context(), userID, parentType, c.Param("id"), &req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, response.Success(doc))
	}
}

// ListDocuments handles GET /{parent}/:id/documents
func (h *AttachmentHandler) ListDocuments(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		docs, err := h.attachmentService.ListDocuments(c.Request.Context(), userID, parentType, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, response.Success(docs))
	}
}

// DeleteDocument handles DELETE /{parent}/:id/documents/:documentId
func (h *AttachmentHandler) DeleteDocument(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		if err := h.attachmentService.DeleteDocument(c.Request.Context(), userID, parentType, c.Param("id"), c.Param("documentId")); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Document deleted"}))
	}
}

// AddLabel handles POST /opportunities/:id/labels
func (h *AttachmentHandler) AddLabel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	label, err := h.attachmentService.AddLabel(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(label))
}

// ListLabels handles GET /opportunities/:id/labels
func (h *AttachmentHandler) ListLabels(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	labels, err := h.attachmentService.ListLabels(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(labels))
}

// DeleteLabel handles DELETE /opportunities/:id/labels/:labelId
func (h *AttachmentHandler) DeleteLabel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.attachmentService.DeleteLabel(c.Request.Context(), userID, c.Param("id"), c.Param("labelId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Label deleted"}))
}

// AddTag handles POST /{parent}/:id/tags
func (h *AttachmentHandler) AddTag(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var req dto.CreateTagRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
			return
		}

		tag, err := h.attachmentService.AddTag(c.Request.Context(), userID, parentType, c.Param("id"), &req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, response.Success(tag))
	}
}

// ListTags handles GET /{parent}/:id/tags
func (h *AttachmentHandler) ListTags(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		tags, err := h.attachmentService.ListTags(c.Request.Context(), userID, parentType, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, response.Success(tags))
	}
}

// DeleteTag handles DELETE /{parent}/:id/tags/:tagId
func (h *AttachmentHandler) DeleteTag(parentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		if err := h.attachmentService.DeleteTag(c.Request.Context(), userID, parentType, c.Param("id"), c.Param("tagId")); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Tag deleted"}))
	}
}
