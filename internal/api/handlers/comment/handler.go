package comment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/iskandar/reply-notifier/internal/api/respond"
	"github.com/iskandar/reply-notifier/internal/config"
	"github.com/iskandar/reply-notifier/internal/model"
	commentrepo "github.com/iskandar/reply-notifier/internal/repository/comment"
	commentsvc "github.com/iskandar/reply-notifier/internal/service/comment"
	"github.com/iskandar/reply-notifier/internal/thread"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/comment/mock.go -package=mocks
type commentService interface {
	CreateReply(ctx context.Context, strategy retry.Strategy, contentItemID uuid.UUID, parentID *uuid.UUID, authorID uuid.UUID, body string) (model.Comment, error)
	GetThread(ctx context.Context, contentItemID uuid.UUID) ([]*model.CommentNode, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
}

// Handler handles HTTP requests for comments and threads.
type Handler struct {
	service   commentService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s commentService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// CreateRequest represents the JSON body of a comment creation request.
// Identifiers arrive as canonical lowercase UUID strings and are parsed once
// here, at the boundary.
type CreateRequest struct {
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
	AuthorID string  `json:"author_id" validate:"required,uuid"`
	Body     string  `json:"body" validate:"required,max=1000"`
}

// Create handles POST requests to add a comment or reply to a content item.
//
// It returns once the comment is stored and any notification job is handed
// off; delivery is asynchronous and never reflected in this response.
func (h *Handler) Create(c *ginext.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", c.Param("id")).Msg("invalid content item id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid content item id"))
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid author id"))
		return
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		parsed, err := uuid.Parse(*req.ParentID)
		if err != nil {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid parent id"))
			return
		}
		parentID = &parsed
	}

	created, err := h.service.CreateReply(c.Request.Context(), h.cfg.Retry, itemID, parentID, authorID, req.Body)
	if err != nil {
		if errors.Is(err, commentsvc.ErrParentNotFound) || errors.Is(err, commentsvc.ErrParentMismatch) {
			zlog.Logger.Warn().Err(err).Str("content_item_id", itemID.String()).Msg("rejected malformed reply")
			respond.Fail(c.Writer, http.StatusUnprocessableEntity, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("content_item_id", itemID.String()).Msg("failed to create comment")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, created)
}

// GetThread handles GET requests for a content item's assembled thread.
func (h *Handler) GetThread(c *ginext.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid content item id"))
		return
	}

	forest, err := h.service.GetThread(c.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, thread.ErrDanglingParent) || errors.Is(err, thread.ErrCrossItemParent) {
			// Stored data violates the forest invariant; report it instead
			// of silently repairing.
			zlog.Logger.Error().Err(err).Str("content_item_id", itemID.String()).Msg("malformed thread data")
			respond.Fail(c.Writer, http.StatusUnprocessableEntity, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("content_item_id", itemID.String()).Msg("failed to get thread")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, forest)
}

// Delete handles DELETE requests for a single comment.
func (h *Handler) Delete(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), id); err != nil {
		if errors.Is(err, commentrepo.ErrCommentNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("comment not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete comment")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.NoContent(c.Writer)
}
