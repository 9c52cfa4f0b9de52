package handler

import (
	"net/http"
	"time"

	"supplier-portal/internal/store"
	"supplier-portal/pkg/logger"
	"supplier-portal/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// anonymousUser is used when a request carries no user id
const anonymousUser = "anonymous"

// UserHandler serves per-user annotations (favorites, notes, inbox)
type UserHandler struct {
	annotations *store.AnnotationStore
}

// NewUserHandler creates a user handler on the given annotation store
func NewUserHandler(annotations *store.AnnotationStore) *UserHandler {
	return &UserHandler{annotations: annotations}
}

// FavoriteRequest is the body for favorite add/remove requests
type FavoriteRequest struct {
	UserID     string `json:"user_id"`
	SupplierID int    `json:"supplier_id"`
}

// NoteRequest is the body for note save requests
type NoteRequest struct {
	UserID     string `json:"user_id"`
	SupplierID int    `json:"supplier_id"`
	NoteText   string `json:"note_text"`
}

// InboxRequest is the body for inbox append requests
type InboxRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

func userOrAnonymous(userID string) string {
	if userID == "" {
		return anonymousUser
	}
	return userID
}

func clientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{
		"success": false,
		"error":   message,
	})
}

func serverError(c echo.Context, log *zap.Logger, message string, err error) error {
	log.Error(message, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"success": false,
		"error":   message,
	})
}

// GetFavorites handles GET /api/user/favorites
func (h *UserHandler) GetFavorites(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAnnotationOperation("favorites_get")

	userID := userOrAnonymous(c.QueryParam("user_id"))

	defer prometheus.TrackDBOperation("query")(time.Now())
	favorites, err := h.annotations.Favorites(userID)
	if err != nil {
		return serverError(c, log, "Failed to load favorites", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"favorites": favorites,
	})
}

// GetNotes handles GET /api/user/notes
func (h *UserHandler) GetNotes(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAnnotationOperation("notes_get")

	userID := userOrAnonymous(c.QueryParam("user_id"))

	defer prometheus.TrackDBOperation("query")(time.Now())
	notes, err := h.annotations.Notes(userID)
	if err != nil {
		return serverError(c, log, "Failed to load notes", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"notes":   notes,
	})
}

// GetInbox handles GET /api/user/inbox
func (h *UserHandler) GetInbox(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAnnotationOperation("inbox_get")

	userID := userOrAnonymous(c.QueryParam("user_id"))

	defer prometheus.TrackDBOperation("query")(time.Now())
	inbox, err := h.annotations.Inbox(userID)
	if err != nil {
		return serverError(c, log, "Failed to load inbox", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"inbox":   inbox,
	})
}

// GetProfile handles GET /api/user/profile. Unknown users get a
// default-empty profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAnnotationOperation("profile_get")

	userID := userOrAnonymous(c.QueryParam("user_id"))

	defer prometheus.TrackDBOperation("query")(time.Now())
	profile, err := h.annotations.Profile(userID)
	if err != nil {
		return serverError(c, log, "Failed to load profile", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    profile,
	})
}

// AddFavorite handles POST /api/user/favorites/add
func (h *UserHandler) AddFavorite(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAnnotationOperation("favorites_add")

	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request body", zap.Error(err))
		return clientError(c, "Invalid request body")
	}
	if req.SupplierID <= 0 {
		return clientError(c, "supplier_id is required")
	}
	userID := userOrAnonymous(req.UserID)

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.annotations.AddFavorite(userID, req.SupplierID); err != nil {
		return serverError(c, log, "Failed to add favorite", err)
	}

	log.Info("Favorite added",
		zap.String("user_id", userID),
		zap.Int("supplier_id", req.SupplierID))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Added to favorites",
	})
}

// RemoveFavorite handles POST /api/user/favorites/remove
func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAnnotationOperation("favorites_remove")

	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request body", zap.Error(err))
		return clientError(c, "Invalid request body")
	}
	if req.SupplierID <= 0 {
		return clientError(c, "supplier_id is required")
	}
	userID := userOrAnonymous(req.UserID)

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.annotations.RemoveFavorite(userID, req.SupplierID); err != nil {
		return serverError(c, log, "Failed to remove favorite", err)
	}

	log.Info("Favorite removed",
		zap.String("user_id", userID),
		zap.Int("supplier_id", req.SupplierID))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Removed from favorites",
	})
}

// SaveNote handles POST /api/user/notes/save
func (h *UserHandler) SaveNote(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAnnotationOperation("notes_save")

	var req NoteRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request body", zap.Error(err))
		return clientError(c, "Invalid request body")
	}
	if req.SupplierID <= 0 {
		return clientError(c, "supplier_id is required")
	}
	userID := userOrAnonymous(req.UserID)

	defer prometheus.TrackDBOperation("upsert")(time.Now())
	if err := h.annotations.SaveNote(userID, req.SupplierID, req.NoteText); err != nil {
		return serverError(c, log, "Failed to save note", err)
	}

	log.Info("Note saved",
		zap.String("user_id", userID),
		zap.Int("supplier_id", req.SupplierID))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Note saved",
	})
}

// AddInboxMessage handles POST /api/user/inbox/add
func (h *UserHandler) AddInboxMessage(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordAnnotationOperation("inbox_add")

	var req InboxRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request body", zap.Error(err))
		return clientError(c, "Invalid request body")
	}
	if req.Message == "" {
		return clientError(c, "message is required")
	}
	userID := userOrAnonymous(req.UserID)

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := h.annotations.AppendInboxMessage(userID, req.Message); err != nil {
		return serverError(c, log, "Failed to append inbox message", err)
	}

	log.Info("Inbox message added", zap.String("user_id", userID))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Message added",
	})
}
