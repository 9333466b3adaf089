// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/travel-tracker/middleware"
	"github.com/danielhkuo/travel-tracker/models"
	"github.com/danielhkuo/travel-tracker/session"
	"github.com/danielhkuo/travel-tracker/store"
	"github.com/danielhkuo/travel-tracker/views"
)

type TrackerHandler struct {
	store    store.Repository
	sessions session.Manager
	views    *views.Renderer
	metrics  *middleware.Metrics
}

func NewTrackerHandler(repo store.Repository, sessions session.Manager, renderer *views.Renderer, metrics *middleware.Metrics) *TrackerHandler {
	return &TrackerHandler{store: repo, sessions: sessions, views: renderer, metrics: metrics}
}

// Index handles GET /
// Renders the map for the current user
func (h *TrackerHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := h.sessions.CurrentUserID(r)
	if err != nil {
		slog.Error("failed to read session", "error", err)
		middleware.InternalError(w)
		return
	}

	countries, err := h.store.ListVisitedCodes(ctx, userID)
	if err != nil {
		slog.Error("failed to list visited countries", "user_id", userID, "error", err)
		middleware.InternalError(w)
		return
	}

	users, err := h.store.ListUsers(ctx)
	if err != nil {
		slog.Error("failed to list users", "error", err)
		middleware.InternalError(w)
		return
	}

	current, ok := h.currentUser(w, r, userID)
	if !ok {
		return
	}

	page := models.IndexPage{
		Countries:   countries,
		Total:       len(countries),
		Users:       users,
		CurrentUser: current,
		Color:       current.Color,
	}
	if err := h.views.Render(w, http.StatusOK, views.Index, page); err != nil {
		slog.Error("failed to render index", "error", err)
		middleware.InternalError(w)
	}
}

// AddCountry handles POST /add
// Marks the first country whose name contains the input as visited
func (h *TrackerHandler) AddCountry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	input := r.PostFormValue(models.FieldCountry)

	userID, err := h.sessions.CurrentUserID(r)
	if err != nil {
		slog.Error("failed to read session", "error", err)
		middleware.InternalError(w)
		return
	}

	current, ok := h.currentUser(w, r, userID)
	if !ok {
		return
	}

	country, err := h.store.ResolveCountry(ctx, input)
	if errors.Is(err, store.ErrCountryNotFound) {
		h.metrics.CountryMisses.Inc()
		slog.Info("country not found", "input", input, "user_id", current.ID)
		middleware.TextResponse(w, http.StatusNotFound, "Country not found")
		return
	}
	if err != nil {
		slog.Error("failed to look up country", "input", input, "error", err)
		middleware.InternalError(w)
		return
	}

	if err := h.store.AddVisited(ctx, country.Code, current.ID); err != nil {
		slog.Error("failed to add visited country", "country_code", country.Code, "user_id", current.ID, "error", err)
		middleware.InternalError(w)
		return
	}

	h.metrics.VisitsRecorded.Inc()
	slog.Info("country visited", "country_code", country.Code, "user_id", current.ID)

	http.Redirect(w, r, "/", http.StatusFound)
}

// SwitchUser handles POST /user
// add=new shows the new-user form; otherwise the session moves to the
// submitted user without checking it exists
func (h *TrackerHandler) SwitchUser(w http.ResponseWriter, r *http.Request) {
	if r.PostFormValue(models.FieldAdd) == models.AddNewUser {
		if err := h.views.Render(w, http.StatusOK, views.NewUser, models.NewUserPage{Colors: models.UserColors}); err != nil {
			slog.Error("failed to render new user form", "error", err)
			middleware.InternalError(w)
		}
		return
	}

	raw := r.PostFormValue(models.FieldUser)
	userID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		// Accepted like any other id; it will not resolve on the next render
		slog.Warn("switching to non-numeric user", "user", raw)
		userID = 0
	}

	if err := h.sessions.SetCurrentUserID(w, r, userID); err != nil {
		slog.Error("failed to switch user", "user_id", userID, "error", err)
		middleware.InternalError(w)
		return
	}

	h.metrics.UserSwitches.Inc()
	slog.Info("user switched", "user_id", userID)

	http.Redirect(w, r, "/", http.StatusFound)
}

// CreateUser handles POST /new
// Creates a user and makes it the current user
func (h *TrackerHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue(models.FieldName)
	color := r.PostFormValue(models.FieldColor)

	user, err := h.store.CreateUser(r.Context(), name, color)
	if err != nil {
		slog.Error("failed to create user", "error", err)
		middleware.InternalError(w)
		return
	}

	if err := h.sessions.SetCurrentUserID(w, r, user.ID); err != nil {
		slog.Error("failed to switch to new user", "user_id", user.ID, "error", err)
		middleware.InternalError(w)
		return
	}

	h.metrics.UsersCreated.Inc()
	slog.Info("user created", "user_id", user.ID, "name", user.Name, "color", user.Color)

	http.Redirect(w, r, "/", http.StatusFound)
}

// currentUser resolves the session's user. On failure it writes the 500
// response and returns false.
func (h *TrackerHandler) currentUser(w http.ResponseWriter, r *http.Request, userID int64) (models.User, bool) {
	user, err := h.store.GetUser(r.Context(), userID)
	if errors.Is(err, store.ErrUserNotFound) {
		slog.Warn("current user does not exist", "user_id", userID, "path", r.URL.Path)
		middleware.InternalError(w)
		return models.User{}, false
	}
	if err != nil {
		slog.Error("failed to load current user", "user_id", userID, "error", err)
		middleware.InternalError(w)
		return models.User{}, false
	}
	return user, true
}
