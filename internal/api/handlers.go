// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package api

import (
	"context"
	"time"

	"github.com/tomtom215/menuboard/internal/auth"
	"github.com/tomtom215/menuboard/internal/logging"
	"github.com/tomtom215/menuboard/internal/models"
	"github.com/tomtom215/menuboard/internal/validation"
)

// MenuService is the menu behaviour the handlers need. *menu.Service satisfies it.
type MenuService interface {
	List(ctx context.Context) (models.Collection, error)
	Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
	Update(ctx context.Context, id int, item models.MenuItem) (models.MenuItem, error)
	Delete(ctx context.Context, id int) error
}

// HandlerDeps collects the collaborators of Handler.
type HandlerDeps struct {
	Menu      MenuService
	Items     *validation.ItemValidator
	Sessions  *auth.SessionManager
	Password  *auth.PasswordVerifier
	Limiter   *auth.LoginLimiter
	Security  *logging.SecurityLogger
	StartTime time.Time
}

// Handler serves every route.
type Handler struct {
	menu      MenuService
	items     *validation.ItemValidator
	sessions  *auth.SessionManager
	password  *auth.PasswordVerifier
	limiter   *auth.LoginLimiter
	security  *logging.SecurityLogger
	startTime time.Time
}

// NewHandler creates a Handler. A nil Security logger defaults to one on the
// global logger.
func NewHandler(deps HandlerDeps) *Handler {
	security := deps.Security
	if security == nil {
		security = logging.NewSecurityLogger()
	}
	startTime := deps.StartTime
	if startTime.IsZero() {
		startTime = time.Now()
	}
	return &Handler{
		menu:      deps.Menu,
		items:     deps.Items,
		sessions:  deps.Sessions,
		password:  deps.Password,
		limiter:   deps.Limiter,
		security:  security,
		startTime: startTime,
	}
}
