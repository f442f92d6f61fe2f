package handler

import (
	"github.com/movesure/dispatch/internal/pkg/models"
	wspkg "github.com/movesure/dispatch/internal/pkg/websocket"
	"github.com/movesure/dispatch/services/dispatch"
)

// dispatchHandler handles requests for the dispatch service
type dispatchHandler struct {
	cfg        *models.Config
	dispatchUC dispatch.DispatchUC
	wsManager  *wspkg.Manager
}

// NewDispatchHandler creates a new dispatch handler
func NewDispatchHandler(
	cfg *models.Config,
	dispatchUC dispatch.DispatchUC,
	wsManager *wspkg.Manager,
) *dispatchHandler {
	return &dispatchHandler{
		cfg:        cfg,
		dispatchUC: dispatchUC,
		wsManager:  wsManager,
	}
}
