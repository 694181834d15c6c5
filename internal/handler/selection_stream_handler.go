package handler

import (
	"buildchem-be/internal/pkg/logger"
	"buildchem-be/internal/pkg/serverutils"
	internalWS "buildchem-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SelectionStreamHandler pushes selection badge updates to the visitor's open tabs.
type SelectionStreamHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewSelectionStreamHandler(hub *internalWS.Hub, log logger.ILogger) *SelectionStreamHandler {
	return &SelectionStreamHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *SelectionStreamHandler) RegisterRoutes(r fiber.Router, visitor fiber.Handler) {
	r.Get("/selection/ws", visitor, h.Upgrade, websocket.New(h.Serve))
}

// Upgrade rejects plain HTTP requests before the websocket handler runs.
func (h *SelectionStreamHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

func (h *SelectionStreamHandler) Serve(c *websocket.Conn) {
	visitorId, _ := c.Locals(serverutils.VisitorLocalKey).(string)
	if visitorId == "" {
		_ = c.Close()
		return
	}

	h.logger.Debug("SelectionStream", "Stream opened", map[string]interface{}{"visitor_id": visitorId})
	internalWS.ServeWs(h.hub, c, visitorId)
	h.logger.Debug("SelectionStream", "Stream closed", map[string]interface{}{"visitor_id": visitorId})
}
