package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"sadguru-seva-be/internal/pkg/logger"
	"sadguru-seva-be/internal/pkg/serverutils"
	internalWS "sadguru-seva-be/internal/websocket"
)

// LiveHandler upgrades /ws/japa connections into the live-progress hub.
type LiveHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewLiveHandler(hub *internalWS.Hub, log logger.ILogger) *LiveHandler {
	return &LiveHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *LiveHandler) ServeWs(c *fiber.Ctx) error {
	// Token source priority: query param (browser standard), then
	// Authorization header (tooling).
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	claims, err := serverutils.ParseToken(tokenStr)
	if err != nil {
		h.logger.Warn("LiveHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	userToken, ok := claims["user_token"].(string)
	if !ok || userToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("LiveHandler", "Starting WebSocket session", map[string]interface{}{"user_token": userToken})
			internalWS.ServeWs(h.hub, conn, userToken)
			h.logger.Info("LiveHandler", "WebSocket session ended", map[string]interface{}{"user_token": userToken})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the live websocket route.
func (h *LiveHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/japa", h.ServeWs)
}
