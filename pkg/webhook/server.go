package webhook

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdateHandler consumes one decoded Telegram update.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
}

// Server is the inbound HTTP surface: a liveness route and the
// token-scoped Telegram webhook route.
type Server struct {
	token   string
	handler UpdateHandler
	router  *gin.Engine
}

func New(token string, handler UpdateHandler) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		token:   token,
		handler: handler,
		router:  gin.New(),
	}
	s.router.Use(gin.Recovery())

	s.router.GET("/", s.health)
	s.router.POST("/telegram/webhook/:token", s.telegramWebhook)
	return s
}

// Handler exposes the router for http.Server wiring and tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// telegramWebhook ingests one update. Every accepted request is ACKed
// with 200 regardless of processing outcome: Telegram re-delivers on
// non-2xx responses and a retry storm helps nobody.
func (s *Server) telegramWebhook(c *gin.Context) {
	if c.Param("token") != s.token {
		c.JSON(http.StatusNotFound, gin.H{"ok": false})
		return
	}

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		log.Printf("[webhook] Dropping malformed update payload: %v", err)
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	s.handler.HandleUpdate(c.Request.Context(), update)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
