package routes

import (
	"career-compass/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Registry wires every handler onto the fiber app.
type Registry struct {
	Health *handler.HealthHandler
	Market *handler.MarketHandler
	Resume *handler.ResumeHandler
	Advice *handler.AdviceHandler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.Market.RegisterRoutes(v1.Group("/market"))
	r.Resume.RegisterRoutes(v1.Group("/resume"))
	r.Advice.RegisterRoutes(v1)
}
