package webserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openlearn-dev/community-gov/src/govapi/config"
	"github.com/openlearn-dev/community-gov/src/govapi/governance"
)

func attachRoutes(r *gin.Engine, cfg config.Config, svc *governance.Service) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	propH := NewProposals(svc)
	voteH := NewVotes(svc)
	adminH := NewAdmin(svc)
	limiter := NewRateLimiter(30, time.Minute)

	v1 := r.Group("/v1")
	{
		v1.GET("/proposals", propH.List)
		v1.GET("/proposals/:id", propH.Get)

		secured := v1.Group("")
		secured.Use(JWTMiddleware([]byte(cfg.JWTSecret)), RateLimitMiddleware(limiter))
		{
			secured.POST("/proposals", propH.Create)
			secured.POST("/proposals/:id/submit", propH.Submit)
			secured.POST("/proposals/:id/validate", propH.Validate)
			secured.POST("/proposals/:id/votes", voteH.Cast)
			secured.POST("/proposals/:id/close", propH.Close)
		}

		admin := v1.Group("/admin")
		admin.Use(JWTMiddleware([]byte(cfg.JWTSecret)))
		{
			admin.POST("/proposals/:id/veto", adminH.Veto)
			admin.POST("/proposals/:id/force-implement", adminH.ForceImplement)
			admin.POST("/proposals/:id/implemented", adminH.MarkImplemented)
			admin.GET("/proposals/:id/actions", adminH.Actions)
		}
	}
}
