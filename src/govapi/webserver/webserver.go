package webserver

import (
	"github.com/gin-gonic/gin"

	"github.com/openlearn-dev/community-gov/src/govapi/config"
	"github.com/openlearn-dev/community-gov/src/govapi/governance"
)

func New(cfg config.Config, svc *governance.Service) *gin.Engine {
	g := gin.New()
	g.Use(gin.Logger(), gin.Recovery())
	attachRoutes(g, cfg, svc)
	return g
}
