package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/leoslab/platform-api/internal/api/http"
	"github.com/leoslab/platform-api/internal/api/http/middleware"
	itemshttp "github.com/leoslab/platform-api/internal/items/http"
	"github.com/leoslab/platform-api/internal/items/repository"
	"github.com/leoslab/platform-api/internal/items/service"
	"github.com/leoslab/platform-api/internal/jira"
	jirahttp "github.com/leoslab/platform-api/internal/jira/http"
	"github.com/leoslab/platform-api/internal/vault"
	vaulthttp "github.com/leoslab/platform-api/internal/vault/http"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowOrigins   []string
	DB             *sql.DB
	Jira           *jira.Client
	JiraMaxResults int
	Vault          *vault.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	corsCfg := cors.DefaultConfig()
	if len(dep.AllowOrigins) == 1 && dep.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = dep.AllowOrigins
	}
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	itemRepo := repository.NewItemRepository(dep.DB)
	itemSvc := service.NewItemService(itemRepo)
	itemshttp.New(itemSvc).Register(r)

	if dep.Jira != nil {
		jirahttp.New(dep.Jira, dep.JiraMaxResults).Register(r.Group("/jira"))
	}
	if dep.Vault != nil {
		vaulthttp.New(dep.Vault).Register(r.Group("/vault"))
	}

	return r
}
