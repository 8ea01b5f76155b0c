package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"

	"favorites_api/internal/config"
	"favorites_api/internal/database"
	"favorites_api/internal/handlers"
	"favorites_api/internal/middlewares"
	"favorites_api/internal/repositories"
	"favorites_api/internal/responses"
	"favorites_api/internal/routes"
	"favorites_api/internal/services"
)

// NewServer wires repositories, services and handlers on top of pool and
// returns an http.Server ready to ListenAndServe.
func NewServer(cfg *config.Config, pool *pgxpool.Pool) (*http.Server, error) {
	db, err := database.OpenGorm(pool)
	if err != nil {
		return nil, err
	}

	gin.SetMode(cfg.GinMode)
	router := NewRouter(NewHandlers(db))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      StripTrailingSlash(router),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, nil
}

// NewHandlers performs the dependency injection from the ORM handle down.
func NewHandlers(db *gorm.DB) routes.Handlers {
	userRepo := repositories.NewUserRepository(db)
	planetRepo := repositories.NewPlanetRepository(db)
	characterRepo := repositories.NewCharacterRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)

	userService := services.NewUserService(userRepo)
	planetService := services.NewPlanetService(planetRepo)
	characterService := services.NewCharacterService(characterRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, userRepo, planetRepo, characterRepo)

	return routes.Handlers{
		User:      handlers.NewUserHandler(userService),
		Planet:    handlers.NewPlanetHandler(planetService),
		Character: handlers.NewCharacterHandler(characterService),
		Favorite:  handlers.NewFavoriteHandler(favoriteService),
	}
}

// NewRouter builds the gin engine with middlewares, fallbacks and routes.
func NewRouter(h routes.Handlers) *gin.Engine {
	handlers.ConfigureBinding()

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.HandleMethodNotAllowed = true

	router.Use(middlewares.RequestLogger(), middlewares.Recovery())
	router.Use(cors.Default())

	router.NoMethod(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Invalid Method")
	})
	router.NoRoute(responses.NotFound)

	routes.RegisterRoutes(router, h)
	return router
}

// StripTrailingSlash makes /user/ and /user the same route.
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path := r.URL.Path; len(path) > 1 && strings.HasSuffix(path, "/") {
			r.URL.Path = strings.TrimRight(path, "/")
			if r.URL.Path == "" {
				r.URL.Path = "/"
			}
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}
