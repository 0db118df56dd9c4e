package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/tutor-lambda/docs"
	"github.com/saulo-duarte/tutor-lambda/internal/config"
	"github.com/saulo-duarte/tutor-lambda/internal/middlewares"
	"github.com/saulo-duarte/tutor-lambda/internal/tutor"
)

type RouterConfig struct {
	CorsOrigin   string
	TutorHandler *tutor.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CorsOrigin))

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Mount("/mistral", tutor.Routes(cfg.TutorHandler))

	return r
}
