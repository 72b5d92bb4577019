// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"outcome/config"
	"outcome/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config      *config.Config
	NoteHandler *handler.NoteHandler
	TestHandler *handler.TestHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	config      *config.Config
	noteHandler *handler.NoteHandler
	testHandler *handler.TestHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		config:      params.Config,
		noteHandler: params.NoteHandler,
		testHandler: params.TestHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	notesGroup := apiV1.Group("/notes")
	{
		notesGroup.POST("", r.noteHandler.CreateNote)
		notesGroup.GET("", r.noteHandler.ListNotes)
		notesGroup.GET("/:id", r.noteHandler.GetNote)
		notesGroup.DELETE("/:id", r.noteHandler.DeleteNote)
	}
}

// RegisterTestRoutes sets up the diagnostic routes when they are enabled.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	{
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/error/:status", r.testHandler.TestErrorEndpoint)
		testGroup.GET("/panic", r.testHandler.TestPanicEndpoint)
	}
}
