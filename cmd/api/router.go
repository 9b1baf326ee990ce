package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/container"
)

// SetupRouter wires the route table.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	v1 := router.Group("/api/v1")

	// Identity resolution runs once per request; operations that do not
	// care about the caller simply ignore the resolved user
	v1.Use(middleware.Identity(c.JWTManager, c.UserRepo))

	// Health
	v1.GET("/health", func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", err.Error())
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	})

	// Books
	v1.GET("/books", c.BookHandler.AllBooks)
	v1.GET("/books/count", c.BookHandler.Count)
	v1.POST("/books", c.BookHandler.AddBook)

	// Authors
	v1.GET("/authors", c.AuthorHandler.AllAuthors)
	v1.GET("/authors/count", c.AuthorHandler.Count)
	v1.PATCH("/authors", c.AuthorHandler.EditAuthor)

	// Users & auth
	v1.POST("/users", c.UserHandler.CreateUser)
	v1.POST("/login", c.UserHandler.Login)
	v1.GET("/me", c.UserHandler.Me)

	return router
}
