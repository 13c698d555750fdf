package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ozgurweb/sitepanel/internal/app/controllers"
	"github.com/ozgurweb/sitepanel/internal/middleware"
	"github.com/ozgurweb/sitepanel/internal/pkg/auth"
)

// SetupRoutes mounts the API surface. Intake submissions and login are
// public; everything else requires a valid staff token.
func SetupRoutes(router *gin.Engine, ctrl *controllers.Controllers, jwtService *auth.JWTService, blacklist *auth.TokenBlacklist) {
	api := router.Group("/api")

	api.POST("/auth/login", ctrl.Auth.Login)
	api.POST("/contact", ctrl.Inbox.SubmitContact)
	api.POST("/booking", ctrl.Inbox.SubmitBooking)

	authed := api.Group("", middleware.RequireAuth(jwtService, blacklist))

	authed.POST("/auth/logout", ctrl.Auth.Logout)

	registerCollection(authed, "/blog", ctrl.Blogs)
	registerCollection(authed, "/service", ctrl.Services)
	registerCollection(authed, "/about", ctrl.Abouts)
	registerCollection(authed, "/course", ctrl.Courses)
	registerCollection(authed, "/keyword", ctrl.Keywords)
	registerCollection(authed, "/seo", ctrl.Seo)
	registerCollection(authed, "/slider", ctrl.Sliders)

	authed.GET("/contact", ctrl.Inbox.ListContacts)
	authed.DELETE("/contact/:id", ctrl.Inbox.DeleteContact)
	authed.GET("/booking", ctrl.Inbox.ListBookings)
	authed.DELETE("/booking/:id", ctrl.Inbox.DeleteBooking)
}

// collectionController is the handler set every managed collection exposes.
type collectionController interface {
	List(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

func registerCollection(group *gin.RouterGroup, path string, ctrl collectionController) {
	group.GET(path, ctrl.List)
	group.POST(path, ctrl.Create)
	group.PUT(path+"/:id", ctrl.Update)
	group.DELETE(path+"/:id", ctrl.Delete)
}
