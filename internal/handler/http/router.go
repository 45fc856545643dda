package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
	"github.com/mikiasgoitom/Notebook/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	noteHandler   *NoteHandler
	adminHandler  *AdminHandler
	publicHandler *PublicHandler
	authUsecase   usecasecontract.IAuthUseCase
	logger        usecasecontract.IAppLogger
	policy        *middleware.Policy
}

func NewRouter(
	authUsecase usecasecontract.IAuthUseCase,
	noteUsecase usecasecontract.INoteUseCase,
	userUsecase usecasecontract.IUserUseCase,
	logger usecasecontract.IAppLogger,
) *Router {
	return &Router{
		noteHandler:   NewNoteHandler(noteUsecase),
		adminHandler:  NewAdminHandler(userUsecase),
		publicHandler: NewPublicHandler(),
		authUsecase:   authUsecase,
		logger:        logger,
		policy:        DefaultPolicy(),
	}
}

// DefaultPolicy is the route access rule table. Rules are evaluated in
// declaration order; anything unmatched requires authentication.
func DefaultPolicy() *middleware.Policy {
	return middleware.NewPolicy(
		middleware.Rule{Pattern: "/contact", Requirement: middleware.PermitAll()},
		middleware.Rule{Pattern: "/public/**", Requirement: middleware.PermitAll()},
		middleware.Rule{Pattern: "/metrics", Requirement: middleware.PermitAll()},
		middleware.Rule{Pattern: "/admin", Requirement: middleware.DenyAll()},
		middleware.Rule{Pattern: "/api/admin/**", Requirement: middleware.RequireRole(entity.UserRoleAdmin)},
	)
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Pipeline order is fixed: logging wraps everything so the outcome
	// of short-circuited requests is still recorded, validation runs
	// before authentication, authorization after.
	router.Use(middleware.RequestLogger(r.logger))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.Use(middleware.RequestValidator())
	router.Use(middleware.BasicAuth(r.authUsecase))
	router.Use(middleware.Authorize(r.policy))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	router.GET("/contact", r.publicHandler.Contact)
	router.GET("/public/ping", r.publicHandler.Ping)

	api := router.Group("/api")

	// Note CRUD, owner-scoped to the authenticated principal
	notes := api.Group("/notes")
	{
		notes.GET("", r.noteHandler.GetAllNotes)
		notes.POST("", r.noteHandler.CreateNote)
		notes.GET("/:noteID", r.noteHandler.GetNote)
		notes.PUT("/:noteID", r.noteHandler.UpdateNote)
		notes.DELETE("/:noteID", r.noteHandler.DeleteNote)
	}

	// Admin surface, reachable only with the ADMIN role
	admin := api.Group("/admin")
	{
		admin.GET("/users", r.adminHandler.ListUsers)
		admin.GET("/users/:userID", r.adminHandler.GetUser)
		admin.PUT("/users/:userID/role", r.adminHandler.UpdateUserRole)
	}
}
