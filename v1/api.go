package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/services"
	"github.com/pritom1343/travelbook-api/v1/hooks"
	"github.com/pritom1343/travelbook-api/v1/middleware"
)

// Server is the API server instance
type Server struct {
	AccountsService   *services.AccountsService
	AuthTokensService *services.AuthTokensService
	PackagesService   *services.PackagesService
	BookingsService   *services.BookingsService
	TripsService      *services.TripsService
	RatingsService    *services.RatingsService
	SiteService       *services.SiteService
	ChatService       *services.ChatService
}

// Setup mounts the API server to the given group
func (s *Server) Setup(g *gin.RouterGroup) {

	// Register middleware for all routes
	g.Use(middleware.CheckAuth(s.AuthTokensService, s.AccountsService))

	// Register all of the public hooks that require no authentication
	s.setupPublicHooks(g)

	// Register authenticated hooks
	s.setupAuthenticatedHooks(g)

	// Register admin-only hooks
	s.setupAdminHooks(g)

}

// setupPublicHooks mounts API hooks that are publicly accessible
func (s *Server) setupPublicHooks(g *gin.RouterGroup) {

	// Register public API routes
	g.POST("/app/get-state", hooks.AppState(
		s.SiteService,
	))
	g.POST("/auth/register", hooks.AuthRegister(
		s.AccountsService,
		s.AuthTokensService,
	))
	g.POST("/auth/login", hooks.AuthLogin(
		s.AccountsService,
		s.AuthTokensService,
		false,
	))
	g.POST("/auth/admin-login", hooks.AuthLogin(
		s.AccountsService,
		s.AuthTokensService,
		true,
	))
	g.POST("/packages/list", hooks.PackagesList(
		s.PackagesService,
		s.RatingsService,
	))
	g.POST("/packages/get", hooks.PackageGet(
		s.PackagesService,
		s.RatingsService,
	))

}

// setupAuthenticatedHooks mounts API hooks that require login
func (s *Server) setupAuthenticatedHooks(g *gin.RouterGroup) {

	// Require login for everything after this
	g.Use(middleware.RequireLogin())

	// Register authenticated API routes
	g.POST("/auth/whoami", hooks.AuthWhoAmI(
		s.AuthTokensService,
	))
	g.POST("/profile/update", hooks.ProfileUpdate(
		s.AccountsService,
	))
	g.POST("/bookings/create", hooks.BookingCreate(
		s.BookingsService,
		s.TripsService,
	))
	g.POST("/bookings/list", hooks.BookingsList(
		s.BookingsService,
	))
	g.POST("/bookings/cancel", hooks.BookingCancel(
		s.BookingsService,
	))
	g.POST("/trips/submit", hooks.TripSubmit(
		s.TripsService,
	))
	g.POST("/trips/list", hooks.TripsList(
		s.TripsService,
	))
	g.POST("/trips/resubmit", hooks.TripResubmit(
		s.TripsService,
	))
	g.POST("/packages/rate", hooks.RatePackage(
		s.RatingsService,
		s.PackagesService,
	))
	g.POST("/chat/history", hooks.ChatHistory(
		s.ChatService,
	))

}

// setupAdminHooks mounts API hooks that require administrator access
func (s *Server) setupAdminHooks(g *gin.RouterGroup) {

	// Require the admin flag for everything after this
	g.Use(middleware.RequireAdmin())

	// Register admin API routes
	g.POST("/admin/users/list", hooks.AdminUsersList(
		s.AccountsService,
	))
	g.POST("/admin/users/delete", hooks.AdminUserDelete(
		s.AccountsService,
	))
	g.POST("/admin/packages/create", hooks.AdminPackageCreate(
		s.PackagesService,
	))
	g.POST("/admin/packages/update", hooks.AdminPackageUpdate(
		s.PackagesService,
	))
	g.POST("/admin/packages/delete", hooks.AdminPackageDelete(
		s.PackagesService,
	))
	g.POST("/admin/trips/list", hooks.AdminTripsList(
		s.TripsService,
	))
	g.POST("/admin/trips/review", hooks.AdminTripReview(
		s.TripsService,
	))
	g.POST("/admin/bookings/list", hooks.AdminBookingsList(
		s.BookingsService,
	))
	g.POST("/admin/refunds/list", hooks.AdminRefundsList(
		s.BookingsService,
	))
	g.POST("/admin/chat/sessions", hooks.AdminChatSessions(
		s.ChatService,
	))
	g.POST("/admin/chat/thread", hooks.AdminChatThread(
		s.ChatService,
		s.AccountsService,
	))
	g.POST("/admin/home-image/set", hooks.AdminHomeImageSet(
		s.SiteService,
	))

}
