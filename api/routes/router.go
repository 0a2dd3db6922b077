// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"unibus/internal/bookings"
	"unibus/internal/locations"
	"unibus/internal/seats"
	"unibus/internal/shared/config"
	"unibus/internal/shared/database"
	"unibus/internal/times"
	"unibus/internal/trips"
	"unibus/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config         *config.Config
	db             *database.DB
	cacheService   cache.Service
	seatService    seats.Service // For dependency injection
	bookingService bookings.Service
}

// NewRouter creates a new router instance. bookingService carries the
// confirmation pipeline built in main (Kafka or direct SMTP).
func NewRouter(cfg *config.Config, db *database.DB, bookingService bookings.Service) *Router {
	return &Router{
		config:         cfg,
		db:             db,
		cacheService:   cache.NewService(db.GetRedis()),
		bookingService: bookingService,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupLocationRoutes(api)
		r.setupTimeRoutes(api)

		// Seat routes must be set up before trip routes for dependency injection
		r.setupSeatRoutes(api)
		r.setupTripRoutes(api)

		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "unibus-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "unibus-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "operational",
			"timestamp": time.Now(),
		})
	})
}

// setupLocationRoutes configures start/destination location management routes
func (r *Router) setupLocationRoutes(rg *gin.RouterGroup) {
	locationRepo := locations.NewRepository(r.db.GetPostgreSQL())
	locationService := locations.NewService(locationRepo, r.cacheService, r.config.Redis.ReferenceTTL)
	locationController := locations.NewController(locationService)

	locations.SetupLocationRoutes(rg, locationController)
}

// setupTimeRoutes configures departure time management routes
func (r *Router) setupTimeRoutes(rg *gin.RouterGroup) {
	timeRepo := times.NewRepository(r.db.GetPostgreSQL())
	timeService := times.NewService(timeRepo, r.cacheService, r.config.Redis.ReferenceTTL)
	timeController := times.NewController(timeService)

	times.SetupTimeRoutes(rg, timeController)
}

// setupSeatRoutes configures seat inventory routes
func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	seatService := seats.NewService(seatRepo)
	seatController := seats.NewController(seatService)

	// Store seat service so trip creation can initialize inventories
	r.seatService = seatService

	seats.SetupSeatRoutes(rg, seatController)
}

// setupTripRoutes configures trip management routes
func (r *Router) setupTripRoutes(rg *gin.RouterGroup) {
	tripRepo := trips.NewRepository(r.db.GetPostgreSQL())
	tripService := trips.NewService(tripRepo, r.seatService, r.cacheService, r.config.Redis.TripTTL)
	tripController := trips.NewController(tripService)

	trips.SetupTripRoutes(rg, tripController)
}

// setupBookingRoutes configures the booking confirmation route
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingController := bookings.NewController(r.bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}
