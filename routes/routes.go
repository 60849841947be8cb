package routes

import (
	"lucilla/admin"
	"lucilla/auth"
	"lucilla/booking"
	"lucilla/confirmation"
	"lucilla/coupons"
	"lucilla/middleware"
	"lucilla/models"
	"lucilla/properties"
	"lucilla/ratelim"
	"lucilla/reviews"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(auth.RefreshToken))
	router.GET("/api/auth/me", middleware.OptionalAuth(auth.Me))
}

func AddPropertyRoutes(router *httprouter.Router, addonCatalog []models.ServiceAddon) {
	router.GET("/api/properties", properties.ListProperties)
	router.GET("/api/properties/:propertyid", properties.GetProperty)
	router.PUT("/api/properties/:propertyid", middleware.RequireRole(properties.UpdateProperty, models.RoleAdmin))
	router.GET("/api/properties/:propertyid/addons", properties.GetAddonCatalog(addonCatalog))
	router.GET("/api/properties/:propertyid/unavailable", booking.UnavailableDates)
	router.GET("/api/properties/:propertyid/availability/ws", booking.AvailabilityWS)
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/quotes", rl.Limit(booking.QuoteHandler))
	router.POST("/api/bookings", rl.Limit(middleware.Authenticate(booking.CreateBooking)))
	router.GET("/api/bookings", middleware.Authenticate(booking.ListBookings))
	router.POST("/api/bookings/:id/cancel", middleware.Authenticate(booking.CancelBooking))
	router.PUT("/api/bookings/:id/status", middleware.RequireRole(booking.UpdateBookingStatus, models.RoleAdmin, models.RoleAgent))
	router.GET("/api/bookings/:id/confirmation", middleware.Authenticate(confirmation.PrintConfirmation))
}

func AddCouponRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/coupons/validate", rl.Limit(coupons.ValidateCouponHandler))
}

func AddReviewsRoutes(router *httprouter.Router) {
	router.GET("/api/reviews/:propertyid", reviews.GetReviews)
	router.POST("/api/reviews/:propertyid", middleware.Authenticate(reviews.CreateReview))
	router.DELETE("/api/reviews/:propertyid/:reviewid", middleware.Authenticate(reviews.DeleteReview))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.GET("/api/admin/overview", middleware.RequireRole(admin.Overview, models.RoleAdmin))
}
