package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes wires every /api endpoint onto the router.
func RegisterAPIRoutes(r *gin.Engine) {
	menuHandler := &MenuHandler{}
	menuRoutes := r.Group("/api/menu")
	{
		menuRoutes.GET("", menuHandler.GetMenu)
		menuRoutes.GET("/category/:id", menuHandler.GetByCategory)
		menuRoutes.GET("/specials", menuHandler.GetSpecials)
		menuRoutes.GET("/item/:id", menuHandler.GetItem)
	}

	orderHandler := &OrderHandler{}
	orderRoutes := r.Group("/api/orders")
	{
		orderRoutes.POST("", orderHandler.CreateOrder)
		orderRoutes.GET("/:orderNumber", orderHandler.GetOrder)
		orderRoutes.GET("/:orderNumber/status", orderHandler.GetOrderStatus)
		orderRoutes.PATCH("/:orderNumber/status", orderHandler.UpdateOrderStatus)
	}

	reservationHandler := &ReservationHandler{}
	reservationRoutes := r.Group("/api/reservations")
	{
		reservationRoutes.POST("", reservationHandler.CreateReservation)
		reservationRoutes.GET("/:id", reservationHandler.GetReservation)
		reservationRoutes.PATCH("/:id/status", reservationHandler.UpdateReservationStatus)
		reservationRoutes.GET("/availability/:date", reservationHandler.GetAvailability)
	}

	contactHandler := &ContactHandler{}
	contactRoutes := r.Group("/api/contact")
	{
		contactRoutes.POST("", contactHandler.CreateContact)
		contactRoutes.GET("", contactHandler.ListContactMessages)
		contactRoutes.PATCH("/:id/read", contactHandler.MarkRead)
	}

	newsletterHandler := &NewsletterHandler{}
	newsletterRoutes := r.Group("/api/newsletter")
	{
		newsletterRoutes.POST("/subscribe", newsletterHandler.Subscribe)
		newsletterRoutes.POST("/unsubscribe", newsletterHandler.Unsubscribe)
		newsletterRoutes.GET("/subscribers", newsletterHandler.ListSubscribers)
		newsletterRoutes.POST("/send", newsletterHandler.SendNewsletter)
	}

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}

// RegisterPageRoutes wires the server-rendered pages. The caller is expected
// to have loaded the HTML templates onto the router first.
func RegisterPageRoutes(r *gin.Engine) {
	pageHandler := &PageHandler{}
	r.GET("/", pageHandler.Home)
	r.GET("/menu", pageHandler.Menu)
	r.GET("/about", pageHandler.About)
	r.GET("/contact", pageHandler.Contact)
	r.GET("/order", pageHandler.Order)
	r.GET("/reservations", pageHandler.Reservations)
}
