package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-concierge/chatbot"
	"github.com/yeremiapane/restaurant-concierge/controllers"
	"github.com/yeremiapane/restaurant-concierge/kds"
	"github.com/yeremiapane/restaurant-concierge/middlewares"
	"github.com/yeremiapane/restaurant-concierge/services"
	"gorm.io/gorm"
)

// Deps -> semua yang dibutuhkan router
type Deps struct {
	DB           *gorm.DB
	Hub          *kds.Hub
	Availability *services.AvailabilityService
	Feedback     *services.FeedbackService
	Menu         *services.MenuService
	Chat         *chatbot.Manager

	CORSOrigin  string
	ChatLimiter *middlewares.RateLimiter
}

// NewDeps merakit service, hub dan chat manager di atas satu koneksi database
func NewDeps(db *gorm.DB, store chatbot.SessionStore, typingDelay time.Duration) Deps {
	hub := kds.NewHub()
	availability := services.NewAvailabilityService(db, hub)
	feedback := services.NewFeedbackService(db)
	menu := services.NewMenuService(db)
	engine := chatbot.NewEngine(availability, feedback, menu)

	return Deps{
		DB:           db,
		Hub:          hub,
		Availability: availability,
		Feedback:     feedback,
		Menu:         menu,
		Chat:         chatbot.NewManager(store, engine, typingDelay),
		CORSOrigin:   "http://localhost:5173",
	}
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(deps.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	tableCtrl := controllers.NewTableController(deps.Availability)
	reservationCtrl := controllers.NewReservationController(deps.Availability)
	feedbackCtrl := controllers.NewFeedbackController(deps.Feedback)
	menuCtrl := controllers.NewMenuController(deps.Menu)
	ratingCtrl := controllers.NewMenuRatingController(deps.Menu)
	orderCtrl := controllers.NewOrderController(deps.DB, deps.Hub)
	chatCtrl := controllers.NewChatController(deps.Chat)
	kdsCtrl := controllers.NewKDSController(deps.Hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// TABLES
	api.GET("/tables", tableCtrl.GetAllTables)
	api.POST("/tables", tableCtrl.CreateTable)
	api.PUT("/tables/:id", tableCtrl.UpdateTable)
	api.DELETE("/tables/:id", tableCtrl.DeleteTable)

	// RESERVATIONS
	api.GET("/reservations", reservationCtrl.GetAllReservations)
	api.POST("/reservations", reservationCtrl.CreateReservation)
	api.DELETE("/reservations/:id", reservationCtrl.CancelReservation)

	// FEEDBACK
	api.GET("/feedback", feedbackCtrl.GetAllFeedback)
	api.POST("/feedback", feedbackCtrl.SubmitFeedback)

	// MENU
	api.GET("/menu", menuCtrl.GetAllMenus)
	api.POST("/menu", menuCtrl.CreateMenu)
	api.PUT("/menu/:id", menuCtrl.UpdateMenu)
	api.DELETE("/menu/:id", menuCtrl.DeleteMenu)

	// MENU RATINGS
	ratings := api.Group("/menu-ratings")
	{
		ratings.POST("", ratingCtrl.SubmitRating)
		ratings.GET("/item/:menuId", ratingCtrl.GetItemRatings)
		ratings.GET("/menu-with-ratings", ratingCtrl.GetRatingSummaries)
		ratings.GET("/menu-full-ratings", ratingCtrl.GetMenuWithRatings)
	}

	// ORDERS
	api.GET("/orders", orderCtrl.GetAllOrders)
	api.GET("/orders/:id", orderCtrl.GetOrderByID)
	api.POST("/orders", orderCtrl.CreateOrder)
	api.PUT("/orders/:id", orderCtrl.UpdateOrder)

	// CHAT (rate limited per IP)
	chat := api.Group("/chat")
	if deps.ChatLimiter != nil {
		chat.Use(deps.ChatLimiter.RateLimit())
	}
	{
		chat.POST("", chatCtrl.SendMessage)
		chat.GET("/ws", chatCtrl.ChatSocket)
		chat.GET("/sessions/:session_id", chatCtrl.GetTranscript)
	}

	// Dashboard realtime
	api.GET("/ws", kdsCtrl.KDSHandler)

	return r
}
