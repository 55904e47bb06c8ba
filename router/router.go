package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/sangem-ordering/config"
	"github.com/yeremiapane/sangem-ordering/controllers"
	"github.com/yeremiapane/sangem-ordering/hub"
	"github.com/yeremiapane/sangem-ordering/middlewares"
	"github.com/yeremiapane/sangem-ordering/models"
	"github.com/yeremiapane/sangem-ordering/repository"
	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

// Options carries the collaborators created in main. Zero values get
// working defaults, which is what tests rely on.
type Options struct {
	Config   *config.Config
	Tokens   *utils.TokenManager
	Hub      *hub.Hub
	Notifier services.OrderNotifier
}

func SetupRouter(db *gorm.DB, opts Options) *gin.Engine {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{
			JWTSecret:        "sangem-dev-secret",
			SessionTTL:       24 * time.Hour,
			CORSOrigins:      []string{"*"},
			AdminOrderLimit:  500,
			BranchOrderLimit: 200,
		}
	}
	tokens := opts.Tokens
	if tokens == nil {
		tokens = utils.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL, nil)
	}
	live := opts.Hub
	if live == nil {
		live = hub.New()
	}

	if err := utils.RegisterValidators(); err != nil {
		utils.ErrorLogger.Errorf("register validators: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow).RateLimit())

	repos := repository.New(db)
	prefs := session.NewStore(db)
	limits := services.OrderLimits{Admin: cfg.AdminOrderLimit, Branch: cfg.BranchOrderLimit}
	password := services.PasswordPolicy{Hash: cfg.HashPasswords}

	orderSvc := services.NewOrderService(repos, live, opts.Notifier, limits)
	deliverySvc := services.NewDeliveryService(repos, live)
	feedbackSvc := services.NewFeedbackService(repos, prefs)

	authCtrl := controllers.NewAuthController(services.NewAuthService(repos, tokens), prefs)
	storeCtrl := controllers.NewStorefrontController(orderSvc, services.NewMenuService(repos), feedbackSvc, prefs)
	orderCtrl := controllers.NewOrderController(orderSvc)
	dishCtrl := controllers.NewDishController(services.NewDishService(repos))
	accountCtrl := controllers.NewAccountController(services.NewAccountService(repos, password))
	partnerCtrl := controllers.NewPartnerController(services.NewPartnerService(repos, live, password))
	feedbackCtrl := controllers.NewFeedbackController(feedbackSvc, prefs)
	prefCtrl := controllers.NewPreferenceController(prefs)
	overviewCtrl := controllers.NewOverviewController(services.NewOverviewService(repos, limits), prefs)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)
	liveCtrl := controllers.NewLiveController(live, deliverySvc, cfg.CORSOrigins)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Storefront
	r.GET("/branches", storeCtrl.Branches)
	r.GET("/branches/:branch_id/menu", storeCtrl.Menu)
	r.POST("/orders", storeCtrl.Checkout)
	r.POST("/feedback", storeCtrl.SubmitFeedback)

	loginLimiter := middlewares.NewLoginLimiter(12*time.Second, 5)
	r.POST("/login", loginLimiter.Middleware(), authCtrl.Login)

	auth := middlewares.AuthMiddleware(tokens, repos.Profiles)

	api := r.Group("/api", auth)
	api.POST("/logout", authCtrl.Logout)
	api.GET("/me", authCtrl.Me)

	r.GET("/ws", auth, liveCtrl.Connect)

	// Admin and branch share handlers; the session decides the scope.
	staff := func(g *gin.RouterGroup) {
		g.GET("/overview", overviewCtrl.GetOverview)

		g.GET("/orders", orderCtrl.GetOrders)
		g.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		g.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
		g.POST("/orders/:order_id/assign", orderCtrl.AssignRider)

		g.GET("/dishes", dishCtrl.GetDishes)
		g.POST("/dishes", dishCtrl.CreateDish)
		g.PATCH("/dishes/:dish_id", dishCtrl.UpdateDish)
		g.DELETE("/dishes/:dish_id", dishCtrl.DeleteDish)

		g.GET("/partners", partnerCtrl.GetPartners)
		g.POST("/partners", partnerCtrl.CreatePartner)
		g.PATCH("/partners/:partner_id", partnerCtrl.UpdatePartner)
		g.PATCH("/partners/:partner_id/status", partnerCtrl.UpdatePartnerStatus)
		g.DELETE("/partners/:partner_id", partnerCtrl.DeletePartner)

		g.GET("/feedback", feedbackCtrl.GetFeedback)
		g.POST("/feedback/:feedback_id/featured", feedbackCtrl.ToggleFeatured)

		g.GET("/branch-names", prefCtrl.GetBranchNames)
	}

	admin := r.Group("/admin", auth, middlewares.RequireRole(models.RoleAdmin))
	staff(admin)
	admin.GET("/overview.pdf", overviewCtrl.ExportOverviewPDF)
	admin.PUT("/branch-names", prefCtrl.UpdateBranchNames)
	admin.POST("/partners/:partner_id/login", partnerCtrl.CreatePartnerLogin)
	admin.GET("/accounts", accountCtrl.GetBranchAccounts)
	admin.POST("/accounts", accountCtrl.CreateBranchAccount)
	admin.PATCH("/accounts/:profile_id", accountCtrl.UpdateBranchAccount)
	admin.DELETE("/accounts/:profile_id", accountCtrl.DeleteBranchAccount)

	branch := r.Group("/branch", auth, middlewares.RequireRole(models.RoleBranch))
	staff(branch)

	delivery := r.Group("/delivery", auth, middlewares.RequireRole(models.RoleDelivery))
	delivery.GET("/dashboard", deliveryCtrl.GetDashboard)
	delivery.POST("/orders/:order_id/delivered", deliveryCtrl.MarkDelivered)

	return r
}
