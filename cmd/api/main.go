package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"thybackend/internal/auth"
	"thybackend/internal/bloodtests"
	"thybackend/internal/cart"
	"thybackend/internal/config"
	"thybackend/internal/content"
	"thybackend/internal/db"
	"thybackend/internal/jobs"
	"thybackend/internal/layout"
	"thybackend/internal/mail"
	"thybackend/internal/offers"
	"thybackend/internal/orders"
	"thybackend/internal/services"
	"thybackend/internal/settings"
	"thybackend/internal/thyroidpackages"
	"thybackend/internal/uploads"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	var zapCfg zap.Config
	if cfg.AppEnv == "dev" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	logger, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	pool, err := db.NewPostgres(context.Background(), cfg.DatabaseURL, db.PoolOptions{
		MaxConns: int32(cfg.DBMaxConns),
		MinConns: int32(cfg.DBMinConns),
	})
	if err != nil {
		zap.S().Fatalw("database connection failed", "err", err)
	}
	defer pool.Close()

	if err := db.Migrate(context.Background(), pool); err != nil {
		zap.S().Fatalw("database migration failed", "err", err)
	}

	files, err := uploads.NewStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		zap.S().Fatalw("upload dir not usable", "dir", cfg.UploadDir, "err", err)
	}

	mailer := mail.NewSMTPMailer(mail.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	})

	jwtMgr := auth.NewJWTManager(auth.JWTConfig{
		Issuer:         cfg.JWTIssuer,
		AccessSecret:   cfg.JWTAccessSecret,
		RefreshSecret:  cfg.JWTRefreshSecret,
		AccessTTLMin:   cfg.AccessTokenTTLMin,
		RefreshTTLDays: cfg.RefreshTokenTTLDays,
	})

	userRepo := auth.NewUserRepo(pool)
	tokenRepo := auth.NewTokenRepo(pool)
	authHandler := auth.NewHandler(auth.Dependencies{
		Cfg:    cfg,
		JWT:    jwtMgr,
		Users:  userRepo,
		Tokens: tokenRepo,
		Mailer: mailer,
	})

	serviceRepo := services.NewRepo(pool)
	serviceHandler := services.NewHandler(serviceRepo, files, cfg.CurrencySymbol)

	testRepo := bloodtests.NewRepo(pool)
	testHandler := bloodtests.NewHandler(testRepo)

	packageHandler := thyroidpackages.NewHandler(thyroidpackages.NewRepo(pool))

	sliderHandler := layout.NewImageListHandler(layout.NewSliderRepo(pool), "sliders")
	backgroundHandler := layout.NewImageListHandler(layout.NewBackgroundRepo(pool), "background images")
	menuHandler := layout.NewMenuHandler(layout.NewMenuRepo(pool))

	contentHandler := content.NewHandler(content.NewRepo(pool))
	settingsHandler := settings.NewHandler(settings.NewRepo(pool))

	cartRepo := cart.NewRepo(pool)
	cartHandler := cart.NewHandler(cartRepo)

	orderHandler := orders.NewHandler(orders.NewRepo(pool), cartRepo, files)
	offerHandler := offers.NewHandler(offers.NewRepo(pool))

	janitor := jobs.NewJanitor(tokenRepo)
	if err := janitor.Start(); err != nil {
		zap.S().Fatalw("janitor start failed", "err", err)
	}
	defer janitor.Stop()

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization", "x-user-id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static(cfg.UploadBaseURL, files.Dir())

	api := r.Group("/api")

	// accounts
	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", authHandler.Register)
		userGroup.POST("/login", authHandler.Login)
		userGroup.POST("/refresh", authHandler.Refresh)
		userGroup.POST("/logout", authHandler.Logout)
		userGroup.POST("/forgot-password", authHandler.ForgotPassword)
	}
	api.POST("/auth/reset-password/:token", authHandler.ResetPassword)

	// public reads
	api.GET("/service", serviceHandler.List)
	api.GET("/service/:id", serviceHandler.Get)
	api.GET("/blood-tests", testHandler.List)
	api.GET("/thyroid-packages", packageHandler.List)
	api.GET("/thyrocare-profile", settingsHandler.GetCompanyProfile)
	api.GET("/sliders", sliderHandler.List)
	api.GET("/background-images", backgroundHandler.List)
	api.GET("/menu", menuHandler.List)
	api.GET("/content/banner", contentHandler.GetBanner)
	api.GET("/content/about", contentHandler.GetAbout)
	api.GET("/content/testimonials", contentHandler.ListTestimonials)
	api.GET("/content/faqs", contentHandler.ListFAQs)
	api.GET("/content/blogs", contentHandler.ListBlogs)
	api.GET("/business-contact", settingsHandler.GetBusinessContact)
	api.GET("/site-settings", settingsHandler.GetSiteSettings)
	api.GET("/offers", offerHandler.ListOffers)

	// public lead capture
	api.POST("/contact", contentHandler.CreateContactMessage)
	api.POST("/content/consultations", contentHandler.CreateConsultation)
	api.POST("/referrals", offerHandler.CreateReferral)

	// logged-in users
	protected := api.Group("/")
	protected.Use(auth.AuthMiddleware(jwtMgr))
	{
		protected.GET("/user/me", authHandler.Me)

		protected.GET("/cart", cartHandler.Get)
		protected.POST("/cart/add", cartHandler.Add)
		protected.DELETE("/cart/item/:itemId", cartHandler.Remove)
		protected.DELETE("/cart/clear", cartHandler.Clear)

		protected.POST("/orders/book", orderHandler.Book)
	}

	// admin console
	admin := api.Group("/")
	admin.Use(auth.AuthMiddleware(jwtMgr), auth.RequireAdmin())
	{
		admin.POST("/service", serviceHandler.Create)
		admin.PUT("/service/:id", serviceHandler.Update)
		admin.DELETE("/service/:id", serviceHandler.Delete)

		admin.POST("/blood-tests", testHandler.Create)
		admin.PUT("/blood-tests/:id", testHandler.Update)
		admin.DELETE("/blood-tests/:id", testHandler.Delete)

		admin.POST("/thyroid-packages", packageHandler.Create)
		admin.PUT("/thyroid-packages/:id", packageHandler.Update)
		admin.DELETE("/thyroid-packages/:id", packageHandler.Delete)

		admin.POST("/sliders", sliderHandler.Create)
		admin.PUT("/sliders/reorder/all", sliderHandler.Reorder)
		admin.PUT("/sliders/:id", sliderHandler.Update)
		admin.DELETE("/sliders/:id", sliderHandler.Delete)

		admin.POST("/background-images", backgroundHandler.Create)
		admin.PUT("/background-images/reorder/all", backgroundHandler.Reorder)
		admin.PUT("/background-images/:id", backgroundHandler.Update)
		admin.DELETE("/background-images/:id", backgroundHandler.Delete)

		admin.POST("/menu", menuHandler.Create)
		admin.PUT("/menu/reorder/all", menuHandler.Reorder)
		admin.PUT("/menu/:id", menuHandler.Update)
		admin.DELETE("/menu/:id", menuHandler.Delete)

		admin.PUT("/content/banner", contentHandler.PutBanner)
		admin.PUT("/content/about", contentHandler.PutAbout)

		admin.POST("/content/testimonials", contentHandler.CreateTestimonial)
		admin.PUT("/content/testimonials/:id", contentHandler.UpdateTestimonial)
		admin.DELETE("/content/testimonials/:id", contentHandler.DeleteTestimonial)

		admin.POST("/content/faqs", contentHandler.CreateFAQ)
		admin.PUT("/content/faqs/:id", contentHandler.UpdateFAQ)
		admin.DELETE("/content/faqs/:id", contentHandler.DeleteFAQ)

		admin.POST("/content/blogs", contentHandler.CreateBlog)
		admin.PUT("/content/blogs/:id", contentHandler.UpdateBlog)
		admin.DELETE("/content/blogs/:id", contentHandler.DeleteBlog)

		admin.GET("/content/consultations", contentHandler.ListConsultations)
		admin.DELETE("/consult/consultation/:id", contentHandler.DeleteConsultation)

		admin.GET("/contact", contentHandler.ListContactMessages)
		admin.DELETE("/contact/:id", contentHandler.DeleteContactMessage)

		admin.PUT("/business-contact", settingsHandler.PutBusinessContact)
		admin.PUT("/settings", settingsHandler.PutSiteSettings)
		admin.PUT("/thyrocare-profile", settingsHandler.PutCompanyProfile)

		admin.POST("/offers", offerHandler.CreateOffer)
		admin.DELETE("/offers/:id", offerHandler.DeleteOffer)
		admin.GET("/referrals", offerHandler.ListReferrals)

		admin.GET("/orders", orderHandler.List)
	}

	zap.S().Infow("listening", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		zap.S().Fatalw("server stopped", "err", err)
	}
}
