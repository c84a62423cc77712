package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Umar-Zak/lyospot/config"
	"github.com/Umar-Zak/lyospot/internal/controller"
	"github.com/Umar-Zak/lyospot/internal/infrastructure/tracing"
	appmiddleware "github.com/Umar-Zak/lyospot/internal/middleware"
	"github.com/Umar-Zak/lyospot/internal/repository"
	"github.com/Umar-Zak/lyospot/internal/service"
	"github.com/Umar-Zak/lyospot/pkg/dto"
	"github.com/Umar-Zak/lyospot/pkg/validator"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"github.com/twilio/twilio-go"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB             *mongo.Database
	Config         *config.Config
	MidtransClient *coreapi.Client
	TwilioClient   *twilio.RestClient
	ChargeBreaker  *gobreaker.CircuitBreaker[*coreapi.ChargeResponse]
	Server         *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.Validator = validator.CreateRequestValidator()

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("lyospot")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// span creation and naming
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			// add the context to the request
			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Used empty string so that metrics are not prefixed with the service name making it easier to aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(middleware.CORS())
	e.Use(middleware.Secure())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("URI", v.URI).
				Int("status", v.Status).
				Int64("latency", v.Latency.Microseconds()).
				Str("remote IP", v.RemoteIP).
				Msg("Request")

			return nil
		},
	}))

	e.Static("/assets", app.Config.AssetDir)

	userRepo := repository.CreateNewUserRepository(app.DB)
	storeRepo := repository.CreateNewStoreRepository(app.DB)
	productRepo := repository.CreateNewProductRepository(app.DB)
	categoryRepo := repository.CreateNewCategoryRepository(app.DB)
	shippingRepo := repository.CreateNewShippingRepository(app.DB)
	orderRepo := repository.CreateNewOrderRepository(app.DB)
	wishlistRepo := repository.CreateNewWishlistRepository(app.DB)
	testimonialRepo := repository.CreateNewTestimonialRepository(app.DB)

	userSvc := service.CreateUserService(userRepo, *app.Config)
	storeSvc := service.CreateStoreService(storeRepo, userRepo, *app.Config, app.TwilioClient)
	productSvc := service.CreateProductService(productRepo, storeRepo, categoryRepo, shippingRepo)
	categorySvc := service.CreateCategoryService(categoryRepo)
	shippingSvc := service.CreateShippingService(shippingRepo)
	orderSvc := service.CreateOrderService(orderRepo, userRepo, productRepo, *app.Config, app.MidtransClient, app.ChargeBreaker)
	wishlistSvc := service.CreateWishlistService(wishlistRepo, userRepo, productRepo)
	testimonialSvc := service.CreateTestimonialService(testimonialRepo, userRepo)

	isLoggedIn := appmiddleware.Auth(app.Config.JWTSecret)
	userUpload := appmiddleware.Upload(app.Config.AssetDir, "user",
		appmiddleware.FileField{Name: "profile"},
	)
	storeUpload := appmiddleware.Upload(app.Config.AssetDir, "store",
		appmiddleware.FileField{Name: "profile"},
	)
	productUpload := appmiddleware.Upload(app.Config.AssetDir, "product",
		appmiddleware.FileField{Name: "image1", Required: true},
		appmiddleware.FileField{Name: "image2", Required: true},
		appmiddleware.FileField{Name: "image3", Required: true},
		appmiddleware.FileField{Name: "image4"},
	)

	controller.CreateUserController(e.Group("/api/user"), userSvc, isLoggedIn, userUpload)
	controller.CreateStoreController(e.Group("/api/store"), storeSvc, isLoggedIn, storeUpload)
	controller.CreateProductController(e.Group("/api/products"), productSvc, isLoggedIn, productUpload)
	controller.CreateCategoryController(e.Group("/api/categories"), categorySvc)
	controller.CreateShippingController(e.Group("/api/shipping"), shippingSvc)
	controller.CreateOrderController(e.Group("/api/orders"), orderSvc, isLoggedIn)
	controller.CreateWishlistController(e.Group("/api/wishlists"), wishlistSvc, isLoggedIn)
	controller.CreateTestimonialController(e.Group("/api/testimonials"), testimonialSvc, isLoggedIn)

	e.GET("/", func(c echo.Context) error {
		return dto.WriteSuccessResponse(c, "lyospot up and running", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))

	app.Server = e
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
