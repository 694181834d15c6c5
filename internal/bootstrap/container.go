package bootstrap

import (
	"context"

	"buildchem-be/internal/config"
	"buildchem-be/internal/controller"
	"buildchem-be/internal/handler"
	"buildchem-be/internal/pkg/logger"
	"buildchem-be/internal/pkg/mailer"
	"buildchem-be/internal/pkg/notifier"
	"buildchem-be/internal/pkg/serverutils"
	"buildchem-be/internal/repository/cache"
	"buildchem-be/internal/repository/memory"
	"buildchem-be/internal/repository/unitofwork"
	"buildchem-be/internal/service"
	"buildchem-be/internal/websocket"
	"buildchem-be/pkg/assetlink"
	"buildchem-be/pkg/events"
	"buildchem-be/pkg/selection"

	pktNats "buildchem-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CatalogController   controller.ICatalogController
	SelectionController controller.ISelectionController
	ContactController   controller.IContactController
	CareerController    controller.ICareerController
	CompanyController   controller.ICompanyController

	// Realtime
	SelectionStreamHandler *handler.SelectionStreamHandler
	WebSocketHub           *websocket.Hub

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	VisitorMiddleware fiber.Handler
	Logger            logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	c := &Container{Logger: sysLogger}

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		mailer.Options{
			SenderEmail:  cfg.SMTP.Email,
			SenderName:   cfg.SMTP.SenderName,
			AdminEmail:   cfg.Notify.AdminEmail,
			CareersEmail: cfg.Notify.CareersEmail,
			SiteName:     cfg.Notify.SiteName,
			LogoPath:     cfg.Notify.LogoPath,
		},
		sysLogger,
	)
	catalogNotifier := notifier.NewCatalogNotifier(
		emailService,
		notifier.NewSlackWebhook(cfg.Notify.SlackWebhookURL),
		sysLogger,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS
	var leadEvents events.Publisher = events.NopPublisher{}
	natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL, cfg.Events.Retention)
	if err != nil {
		sysLogger.Warn("Bootstrap", "NATS unavailable, lead events disabled", map[string]interface{}{"error": err.Error()})
	} else {
		leadEvents = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}

	// Redis
	rdb := connectRedis(cfg.App.RedisURL, sysLogger)
	if rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	var kv selection.KeyValueStore
	if cfg.Selection.Store == "redis" && rdb != nil {
		kv = cache.NewSelectionStore(rdb, cfg.Selection.TTL, cfg.Selection.RedisOpTimeout)
	} else {
		if cfg.Selection.Store == "redis" {
			sysLogger.Warn("Bootstrap", "Redis selection store requested without Redis, using memory", nil)
		}
		kv = memory.NewSelectionStore(cfg.Selection.TTL)
	}

	// WebSocket Hub
	hubLogger := logger.NewIsolatedLogger(cfg.App.HubLogFilePath)
	wsHub := websocket.NewHub(rdb, websocket.DefaultClusterChannel, hubLogger)

	// 4. Services
	publisherService := service.NewPublisherService(service.SelectionChangedTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, service.SelectionChangedTopic, wsHub, hubLogger)

	catalogService := service.NewCatalogService(uowFactory, sysLogger)
	selectionService := service.NewSelectionService(
		kv,
		cfg.Selection.KeyPrefix,
		catalogService,
		publisherService,
		sysLogger,
	)
	catalogRequestService := service.NewCatalogRequestService(
		uowFactory,
		selectionService,
		assetlink.NewNormalizer(cfg.Selection.AssetDownloadHosts),
		catalogNotifier,
		leadEvents,
		sysLogger,
	)
	contactService := service.NewContactService(uowFactory, emailService, leadEvents, cfg.Notify.SiteName, sysLogger)
	careerService := service.NewCareerService(uowFactory)
	companyService := service.NewCompanyService(uowFactory, cfg.Directory.CompanyWebsite, sysLogger)

	// 5. Controllers
	c.CatalogController = controller.NewCatalogController(catalogService)
	c.SelectionController = controller.NewSelectionController(selectionService, catalogRequestService)
	c.ContactController = controller.NewContactController(contactService)
	c.CareerController = controller.NewCareerController(careerService)
	c.CompanyController = controller.NewCompanyController(companyService)
	c.SelectionStreamHandler = handler.NewSelectionStreamHandler(wsHub, hubLogger)
	c.WebSocketHub = wsHub
	c.ConsumerService = consumerService
	c.VisitorMiddleware = serverutils.VisitorMiddleware(serverutils.VisitorConfig{
		Secret:     []byte(cfg.Visitor.Secret),
		CookieName: cfg.Visitor.CookieName,
		TTL:        cfg.Visitor.TTL,
		Secure:     cfg.App.IsProduction(),
	})

	return c
}

// Close releases broker and cache connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

// connectRedis returns nil when no URL is configured or the server is unreachable.
func connectRedis(url string, log logger.ILogger) redis.UniversalClient {
	if url == "" {
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: url}
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	return rdb
}
