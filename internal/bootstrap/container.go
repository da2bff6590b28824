package bootstrap

import (
	"context"
	"log"

	"sadguru-seva-be/internal/config"
	"sadguru-seva-be/internal/controller"
	"sadguru-seva-be/internal/handler"
	"sadguru-seva-be/internal/japa/matcher"
	"sadguru-seva-be/internal/pkg/logger"
	"sadguru-seva-be/internal/pkg/mailer"
	"sadguru-seva-be/internal/pkg/sms"
	"sadguru-seva-be/internal/repository/memory"
	"sadguru-seva-be/internal/repository/unitofwork"
	"sadguru-seva-be/internal/service"
	"sadguru-seva-be/internal/websocket"

	pktNats "sadguru-seva-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	JapaController    controller.IJapaController
	BhaktController   controller.IBhaktController
	LilaController    controller.ILilaController
	SatsangController controller.ISatsangController
	ProgramController controller.IProgramController
	PhotoController   controller.IPhotoController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Live Updates
	LiveHandler  *handler.LiveHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	var smsService sms.ISMSService
	if cfg.Keys.Fast2SMS != "" {
		smsService = sms.NewFast2SMSService(cfg.Keys.Fast2SMS)
	} else {
		log.Println("[WARN] FAST2SMS_API_KEY not set, OTP delivery runs in noop mode")
		smsService = sms.NoopService{}
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/live.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Anonymous japa identity store
	tokenRepo := memory.NewTokenRepository()

	// Recognition matcher
	wordMatcher := matcher.New(cfg.Japa.FuzzyThreshold)

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.WelcomeMailTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.WelcomeMailTopic,
		emailService,
	)

	authService := service.NewAuthService(uowFactory, smsService, natsPub, sysLogger)
	japaService := service.NewJapaService(uowFactory, wordMatcher, natsPub, rdb, sysLogger)
	bhaktService := service.NewBhaktService(uowFactory, publisherService, emailService, cfg.App.AdminEmail, sysLogger)
	lilaService := service.NewLilaService(uowFactory)
	satsangService := service.NewSatsangService(uowFactory)
	programService := service.NewProgramService(uowFactory)
	photoService := service.NewPhotoService(uowFactory)

	// 3.5 Live update fan-out (NATS -> Hub)
	liveService := service.NewLiveService(natsSub, wsHub, wsLogger)
	if err := liveService.Start(); err != nil {
		log.Printf("[WARN] Live update consumer not started: %v", err)
	}

	liveHandler := handler.NewLiveHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		LiveHandler:  liveHandler,
		WebSocketHub: wsHub,

		AuthController:    controller.NewAuthController(authService),
		JapaController:    controller.NewJapaController(japaService, tokenRepo),
		BhaktController:   controller.NewBhaktController(bhaktService),
		LilaController:    controller.NewLilaController(lilaService),
		SatsangController: controller.NewSatsangController(satsangService),
		ProgramController: controller.NewProgramController(programService),
		PhotoController:   controller.NewPhotoController(photoService),

		ConsumerService: consumerService,
	}
}
