package container

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"arte-gallery-backend/internal/config"
	"arte-gallery-backend/internal/domains/relation"
	infracache "arte-gallery-backend/internal/infrastructure/cache"
	"arte-gallery-backend/internal/infrastructure/database"
	"arte-gallery-backend/internal/infrastructure/docstore"
	"arte-gallery-backend/internal/infrastructure/email"
	"arte-gallery-backend/internal/infrastructure/queue"
	"arte-gallery-backend/internal/infrastructure/storage"
	"arte-gallery-backend/internal/shared/apperror"
	"arte-gallery-backend/pkg/cache"
	"arte-gallery-backend/pkg/jwt"
	"arte-gallery-backend/pkg/logger"

	artistHandler "arte-gallery-backend/internal/domains/artist/handler"
	artistRepo "arte-gallery-backend/internal/domains/artist/repository"
	artistService "arte-gallery-backend/internal/domains/artist/service"
	artworkHandler "arte-gallery-backend/internal/domains/artwork/handler"
	artworkRepo "arte-gallery-backend/internal/domains/artwork/repository"
	artworkService "arte-gallery-backend/internal/domains/artwork/service"
	blogHandler "arte-gallery-backend/internal/domains/blog/handler"
	blogRepo "arte-gallery-backend/internal/domains/blog/repository"
	blogService "arte-gallery-backend/internal/domains/blog/service"
	contactHandler "arte-gallery-backend/internal/domains/contact/handler"
	contactRepo "arte-gallery-backend/internal/domains/contact/repository"
	contactService "arte-gallery-backend/internal/domains/contact/service"
	exhibitionHandler "arte-gallery-backend/internal/domains/exhibition/handler"
	exhibitionRepo "arte-gallery-backend/internal/domains/exhibition/repository"
	exhibitionService "arte-gallery-backend/internal/domains/exhibition/service"
	newsletterHandler "arte-gallery-backend/internal/domains/newsletter/handler"
	newsletterRepo "arte-gallery-backend/internal/domains/newsletter/repository"
	newsletterService "arte-gallery-backend/internal/domains/newsletter/service"
	orderHandler "arte-gallery-backend/internal/domains/order/handler"
	orderRepo "arte-gallery-backend/internal/domains/order/repository"
	orderService "arte-gallery-backend/internal/domains/order/service"
	productHandler "arte-gallery-backend/internal/domains/product/handler"
	productRepo "arte-gallery-backend/internal/domains/product/repository"
	productService "arte-gallery-backend/internal/domains/product/service"
	userHandler "arte-gallery-backend/internal/domains/user/handler"
	userRepo "arte-gallery-backend/internal/domains/user/repository"
	userService "arte-gallery-backend/internal/domains/user/service"
)

// Container owns every long-lived dependency and the wiring between the
// domains. Initialization is strictly ordered: config, infrastructure,
// repositories, services, handlers. Everything here is a singleton.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *infracache.RedisClient
	Cache      cache.Cache
	Store      *docstore.Store
	JWTManager *jwt.Manager
	Email      email.EmailService
	Media      storage.MediaStore
	Processor  *storage.ImageProcessor

	AsynqClient *asynq.Client
	Dispatcher  queue.Dispatcher

	ArtistRepo  artistRepo.Repository
	ArtworkRepo artworkRepo.Repository
	ExhibRepo   exhibitionRepo.Repository
	TicketRepo  exhibitionRepo.TicketRepository
	ProductRepo productRepo.Repository
	OrderRepo   orderRepo.Repository
	UserRepo    userRepo.Repository
	BlogRepo    blogRepo.Repository
	ContactRepo contactRepo.Repository
	NewsRepo    newsletterRepo.Repository

	Maintainer *relation.Maintainer

	ArtistService  artistService.ServiceInterface
	ArtworkService artworkService.ServiceInterface
	ExhibService   exhibitionService.ServiceInterface
	ProductService productService.ServiceInterface
	OrderService   orderService.ServiceInterface
	UserService    userService.ServiceInterface
	BlogService    blogService.ServiceInterface
	ContactService contactService.ServiceInterface
	NewsService    newsletterService.ServiceInterface

	ArtistHandler     *artistHandler.ArtistHandler
	ArtworkHandler    *artworkHandler.ArtworkHandler
	ExhibHandler      *exhibitionHandler.ExhibitionHandler
	ProductHandler    *productHandler.ProductHandler
	OrderHandler      *orderHandler.OrderHandler
	UserHandler       *userHandler.UserHandler
	BlogHandler       *blogHandler.BlogHandler
	ContactHandler    *contactHandler.ContactHandler
	NewsletterHandler *newsletterHandler.NewsletterHandler
}

func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)

	// Infrastructure.
	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	c.Store = docstore.New(c.DB.Pool)
	if err := c.Store.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	c.Redis = infracache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Cache = c.Redis

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	c.Email = email.NewSMTPEmailService(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.From)

	media, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("connect minio: %w", err)
	}
	c.Media = media
	c.Processor = storage.NewImageProcessor()

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	c.Dispatcher = queue.NewDispatcher(c.AsynqClient)

	// Repositories and the shared relation maintainer.
	c.ArtistRepo = artistRepo.NewRepository(c.Store)
	c.ArtworkRepo = artworkRepo.NewRepository(c.Store)
	c.ExhibRepo = exhibitionRepo.NewRepository(c.Store)
	c.TicketRepo = exhibitionRepo.NewTicketRepository(c.Store)
	c.ProductRepo = productRepo.NewRepository(c.Store)
	c.OrderRepo = orderRepo.NewRepository(c.Store)
	c.UserRepo = userRepo.NewRepository(c.Store)
	c.BlogRepo = blogRepo.NewRepository(c.Store)
	c.ContactRepo = contactRepo.NewRepository(c.Store)
	c.NewsRepo = newsletterRepo.NewRepository(c.Store)
	c.Maintainer = relation.NewMaintainer(c.Store)

	// Services. Cross-domain needs go through the narrow adapter types
	// below, so construction order only matters where a real service is
	// the collaborator (artist needs the artwork service for cascades).
	c.ArtworkService = artworkService.NewService(
		c.ArtworkRepo,
		&artistChecker{repo: c.ArtistRepo},
		c.Maintainer,
		c.Media,
		c.Processor,
	)
	c.ArtistService = artistService.NewService(
		c.ArtistRepo,
		c.Maintainer,
		c.ArtworkService,
		c.UserRepo,
		c.Dispatcher,
		cfg.Gallery.ArtistDeletePolicy,
	)
	c.ExhibService = exhibitionService.NewService(c.ExhibRepo, c.TicketRepo, c.Maintainer, c.Dispatcher, c.Cache)
	c.ProductService = productService.NewService(c.ProductRepo, c.Cache)
	c.OrderService = orderService.NewService(
		c.OrderRepo,
		c.ProductRepo,
		c.Maintainer,
		c.Dispatcher,
		cfg.Gallery.OrderNumberPrefix,
	)
	c.UserService = userService.NewService(
		c.UserRepo,
		c.JWTManager,
		&artworkCatalog{repo: c.ArtworkRepo},
		&productCatalog{repo: c.ProductRepo},
	)
	c.BlogService = blogService.NewService(c.BlogRepo)
	c.ContactService = contactService.NewService(c.ContactRepo, c.Dispatcher)
	c.NewsService = newsletterService.NewService(c.NewsRepo, c.Dispatcher)

	// Handlers.
	c.ArtistHandler = artistHandler.NewHandler(c.ArtistService)
	c.ArtworkHandler = artworkHandler.NewHandler(c.ArtworkService)
	c.ExhibHandler = exhibitionHandler.NewHandler(c.ExhibService)
	c.ProductHandler = productHandler.NewHandler(c.ProductService)
	c.OrderHandler = orderHandler.NewHandler(c.OrderService)
	c.UserHandler = userHandler.NewHandler(c.UserService)
	c.BlogHandler = blogHandler.NewHandler(c.BlogService)
	c.ContactHandler = contactHandler.NewHandler(c.ContactService)
	c.NewsletterHandler = newsletterHandler.NewHandler(c.NewsService)

	logger.Info("Container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

// Close releases infrastructure connections in reverse order.
func (c *Container) Close() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("close asynq client", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}

// artistChecker adapts the artist repository to the existence check the
// artwork service needs.
type artistChecker struct {
	repo artistRepo.Repository
}

func (a *artistChecker) Exists(ctx context.Context, id string) error {
	_, err := a.repo.GetByID(ctx, id)
	return err
}

// artworkCatalog and productCatalog adapt repositories to the boolean
// existence checks of the user domain's saved-artworks and wishlist.
type artworkCatalog struct {
	repo artworkRepo.Repository
}

func (a *artworkCatalog) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := a.repo.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type productCatalog struct {
	repo productRepo.Repository
}

func (p *productCatalog) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := p.repo.GetByID(ctx, id); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func isNotFound(err error) bool {
	return apperror.KindOf(err) == apperror.KindNotFound
}
