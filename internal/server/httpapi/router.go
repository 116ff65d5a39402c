// Package httpapi is the REST boundary of the server: a chi routing table,
// request DTO validation and the mapping of service errors to HTTP statuses.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/animalcatalog/internal/logging"
	"github.com/dmitrijs2005/animalcatalog/internal/server/auth"
	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
)

// UserService registers and logs in users and verifies bearer tokens.
type UserService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// AnimalService is the catalog.
type AnimalService interface {
	Create(ctx context.Context, a models.NewAnimal) (*models.Animal, error)
	List(ctx context.Context) ([]models.Animal, error)
	Get(ctx context.Context, id int64) (*models.Animal, error)
	Delete(ctx context.Context, id int64) error
}

// ImageService presigns image uploads.
type ImageService interface {
	PresignUpload(ctx context.Context, contentType string) (*models.ImageUpload, error)
}

// Pinger checks that the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps carries everything the router needs.
type Deps struct {
	Users          UserService
	Animals        AnimalService
	Images         ImageService
	DB             Pinger
	Logger         logging.Logger
	AllowedOrigins []string
}

type handlers struct {
	users   UserService
	animals AnimalService
	images  ImageService
	db      Pinger
	logger  logging.Logger
}

// NewRouter builds the routing table.
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	h := &handlers{
		users:   d.Users,
		animals: d.Animals,
		images:  d.Images,
		db:      d.DB,
		logger:  logger,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.With(RequireBearer(d.Users)).Get("/me", h.me)
	})

	r.Route("/animals", func(r chi.Router) {
		r.Post("/", h.createAnimal)
		r.Get("/", h.listAnimals)
		r.With(RequireBearer(d.Users)).Post("/images", h.presignImage)
		r.Get("/{id}", h.getAnimal)
		r.Delete("/{id}", h.deleteAnimal)
	})

	return r
}

// NewServer wraps handler in an http.Server with conservative timeouts.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
