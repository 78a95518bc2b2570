package router

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-companion/docs"
	mem "pet-companion/internal/adapters/storage/memory"
	pg "pet-companion/internal/adapters/storage/postgres"
	"pet-companion/internal/domain/assistant"
	"pet-companion/internal/domain/breeds"
	"pet-companion/internal/domain/contacts"
	"pet-companion/internal/domain/health"
	"pet-companion/internal/domain/journal"
	"pet-companion/internal/domain/pets"
	"pet-companion/internal/domain/timeline"
	"pet-companion/internal/metrics"
	"pet-companion/internal/middleware"
	"pet-companion/internal/platform/logger"
	"pet-companion/internal/ports/auth"
	breedsport "pet-companion/internal/ports/breeds"
)

type Options struct {
	Log logger.Logger

	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: motor de conversación principal (Claude). nil => fallback fijo.
	Responder assistant.Responder

	// Opcional: catálogo externo de razas. nil => tabla embebida.
	BreedResolver breedsport.Resolver

	// Opcional: rate limiting por usuario. nil => sin límite.
	RateLimiter *middleware.RateLimiter

	// Opcional: registry de Prometheus. nil => prometheus.DefaultRegisterer.
	MetricsRegistry *prometheus.Registry

	// SeedDemo carga la mascota y los registros de demo al arrancar.
	SeedDemo bool
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{App: "pet-companion"})
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware())
	}

	var reg *prometheus.Registry
	if opts.MetricsRegistry != nil {
		reg = opts.MetricsRegistry
	} else {
		reg = prometheus.NewRegistry()
	}
	collector := metrics.NewCollector(reg)
	r.Use(middleware.Metrics(collector))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler(reg))
	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		petRepo     pets.Repository
		healthRepo  health.Repository
		journalRepo journal.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		healthRepo = pg.NewHealthRepo(opts.DB)
		journalRepo = pg.NewJournalRepo(opts.DB)
	} else {
		petRepo = mem.NewPetRepo()
		healthRepo = mem.NewHealthRepo()
		journalRepo = mem.NewJournalRepo()
	}

	// Contactos y conversación del asistente son efímeros: siempre in-memory.
	contactsRepo := mem.NewContactsRepo()
	assistantRepo := mem.NewAssistantRepo()

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	healthSvc := health.NewService(healthRepo)
	journalSvc := journal.NewService(journalRepo)
	timelineSvc := timeline.NewService(healthSvc, journalSvc)
	contactsSvc := contacts.NewService(contactsRepo)
	breedsSvc := breeds.NewService(opts.BreedResolver)
	assistantSvc := assistant.NewService(assistantRepo, opts.Responder)

	if err := contactsSvc.SeedDefaults(context.Background()); err != nil {
		log.Warn("no se pudieron sembrar los contactos de urgencia", logger.Fields{"error": err.Error()})
	}
	if opts.SeedDemo {
		if err := seedDemo(context.Background(), petsSvc, healthSvc, journalSvc); err != nil {
			log.Warn("no se pudo sembrar la data de demo", logger.Fields{"error": err.Error()})
		}
	}

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	health.RegisterRoutes(r, healthSvc, petsSvc)
	journal.RegisterRoutes(r, journalSvc, petsSvc)
	timeline.RegisterRoutes(r, timelineSvc, petsSvc)
	contacts.RegisterRoutes(r, contactsSvc)
	breeds.RegisterRoutes(r, breedsSvc)
	assistant.RegisterRoutes(r, assistantSvc)

	return r
}
