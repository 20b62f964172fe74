package router

import (
	"net/http"

	_ "pets-api/docs"
	mem "pets-api/internal/adapters/storage/memory"
	"pets-api/internal/domain/pets"
	"pets-api/internal/middleware"
	"pets-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil (no loguea)

	// Opcional: si viene, se usa este repo (p.ej. Postgres). Si no, in-memory con Seed.
	PetRepo pets.Repository

	// Seed inicial del store in-memory. nil => pets.DefaultSeed().
	Seed []pets.Pet

	StrictNotFound bool

	// Registry para /metrics. nil => uno nuevo por router.
	// Puede compartirse entre routers: los collectors ya registrados se reutilizan.
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics := middleware.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(metrics.Handler)
	r.Use(chimw.Recoverer)
	r.Use(corsHandler())

	r.Get("/ping", pingHandler)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	petRepo := opts.PetRepo
	if petRepo == nil {
		seed := opts.Seed
		if seed == nil {
			seed = pets.DefaultSeed()
		}
		petRepo = mem.NewPetRepo(seed)
	}

	// Con un Registry compartido el gauge queda ligado al primer store que lo registró.
	if sized, ok := petRepo.(interface{ Len() int }); ok {
		middleware.RegisterOrExisting(reg, prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "pets_stored",
			Help: "Number of pets currently held by the pet store.",
		}, func() float64 { return float64(sized.Len()) }))
	}

	petsSvc := pets.NewService(petRepo)

	pets.RegisterRoutes(r, petsSvc, pets.RouteOptions{
		StrictNotFound: opts.StrictNotFound,
		Logger:         log,
	})

	return r
}

// corsHandler acepta cualquier origen y responde los preflight (OPTIONS) con 204
// antes del routing, así que no hace falta registrar rutas OPTIONS.
func corsHandler() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders:       []string{"*"},
		OptionsSuccessStatus: http.StatusNoContent,
	})
}

// pingHandler godoc
// @Summary Ping
// @Description Responde pong! si el servicio está vivo.
// @Tags health
// @Produce plain
// @Success 200 {string} string "pong!"
// @Router /ping [get]
func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong!"))
}
