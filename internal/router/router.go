package router

import (
	"net/http"
	"time"

	_ "riavet-admin/docs"
	mem "riavet-admin/internal/adapters/storage/memory"
	"riavet-admin/internal/domain/activity"
	"riavet-admin/internal/domain/appointments"
	"riavet-admin/internal/domain/invoices"
	"riavet-admin/internal/domain/owners"
	"riavet-admin/internal/domain/patients"
	"riavet-admin/internal/domain/records"
	"riavet-admin/internal/domain/veterinarians"
	"riavet-admin/internal/middleware"
	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/platform/metrics"
	"riavet-admin/internal/platform/web"
	"riavet-admin/internal/toast"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Backends Backends

	// Opcional: si no viene, journal en memoria.
	Activity activity.Repository

	Toasts  *toast.Notifier
	Metrics *metrics.Collector
	Log     logger.Logger

	// Reloj de los forms y stats (tests).
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	toasts := opts.Toasts
	if toasts == nil {
		toasts = toast.New(toast.Options{})
	}
	activityRepo := opts.Activity
	if activityRepo == nil {
		activityRepo = mem.NewActivityRepo(0)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Operator)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(m.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Services por módulo
	activitySvc := activity.NewService(activityRepo)

	env := web.Env{
		Toasts:   toasts,
		Recorder: activitySvc,
		Log:      log,
		Now:      opts.Now,
	}

	// Rutas por módulo
	registerToastRoutes(r, toasts)
	activity.RegisterRoutes(r, activitySvc, env)

	b := opts.Backends
	patients.RegisterRoutes(r, b.Patients, env)
	owners.RegisterRoutes(r, b.Owners, env)
	veterinarians.RegisterRoutes(r, b.Veterinarians, env)
	appointments.RegisterRoutes(r, b.Appointments, b.Veterinarians, env)
	invoices.RegisterRoutes(r, b.Invoices, env)
	records.RegisterRoutes(r, b.Records, env)

	return r
}
