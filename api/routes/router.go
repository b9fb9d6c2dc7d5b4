package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/TuancoderLo/perfume-api/api/controllers"
	"github.com/TuancoderLo/perfume-api/api/middleware"
	"github.com/TuancoderLo/perfume-api/internal/auth"
	"github.com/TuancoderLo/perfume-api/internal/brands"
	"github.com/TuancoderLo/perfume-api/internal/members"
	"github.com/TuancoderLo/perfume-api/internal/perfumes"
	pkgAuth "github.com/TuancoderLo/perfume-api/pkg/auth"
	"github.com/TuancoderLo/perfume-api/pkg/config"
	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	"github.com/TuancoderLo/perfume-api/pkg/logger"
	"github.com/TuancoderLo/perfume-api/pkg/metrics"
	"github.com/google/uuid"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// RateStore matches the redis surface used by the auth rate limiter. A nil
// store disables throttling.
type RateStore interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type memberSource interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
}

// Deps bundles everything the router needs.
type Deps struct {
	Cfg        *config.Config
	Logg       *logger.Logger
	DB         pinger
	RateStore  RateStore
	Metrics    *metrics.Registry
	Minter     *pkgAuth.Minter
	Members    memberSource
	AuthSvc    auth.Service
	MemberSvc  members.Service
	BrandSvc   brands.Service
	PerfumeSvc perfumes.Service
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logg),
		middleware.RequestID(deps.Logg),
		middleware.Logging(deps.Logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		deps.Cfg.AuthRateLimit.LoginWindow,
		deps.Cfg.AuthRateLimit.LoginIPLimit,
		deps.Cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		deps.Cfg.AuthRateLimit.RegisterWindow,
		deps.Cfg.AuthRateLimit.RegisterIPLimit,
		deps.Cfg.AuthRateLimit.RegisterEmailLimit,
	)

	requireAuth := middleware.Auth(deps.Minter, deps.Members, deps.Logg)
	requireAdmin := middleware.RequireAdmin(deps.Logg)

	r.Get("/health", controllers.Health(deps.DB))
	r.Get("/health/live", controllers.HealthLive())
	r.Get("/health/ready", controllers.Health(deps.DB))
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.RateStore, deps.Logg)).
			Post("/login", controllers.AuthLogin(deps.AuthSvc, deps.Logg))
		r.With(middleware.AuthRateLimit(registerPolicy, deps.RateStore, deps.Logg)).
			Post("/register", controllers.Register(deps.AuthSvc, deps.Logg))
		r.With(middleware.AuthRateLimit(loginPolicy, deps.RateStore, deps.Logg)).
			Post("/google", controllers.AuthGoogleLogin(deps.AuthSvc, deps.Logg))

		r.Group(func(r chi.Router) {
			r.Use(requireAuth, requireAdmin)
			r.Post("/register/admin", controllers.AdminRegister(deps.AuthSvc, deps.Logg))
		})
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/perfumes", controllers.PublicListPerfumes(deps.PerfumeSvc, deps.Logg))
		r.Get("/perfumes/{perfumeID}", controllers.PublicGetPerfume(deps.PerfumeSvc, deps.Logg))
		r.Get("/brands", controllers.PublicListBrands(deps.BrandSvc, deps.Logg))
	})

	// The whole authenticated catalog surface is admin-only; non-admin reads
	// go through /api/public.
	r.Route("/api/brands", func(r chi.Router) {
		r.Use(requireAuth, requireAdmin)

		r.Get("/", controllers.ListBrands(deps.BrandSvc, deps.Logg, false))
		r.Get("/{brandID}", controllers.GetBrand(deps.BrandSvc, deps.Logg))
		r.Post("/", controllers.CreateBrand(deps.BrandSvc, deps.Logg))
		r.Put("/{brandID}", controllers.UpdateBrand(deps.BrandSvc, deps.Logg))
		r.Delete("/{brandID}", controllers.DeleteBrand(deps.BrandSvc, deps.Logg))
		r.Patch("/{brandID}/restore", controllers.RestoreBrand(deps.BrandSvc, deps.Logg))
	})

	r.Route("/api/admin/brands", func(r chi.Router) {
		r.Use(requireAuth, requireAdmin)
		r.Get("/", controllers.ListBrands(deps.BrandSvc, deps.Logg, true))
	})

	r.Route("/api/perfumes", func(r chi.Router) {
		r.Use(requireAuth)

		r.Post("/{perfumeID}/comments", controllers.AddComment(deps.PerfumeSvc, deps.Logg))
		r.Put("/{perfumeID}/comments/{commentID}", controllers.EditComment(deps.PerfumeSvc, deps.Logg))
		r.Delete("/{perfumeID}/comments/{commentID}", controllers.DeleteComment(deps.PerfumeSvc, deps.Logg))

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/", controllers.ListPerfumes(deps.PerfumeSvc, deps.Logg))
			r.Get("/{perfumeID}", controllers.GetPerfume(deps.PerfumeSvc, deps.Logg))
			r.Post("/", controllers.CreatePerfume(deps.PerfumeSvc, deps.Logg))
			r.Put("/{perfumeID}", controllers.UpdatePerfume(deps.PerfumeSvc, deps.Logg))
			r.Delete("/{perfumeID}", controllers.DeletePerfume(deps.PerfumeSvc, deps.Logg))
		})
	})

	r.Route("/api/members", func(r chi.Router) {
		r.Use(requireAuth)

		r.Route("/me", func(r chi.Router) {
			r.Get("/", controllers.Profile(deps.MemberSvc, deps.Logg))
			r.Put("/", controllers.UpdateProfile(deps.MemberSvc, deps.Logg))
			r.Put("/password", controllers.ChangePassword(deps.MemberSvc, deps.Logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/", controllers.ListMembers(deps.MemberSvc, deps.Logg))
			r.Get("/collectors", controllers.ListCollectors(deps.MemberSvc, deps.Logg))
			r.Get("/{memberID}", controllers.GetMember(deps.MemberSvc, deps.Logg))
			r.Put("/{memberID}/admin", controllers.SetMemberAdmin(deps.MemberSvc, deps.Logg))
			r.Patch("/{memberID}/block", controllers.BlockMember(deps.MemberSvc, deps.Logg))
			r.Patch("/{memberID}/unblock", controllers.UnblockMember(deps.MemberSvc, deps.Logg))
		})
	})

	return r
}
