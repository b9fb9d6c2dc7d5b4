package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TuancoderLo/perfume-api/internal/auth"
	"github.com/TuancoderLo/perfume-api/internal/brands"
	"github.com/TuancoderLo/perfume-api/internal/members"
	"github.com/TuancoderLo/perfume-api/internal/perfumes"
	pkgAuth "github.com/TuancoderLo/perfume-api/pkg/auth"
	"github.com/TuancoderLo/perfume-api/pkg/config"
	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubMemberSource struct {
	members map[uuid.UUID]*models.Member
}

func (s *stubMemberSource) FindByID(_ context.Context, id uuid.UUID) (*models.Member, error) {
	if m, ok := s.members[id]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubBrandService struct {
	brands.Service
}

func (stubBrandService) List(context.Context, brands.ListFilter) ([]brands.BrandDTO, error) {
	return []brands.BrandDTO{}, nil
}

type stubPerfumeService struct {
	perfumes.Service
}

func (stubPerfumeService) PublicList(context.Context, perfumes.ListFilter) ([]perfumes.PublicPerfumeDTO, error) {
	return []perfumes.PublicPerfumeDTO{}, nil
}

func (stubPerfumeService) List(context.Context, perfumes.ListFilter) ([]perfumes.PerfumeDTO, error) {
	return []perfumes.PerfumeDTO{}, nil
}

type stubAuthService struct {
	auth.Service
}

type stubMemberService struct {
	members.Service
}

func testRouter(t *testing.T, source *stubMemberSource, minter *pkgAuth.Minter) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	return NewRouter(Deps{
		Cfg:        cfg,
		Minter:     minter,
		Members:    source,
		AuthSvc:    stubAuthService{},
		MemberSvc:  stubMemberService{},
		BrandSvc:   stubBrandService{},
		PerfumeSvc: stubPerfumeService{},
	})
}

func testMinter() *pkgAuth.Minter {
	return pkgAuth.NewMinter(config.JWTConfig{Secret: "test", Issuer: "perfume-api", ExpirationMinutes: 60})
}

func TestPublicRoutesNeedNoAuth(t *testing.T) {
	router := testRouter(t, &stubMemberSource{members: map[uuid.UUID]*models.Member{}}, testMinter())

	for _, path := range []string{"/api/public/perfumes", "/api/public/brands", "/health", "/health/live"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}
	}
}

func TestCatalogRoutesRequireAuth(t *testing.T) {
	router := testRouter(t, &stubMemberSource{members: map[uuid.UUID]*models.Member{}}, testMinter())

	for _, path := range []string{"/api/brands/", "/api/perfumes/", "/api/members/me"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s, got %d", path, rec.Code)
		}
	}
}

func TestAdminRoutesRejectRegularMembers(t *testing.T) {
	minter := testMinter()
	memberID := uuid.New()
	source := &stubMemberSource{members: map[uuid.UUID]*models.Member{
		memberID: {ID: memberID, Name: "riley"},
	}}
	router := testRouter(t, source, minter)

	token, err := minter.Mint(memberID, false)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/members/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rec.Code)
	}
}

func TestCatalogReadsAreAdminOnly(t *testing.T) {
	minter := testMinter()
	memberID := uuid.New()
	adminID := uuid.New()
	source := &stubMemberSource{members: map[uuid.UUID]*models.Member{
		memberID: {ID: memberID, Name: "riley"},
		adminID:  {ID: adminID, Name: "root", IsAdmin: true},
	}}
	router := testRouter(t, source, minter)

	memberToken, err := minter.Mint(memberID, false)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	adminToken, err := minter.Mint(adminID, true)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	for _, path := range []string{"/api/brands/", "/api/perfumes/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+memberToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403 for non-admin on %s, got %d", path, rec.Code)
		}

		req = httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for admin on %s, got %d", path, rec.Code)
		}
	}
}

func TestBlockedMemberIsRejectedEverywhere(t *testing.T) {
	minter := testMinter()
	memberID := uuid.New()
	source := &stubMemberSource{members: map[uuid.UUID]*models.Member{
		memberID: {ID: memberID, Name: "riley", IsBlocked: true, BlockReason: "spam"},
	}}
	router := testRouter(t, source, minter)

	token, err := minter.Mint(memberID, false)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/members/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for blocked member, got %d", rec.Code)
	}
}
