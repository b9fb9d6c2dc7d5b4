package perfumes

import (
	"context"
	"fmt"
	"testing"

	"github.com/TuancoderLo/perfume-api/pkg/db"
	"github.com/TuancoderLo/perfume-api/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type gormBrandSource struct {
	db *gorm.DB
}

func (s gormBrandSource) FindByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (s gormBrandSource) FindByName(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&models.Member{}, &models.Brand{}, &models.Perfume{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func newTestService(t *testing.T, gdb *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:   NewRepository(gdb),
		Brands: gormBrandSource{db: gdb},
		Client: db.FromGorm(gdb),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func seedBrand(t *testing.T, gdb *gorm.DB, name string) *models.Brand {
	t.Helper()
	brand := &models.Brand{ID: uuid.New(), Name: name}
	if err := gdb.Create(brand).Error; err != nil {
		t.Fatalf("seed brand: %v", err)
	}
	return brand
}

func seedMember(t *testing.T, gdb *gorm.DB, name string) *models.Member {
	t.Helper()
	member := &models.Member{
		ID:           uuid.New(),
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		YearOfBirth:  1990,
	}
	if err := gdb.Create(member).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return member
}

func seedPerfume(t *testing.T, gdb *gorm.DB, brandID uuid.UUID, name string, price int64) *models.Perfume {
	t.Helper()
	perfume := &models.Perfume{
		ID:      uuid.New(),
		Name:    name,
		BrandID: brandID,
		Price:   decimal.NewFromInt(price),
	}
	if err := gdb.Create(perfume).Error; err != nil {
		t.Fatalf("seed perfume: %v", err)
	}
	return perfume
}
