package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/alavista-lab/cotizador-api/internal/domain/enum"
	domainRepo "github.com/alavista-lab/cotizador-api/internal/domain/repository"
	infraRepo "github.com/alavista-lab/cotizador-api/internal/infrastructure/repository"
	"github.com/alavista-lab/cotizador-api/pkg/apperror"
	"github.com/alavista-lab/cotizador-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Operation{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:     "Carla Mendoza",
		Username: "cmendoza",
		Password: "hashed",
		Role:     entity.RoleCotizador,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func testDocumentWithItems() *entity.QuotationDocument {
	return &entity.QuotationDocument{
		CompanyName: "Constructora Sur",
		Sector:      "Inmobiliario",
		ServiceType: "Landing",
		Items: []entity.LineItem{
			{ID: "item-1", Description: "Diseño UX/UI completo", Amount: "1000", Discount: "100"},
		},
	}
}

func TestOperationServiceCreate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOperationService(infraRepo.NewOperationRepository(db))
	user := createTestUser(t, db)

	operation, err := svc.Create(context.Background(), user.ID, "Comercial", &OperationInput{
		Name:     "Cotización Constructora Sur",
		Date:     "2025-06-01",
		Document: testDocumentWithItems(),
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, operation.ID)
	assert.Equal(t, enum.OperationStatusInReview, operation.Status)
	assert.Equal(t, "Comercial", operation.Area)
	// Totals are recomputed when the snapshot is saved
	assert.InDelta(t, 1062.0, operation.Payload.Items[0].Total, 0.001)
}

func TestOperationServiceCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOperationService(infraRepo.NewOperationRepository(db))
	user := createTestUser(t, db)

	_, err := svc.Create(context.Background(), user.ID, "Comercial", &OperationInput{
		Name:     "",
		Document: &entity.QuotationDocument{},
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 2)
}

func TestOperationServiceListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := infraRepo.NewOperationRepository(db)
	svc := NewOperationService(repo)
	user := createTestUser(t, db)

	for _, tc := range []struct {
		name string
		area string
	}{
		{"Cotización Inmobiliaria Lima", "Comercial"},
		{"Cotización Retail Norte", "Marketing"},
		{"Mejora web financiera", "Comercial"},
	} {
		_, err := svc.Create(context.Background(), user.ID, tc.area, &OperationInput{
			Name:     tc.name,
			Document: testDocumentWithItems(),
		})
		require.NoError(t, err)
	}

	params := pagination.DefaultPagination()
	result, err := svc.List(context.Background(), params, domainRepo.OperationFilter{Area: "Comercial"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Pagination.Total)

	result, err = svc.List(context.Background(), pagination.DefaultPagination(), domainRepo.OperationFilter{Search: "retail"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Cotización Retail Norte", result.Items[0].Name)
}

func TestOperationServiceUpdateOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOperationService(infraRepo.NewOperationRepository(db))
	owner := createTestUser(t, db)

	other := &entity.User{Name: "Otro", Username: "otro", Password: "hashed", Role: entity.RoleCotizador}
	require.NoError(t, db.Create(other).Error)

	operation, err := svc.Create(context.Background(), owner.ID, "Comercial", &OperationInput{
		Name:     "Cotización original",
		Document: testDocumentWithItems(),
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), operation.ID, other.ID, false, &OperationInput{
		Name:     "Cotización ajena",
		Document: testDocumentWithItems(),
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	updated, err := svc.Update(context.Background(), operation.ID, owner.ID, false, &OperationInput{
		Name:     "Cotización actualizada",
		Document: testDocumentWithItems(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Cotización actualizada", updated.Name)
}

func TestOperationServiceStatusRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOperationService(infraRepo.NewOperationRepository(db))
	user := createTestUser(t, db)

	operation, err := svc.Create(context.Background(), user.ID, "TI", &OperationInput{
		Name:     "Cotización interna",
		Document: testDocumentWithItems(),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), operation.ID, enum.OperationStatusApproved, false)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	approved, err := svc.UpdateStatus(context.Background(), operation.ID, enum.OperationStatusApproved, true)
	require.NoError(t, err)
	assert.Equal(t, enum.OperationStatusApproved, approved.Status)
}

func TestOperationServiceDeleteRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOperationService(infraRepo.NewOperationRepository(db))
	user := createTestUser(t, db)

	operation, err := svc.Create(context.Background(), user.ID, "Medios", &OperationInput{
		Name:     "Cotización a eliminar",
		Document: testDocumentWithItems(),
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), operation.ID, false)
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), operation.ID, true))

	_, err = svc.GetByID(context.Background(), operation.ID)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDashboardServiceStats(t *testing.T) {
	db := setupTestDB(t)
	repo := infraRepo.NewOperationRepository(db)
	opSvc := NewOperationService(repo)
	dashSvc := NewDashboardService(repo)
	user := createTestUser(t, db)

	for i := 0; i < 3; i++ {
		_, err := opSvc.Create(context.Background(), user.ID, "Comercial", &OperationInput{
			Name:     "Cotización",
			Document: testDocumentWithItems(),
		})
		require.NoError(t, err)
	}

	stats, err := dashSvc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalOperations)
	require.Len(t, stats.ByStatus, 1)
	assert.Equal(t, enum.OperationStatusInReview, stats.ByStatus[0].Status)
	assert.Len(t, stats.RecentOperations, 3)
}
