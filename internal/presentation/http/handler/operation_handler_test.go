package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/alavista-lab/cotizador-api/internal/application/service"
	"github.com/alavista-lab/cotizador-api/internal/domain/entity"
	"github.com/alavista-lab/cotizador-api/internal/domain/enum"
	infraRepo "github.com/alavista-lab/cotizador-api/internal/infrastructure/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupOperationRouter(t *testing.T, userID uuid.UUID, role string) (*gin.Engine, *service.OperationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Operation{}))
	require.NoError(t, db.Create(&entity.User{
		ID:       userID,
		Name:     "Carla Mendoza",
		Username: "cmendoza",
		Password: "hashed",
		Role:     role,
	}).Error)

	svc := service.NewOperationService(infraRepo.NewOperationRepository(db))
	h := NewOperationHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Set("user_area", "Comercial")
	})
	router.POST("/operations", h.Create)
	router.GET("/operations", h.List)
	router.PATCH("/operations/:id/status", h.UpdateStatus)
	return router, svc
}

func createOperationForTest(t *testing.T, svc *service.OperationService, userID uuid.UUID) *entity.Operation {
	t.Helper()

	operation, err := svc.Create(context.Background(), userID, "Comercial", &service.OperationInput{
		Name: "Cotización Constructora Sur",
		Document: &entity.QuotationDocument{
			CompanyName: "Constructora Sur",
			Items: []entity.LineItem{
				{ID: "item-1", Description: "Landing", Amount: "1000", Discount: ""},
			},
		},
	})
	require.NoError(t, err)
	return operation
}

func TestOperationUpdateStatusRejectsUnknownName(t *testing.T) {
	userID := uuid.New()
	router, svc := setupOperationRouter(t, userID, entity.RoleAdmin)
	operation := createOperationForTest(t, svc, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/operations/"+operation.ID.String()+"/status",
		strings.NewReader(`{"status":"aprobado"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The stored status must not have been touched
	stored, err := svc.GetByID(context.Background(), operation.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OperationStatusInReview, stored.Status)
}

func TestOperationUpdateStatusAcceptsKnownName(t *testing.T) {
	userID := uuid.New()
	router, svc := setupOperationRouter(t, userID, entity.RoleAdmin)
	operation := createOperationForTest(t, svc, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/operations/"+operation.ID.String()+"/status",
		strings.NewReader(`{"status":"approved"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	stored, err := svc.GetByID(context.Background(), operation.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.OperationStatusApproved, stored.Status)
}
