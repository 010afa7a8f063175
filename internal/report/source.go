package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/pennywise-app/backend/internal/models"
	"gorm.io/gorm"
)

// GormSource reads the snapshot from the database.
type GormSource struct {
	DB *gorm.DB
}

func (s GormSource) Categories(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category

	err := s.DB.WithContext(ctx).
		Where(&models.Category{UserID: userID}).
		Order("created_at ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (s GormSource) Budgets(ctx context.Context, userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget

	err := s.DB.WithContext(ctx).
		Where(&models.Budget{UserID: userID}).
		Order("month ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

func (s GormSource) Transactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction

	err := s.DB.WithContext(ctx).
		Where(&models.Transaction{UserID: userID}).
		Order("date ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
