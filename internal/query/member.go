package query

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
)

type MemberQuery struct {
	db *gorm.DB
}

func NewMemberQuery(db *gorm.DB) *MemberQuery {
	return &MemberQuery{db: db}
}

// ClientsOfSupplier returns the active clients registered under a supplier code.
// No match yields an empty slice.
func (q *MemberQuery) ClientsOfSupplier(ctx context.Context, supplierCode string) ([]dto.ClientResponse, error) {
	if supplierCode == "" {
		return []dto.ClientResponse{}, nil
	}

	var clients []dto.ClientResponse
	err := q.db.WithContext(ctx).
		Model(&models.Member{}).
		Scopes(ActiveClientsOf(supplierCode).Scope()).
		Select("id AS member_id, company_name, classification_code").
		Order("id").
		Scan(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	if clients == nil {
		clients = []dto.ClientResponse{}
	}
	return clients, nil
}

// SupplierByCode returns the member registered under a classification code, or nil.
func (q *MemberQuery) SupplierByCode(ctx context.Context, classificationCode string) (*dto.SupplierResponse, error) {
	if classificationCode == "" {
		return nil, nil
	}

	var supplier dto.SupplierResponse
	result := q.db.WithContext(ctx).
		Model(&models.Member{}).
		Scopes(MemberFilter{ClassificationCode: classificationCode}.Scope(), First).
		Select("id AS member_id, company_name").
		Scan(&supplier)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &supplier, nil
}
