// internal/services/member_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/config"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/dto"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/query"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type MemberService struct {
	db      *gorm.DB
	cfg     *config.Config
	members *query.MemberQuery
}

type SignupRequest struct {
	LoginID            string       `json:"loginId" validate:"required,login_id"`
	Password           string       `json:"password" validate:"required,min=8,max=72"`
	ClassificationCode string       `json:"classificationCode" validate:"required,code"`
	MotherCode         string       `json:"motherCode" validate:"required_if=Grade 2,omitempty,code"`
	CompanyName        string       `json:"companyName" validate:"required,max=255"`
	Grade              models.Grade `json:"grade" validate:"oneof=1 2"`
	ManagerName        string       `json:"managerName,omitempty" validate:"max=100"`
	Phone              string       `json:"phone,omitempty" validate:"max=30"`
	Email              string       `json:"email,omitempty" validate:"omitempty,email"`
	Address            string       `json:"address,omitempty" validate:"max=500"`
}

type LoginRequest struct {
	LoginID  string `json:"loginId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func NewMemberService(db *gorm.DB, cfg *config.Config) *MemberService {
	return &MemberService{
		db:      db,
		cfg:     cfg,
		members: query.NewMemberQuery(db),
	}
}

func (s *MemberService) Signup(ctx context.Context, req *SignupRequest) (*models.Member, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Classification codes are not unique in the schema, so duplicates are rejected here.
	var existing int64
	if err := s.db.WithContext(ctx).Model(&models.Member{}).
		Where("login_id = ? OR classification_code = ?", req.LoginID, req.ClassificationCode).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if existing > 0 {
		return nil, conflict("member", req.LoginID)
	}

	if req.Grade == models.GradeClient {
		// Clients hang off an active supplier only.
		var suppliers int64
		if err := s.db.WithContext(ctx).Model(&models.Member{}).
			Scopes(query.ActiveSupplier(req.MotherCode).Scope()).
			Count(&suppliers).Error; err != nil {
			return nil, fmt.Errorf("database error: %w", err)
		}
		if suppliers == 0 {
			return nil, notFound("member", req.MotherCode)
		}
	}

	member := &models.Member{
		LoginID:            req.LoginID,
		ClassificationCode: req.ClassificationCode,
		CompanyName:        req.CompanyName,
		Grade:              req.Grade,
		Withdrawal:         models.WithdrawalActive,
		ManagerName:        req.ManagerName,
		Phone:              req.Phone,
		Email:              req.Email,
		Address:            req.Address,
	}
	if req.Grade == models.GradeClient {
		member.MotherCode = req.MotherCode
	}

	// Set password
	if err := member.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.WithContext(ctx).Create(member).Error; err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return member, nil
}

func (s *MemberService) Login(ctx context.Context, req *LoginRequest) (*dto.LoginResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var member models.Member
	if err := s.db.WithContext(ctx).Where("login_id = ?", req.LoginID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Verify password
	if err := member.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if member.Withdrawal.IsWithdrawn() {
		return nil, ErrWithdrawn
	}

	accessToken, err := utils.GenerateJWT(member.ID, member.ClassificationCode, member.Grade, s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken:        accessToken,
		MemberID:           member.ID,
		ClassificationCode: member.ClassificationCode,
		Grade:              int(member.Grade),
	}, nil
}

// Withdraw soft-deletes a member. The row stays so that history keeps resolving.
func (s *MemberService) Withdraw(ctx context.Context, memberID uint) error {
	result := s.db.WithContext(ctx).Model(&models.Member{}).
		Where("id = ? AND with_drawal = ?", memberID, models.WithdrawalActive).
		Update("with_drawal", models.WithdrawalWithdrawn)
	if result.Error != nil {
		return fmt.Errorf("failed to withdraw member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("member", memberID)
	}
	return nil
}

// IsActive reports whether the member still exists and has not withdrawn.
func (s *MemberService) IsActive(ctx context.Context, memberID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Member{}).
		Where("id = ? AND with_drawal = ?", memberID, models.WithdrawalActive).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("database error: %w", err)
	}
	return count > 0, nil
}

func (s *MemberService) ClientsOfSupplier(ctx context.Context, supplierCode string) ([]dto.ClientResponse, error) {
	return s.members.ClientsOfSupplier(ctx, supplierCode)
}

func (s *MemberService) SupplierByCode(ctx context.Context, classificationCode string) (*dto.SupplierResponse, error) {
	return s.members.SupplierByCode(ctx, classificationCode)
}
