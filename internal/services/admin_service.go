// internal/services/admin_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/models"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/repository"
)

type AdminService struct {
	db    *gorm.DB
	repos *repository.Repositories
}

type AdminDashboardStats struct {
	TotalSuppliers      int64            `json:"totalSuppliers"`
	TotalClients        int64            `json:"totalClients"`
	WithdrawnMembers    int64            `json:"withdrawnMembers"`
	NewMembersThisMonth int64            `json:"newMembersThisMonth"`
	MemberGrowth        float64          `json:"memberGrowth"`
	TotalProducts       int64            `json:"totalProducts"`
	TotalDevices        int64            `json:"totalDevices"`
	ChipsByStatus       map[string]int64 `json:"chipsByStatus"`
	ScansThisMonth      int64            `json:"scansThisMonth"`
	UpcomingRecalls     int64            `json:"upcomingRecalls"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db, repos: repository.NewRepositories(db)}
}

func (s *AdminService) GetDashboardStats(ctx context.Context) (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{ChipsByStatus: map[string]int64{}}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	db := s.db.WithContext(ctx)

	var lastMonthMembers int64
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		// Member statistics
		{&stats.TotalSuppliers, db.Model(&models.Member{}).Where("grade = ? AND with_drawal = ?", models.GradeSupplier, models.WithdrawalActive)},
		{&stats.TotalClients, db.Model(&models.Member{}).Where("grade = ? AND with_drawal = ?", models.GradeClient, models.WithdrawalActive)},
		{&stats.WithdrawnMembers, db.Model(&models.Member{}).Where("with_drawal = ?", models.WithdrawalWithdrawn)},
		{&stats.NewMembersThisMonth, db.Model(&models.Member{}).Where("created_at >= ?", monthStart)},
		{&lastMonthMembers, db.Model(&models.Member{}).Where("created_at >= ? AND created_at < ?", lastMonthStart, monthStart)},

		// Activity
		{&stats.ScansThisMonth, db.Model(&models.RfidScanHistory{}).Where("created_at >= ?", monthStart)},
		{&stats.UpcomingRecalls, db.Model(&models.Recall{}).Where("possible_recall_at >= ?", now)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
		}
	}

	// Catalogue and fleet
	var err error
	if stats.TotalProducts, err = s.repos.Products.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalDevices, err = s.repos.Devices.Count(ctx); err != nil {
		return nil, err
	}

	var byStatus []struct {
		Status models.ProductStatus
		Total  int64
	}
	if err := db.Model(&models.ProductDetail{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, fmt.Errorf("failed to count chips: %w", err)
	}
	for _, row := range byStatus {
		stats.ChipsByStatus[string(row.Status)] = row.Total
	}

	// Growth calculations
	if lastMonthMembers > 0 {
		stats.MemberGrowth = float64(stats.NewMembersThisMonth-lastMonthMembers) / float64(lastMonthMembers) * 100
	}

	return stats, nil
}
