// internal/services/admin_service.go
package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/foodnetwork/cfn-backend/internal/models"
)

type AdminService struct {
	db *gorm.DB
}

type AdminDashboardStats struct {
	TotalMembers        int64   `json:"total_members"`
	NewMembersThisMonth int64   `json:"new_members_this_month"`
	TotalProducts       int64   `json:"total_products"`
	LowStockProducts    int64   `json:"low_stock_products"`
	TotalOrders         int64   `json:"total_orders"`
	OrdersThisMonth     int64   `json:"orders_this_month"`
	TotalRevenue        float64 `json:"total_revenue"`
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	PendingRequests     int64   `json:"pending_requests"`
	TotalRequests       int64   `json:"total_requests"`
}

// Products at or below this stock level count as low-stock on the dashboard.
const lowStockThreshold = 5

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// GetDashboardStats aggregates the numbers shown on the admin landing page.
func (s *AdminService) GetDashboardStats() (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// Member statistics
	s.db.Model(&models.User{}).Where("role = ?", models.UserRoleMember).Count(&stats.TotalMembers)
	s.db.Model(&models.User{}).
		Where("role = ? AND created_at >= ?", models.UserRoleMember, monthStart).
		Count(&stats.NewMembersThisMonth)

	// Inventory statistics
	s.db.Model(&models.Product{}).Count(&stats.TotalProducts)
	s.db.Model(&models.Product{}).
		Where("current_stock <= ?", lowStockThreshold).
		Count(&stats.LowStockProducts)

	// Order statistics
	s.db.Model(&models.Order{}).Count(&stats.TotalOrders)
	s.db.Model(&models.Order{}).Where("created_at >= ?", monthStart).Count(&stats.OrdersThisMonth)

	s.db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusConfirmed).
		Select("COALESCE(SUM(total_price), 0)").Scan(&stats.TotalRevenue)

	s.db.Model(&models.Order{}).
		Where("status = ? AND created_at >= ?", models.OrderStatusConfirmed, monthStart).
		Select("COALESCE(SUM(total_price), 0)").Scan(&stats.MonthlyRevenue)

	// Request statistics
	s.db.Model(&models.ProductRequest{}).Count(&stats.TotalRequests)
	s.db.Model(&models.ProductRequest{}).
		Where("status = ?", models.RequestStatusPending).
		Count(&stats.PendingRequests)

	return stats, nil
}
