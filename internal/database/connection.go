// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foodnetwork/cfn-backend/internal/config"
	"github.com/foodnetwork/cfn-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		}
	} else {
		gormConfig = &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Info),
			TranslateError: true,
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductMovement{},
		&models.Order{},
		&models.ProductRequest{},
		&models.RequestSupport{},
		&models.News{},
		&models.AuditLog{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Movement indexes
		"CREATE INDEX IF NOT EXISTS idx_product_movements_product ON product_movements(product_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_product_movements_type ON product_movements(movement_type)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_product ON orders(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",

		// Request indexes
		"CREATE INDEX IF NOT EXISTS idx_product_requests_status ON product_requests(status)",
		"CREATE INDEX IF NOT EXISTS idx_product_requests_created_at ON product_requests(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_request_supports_request ON request_supports(request_id)",

		// Audit indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_user_action ON audit_logs(user_id, action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	// Create default admin user
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount)

	var admin models.User
	if adminCount == 0 {
		admin = models.User{
			Email: "admin@foodnetwork.com",
			Name:  "Admin User",
			Role:  models.UserRoleAdmin,
		}

		if err := admin.SetPassword("admin123!@#"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	} else {
		if err := db.Where("role = ?", models.UserRoleAdmin).First(&admin).Error; err != nil {
			return fmt.Errorf("failed to load admin user: %w", err)
		}
	}

	// Create starter products with their initial stock movements
	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)

	if productCount == 0 {
		starterProducts := []models.Product{
			{Name: "Organic Brown Rice", Description: "25 lb bag of organic brown rice", Category: "grains", UnitPrice: 24.99, CurrentStock: 50, UnitsPerCase: 1, UnitSize: "25 lb bag", TotalUnits: 50, SoldUnits: 12},
			{Name: "Raw Almonds", Description: "Premium raw almonds, 10 lb bag", Category: "nuts", UnitPrice: 89.99, CurrentStock: 25, UnitsPerCase: 1, UnitSize: "10 lb bag", TotalUnits: 25, SoldUnits: 8},
			{Name: "Quinoa", Description: "Organic tri-color quinoa, 5 lb bag", Category: "grains", UnitPrice: 32.99, CurrentStock: 30, UnitsPerCase: 1, UnitSize: "5 lb bag", TotalUnits: 30, SoldUnits: 15},
			{Name: "Coconut Oil", Description: "Cold-pressed coconut oil, 1 gallon", Category: "oils", UnitPrice: 45.99, CurrentStock: 20, UnitsPerCase: 1, UnitSize: "1 gallon", TotalUnits: 20, SoldUnits: 5},
			{Name: "Black Beans", Description: "Dried organic black beans, 25 lb bag", Category: "legumes", UnitPrice: 39.99, CurrentStock: 15, UnitsPerCase: 1, UnitSize: "25 lb bag", TotalUnits: 15, SoldUnits: 3},
			{Name: "Chia Seeds", Description: "Organic chia seeds, 5 lb bag", Category: "seeds", UnitPrice: 59.99, CurrentStock: 12, UnitsPerCase: 1, UnitSize: "5 lb bag", TotalUnits: 12, SoldUnits: 7},
		}

		for i := range starterProducts {
			product := &starterProducts[i]
			if err := db.Create(product).Error; err != nil {
				return fmt.Errorf("failed to create product %q: %w", product.Name, err)
			}

			movement := &models.ProductMovement{
				ProductID:    product.ID,
				MovementType: models.MovementTypeStockAdded,
				Quantity:     product.CurrentStock,
				UserID:       admin.ID,
				Notes:        "Initial stock from seed data",
			}
			if err := db.Create(movement).Error; err != nil {
				return fmt.Errorf("failed to create seed movement for %q: %w", product.Name, err)
			}
		}
	}

	// Demo member account plus a sample product request so fresh installs
	// show the request/support flow with real data.
	var memberCount int64
	db.Model(&models.User{}).Where("role = ?", models.UserRoleMember).Count(&memberCount)

	if memberCount == 0 {
		member := models.User{
			Email: "member@foodnetwork.com",
			Name:  "Demo Member",
			Role:  models.UserRoleMember,
		}
		if err := member.SetPassword("member123!@#"); err != nil {
			return fmt.Errorf("failed to set member password: %w", err)
		}
		if err := db.Create(&member).Error; err != nil {
			return fmt.Errorf("failed to create member user: %w", err)
		}

		var requestCount int64
		db.Model(&models.ProductRequest{}).Count(&requestCount)
		if requestCount == 0 {
			request := &models.ProductRequest{
				UserID:       member.ID,
				ProductName:  "Rolled Oats",
				Description:  "Organic rolled oats in 25 lb bags for batch baking",
				PriceRange:   "$20-30",
				AmountWanted: 2,
				Status:       models.RequestStatusPending,
			}
			if err := db.Create(request).Error; err != nil {
				return fmt.Errorf("failed to create sample request: %w", err)
			}
		}
	}

	// Welcome announcement
	var newsCount int64
	db.Model(&models.News{}).Count(&newsCount)

	if newsCount == 0 {
		welcome := &models.News{
			Title:     "Welcome to Community Food Network!",
			Content:   "We're excited to launch our community-driven bulk food purchasing platform. Members can now browse our inventory, place orders, and request new products. Together, we can access quality bulk foods at better prices!",
			AuthorID:  admin.ID,
			Published: true,
		}
		if err := db.Create(welcome).Error; err != nil {
			log.Printf("Warning: failed to create welcome news item: %v", err)
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
