package config

import (
	"fmt"
	"os"

	"github.com/rahulnm/zestmart/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string
	RedisAddr  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       os.Getenv("PORT"),
		Env:        os.Getenv("ENV"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
	}

	return config, nil
}

// InitDB initializes the database connection
func InitDB() {
	config, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}

	DB = db

	err = DB.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Product{},
		&models.ProductAttribute{},
		&models.ProductVariant{},
		&models.Review{},
		&models.Address{},
		&models.B2BApplication{},
		&models.Order{},
		&models.Return{},
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to migrate database: %v", err))
	}

	// Offer window columns must stay text: rows migrated from the old
	// system carry mixed date formats that a timestamp column would reject.
	for _, col := range []string{
		"b2c_offer_start_date", "b2c_offer_end_date",
		"b2b_offer_start_date", "b2b_offer_end_date",
	} {
		err = DB.Exec(fmt.Sprintf(`ALTER TABLE products ALTER COLUMN %s TYPE text`, col)).Error
		if err != nil {
			panic(fmt.Sprintf("Failed to normalize offer date column %s: %v", col, err))
		}
	}
}
