package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"sadguru-seva-be/internal/repository/unitofwork"
	"sadguru-seva-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func connectDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return gormDB
}

func TestGormConnection(t *testing.T) {
	gormDB := connectDB(t)

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.AdminRepository())
	assert.NotNil(t, uow.BhaktRepository())
	assert.NotNil(t, uow.ContactRepository())
	assert.NotNil(t, uow.JapaSessionRepository())
	assert.NotNil(t, uow.JapaDailyCountRepository())
	assert.NotNil(t, uow.LilaRepository())
	assert.NotNil(t, uow.SatsangRepository())
	assert.NotNil(t, uow.ProgramRepository())
	assert.NotNil(t, uow.PhotoRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err := sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Bhakt Repository", func(t *testing.T) {
		count, err := uow.BhaktRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Bhakt count: %d", count)
	})
}
