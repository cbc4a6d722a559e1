package db

import (
	"Gin_postgres_library_loans/models"
	"fmt"
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the ledger database. Postgres when DB_HOST is set,
// otherwise a local sqlite file (LIBRARY_DB, default library.db).
func ConnectDB() *gorm.DB {
	var dialector gorm.Dialector
	if host := os.Getenv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host,
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	} else {
		path := os.Getenv("LIBRARY_DB")
		if path == "" {
			path = "library.db"
		}
		dialector = sqlite.Open(path)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return DB
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Book{}, &models.Patron{}, &models.Loan{}); err != nil {
		return err
	}

	// 开放借阅的快速查找 / open-loan lookups for the delete guard
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_open_book
	  ON %s (book_id)
	  WHERE NOT returned;
	`, models.LoanTable, models.LoanTable)).Error; err != nil {
		return err
	}

	return nil
}
