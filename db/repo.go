package db

import (
	"time"

	"gorm.io/gorm"
)

// Repo owns all reads and writes against the ledger tables. Now is the
// clock used for loan dates and overdue classification; tests replace it.
type Repo struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db, Now: time.Now} }
