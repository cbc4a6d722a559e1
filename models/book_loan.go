// models/book_loan.go
package models

import "time"

const BookTable = "books"
const PatronTable = "patrons"
const LoanTable = "loans"

// DateLayout is the wire format for loan dates, as the SPA expects them.
const DateLayout = "2006-01-02"

type Book struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"size:300;not null" json:"title"`
	Author    string    `gorm:"size:200;not null" json:"author"`
	ISBN      string    `gorm:"size:40;not null" json:"isbn"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Available int       `gorm:"not null" json:"available"` // 0 <= available <= quantity
	CoverURL  string    `gorm:"size:500" json:"cover_url,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Patron has no update or delete path; rows are immutable once created.
type Patron struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Email     string    `gorm:"size:254;not null" json:"email"`
	MemberID  string    `gorm:"size:60;not null" json:"memberId"`
	Avatar    string    `gorm:"size:500" json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Loan struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	BookID    string    `gorm:"type:uuid;index" json:"bookId"`
	PatronID  string    `gorm:"type:uuid;index" json:"patronId"`
	LoanDate  string    `gorm:"size:10;not null" json:"loanDate"`
	DueDate   string    `gorm:"size:10;not null" json:"dueDate"` // loanDate + 14 days, fixed at creation
	Returned  bool      `gorm:"not null;default:false" json:"returned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Book) TableName() string   { return BookTable }
func (Patron) TableName() string { return PatronTable }
func (Loan) TableName() string   { return LoanTable }

// OverdueAt reports whether the loan is open and past due relative to now.
// Overdue is derived here and never persisted, so it always reflects the
// clock it is given.
func (l Loan) OverdueAt(now time.Time) bool {
	if l.Returned {
		return false
	}
	due, err := time.Parse(DateLayout, l.DueDate)
	if err != nil {
		return false
	}
	return due.Before(now)
}

// Day formats t as a loan date.
func Day(t time.Time) string { return t.UTC().Format(DateLayout) }
