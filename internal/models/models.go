package models

import (
	"github.com/google/uuid"
)

// Category is one of the five fixed catalog categories. Values are the
// Indonesian display names used throughout the catalog data.
type Category string

const (
	CategoryFiction    Category = "Fiksi"
	CategoryScience    Category = "Sains"
	CategoryHistory    Category = "Sejarah"
	CategoryTechnology Category = "Teknologi"
	CategoryChildren   Category = "Anak"
)

// Categories returns the closed category set in catalog generation order.
func Categories() []Category {
	return []Category{
		CategoryFiction,
		CategoryScience,
		CategoryHistory,
		CategoryTechnology,
		CategoryChildren,
	}
}

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleReader Role = "reader"
)

// Book is a single catalog record. The collection is generated once at
// startup and is immutable afterwards.
type Book struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Category    Category `json:"category"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Available   bool     `json:"available"`
	Description string   `json:"description"`
	Pages       int      `json:"pages"`
	Year        int      `json:"year"` // negative means BCE
	PDFURL      string   `json:"pdfUrl,omitempty"`
	Trending    bool     `json:"trending"`
	Popular     bool     `json:"popular"`
}

// Statistics aggregates the whole catalog.
type Statistics struct {
	TotalBooks     int              `json:"totalBooks"`
	CategoryCount  map[Category]int `json:"categoryCount"`
	AvailableBooks int              `json:"availableBooks"`
	BorrowedBooks  int              `json:"borrowedBooks"`
	AverageRating  float64          `json:"averageRating"`
}

// UserProfile is the JSON document stored per user in the key-value store.
type UserProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Avatar      string `json:"avatar"`
	MemberSince string `json:"memberSince"`
	BooksRead   int    `json:"booksRead"`
	Role        Role   `json:"role"`
}

// Account is an auth-provider credential record. The profile document lives
// in the key-value store under user:<id>, not here.
type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
}

// KVEntry is one row of the generic key-value store.
type KVEntry struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string `gorm:"type:text;not null"`
}

func (KVEntry) TableName() string { return "kv_entries" }
