package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"digilib/internal/models"
)

type AccountRepository interface {
	Create(db *gorm.DB, account *models.Account) error
	GetByID(db *gorm.DB, id uuid.UUID) (*models.Account, error)
	GetByEmail(db *gorm.DB, email string) (*models.Account, error)
	EmailExists(db *gorm.DB, email string) (bool, error)
}

// concrete implementation

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(db *gorm.DB, account *models.Account) error {
	if db == nil {
		db = r.db
	}
	return db.Create(account).Error
}

func (r *accountRepository) GetByID(db *gorm.DB, id uuid.UUID) (*models.Account, error) {
	if db == nil {
		db = r.db
	}
	var account models.Account
	if err := db.First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByEmail(db *gorm.DB, email string) (*models.Account, error) {
	if db == nil {
		db = r.db
	}
	var account models.Account
	if err := db.First(&account, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) EmailExists(db *gorm.DB, email string) (bool, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
