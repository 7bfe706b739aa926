package adapters

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockwatch/internal/feature/auth/domain/entity"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	Username  string `gorm:"size:100;not null;uniqueIndex:idx_users_username"`
	Email     string `gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a UUID when the id is empty.
func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

func (m *UserModel) toEntity() *entity.User {
	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
