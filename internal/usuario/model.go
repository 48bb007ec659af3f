package usuario

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Usuario é a conta que acessa a agenda.
type Usuario struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Senha     string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Usuario) TableName() string { return "usuarios" }

func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
