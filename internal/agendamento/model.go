package agendamento

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status de uma medição. As transições entre os três valores são livres.
type Status string

const (
	StatusPendente  Status = "Pendente"
	StatusRealizado Status = "Realizado"
	StatusCancelado Status = "Cancelado"
)

// Endereco do local da medição, gravado como JSONB.
type Endereco struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
}

// Medicao representa um agendamento de medição em campo.
type Medicao struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;index" json:"userId"`

	OrderNumber   *string  `json:"orderNumber,omitempty"`
	Date          string   `gorm:"size:10;index" json:"date"` // YYYY-MM-DD, sem horário
	RequesterName string   `json:"requesterName"`
	Status        Status   `gorm:"size:20;not null;default:'Pendente';index" json:"status"`
	ClientName    string   `json:"clientName"`
	ClientPhone   string   `json:"clientPhone"`
	Address       Endereco `gorm:"type:jsonb;serializer:json" json:"address"`
	Observations  *string  `json:"observations,omitempty"`

	OrderValue     *float64 `json:"orderValue"`
	CommissionRate *float64 `json:"commissionRate"`
	CommissionPaid bool     `gorm:"not null;default:false" json:"commissionPaid"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Medicao) TableName() string { return "medicoes" }

// BeforeCreate atribui o ID opaco antes da inserção.
func (m *Medicao) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Medicao{})
}
