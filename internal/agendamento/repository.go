package agendamento

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Medicao
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere uma nova medição
func (r *Repository) Criar(m *Medicao) error {
	return r.DB.Create(m).Error
}

// ListarPorUsuario retorna as medições do usuário ordenadas por data decrescente.
func (r *Repository) ListarPorUsuario(userID string) ([]Medicao, error) {
	var list []Medicao
	err := r.DB.Where("user_id = ?", userID).Order("date DESC").Find(&list).Error
	return list, err
}

// ListarRealizadasPorUsuario retorna só as medições com status Realizado,
// base do conjunto de trabalho de comissões.
func (r *Repository) ListarRealizadasPorUsuario(userID string) ([]Medicao, error) {
	var list []Medicao
	err := r.DB.Where("user_id = ? AND status = ?", userID, StatusRealizado).
		Order("date DESC").Find(&list).Error
	return list, err
}

// BuscarPorID retorna uma medição pelo ID
func (r *Repository) BuscarPorID(id string) (*Medicao, error) {
	var m Medicao
	if err := r.DB.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Atualizar salva alterações em uma medição existente (todos os campos)
func (r *Repository) Atualizar(m *Medicao) error {
	return r.DB.Save(m).Error
}

// AtualizarCampos aplica um patch mínimo, apenas as colunas informadas.
func (r *Repository) AtualizarCampos(id string, campos map[string]interface{}) error {
	return r.DB.Model(&Medicao{}).Where("id = ?", id).Updates(campos).Error
}

// AtualizarStatus troca apenas o status da medição.
func (r *Repository) AtualizarStatus(id string, status Status) error {
	return r.DB.Model(&Medicao{}).Where("id = ?", id).Update("status", status).Error
}

// Deletar remove a medição definitivamente.
func (r *Repository) Deletar(id string) error {
	return r.DB.Delete(&Medicao{}, "id = ?", id).Error
}
