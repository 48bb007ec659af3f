package usuario

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Salvar(u *Usuario) error {
	return r.DB.Create(u).Error
}

func (r *Repository) BuscarPorEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) BuscarPorID(id string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
