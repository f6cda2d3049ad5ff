package repository

import (
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmailAndRole(email, role string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ? AND role = ?", email, role).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

// AllPasswordHashes feeds the cross-user password collision check on
// registration.
func (r *UserRepository) AllPasswordHashes() ([]string, error) {
	var hashes []string
	err := r.DB.Model(&entity.User{}).Pluck("password", &hashes).Error
	return hashes, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}
