package repository

import (
	"errors"

	"github.com/GermanChai/germanchai/entity"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// FindByUser returns an empty profile (not an error) when none exists yet,
// so callers can treat "no profile" as defaults.
func (r *ProfileRepository) FindByUser(userID uint) (*entity.Profile, error) {
	var p entity.Profile
	err := r.DB.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Profile{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) Upsert(p *entity.Profile) error {
	var exist entity.Profile
	err := r.DB.Where("user_id = ?", p.UserID).First(&exist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(p).Error
	}
	if err != nil {
		return err
	}
	exist.FullName = p.FullName
	exist.Phone = p.Phone
	if err := r.DB.Save(&exist).Error; err != nil {
		return err
	}
	*p = exist
	return nil
}

// ---------------- Addresses ----------------

func (r *ProfileRepository) ListAddresses(userID uint) ([]entity.Address, error) {
	var out []entity.Address
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *ProfileRepository) GetAddress(userID, addressID uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.Where("id = ? AND user_id = ?", addressID, userID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ProfileRepository) CreateAddress(a *entity.Address) error {
	return r.DB.Create(a).Error
}

func (r *ProfileRepository) UpdateAddress(a *entity.Address) error {
	return r.DB.Save(a).Error
}

func (r *ProfileRepository) DeleteAddress(userID, addressID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&entity.Address{}).Error
}
