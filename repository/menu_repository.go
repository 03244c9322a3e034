package repository

import (
	"github.com/GermanChai/germanchai/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// List returns the whole catalog ordered by category, then name, the order
// the menu screen groups it in.
func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindBasics fetches just what checkout needs to snapshot a price.
func (r *MenuRepository) FindBasics(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Select("id, name, price, available").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) SetAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).
		Update("available", available).Error
}

func (r *MenuRepository) SaveImage(id uint, data []byte, contentType, url string) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(map[string]any{
		"image":      data,
		"image_type": contentType,
		"image_size": int64(len(data)),
		"image_url":  url,
	}).Error
}

func (r *MenuRepository) FindImage(id uint) ([]byte, string, error) {
	var item entity.MenuItem
	if err := r.DB.Select("id, image, image_type").First(&item, id).Error; err != nil {
		return nil, "", err
	}
	return item.Image, item.ImageType, nil
}
