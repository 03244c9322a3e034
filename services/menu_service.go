package services

import (
	"fmt"
	"strings"

	"github.com/GermanChai/germanchai/entity"
	"github.com/GermanChai/germanchai/repository"
	"github.com/GermanChai/germanchai/utils"
)

type MenuService struct {
	Repo    *repository.MenuRepository
	BaseURL string
}

func NewMenuService(repo *repository.MenuRepository, baseURL string) *MenuService {
	return &MenuService{Repo: repo, BaseURL: baseURL}
}

// CategoryGroup is one menu section, in catalog category order.
type CategoryGroup struct {
	Category string            `json:"category"`
	Items    []entity.MenuItem `json:"items"`
}

// List returns the catalog grouped by category. A non-empty query filters
// by name or description, case-insensitive. Unavailable items stay in the
// listing; the flag lets clients disable the add button.
func (s *MenuService) List(query string) ([]CategoryGroup, error) {
	items, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filtered := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), q) ||
				strings.Contains(strings.ToLower(it.Description), q) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	var groups []CategoryGroup
	for _, it := range items {
		if n := len(groups); n == 0 || groups[n-1].Category != it.Category {
			groups = append(groups, CategoryGroup{Category: it.Category})
		}
		groups[len(groups)-1].Items = append(groups[len(groups)-1].Items, it)
	}
	return groups, nil
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	return s.Repo.Create(item)
}

func (s *MenuService) Update(item *entity.MenuItem) error {
	return s.Repo.Update(item)
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *MenuService) SetAvailability(id uint, available bool) error {
	return s.Repo.SetAvailability(id, available)
}

// UploadImage stores an admin-uploaded data-URL image and records the
// public URL it will be served from.
func (s *MenuService) UploadImage(id uint, dataURL string) (string, error) {
	if _, err := s.Repo.FindByID(id); err != nil {
		return "", err
	}
	data, contentType, err := utils.DecodeImageDataURL(dataURL)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/menu/%d/image", s.BaseURL, id)
	if err := s.Repo.SaveImage(id, data, contentType, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *MenuService) Image(id uint) ([]byte, string, error) {
	return s.Repo.FindImage(id)
}
