package services

import (
	"strings"

	"github.com/GermanChai/germanchai/entity"
	"github.com/GermanChai/germanchai/repository"
)

type ProfileService struct {
	Repo *repository.ProfileRepository
}

func NewProfileService(repo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{Repo: repo}
}

// Get never fails on a missing profile; an empty one is returned so the
// client can render defaults.
func (s *ProfileService) Get(userID uint) (*entity.Profile, error) {
	return s.Repo.FindByUser(userID)
}

func (s *ProfileService) Update(userID uint, fullName, phone string) (*entity.Profile, error) {
	p := &entity.Profile{
		UserID:   userID,
		FullName: strings.TrimSpace(fullName),
		Phone:    strings.TrimSpace(phone),
	}
	if err := s.Repo.Upsert(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) ListAddresses(userID uint) ([]entity.Address, error) {
	return s.Repo.ListAddresses(userID)
}

func (s *ProfileService) AddAddress(userID uint, label, line, city, pincode string) (*entity.Address, error) {
	a := &entity.Address{
		UserID:      userID,
		Label:       strings.TrimSpace(label),
		AddressLine: strings.TrimSpace(line),
		City:        strings.TrimSpace(city),
		Pincode:     strings.TrimSpace(pincode),
	}
	if err := s.Repo.CreateAddress(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ProfileService) UpdateAddress(userID, addressID uint, label, line, city, pincode string) (*entity.Address, error) {
	a, err := s.Repo.GetAddress(userID, addressID)
	if err != nil {
		return nil, err
	}
	a.Label = strings.TrimSpace(label)
	a.AddressLine = strings.TrimSpace(line)
	a.City = strings.TrimSpace(city)
	a.Pincode = strings.TrimSpace(pincode)
	if err := s.Repo.UpdateAddress(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ProfileService) DeleteAddress(userID, addressID uint) error {
	return s.Repo.DeleteAddress(userID, addressID)
}
