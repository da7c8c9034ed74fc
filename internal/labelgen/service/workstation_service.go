package service

import (
	"errors"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"gorm.io/gorm"
)

type WorkstationService struct {
	stations *repository.WorkstationRepository
}

func NewWorkstationService(stations *repository.WorkstationRepository) *WorkstationService {
	return &WorkstationService{stations: stations}
}

type WorkstationRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	IsActive *bool  `json:"is_active"`
}

func (s *WorkstationService) List(activeOnly bool) ([]entity.Workstation, error) {
	return s.stations.List(activeOnly)
}

func (s *WorkstationService) Get(id uint) (*entity.Workstation, error) {
	ws, err := s.stations.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ws, nil
}

func (s *WorkstationService) Create(req WorkstationRequest) (*entity.Workstation, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	ws := &entity.Workstation{Name: req.Name, IsActive: active}
	if err := s.stations.Create(ws); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return ws, nil
}

func (s *WorkstationService) Update(id uint, req WorkstationRequest) (*entity.Workstation, error) {
	ws, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	ws.Name = req.Name
	if req.IsActive != nil {
		ws.IsActive = *req.IsActive
	}
	if err := s.stations.Update(ws); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return ws, nil
}

// Delete refuses while users are still assigned; orders and labels
// merely lose their reference.
func (s *WorkstationService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	inUse, err := s.stations.HasUsers(id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrWorkstationInUse
	}
	return s.stations.Delete(id)
}

func (s *WorkstationService) ToggleActive(id uint) (*entity.Workstation, error) {
	ws, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	ws.IsActive = !ws.IsActive
	if err := s.stations.Update(ws); err != nil {
		return nil, err
	}
	return ws, nil
}
