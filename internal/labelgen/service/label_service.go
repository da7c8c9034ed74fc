package service

import (
	"errors"
	"strings"
	"time"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"gorm.io/gorm"
)

// LabelService drives the per-label inspection lifecycle. A label's
// state is never stored; it falls out of which timestamps are set.
type LabelService struct {
	labels *repository.LabelRepository
	orders *repository.OrderRepository
}

func NewLabelService(labels *repository.LabelRepository, orders *repository.OrderRepository) *LabelService {
	return &LabelService{labels: labels, orders: orders}
}

type StartInspectionRequest struct {
	InspectorNP   string `json:"inspector_np" binding:"omitempty,max=5,alphanum"`
	WorkstationID *uint  `json:"workstation_id"`
}

type FinishInspectionRequest struct {
	Inspector2NP string `json:"inspector2_np" binding:"omitempty,max=5,alphanum"`
	PackSheets   *int   `json:"pack_sheets" binding:"omitempty,gte=0"`
}

// LabelView is a label with its derived state attached.
type LabelView struct {
	entity.Label
	State entity.LabelState `json:"state"`
}

func (s *LabelService) ListByOrder(orderID uint) ([]LabelView, error) {
	if _, err := s.orders.GetByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	labels, err := s.labels.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	views := make([]LabelView, 0, len(labels))
	for i := range labels {
		views = append(views, LabelView{Label: labels[i], State: labels[i].State()})
	}
	return views, nil
}

func (s *LabelService) Get(id uint) (*LabelView, error) {
	label, err := s.labels.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &LabelView{Label: *label, State: label.State()}, nil
}

// Start records the inspector and the start timestamp. A label can be
// started exactly once, and only while its order is still processable.
func (s *LabelService) Start(id uint, req StartInspectionRequest) (*LabelView, error) {
	if req.InspectorNP == "" {
		return nil, ErrInvalidInput
	}
	label, err := s.loadProcessable(id)
	if err != nil {
		return nil, err
	}
	if label.State() != entity.LabelStatePending {
		return nil, ErrLabelStarted
	}

	np := strings.ToUpper(req.InspectorNP)
	now := time.Now()
	label.InspectorNP = &np
	label.StartedAt = &now
	label.WorkstationID = req.WorkstationID

	if err := s.labels.Update(label); err != nil {
		return nil, err
	}
	return &LabelView{Label: *label, State: label.State()}, nil
}

// Finish closes the inspection. It rejects labels that were never
// started and labels that already carry a finish timestamp.
func (s *LabelService) Finish(id uint, req FinishInspectionRequest) (*LabelView, error) {
	label, err := s.loadProcessable(id)
	if err != nil {
		return nil, err
	}
	switch label.State() {
	case entity.LabelStatePending:
		return nil, ErrLabelNotStarted
	case entity.LabelStateCompleted:
		return nil, ErrLabelFinished
	}

	now := time.Now()
	label.FinishedAt = &now
	if req.Inspector2NP != "" {
		np := strings.ToUpper(req.Inspector2NP)
		label.Inspector2NP = &np
	}
	if req.PackSheets != nil {
		label.PackSheets = req.PackSheets
	}

	if err := s.labels.Update(label); err != nil {
		return nil, err
	}
	return &LabelView{Label: *label, State: label.State()}, nil
}

func (s *LabelService) loadProcessable(id uint) (*entity.Label, error) {
	label, err := s.labels.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	order, err := s.orders.GetByID(label.ProductionOrderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.IsProcessable() {
		return nil, ErrOrderCompleted
	}
	return label, nil
}
