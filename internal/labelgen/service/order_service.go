package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/entity"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"github.com/ZulfikarHD/labelgen/internal/shared/sirine"
	"gorm.io/gorm"
)

// OrderService registers production orders from SIRINE specifications
// and owns the rim-to-label decomposition rules.
type OrderService struct {
	orders   *repository.OrderRepository
	stations *repository.WorkstationRepository
	spec     *sirine.Client
}

func NewOrderService(orders *repository.OrderRepository, stations *repository.WorkstationRepository, spec *sirine.Client) *OrderService {
	return &OrderService{orders: orders, stations: stations, spec: spec}
}

type RegisterOrderRequest struct {
	PONumber  int64  `json:"po_number" binding:"required,gt=0"`
	OrderType string `json:"order_type" binding:"omitempty,oneof=regular mmea"`
	TeamID    *uint  `json:"team_id"`
}

// OrderDetail is an order with its derived progress.
type OrderDetail struct {
	entity.ProductionOrder
	Progress        int   `json:"progress"`
	TotalLabels     int64 `json:"total_labels"`
	CompletedLabels int64 `json:"completed_labels"`
	HasInschiet     bool  `json:"has_inschiet"`
}

// Register validates the PO against SIRINE, derives the rim layout
// from the specification's sheet count and materializes every label
// up front. MMEA orders never carry inschiet.
func (s *OrderService) Register(ctx context.Context, req RegisterOrderRequest) (*entity.ProductionOrder, error) {
	orderType := entity.ParseOrderType(req.OrderType)

	specification := s.spec.GetParsedSpecification(ctx, req.PONumber, orderType)
	if specification == nil {
		return nil, ErrPONotFound
	}

	totalSheets := specification.TotalSheets
	if totalSheets <= 0 {
		totalSheets = specification.TotalOrder
	}
	if totalSheets <= 0 {
		return nil, fmt.Errorf("%w: specification has no sheet count", ErrInvalidInput)
	}

	totalRims := totalSheets / entity.SheetsPerRim
	inschiet := totalSheets % entity.SheetsPerRim
	if orderType == entity.OrderTypeMmea && inschiet > 0 {
		// MMEA stock arrives in full rims only.
		return nil, ErrMmeaInschiet
	}

	if req.TeamID != nil {
		if _, err := s.stations.GetByID(*req.TeamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: team %d", ErrNotFound, *req.TeamID)
			}
			return nil, err
		}
	}

	order := &entity.ProductionOrder{
		PONumber:       req.PONumber,
		OBCNumber:      specification.OBCNumber,
		OrderType:      orderType,
		ProductType:    specification.ProductType,
		TotalSheets:    totalSheets,
		TotalRims:      totalRims,
		StartRim:       1,
		EndRim:         totalRims,
		InschietSheets: inschiet,
		TeamID:         req.TeamID,
		Status:         entity.OrderStatusRegistered,
	}
	order.Labels = materializeLabels(order)

	if err := s.orders.Create(order); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// materializeLabels expands the rim range into label rows: two per rim
// (left, right) for regular orders, one per rim for MMEA. Remainder
// sheets get the sentinel rim 999, regular orders only.
func materializeLabels(order *entity.ProductionOrder) []entity.Label {
	labels := make([]entity.Label, 0, (order.EndRim-order.StartRim+1)*order.OrderType.LabelsPerRim()+2)

	for rim := order.StartRim; rim <= order.EndRim; rim++ {
		labels = append(labels, rimLabels(order.OrderType, rim, false)...)
	}
	if order.HasInschiet() && order.OrderType.RequiresCutSide() {
		labels = append(labels, rimLabels(order.OrderType, entity.InschietRimNumber, true)...)
	}
	return labels
}

func rimLabels(orderType entity.OrderType, rim int, inschiet bool) []entity.Label {
	if !orderType.RequiresCutSide() {
		return []entity.Label{{RimNumber: rim, IsInschiet: inschiet}}
	}
	left, right := entity.CutSideLeft, entity.CutSideRight
	return []entity.Label{
		{RimNumber: rim, CutSide: &left, IsInschiet: inschiet},
		{RimNumber: rim, CutSide: &right, IsInschiet: inschiet},
	}
}

func (s *OrderService) List(params repository.OrderListParams) ([]OrderDetail, int64, error) {
	orders, total, err := s.orders.List(params)
	if err != nil {
		return nil, 0, err
	}
	details := make([]OrderDetail, 0, len(orders))
	for i := range orders {
		detail, err := s.withProgress(&orders[i])
		if err != nil {
			return nil, 0, err
		}
		details = append(details, *detail)
	}
	return details, total, nil
}

func (s *OrderService) Get(id uint) (*OrderDetail, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.withProgress(order)
}

// withProgress derives the completion percentage from a fresh label
// count. The read reflects whatever labels look like right now; there
// is deliberately no cached value to go stale.
func (s *OrderService) withProgress(order *entity.ProductionOrder) (*OrderDetail, error) {
	total, completed, err := s.orders.LabelCounts(order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ProductionOrder: *order,
		Progress:        entity.ProgressPercent(completed, total),
		TotalLabels:     total,
		CompletedLabels: completed,
		HasInschiet:     order.HasInschiet(),
	}, nil
}

// AdvanceStatus moves the order one step along the linear workflow.
// Status never auto-advances from label completion; this explicit
// action is the only path.
func (s *OrderService) AdvanceStatus(id uint) (*entity.ProductionOrder, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	next, ok := order.Status.Next()
	if !ok {
		return nil, ErrOrderCompleted
	}
	order.Status = next
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// AssignTeam sets or clears the order's workstation.
func (s *OrderService) AssignTeam(id uint, teamID *uint) (*entity.ProductionOrder, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if teamID != nil {
		if _, err := s.stations.GetByID(*teamID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: team %d", ErrNotFound, *teamID)
			}
			return nil, err
		}
	}
	order.TeamID = teamID
	if err := s.orders.Update(order); err != nil {
		return nil, err
	}
	return order, nil
}

// Delete removes the order and cascades to its labels.
func (s *OrderService) Delete(id uint) error {
	if _, err := s.orders.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.orders.Delete(id)
}
