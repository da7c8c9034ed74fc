package entity

import (
	"time"
)

// InschietRimNumber is the sentinel rim number for remainder-sheet
// labels. Inschiet labels exist only on regular orders.
const InschietRimNumber = 999

// LabelState is the derived lifecycle of a label. It is never stored:
// the state follows from the inspector and timestamp fields.
type LabelState string

const (
	LabelStatePending    LabelState = "pending"
	LabelStateInProgress LabelState = "in_progress"
	LabelStateCompleted  LabelState = "completed"
)

// Label is the smallest tracked unit: one per rim side on regular
// orders, one per rim on MMEA orders. The (order, rim, cut side)
// triple is unique. Postgres treats NULLs as distinct in the unique
// index, so MMEA labels (nil cut side) are only deduplicated by the
// one-label-per-rim materialization, not by the index.
type Label struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	ProductionOrderID uint       `json:"production_order_id" gorm:"not null;index;uniqueIndex:labels_order_rim_side_unique"`
	RimNumber         int        `json:"rim_number" gorm:"not null;uniqueIndex:labels_order_rim_side_unique"`
	CutSide           *CutSide   `json:"cut_side" gorm:"size:8;uniqueIndex:labels_order_rim_side_unique"`
	IsInschiet        bool       `json:"is_inschiet" gorm:"not null;default:false"`
	InspectorNP       *string    `json:"inspector_np" gorm:"size:5;index"`
	Inspector2NP      *string    `json:"inspector_2_np" gorm:"size:5"`
	PackSheets        *int       `json:"pack_sheets"`
	StartedAt         *time.Time `json:"started_at"`
	FinishedAt        *time.Time `json:"finished_at"`
	WorkstationID     *uint      `json:"workstation_id" gorm:"index"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	Order       *ProductionOrder `json:"order,omitempty" gorm:"foreignKey:ProductionOrderID"`
	Workstation *Workstation     `json:"workstation,omitempty" gorm:"foreignKey:WorkstationID;constraint:OnDelete:SET NULL"`
}

func (Label) TableName() string {
	return "labels"
}

// State derives the lifecycle state. A finish timestamp always wins,
// so a label can never be completed and in progress at once.
func (l *Label) State() LabelState {
	if l.FinishedAt != nil {
		return LabelStateCompleted
	}
	if l.StartedAt != nil && l.InspectorNP != nil {
		return LabelStateInProgress
	}
	return LabelStatePending
}

func (l *Label) IsPending() bool {
	return l.State() == LabelStatePending
}

func (l *Label) IsInProgress() bool {
	return l.State() == LabelStateInProgress
}

func (l *Label) IsCompleted() bool {
	return l.FinishedAt != nil
}
