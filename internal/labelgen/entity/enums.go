package entity

// OrderType determines how an order's rims decompose into labels.
// Regular orders carry two labels per rim (left + right cut side),
// MMEA orders carry one label per rim with no cut side.
type OrderType string

const (
	OrderTypeRegular OrderType = "regular"
	OrderTypeMmea    OrderType = "mmea"
)

// ParseOrderType maps a query/form value onto an OrderType,
// defaulting to regular for missing or unrecognized input.
func ParseOrderType(s string) OrderType {
	if s == string(OrderTypeMmea) {
		return OrderTypeMmea
	}
	return OrderTypeRegular
}

func (t OrderType) Valid() bool {
	return t == OrderTypeRegular || t == OrderTypeMmea
}

// LabelsPerRim returns how many labels one rim produces.
func (t OrderType) LabelsPerRim() int {
	if t == OrderTypeMmea {
		return 1
	}
	return 2
}

// RequiresCutSide reports whether labels of this type carry a cut side.
func (t OrderType) RequiresCutSide() bool {
	return t == OrderTypeRegular
}

func (t OrderType) Label() string {
	if t == OrderTypeMmea {
		return "MMEA"
	}
	return "Regular"
}

func (t OrderType) Description() string {
	if t == OrderTypeMmea {
		return "MMEA order with 1 label per rim, no cut side"
	}
	return "Regular order with 2 labels per rim (left + right)"
}

// OrderStatus is the linear order workflow:
// registered -> in_progress -> completed. No skips, no regression.
type OrderStatus string

const (
	OrderStatusRegistered OrderStatus = "registered"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
)

// Next returns the following status in the workflow. ok is false
// when the order is already completed.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	switch s {
	case OrderStatusRegistered:
		return OrderStatusInProgress, true
	case OrderStatusInProgress:
		return OrderStatusCompleted, true
	default:
		return "", false
	}
}

// IsProcessable reports whether the order still accepts label work.
func (s OrderStatus) IsProcessable() bool {
	return s == OrderStatusRegistered || s == OrderStatusInProgress
}

func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusRegistered:
		return "Terdaftar"
	case OrderStatusInProgress:
		return "Dalam Proses"
	case OrderStatusCompleted:
		return "Selesai"
	}
	return string(s)
}

// Color returns the UI badge color for this status.
func (s OrderStatus) Color() string {
	switch s {
	case OrderStatusInProgress:
		return "blue"
	case OrderStatusCompleted:
		return "green"
	}
	return "gray"
}

// CutSide is the half of a regular rim a label belongs to.
// Left is processed before right.
type CutSide string

const (
	CutSideLeft  CutSide = "left"
	CutSideRight CutSide = "right"
)

func (c CutSide) Valid() bool {
	return c == CutSideLeft || c == CutSideRight
}

// Opposite returns the other side of the rim.
func (c CutSide) Opposite() CutSide {
	if c == CutSideLeft {
		return CutSideRight
	}
	return CutSideLeft
}

// Priority orders processing: left before right.
func (c CutSide) Priority() int {
	if c == CutSideLeft {
		return 1
	}
	return 2
}

func (c CutSide) Short() string {
	if c == CutSideLeft {
		return "L"
	}
	return "R"
}

func (c CutSide) Label() string {
	if c == CutSideLeft {
		return "Kiri"
	}
	return "Kanan"
}

// UserRole gates access: admins manage users/workstations/orders,
// operators only process labels.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operator"
)

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleOperator
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) Label() string {
	if r == RoleAdmin {
		return "Administrator"
	}
	return "Operator"
}

func (r UserRole) Color() string {
	if r == RoleAdmin {
		return "purple"
	}
	return "blue"
}

func (r UserRole) Description() string {
	if r == RoleAdmin {
		return "Full access including user management and system configuration"
	}
	return "Label processing and printing access"
}
