package service

import (
	"errors"

	"github.com/ZulfikarHD/labelgen/internal/config"
	"github.com/ZulfikarHD/labelgen/internal/labelgen/repository"
	"github.com/ZulfikarHD/labelgen/internal/shared/sirine"
	"github.com/redis/go-redis/v9"
)

// Domain errors, mapped to HTTP responses in the handler layer.
var (
	ErrNotFound          = errors.New("record not found")
	ErrAlreadyExists     = errors.New("record already exists")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrInvalidInput      = errors.New("invalid input")
	ErrPONotFound        = errors.New("PO not found in SIRINE")
	ErrOrderCompleted    = errors.New("order is completed and no longer processable")
	ErrLabelNotStarted   = errors.New("label inspection has not been started")
	ErrLabelStarted      = errors.New("label inspection already started")
	ErrLabelFinished     = errors.New("label inspection already finished")
	ErrSelfDelete        = errors.New("cannot delete your own account")
	ErrWorkstationInUse  = errors.New("workstation still has assigned users")
	ErrMmeaInschiet      = errors.New("MMEA orders cannot carry inschiet sheets")
)

// Services bundles all labelgen services.
type Services struct {
	Auth        *AuthService
	User        *UserService
	Workstation *WorkstationService
	Order       *OrderService
	Label       *LabelService
	Export      *ExportService
	Spec        *sirine.Client
}

func NewServices(repos *repository.Repositories, rdb *redis.Client, spec *sirine.Client, cfg *config.Config) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, rdb, cfg.JWT),
		User:        NewUserService(repos.User),
		Workstation: NewWorkstationService(repos.Workstation),
		Order:       NewOrderService(repos.Order, repos.Workstation, spec),
		Label:       NewLabelService(repos.Label, repos.Order),
		Export:      NewExportService(repos.Order, repos.Label),
		Spec:        spec,
	}
}
