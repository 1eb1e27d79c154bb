package services

import (
	"context"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	ScrapEquipment(ctx context.Context, id string, reason string) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	txManager     repositories.TxManagerInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		teamRepo:      teamRepo,
		txManager:     txManager,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return s.equipmentRepo.GetEquipments(ctx, filter)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	// The referenced team must exist before anything is written.
	if _, err := s.teamRepo.FindTeam(ctx, payload.MaintenanceTeamID); err != nil {
		return nil, apperrors.NewInvalidInputError("maintenance team %s does not exist", payload.MaintenanceTeamID)
	}

	purchaseDate, err := parseOptionalDay(payload.PurchaseDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("invalid purchase_date")
	}
	warrantyExpiry, err := parseOptionalDay(payload.WarrantyExpiry)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("invalid warranty_expiry")
	}

	e := &entities.Equipment{
		ID:                  uuid.New().String(),
		Name:                payload.Name,
		SerialNumber:        payload.SerialNumber,
		Category:            payload.Category,
		Department:          payload.Department,
		OwnerEmployeeName:   payload.OwnerEmployeeName,
		PurchaseDate:        purchaseDate,
		WarrantyExpiry:      warrantyExpiry,
		Location:            payload.Location,
		MaintenanceTeamID:   payload.MaintenanceTeamID,
		DefaultTechnicianID: payload.DefaultTechnicianID,
	}

	if err := s.equipmentRepo.CreateEquipment(ctx, e); err != nil {
		s.logger.Error("equipment create failed", zap.Error(err))
		return nil, err
	}
	return s.equipmentRepo.FindEquipment(ctx, e.ID)
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	fields := map[string]interface{}{}

	if payload.Name.Valid {
		fields["name"] = payload.Name.String
	}
	if payload.SerialNumber.Valid {
		fields["serial_number"] = payload.SerialNumber.String
	}
	if payload.Category.Valid {
		fields["category"] = payload.Category.String
	}
	if payload.Department.Valid {
		fields["department"] = payload.Department.String
	}
	if payload.OwnerEmployeeName.Valid {
		fields["owner_employee_name"] = payload.OwnerEmployeeName.String
	}
	if payload.Location.Valid {
		fields["location"] = payload.Location.String
	}
	if payload.MaintenanceTeamID.Valid {
		fields["maintenance_team_id"] = payload.MaintenanceTeamID.String
	}
	if payload.DefaultTechnicianID.Valid {
		fields["default_technician_id"] = payload.DefaultTechnicianID.String
	}
	if payload.PurchaseDate.Valid {
		d, err := utils.ParseDay(payload.PurchaseDate.String)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("invalid purchase_date")
		}
		fields["purchase_date"] = d
	}
	if payload.WarrantyExpiry.Valid {
		d, err := utils.ParseDay(payload.WarrantyExpiry.String)
		if err != nil {
			return nil, apperrors.NewInvalidInputError("invalid warranty_expiry")
		}
		fields["warranty_expiry"] = d
	}

	// is_scrapped, scrapped_at and scrapped_reason move together: scrapping
	// requires a reason, unscrapping clears both extra fields.
	if payload.IsScrapped.Valid {
		if payload.IsScrapped.Bool {
			if !payload.ScrappedReason.Valid || payload.ScrappedReason.String == "" {
				return nil, apperrors.NewInvalidInputError("scrapped_reason is required when scrapping equipment")
			}
			fields["is_scrapped"] = true
			fields["scrapped_at"] = time.Now().UTC()
			fields["scrapped_reason"] = payload.ScrappedReason.String
		} else {
			fields["is_scrapped"] = false
			fields["scrapped_at"] = nil
			fields["scrapped_reason"] = nil
		}
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) ScrapEquipment(ctx context.Context, id string, reason string) (*entities.Equipment, error) {
	fields := map[string]interface{}{
		"is_scrapped":     true,
		"scrapped_at":     time.Now().UTC(),
		"scrapped_reason": reason,
	}
	if err := s.equipmentRepo.UpdateEquipment(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.equipmentRepo.FindEquipment(ctx, id)
}

// DeleteEquipment removes the equipment and every request that references it
// in one transaction, so the two collections cannot diverge.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	return s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.requestRepo.DeleteRequestsByEquipmentInTx(ctx, tx, id); err != nil {
			s.logger.Error("request cascade delete failed", zap.String("equipmentId", id), zap.Error(err))
			return err
		}
		return s.equipmentRepo.DeleteEquipmentInTx(ctx, tx, id)
	})
}

func parseOptionalDay(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := utils.ParseDay(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
