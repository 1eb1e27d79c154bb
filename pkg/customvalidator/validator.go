package customvalidator

import (
	"gearguard/pkg/constants"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers the GearGuard domain rules on the shared
// validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("equipment_category", isEquipmentCategory); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_stage", isRequestStage); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_type", isRequestType); err != nil {
		return err
	}
	if err := v.RegisterValidation("user_role", isUserRole); err != nil {
		return err
	}
	return nil
}

func isEquipmentCategory(fl validator.FieldLevel) bool {
	return constants.IsValidCategory(fl.Field().String())
}

func isRequestStage(fl validator.FieldLevel) bool {
	return constants.IsValidStage(fl.Field().String())
}

func isRequestType(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == constants.RequestTypeCorrective || s == constants.RequestTypePreventive
}

func isUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constants.RoleAdmin, constants.RoleManager, constants.RoleTechnician, constants.RoleRequester:
		return true
	}
	return false
}
