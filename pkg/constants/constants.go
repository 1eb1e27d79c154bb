package constants

// Request lifecycle stages (match the codes stored in the DB).
const (
	StageNew        = "new"
	StageInProgress = "in_progress"
	StageRepaired   = "repaired"
	StageScrap      = "scrap"
)

// OrderedStages is the board column order.
var OrderedStages = []string{
	StageNew,
	StageInProgress,
	StageRepaired,
	StageScrap,
}

// Terminal stages: a request never leaves these through normal flow.
var FinalStages = []string{
	StageRepaired,
	StageScrap,
}

func IsValidStage(code string) bool {
	for _, s := range OrderedStages {
		if s == code {
			return true
		}
	}
	return false
}

func IsFinalStage(code string) bool {
	for _, s := range FinalStages {
		if s == code {
			return true
		}
	}
	return false
}

// Request types.
const (
	RequestTypeCorrective = "corrective"
	RequestTypePreventive = "preventive"
)

// User roles.
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleTechnician = "technician"
	RoleRequester  = "requester"
)

// Equipment categories.
const (
	CategoryMachinery   = "machinery"
	CategoryElectrical  = "electrical"
	CategoryHVAC        = "hvac"
	CategoryPlumbing    = "plumbing"
	CategoryITEquipment = "it_equipment"
	CategoryVehicles    = "vehicles"
	CategorySafety      = "safety"
	CategoryOther       = "other"
)

var EquipmentCategories = []string{
	CategoryMachinery,
	CategoryElectrical,
	CategoryHVAC,
	CategoryPlumbing,
	CategoryITEquipment,
	CategoryVehicles,
	CategorySafety,
	CategoryOther,
}

func IsValidCategory(code string) bool {
	for _, c := range EquipmentCategories {
		if c == code {
			return true
		}
	}
	return false
}

// DateLayout is the day-granularity wire format for scheduled/purchase dates.
const DateLayout = "2006-01-02"
