package directory

import (
	"github.com/peopleops/lifecycle-service/internal/ports"
)

// AccountStatusPendingOffboarding is the downstream account status set when
// an offboarding lifecycle completes.
const AccountStatusPendingOffboarding = "PENDING_OFFBOARDING"

// ToEmployeeRecord converts a downstream EmployeeDTO to the directory record
// consumed by the application layer.
func ToEmployeeRecord(dto *EmployeeDTO) ports.EmployeeRecord {
	return ports.EmployeeRecord{
		ID:         dto.ID,
		Name:       dto.Name,
		Email:      dto.Email,
		Department: dto.Department,
		RoleLevel:  dto.RoleLevel,
		Active:     dto.Active,
	}
}

// ToPendingOffboardingRequest builds the account status update sent when an
// employee leaves. The account is deactivated in the same call.
func ToPendingOffboardingRequest() AccountStatusRequestDTO {
	return AccountStatusRequestDTO{
		AccountStatus: AccountStatusPendingOffboarding,
		Active:        false,
	}
}
