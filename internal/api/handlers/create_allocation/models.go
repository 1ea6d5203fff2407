package create_allocation

import (
	"time"

	createAllocation "github.com/m04kA/SPA-BedService/internal/usecase/create_allocation"
)

// CreateAllocationRequest тело запроса на создание аллокации
type CreateAllocationRequest struct {
	CustomerID int64   `json:"customerId"`
	BedID      int64   `json:"bedId"`
	PackageID  int64   `json:"packageId"`
	StartTime  string  `json:"startTime"`
	Notes      *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAllocationRequest) ToUseCaseRequest() (*createAllocation.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}
	return &createAllocation.Request{
		CustomerID: r.CustomerID,
		BedID:      r.BedID,
		PackageID:  r.PackageID,
		StartTime:  start,
		Notes:      r.Notes,
	}, nil
}
