package dto

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=huurder verhuurder beoordelaar beheerder"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active suspended"`
}

type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
