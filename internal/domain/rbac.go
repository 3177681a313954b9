package domain

// EnforceRequest asks whether a staff member may perform action on resource
// inside a company.
type EnforceRequest struct {
	StaffID   string `json:"staff_id" binding:"required"`
	CompanyID string `json:"company_id" binding:"required"`
	Resource  string `json:"resource" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
