package dto

type ApplicationStatusRequest struct {
	Status   string `json:"status"`
	Feedback string `json:"feedback"`
}

type ApplicationStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Today    int64 `json:"today"`
}
