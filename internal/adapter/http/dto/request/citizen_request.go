package request

type CitizenRequest struct {
	FullName string `json:"full_name" binding:"required"`
	CIN      string `json:"cin" binding:"required"`
	Address  string `json:"address" binding:"required"`
}
