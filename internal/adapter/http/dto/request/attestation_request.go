package request

type AttestationRequest struct {
	Type     bool   `json:"type"`
	Name     string `json:"name" binding:"required"`
	ITP      string `json:"itp" binding:"required"`
	IF       string `json:"if" binding:"required"`
	Identity string `json:"identity" binding:"required"`
	Activity string `json:"activity" binding:"required"`
	Address  string `json:"address" binding:"required"`
}
