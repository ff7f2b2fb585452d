package response_models

type AuthStatusResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	UserName        string `json:"userName,omitempty"`
}
