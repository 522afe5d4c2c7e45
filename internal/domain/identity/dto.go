package identity

type IdentityResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func ToIdentityResponse(i Identity) IdentityResponse {
	return IdentityResponse{
		ID:       i.ID,
		Name:     i.Name,
		Username: i.Username,
		Role:     string(i.Role),
	}
}
