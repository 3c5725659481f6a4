package response

import "facility-booking/internal/usecase/commands"

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	return LoginResponse{
		Message:     "login successful",
		AccessToken: r.Token,
		UserID:      r.UserID,
		FullName:    r.FullName,
		Role:        string(r.Role),
	}
}
