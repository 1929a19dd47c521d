package dto

// UserResponse is the identity proxy result for GET /api/user.
type UserResponse struct {
	Id        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
