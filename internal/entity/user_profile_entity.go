package entity

// UserProfile is the identity subset fetched from the external identity
// provider. Used for observability metadata only; absence never blocks the
// pipeline.
type UserProfile struct {
	Id        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email,omitempty"`
}
