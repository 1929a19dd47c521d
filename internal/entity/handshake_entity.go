package entity

// HandshakeEntry stages the retrieval context of an in-flight answer until the
// client echoes the rendered answer back in the second-phase call.
type HandshakeEntry struct {
	Context  string       `json:"context"`
	Query    string       `json:"query"`
	UserInfo *UserProfile `json:"user_info,omitempty"`
}
