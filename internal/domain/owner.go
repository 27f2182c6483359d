package domain

// OwnerRef is the denormalized creator/updater snapshot stored on
// user-owned resources. Ownership checks compare UserID.
type OwnerRef struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ActorRef records who performed an append-only action (daily comments,
// meeting notes) together with the role they held at the time.
type ActorRef struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName,omitempty"`
	Role     string `json:"role,omitempty"`
}
