package api

// User is the account record returned by the API.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// Credentials authenticate a sign-in request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Auth is the payload returned when a session is created.
type Auth struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Payload is a flat JSON request body. Keys absent from the map are absent
// from the request.
type Payload map[string]string
