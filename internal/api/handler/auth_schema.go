package handler

// --- Request types ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required,mobile"`
	Password string `json:"password" validate:"required,min=4,max=20"`
	RoleID   string `json:"roleId"   validate:"omitempty,uuid4"`
}

// loginRequest carries no validate tags: a missing field must produce the
// same generic invalid-credentials response as a wrong password, not a
// field-level validation error.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Response types ---

// userProjection is the post-signup view of an account. It never carries the
// password hash, status, or verification flags.
type userProjection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type signupResponse struct {
	User    userProjection `json:"user"`
	Message string         `json:"message"`
}

// sessionUser is the client-visible session object, rebuilt from Claims on
// every session read.
type sessionUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"email_verified"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  sessionUser `json:"user"`
}

type sessionResponse struct {
	User sessionUser `json:"user"`
}

type roleItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type listRolesResponse struct {
	Roles   []roleItem `json:"roles"`
	Message string     `json:"message"`
}
