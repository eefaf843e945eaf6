package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/user/profile.
// Absent fields stay nil and are not modified.
type UpdateProfileRequest struct {
	Bio    *string `json:"bio,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// CreatePostRequest is the body of POST /api/posts.
//
// There is intentionally no UserID field: the owner always comes from the
// session, and any "userId" sent by the client is dropped by the decoder.
type CreatePostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CoverImage string `json:"coverImage,omitempty"`
	IsDraft    *bool  `json:"isDraft,omitempty"`
}

// UpdatePostRequest is the body of PUT /api/posts/{id}. Every field is optional.
type UpdatePostRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	CoverImage *string `json:"coverImage,omitempty"`
	IsDraft    *bool   `json:"isDraft,omitempty"`
}
