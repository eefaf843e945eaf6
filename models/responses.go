package models

// Response is the envelope shared by every JSON response of the API.
//
//	{"success": true, "data": {...}}
//	{"success": false, "error": "Post not found"}
//	{"success": true, "message": "Logged out successfully"}
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// UserData wraps a single user in the "data" member.
type UserData struct {
	User User `json:"user"`
}

// PostData wraps a single post in the "data" member.
type PostData struct {
	Post Post `json:"post"`
}

// PostsData wraps a post listing in the "data" member.
type PostsData struct {
	Posts []Post `json:"posts"`
}

// AuthorPostsData is the payload of the public per-author listing.
type AuthorPostsData struct {
	User  PublicUser   `json:"user"`
	Posts []PublicPost `json:"posts"`
}
