package resolver

import "errors"

// Domain errors surfaced to the client. Messages are part of the API
// contract with the mobile app, which matches on them, so they are
// defined once here rather than inline.
var (
	ErrUnauthorized = errors.New("UNAUTHORIZED")

	// validation
	ErrContentRequired  = errors.New("Content is required")
	ErrImageUrlRequired = errors.New("Image URL is required")
	ErrUsernameRequired = errors.New("Username is required")
	ErrEmailRequired    = errors.New("Email is required")
	ErrPasswordRequired = errors.New("Password is required")
	ErrPasswordTooShort = errors.New("Password length must be at least 5 characters")
	ErrInvalidEmail     = errors.New("Invalid email format")
	ErrUserIdRequired   = errors.New("Id user required")

	// conflict
	ErrUsernameTaken    = errors.New("Username is already exists")
	ErrEmailTaken       = errors.New("Email is already exists")
	ErrAlreadyLiked     = errors.New("You have already liked this post")
	ErrAlreadyFollowing = errors.New("You are already following this user.")

	// not found
	ErrPostNotFound   = errors.New("Post not found")
	ErrUserNotFound   = errors.New("User not found")
	ErrNoUserFound    = errors.New("No user found")
	ErrNotLiked       = errors.New("You have not liked this post")
	ErrFollowNotFound = errors.New("Follow not found")

	// credential miss and password mismatch share one message on
	// purpose, so login cannot be used to enumerate accounts
	ErrInvalidLogin = errors.New("Invalid email or password")

	// opaque store failures; details go to the server log only
	ErrFetchPosts = errors.New("Could not fetch posts")
	ErrFetchPost  = errors.New("Could not fetch post")
	ErrCreatePost = errors.New("Could not create post")
	ErrAddComment = errors.New("Could not add comment")
	ErrAddLike    = errors.New("Could not add like")
	ErrRemoveLike = errors.New("Could not remove like")
)
