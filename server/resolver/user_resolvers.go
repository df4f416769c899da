package resolver

import (
	"context"
	"regexp"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sociafeed/sociafeed-backend/auth"
	"github.com/sociafeed/sociafeed-backend/model"
	Logger "github.com/sociafeed/sociafeed-backend/utils/log"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (r *Resolver) GetAllUser(ctx context.Context) ([]model.User, error) {
	if _, err := r.Authenticate(ctx); err != nil {
		return nil, err
	}
	return r.Users.FindAll(ctx)
}

// GetUserById composes a profile aggregate: the user record, both
// sides of the follow graph, and the user's posts newest first. A nil
// id means "my own profile" and falls back to the caller's identity.
func (r *Resolver) GetUserById(ctx context.Context, id *primitive.ObjectID) (*model.UserDetail, error) {
	identity, err := r.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	subject := identity.Id
	if id != nil {
		subject = *id
	}

	user, err := r.Users.FindById(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	followers, err := r.Follows.Followers(ctx, subject)
	if err != nil {
		return nil, err
	}
	following, err := r.Follows.Following(ctx, subject)
	if err != nil {
		return nil, err
	}
	posts, err := r.Posts.FindByAuthor(ctx, subject)
	if err != nil {
		return nil, err
	}

	detail := &model.UserDetail{}
	if err := copier.Copy(detail, user); err != nil {
		return nil, err
	}
	detail.Posts = posts
	detail.Followers = followers
	detail.Following = following
	return detail, nil
}

// GetUserByNameOrUsername searches by case-insensitive substring on
// name or username. Zero matches is an error, not an empty list; the
// client relies on the message to render its empty state.
func (r *Resolver) GetUserByNameOrUsername(ctx context.Context, identifier string) ([]model.UserSummary, error) {
	if _, err := r.Authenticate(ctx); err != nil {
		return nil, err
	}

	users, err := r.Users.Search(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrNoUserFound
	}

	summaries := make([]model.UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, model.UserSummary{
			Id:       user.Id,
			Username: user.Username,
			Bio:      user.Bio,
			ImgUrl:   user.ImgUrl,
		})
	}
	return summaries, nil
}

// CreateAccount registers a new user. It never logs the user in; the
// client follows up with a login mutation.
func (r *Resolver) CreateAccount(ctx context.Context, input model.CreateUserInput) (*model.Message, error) {
	if input.Username == "" {
		return nil, ErrUsernameRequired
	}
	if input.Email == "" {
		return nil, ErrEmailRequired
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}
	if len(input.Password) < 5 {
		return nil, ErrPasswordTooShort
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, ErrInvalidEmail
	}

	taken, err := r.Users.FindTaken(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if taken != nil {
		if taken.Username == input.Username {
			return nil, ErrUsernameTaken
		}
		return nil, ErrEmailTaken
	}

	digest, err := auth.HashPassword(input.Password)
	if err != nil {
		Logger.LogV2.Errorf("hash password failed: %s", err)
		return nil, err
	}

	if _, err := r.Users.Insert(ctx, &model.User{
		Name:     input.Name,
		Username: input.Username,
		Email:    input.Email,
		Password: digest,
	}); err != nil {
		return nil, err
	}

	return &model.Message{Message: "Success create account"}, nil
}

// Login verifies credentials against the stored digest and issues an
// access token. An unknown identifier and a wrong password produce the
// identical error.
func (r *Resolver) Login(ctx context.Context, input model.LoginInput) (*model.LoginResult, error) {
	user, err := r.Users.FindByIdentifier(ctx, input.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.ComparePassword(user.Password, input.Password) {
		return nil, ErrInvalidLogin
	}

	token, err := auth.SignToken(user.Id.Hex(), user.Username)
	if err != nil {
		Logger.LogV2.Errorf("sign token failed: %s", err)
		return nil, err
	}

	return &model.LoginResult{
		AccessToken: token,
		Username:    user.Username,
		ImgUrl:      user.ImgUrl,
	}, nil
}

// EditUser applies a partial update to the caller's own record; only
// fields present in the input are written.
func (r *Resolver) EditUser(ctx context.Context, input model.EditUserInput) (*model.Message, error) {
	identity, err := r.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Username != nil {
		fields["username"] = *input.Username
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Bio != nil {
		fields["bio"] = *input.Bio
	}
	if input.ImgUrl != nil {
		fields["imgUrl"] = *input.ImgUrl
	}

	if len(fields) > 0 {
		matched, err := r.Users.Update(ctx, identity.Id, fields)
		if err != nil {
			return nil, err
		}
		if !matched {
			// the record vanished between auth and update
			return nil, ErrUserNotFound
		}
	}

	return &model.Message{Message: "Update profile success"}, nil
}
