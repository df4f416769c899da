package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sociafeed/sociafeed-backend/auth"
	"github.com/sociafeed/sociafeed-backend/model"
)

func TestCreateAccount(t *testing.T) {
	r, _ := newTestResolver()

	msg, err := r.CreateAccount(context.Background(), model.CreateUserInput{
		Name:     "Budi Santoso",
		Username: "budisantoso",
		Email:    "budi@mail.com",
		Password: "abcde",
	})
	assert.Nil(t, err)
	assert.Equal(t, "Success create account", msg.Message)

	user, err := r.Users.FindByIdentifier(context.Background(), "budisantoso")
	assert.Nil(t, err)
	assert.NotNil(t, user)
	// the digest is stored, never the plaintext
	assert.NotEqual(t, "abcde", user.Password)
	assert.True(t, auth.ComparePassword(user.Password, "abcde"))
}

func TestCreateAccount_RequiredFields(t *testing.T) {
	r, _ := newTestResolver()
	ctx := context.Background()

	_, err := r.CreateAccount(ctx, model.CreateUserInput{Email: "a@mail.com", Password: "abcde"})
	assert.Equal(t, ErrUsernameRequired, err)

	_, err = r.CreateAccount(ctx, model.CreateUserInput{Username: "a", Password: "abcde"})
	assert.Equal(t, ErrEmailRequired, err)

	_, err = r.CreateAccount(ctx, model.CreateUserInput{Username: "a", Email: "a@mail.com"})
	assert.Equal(t, ErrPasswordRequired, err)
}

func TestCreateAccount_PasswordLength(t *testing.T) {
	r, _ := newTestResolver()
	ctx := context.Background()

	_, err := r.CreateAccount(ctx, model.CreateUserInput{
		Username: "budisantoso",
		Email:    "budi@mail.com",
		Password: "abcd",
	})
	assert.Equal(t, ErrPasswordTooShort, err)

	_, err = r.CreateAccount(ctx, model.CreateUserInput{
		Username: "budisantoso",
		Email:    "budi@mail.com",
		Password: "abcde",
	})
	assert.Nil(t, err)
}

func TestCreateAccount_EmailFormat(t *testing.T) {
	r, _ := newTestResolver()

	_, err := r.CreateAccount(context.Background(), model.CreateUserInput{
		Username: "budisantoso",
		Email:    "not-an-email",
		Password: "abcde",
	})
	assert.Equal(t, ErrInvalidEmail, err)
}

func TestCreateAccount_Conflicts(t *testing.T) {
	r, _ := newTestResolver()
	ctx := context.Background()

	_, err := r.CreateAccount(ctx, model.CreateUserInput{
		Username: "budisantoso",
		Email:    "budi@mail.com",
		Password: "abcde",
	})
	assert.Nil(t, err)

	_, err = r.CreateAccount(ctx, model.CreateUserInput{
		Username: "budisantoso",
		Email:    "other@mail.com",
		Password: "abcde",
	})
	assert.Equal(t, ErrUsernameTaken, err)

	_, err = r.CreateAccount(ctx, model.CreateUserInput{
		Username: "other",
		Email:    "budi@mail.com",
		Password: "abcde",
	})
	assert.Equal(t, ErrEmailTaken, err)
}

func TestLogin(t *testing.T) {
	r, _ := newTestResolver()
	ctx := context.Background()

	_, err := r.CreateAccount(ctx, model.CreateUserInput{
		Username: "budisantoso",
		Email:    "budi@mail.com",
		Password: "abcde",
	})
	assert.Nil(t, err)

	result, err := r.Login(ctx, model.LoginInput{Identifier: "budisantoso", Password: "abcde"})
	assert.Nil(t, err)
	assert.Equal(t, "budisantoso", result.Username)
	assert.NotEmpty(t, result.AccessToken)

	claims, err := auth.VerifyToken(result.AccessToken)
	assert.Nil(t, err)
	assert.Equal(t, "budisantoso", claims.Username)

	// email works as the identifier too
	result, err = r.Login(ctx, model.LoginInput{Identifier: "budi@mail.com", Password: "abcde"})
	assert.Nil(t, err)
	assert.Equal(t, "budisantoso", result.Username)
}

// An unknown identifier and a wrong password must be
// indistinguishable to the caller.
func TestLogin_NoCredentialEnumeration(t *testing.T) {
	r, _ := newTestResolver()
	ctx := context.Background()

	_, err := r.CreateAccount(ctx, model.CreateUserInput{
		Username: "budisantoso",
		Email:    "budi@mail.com",
		Password: "abcde",
	})
	assert.Nil(t, err)

	_, errUnknown := r.Login(ctx, model.LoginInput{Identifier: "nosuchuser", Password: "abcde"})
	_, errWrongPw := r.Login(ctx, model.LoginInput{Identifier: "budisantoso", Password: "wrong"})

	assert.Equal(t, ErrInvalidLogin, errUnknown)
	assert.Equal(t, ErrInvalidLogin, errWrongPw)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestGetAllUser(t *testing.T) {
	r, _ := newTestResolver()
	_, ctx := seedUser(t, r, "budisantoso")
	seedUser(t, r, "sitiaminah")

	users, err := r.GetAllUser(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(users))

	_, err = r.GetAllUser(requestContext(""))
	assert.Equal(t, ErrUnauthorized, err)
}

func TestGetUserById_ComposesProfile(t *testing.T) {
	r, _ := newTestResolver()
	u1, ctx1 := seedUser(t, r, "budisantoso")
	u2, ctx2 := seedUser(t, r, "sitiaminah")
	u3, ctx3 := seedUser(t, r, "aguswijaya")

	// u2 and u3 follow u1; u1 follows u3
	_, err := r.CreateFollow(ctx2, u1.Id)
	assert.Nil(t, err)
	_, err = r.CreateFollow(ctx3, u1.Id)
	assert.Nil(t, err)
	_, err = r.CreateFollow(ctx1, u3.Id)
	assert.Nil(t, err)

	seedPost(t, r, ctx1, "older")
	time.Sleep(2 * time.Millisecond)
	newest := seedPost(t, r, ctx1, "newest")

	detail, err := r.GetUserById(ctx2, &u1.Id)
	assert.Nil(t, err)
	assert.Equal(t, u1.Id, detail.Id)
	assert.Equal(t, u1.Username, detail.Username)
	assert.Equal(t, u1.Email, detail.Email)
	assert.Equal(t, u1.Bio, detail.Bio)

	assert.Equal(t, 2, len(detail.Followers))
	assert.Equal(t, 1, len(detail.Following))
	assert.Equal(t, u2.Username, detail.Followers[0].Username)
	assert.Equal(t, u3.Username, detail.Following[0].Username)

	assert.Equal(t, 2, len(detail.Posts))
	assert.Equal(t, newest.Id, detail.Posts[0].Id)
}

func TestGetUserById_DefaultsToCaller(t *testing.T) {
	r, _ := newTestResolver()
	user, ctx := seedUser(t, r, "budisantoso")

	detail, err := r.GetUserById(ctx, nil)
	assert.Nil(t, err)
	assert.Equal(t, user.Id, detail.Id)
}

func TestGetUserById_NotFound(t *testing.T) {
	r, _ := newTestResolver()
	_, ctx := seedUser(t, r, "budisantoso")

	unknown := primitive.NewObjectID()
	_, err := r.GetUserById(ctx, &unknown)
	assert.Equal(t, ErrUserNotFound, err)
}

func TestGetUserByNameOrUsername(t *testing.T) {
	r, _ := newTestResolver()
	_, ctx := seedUser(t, r, "budisantoso")
	seedUser(t, r, "sitiaminah")

	// case-insensitive substring on username
	matches, err := r.GetUserByNameOrUsername(ctx, "SANTO")
	assert.Nil(t, err)
	assert.Equal(t, 1, len(matches))
	assert.Equal(t, "budisantoso", matches[0].Username)

	// substring on display name ("Test sitiaminah")
	matches, err = r.GetUserByNameOrUsername(ctx, "Test ")
	assert.Nil(t, err)
	assert.Equal(t, 2, len(matches))
}

func TestGetUserByNameOrUsername_NoMatch(t *testing.T) {
	r, _ := newTestResolver()
	_, ctx := seedUser(t, r, "budisantoso")

	_, err := r.GetUserByNameOrUsername(ctx, "zzzz")
	assert.Equal(t, ErrNoUserFound, err)
}

func TestEditUser_PartialUpdate(t *testing.T) {
	r, _ := newTestResolver()
	user, ctx := seedUser(t, r, "budisantoso")

	bio := "new bio"
	msg, err := r.EditUser(ctx, model.EditUserInput{Bio: &bio})
	assert.Nil(t, err)
	assert.Equal(t, "Update profile success", msg.Message)

	updated, err := r.Users.FindById(context.Background(), user.Id)
	assert.Nil(t, err)
	assert.Equal(t, "new bio", updated.Bio)
	// untouched fields keep their values
	assert.Equal(t, user.Name, updated.Name)
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, user.ImgUrl, updated.ImgUrl)
}

func TestEditUser_EmptyInput(t *testing.T) {
	r, _ := newTestResolver()
	_, ctx := seedUser(t, r, "budisantoso")

	msg, err := r.EditUser(ctx, model.EditUserInput{})
	assert.Nil(t, err)
	assert.Equal(t, "Update profile success", msg.Message)
}

func TestEditUser_Unauthorized(t *testing.T) {
	r, _ := newTestResolver()

	bio := "new bio"
	_, err := r.EditUser(requestContext(""), model.EditUserInput{Bio: &bio})
	assert.Equal(t, ErrUnauthorized, err)
}
