package resolver

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sociafeed/sociafeed-backend/auth"
	"github.com/sociafeed/sociafeed-backend/model"
	Logger "github.com/sociafeed/sociafeed-backend/utils/log"
)

// Authenticate resolves the caller's identity from the Authorization
// header of the underlying request. The token is treated as an opaque
// reference: the user record is re-fetched on every call so that
// profile edits are visible immediately and deleted accounts lose
// access. Every failure mode collapses into ErrUnauthorized.
func (r *Resolver) Authenticate(ctx context.Context) (*model.Identity, error) {
	gc, err := GetGinContextFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}

	header := gc.GetHeader("Authorization")
	if header == "" {
		return nil, ErrUnauthorized
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, ErrUnauthorized
	}

	claims, err := auth.VerifyToken(parts[1])
	if err != nil {
		Logger.LogV2.Debugf("token rejected: %s", err)
		return nil, ErrUnauthorized
	}

	id, err := primitive.ObjectIDFromHex(claims.Id)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := r.Users.FindById(ctx, id)
	if err != nil {
		Logger.LogV2.Errorf("auth user lookup failed: %s", err)
		return nil, ErrUnauthorized
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	return &model.Identity{
		Id:       user.Id,
		Username: user.Username,
		ImgUrl:   user.ImgUrl,
	}, nil
}
