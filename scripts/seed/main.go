package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sociafeed/sociafeed-backend/auth"
	"github.com/sociafeed/sociafeed-backend/model"
	"github.com/sociafeed/sociafeed-backend/store"
	"github.com/sociafeed/sociafeed-backend/utils"
	"github.com/sociafeed/sociafeed-backend/utils/dotenv"
	. "github.com/sociafeed/sociafeed-backend/utils/log"
)

// Seeds the database with starter accounts, a few posts and follow
// edges, and creates the unique indexes the resolvers rely on. Safe to
// re-run: it exits early when the user collection is not empty.
func main() {
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := createIndexes(ctx, db); err != nil {
		panic(err)
	}

	count, err := db.Collection(store.UserCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		panic(err)
	}
	if count > 0 {
		LogV2.Infof("user collection already has %d documents, skipping seed", count)
		return
	}

	stores := store.NewMongoStores(db)

	seedUsers := []struct {
		name, username, email, bio, imgUrl string
	}{
		{"Budi Santoso", "budisantoso", "budi@mail.com", "Just an ordinary person who loves to laugh", "https://randomuser.me/api/portraits/men/1.jpg"},
		{"Siti Aminah", "sitiaminah", "siti@mail.com", "Travel enthusiast", "https://randomuser.me/api/portraits/women/1.jpg"},
		{"Agus Wijaya", "aguswijaya", "agus@mail.com", "Foodie", "https://randomuser.me/api/portraits/men/2.jpg"},
		{"Dewi Lestari", "dewilestari", "dewi@mail.com", "Technology lover", "https://randomuser.me/api/portraits/women/2.jpg"},
		{"Rudi Hartono", "rudihartono", "rudi@mail.com", "Amateur photographer", "https://randomuser.me/api/portraits/men/3.jpg"},
	}

	users := make([]model.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		digest, err := auth.HashPassword(su.username + "123")
		if err != nil {
			panic(err)
		}
		user := model.User{
			Name:     su.name,
			Username: su.username,
			Email:    su.email,
			Password: digest,
			Bio:      su.bio,
			ImgUrl:   su.imgUrl,
		}
		id, err := stores.Users.Insert(ctx, &user)
		if err != nil {
			panic(err)
		}
		user.Id = id
		users = append(users, user)
		LogV2.Infof("seeded user %s", user.Username)
	}

	now := time.Now()
	for i, user := range users {
		post := model.Post{
			Content:   "Hello from " + user.Name,
			Tags:      []string{"intro"},
			ImgUrl:    "https://picsum.photos/seed/" + user.Username + "/600",
			AuthorId:  user.Id,
			Comments:  []model.Comment{},
			Likes:     []model.Like{},
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
			UpdatedAt: now.Add(time.Duration(i) * time.Minute),
		}
		if _, err := stores.Posts.Insert(ctx, &post); err != nil {
			panic(err)
		}
	}

	// everyone follows the first user
	for _, user := range users[1:] {
		if _, err := stores.Follows.Insert(ctx, &model.Follow{
			FollowingId: users[0].Id,
			FollowerId:  user.Id,
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			panic(err)
		}
	}

	LogV2.Info("seed complete")
}

func createIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(store.UserCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(store.FollowCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "followerId", Value: 1}, {Key: "followingId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
