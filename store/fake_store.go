package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sociafeed/sociafeed-backend/model"
)

// NewFakeStores returns in-memory implementations of the three
// collection gateways, for resolver tests that should not depend on a
// running MongoDB. Behavior mirrors the Mongo implementations: absent
// documents are (nil, nil), the feed join attaches the author with the
// password stripped, and the feed is sorted newest first.
func NewFakeStores() *Stores {
	data := &fakeData{}
	return &Stores{
		Users:   &FakeUserStore{data},
		Posts:   &FakePostStore{data},
		Follows: &FakeFollowStore{data},
	}
}

type fakeData struct {
	mu      sync.Mutex
	users   []model.User
	posts   []model.Post
	follows []model.Follow
}

type FakeUserStore struct {
	data *fakeData
}

type FakePostStore struct {
	data *fakeData
}

type FakeFollowStore struct {
	data *fakeData
}

func (s *FakeUserStore) FindById(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for _, user := range s.data.users {
		if user.Id == id {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *FakeUserStore) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for _, user := range s.data.users {
		if user.Username == identifier || user.Email == identifier {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *FakeUserStore) FindTaken(ctx context.Context, username string, email string) (*model.User, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for _, user := range s.data.users {
		if user.Username == username || user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *FakeUserStore) Search(ctx context.Context, identifier string) ([]model.User, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	needle := strings.ToLower(identifier)
	matches := []model.User{}
	for _, user := range s.data.users {
		if strings.Contains(strings.ToLower(user.Name), needle) ||
			strings.Contains(strings.ToLower(user.Username), needle) {
			matches = append(matches, user)
		}
	}
	return matches, nil
}

func (s *FakeUserStore) FindAll(ctx context.Context) ([]model.User, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return append([]model.User{}, s.data.users...), nil
}

func (s *FakeUserStore) Insert(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	s.data.users = append(s.data.users, *user)
	return user.Id, nil
}

func (s *FakeUserStore) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (bool, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.users {
		if s.data.users[i].Id != id {
			continue
		}
		user := &s.data.users[i]
		for key, value := range fields {
			str, _ := value.(string)
			switch key {
			case "name":
				user.Name = str
			case "username":
				user.Username = str
			case "email":
				user.Email = str
			case "bio":
				user.Bio = str
			case "imgUrl":
				user.ImgUrl = str
			}
		}
		return true, nil
	}
	return false, nil
}

func (s *FakePostStore) FeedWithAuthors(ctx context.Context) ([]model.Post, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	feed := append([]model.Post{}, s.data.posts...)
	for i := range feed {
		feed[i].Author = s.data.authorOf(feed[i].AuthorId)
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	return feed, nil
}

func (d *fakeData) authorOf(id primitive.ObjectID) *model.Author {
	for _, user := range d.users {
		if user.Id == id {
			return &model.Author{
				Id:       user.Id,
				Name:     user.Name,
				Username: user.Username,
				ImgUrl:   user.ImgUrl,
				Email:    user.Email,
			}
		}
	}
	return nil
}

func (s *FakePostStore) FindByIdWithAuthor(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for _, post := range s.data.posts {
		if post.Id == id {
			p := post
			p.Author = s.data.authorOf(p.AuthorId)
			return &p, nil
		}
	}
	return nil, nil
}

func (s *FakePostStore) FindById(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for _, post := range s.data.posts {
		if post.Id == id {
			p := post
			return &p, nil
		}
	}
	return nil, nil
}

func (s *FakePostStore) FindByAuthor(ctx context.Context, authorId primitive.ObjectID) ([]model.Post, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	posts := []model.Post{}
	for _, post := range s.data.posts {
		if post.AuthorId == authorId {
			posts = append(posts, post)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (s *FakePostStore) Insert(ctx context.Context, post *model.Post) (primitive.ObjectID, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if post.Id.IsZero() {
		post.Id = primitive.NewObjectID()
	}
	s.data.posts = append(s.data.posts, *post)
	return post.Id, nil
}

func (s *FakePostStore) PushComment(ctx context.Context, postId primitive.ObjectID, comment model.Comment) (bool, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.posts {
		if s.data.posts[i].Id == postId {
			s.data.posts[i].Comments = append(s.data.posts[i].Comments, comment)
			return true, nil
		}
	}
	return false, nil
}

func (s *FakePostStore) PushLike(ctx context.Context, postId primitive.ObjectID, like model.Like) (bool, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.posts {
		if s.data.posts[i].Id == postId {
			s.data.posts[i].Likes = append(s.data.posts[i].Likes, like)
			return true, nil
		}
	}
	return false, nil
}

func (s *FakePostStore) PullLike(ctx context.Context, postId primitive.ObjectID, username string) (bool, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i := range s.data.posts {
		if s.data.posts[i].Id != postId {
			continue
		}
		likes := s.data.posts[i].Likes
		for j := range likes {
			if likes[j].Username == username {
				s.data.posts[i].Likes = append(likes[:j:j], likes[j+1:]...)
				return true, nil
			}
		}
		return false, nil
	}
	return false, nil
}

func (s *FakeFollowStore) Find(ctx context.Context, followerId primitive.ObjectID, followingId primitive.ObjectID) (*model.Follow, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for _, follow := range s.data.follows {
		if follow.FollowerId == followerId && follow.FollowingId == followingId {
			f := follow
			return &f, nil
		}
	}
	return nil, nil
}

func (s *FakeFollowStore) FindAll(ctx context.Context) ([]model.Follow, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return append([]model.Follow{}, s.data.follows...), nil
}

func (s *FakeFollowStore) Insert(ctx context.Context, follow *model.Follow) (primitive.ObjectID, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if follow.Id.IsZero() {
		follow.Id = primitive.NewObjectID()
	}
	s.data.follows = append(s.data.follows, *follow)
	return follow.Id, nil
}

func (s *FakeFollowStore) Delete(ctx context.Context, followerId primitive.ObjectID, followingId primitive.ObjectID) (bool, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i, follow := range s.data.follows {
		if follow.FollowerId == followerId && follow.FollowingId == followingId {
			s.data.follows = append(s.data.follows[:i:i], s.data.follows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *FakeFollowStore) Followers(ctx context.Context, userId primitive.ObjectID) ([]model.UserSummary, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	profiles := []model.UserSummary{}
	for _, follow := range s.data.follows {
		if follow.FollowingId == userId {
			if summary := s.data.summaryOf(follow.FollowerId); summary != nil {
				profiles = append(profiles, *summary)
			}
		}
	}
	return profiles, nil
}

func (s *FakeFollowStore) Following(ctx context.Context, userId primitive.ObjectID) ([]model.UserSummary, error) {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	profiles := []model.UserSummary{}
	for _, follow := range s.data.follows {
		if follow.FollowerId == userId {
			if summary := s.data.summaryOf(follow.FollowingId); summary != nil {
				profiles = append(profiles, *summary)
			}
		}
	}
	return profiles, nil
}

func (d *fakeData) summaryOf(id primitive.ObjectID) *model.UserSummary {
	for _, user := range d.users {
		if user.Id == id {
			return &model.UserSummary{
				Id:       user.Id,
				Username: user.Username,
				Bio:      user.Bio,
				ImgUrl:   user.ImgUrl,
			}
		}
	}
	return nil
}
