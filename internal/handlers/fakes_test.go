package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/skillsync/backend/internal/models"
	"github.com/skillsync/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the handler tests. List methods return
// documents in reverse insertion order, matching the created_at descending
// sort of the Mongo implementations.

type fakeUserRepo struct {
	users []models.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	if user.Followers == nil {
		user.Followers = []string{}
	}
	if user.Following == nil {
		user.Following = []string{}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID.Hex() == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	if err == repositories.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *fakeUserRepo) GetUsers(_ context.Context) ([]models.User, error) {
	return append([]models.User(nil), r.users...), nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeUserRepo) Follow(_ context.Context, followerID, followingID string) error {
	var follower, following *models.User
	for i := range r.users {
		switch r.users[i].ID.Hex() {
		case followerID:
			follower = &r.users[i]
		case followingID:
			following = &r.users[i]
		}
	}
	if follower == nil || following == nil {
		return repositories.ErrNotFound
	}
	follower.Following = appendUnique(follower.Following, followingID)
	following.Followers = appendUnique(following.Followers, followerID)
	return nil
}

func (r *fakeUserRepo) Unfollow(_ context.Context, followerID, followingID string) error {
	var follower, following *models.User
	for i := range r.users {
		switch r.users[i].ID.Hex() {
		case followerID:
			follower = &r.users[i]
		case followingID:
			following = &r.users[i]
		}
	}
	if follower == nil || following == nil {
		return repositories.ErrNotFound
	}
	follower.Following = remove(follower.Following, followingID)
	following.Followers = remove(following.Followers, followerID)
	return nil
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}

func remove(list []string, v string) []string {
	out := list[:0]
	for _, s := range list {
		if s != v {
			out = append(out, s)
		}
	}
	return out
}

type fakeCommentRepo struct {
	comments []models.Comment
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = nowStamp()
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(_ context.Context, id string) (*models.Comment, error) {
	for i := range r.comments {
		if r.comments[i].ID.Hex() == id {
			c := r.comments[i]
			return &c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeCommentRepo) GetCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
	var out []models.Comment
	for i := len(r.comments) - 1; i >= 0; i-- {
		if r.comments[i].PostID == postID {
			out = append(out, r.comments[i])
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) UpdateComment(_ context.Context, comment *models.Comment) error {
	for i := range r.comments {
		if r.comments[i].ID == comment.ID {
			r.comments[i].Content = comment.Content
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, id string) error {
	for i := range r.comments {
		if r.comments[i].ID.Hex() == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeNotificationRepo struct {
	notifications []models.Notification
}

func (r *fakeNotificationRepo) CreateNotification(_ context.Context, n *models.Notification) error {
	n.ID = primitive.NewObjectID()
	n.Read = false
	n.CreatedAt = nowStamp()
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeNotificationRepo) GetNotificationByID(_ context.Context, id string) (*models.Notification, error) {
	for i := range r.notifications {
		if r.notifications[i].ID.Hex() == id {
			n := r.notifications[i]
			return &n, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeNotificationRepo) GetByRecipientID(_ context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].UserID == userID {
			out = append(out, r.notifications[i])
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) GetUnreadByRecipientID(_ context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].UserID == userID && !r.notifications[i].Read {
			out = append(out, r.notifications[i])
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, userID string) (int64, error) {
	var count int64
	for i := range r.notifications {
		if r.notifications[i].UserID == userID && !r.notifications[i].Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAsRead(_ context.Context, id string) error {
	for i := range r.notifications {
		if r.notifications[i].ID.Hex() == id {
			r.notifications[i].Read = true
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakeNotificationRepo) MarkAllAsRead(_ context.Context, userID string) error {
	for i := range r.notifications {
		if r.notifications[i].UserID == userID {
			r.notifications[i].Read = true
		}
	}
	return nil
}

type fakePostRepo struct {
	posts []models.Post
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.CreatedAt = nowStamp()
	post.UpdatedAt = post.CreatedAt
	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}
	r.posts = append(r.posts, *post)
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == id {
			p := r.posts[i]
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePostRepo) GetPostsByUserID(_ context.Context, userID string, skip, limit int64) ([]models.Post, error) {
	var out []models.Post
	for i := len(r.posts) - 1; i >= 0; i-- {
		if r.posts[i].UserID == userID {
			out = append(out, r.posts[i])
		}
	}
	return page(out, skip, limit), nil
}

func (r *fakePostRepo) GetPostsByUserIDs(_ context.Context, userIDs []string, skip, limit int64) ([]models.Post, error) {
	members := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		members[id] = true
	}
	var out []models.Post
	for i := len(r.posts) - 1; i >= 0; i-- {
		if members[r.posts[i].UserID] {
			out = append(out, r.posts[i])
		}
	}
	return page(out, skip, limit), nil
}

func (r *fakePostRepo) GetAllPosts(_ context.Context, skip, limit int64) ([]models.Post, error) {
	var out []models.Post
	for i := len(r.posts) - 1; i >= 0; i-- {
		out = append(out, r.posts[i])
	}
	return page(out, skip, limit), nil
}

func page(posts []models.Post, skip, limit int64) []models.Post {
	if skip >= int64(len(posts)) {
		return []models.Post{}
	}
	posts = posts[skip:]
	if limit > 0 && limit < int64(len(posts)) {
		posts = posts[:limit]
	}
	return posts
}

func (r *fakePostRepo) UpdatePost(_ context.Context, id string, post *models.Post) error {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == id {
			r.posts[i].Content = post.Content
			r.posts[i].ImageURLs = post.ImageURLs
			r.posts[i].VideoURLs = post.VideoURLs
			r.posts[i].UpdatedAt = nowStamp()
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakePostRepo) DeletePost(_ context.Context, id string) error {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakePostRepo) LikePost(_ context.Context, postID, userID string) error {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == postID {
			r.posts[i].LikedBy = appendUnique(r.posts[i].LikedBy, userID)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakePostRepo) UnlikePost(_ context.Context, postID, userID string) error {
	for i := range r.posts {
		if r.posts[i].ID.Hex() == postID {
			r.posts[i].LikedBy = remove(r.posts[i].LikedBy, userID)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakePlanRepo struct {
	plans []models.LearningPlan
}

func (r *fakePlanRepo) CreatePlan(_ context.Context, plan *models.LearningPlan) error {
	plan.ID = primitive.NewObjectID()
	plan.CreatedAt = nowStamp()
	plan.UpdatedAt = plan.CreatedAt
	r.plans = append(r.plans, *plan)
	return nil
}

func (r *fakePlanRepo) GetPlanByID(_ context.Context, id string) (*models.LearningPlan, error) {
	for i := range r.plans {
		if r.plans[i].ID.Hex() == id {
			p := r.plans[i]
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePlanRepo) GetPlansByUserID(_ context.Context, userID string) ([]models.LearningPlan, error) {
	var out []models.LearningPlan
	for i := len(r.plans) - 1; i >= 0; i-- {
		if r.plans[i].UserID == userID {
			out = append(out, r.plans[i])
		}
	}
	return out, nil
}

func (r *fakePlanRepo) UpdatePlan(_ context.Context, id string, plan *models.LearningPlan) error {
	for i := range r.plans {
		if r.plans[i].ID.Hex() == id {
			r.plans[i].Name = plan.Name
			r.plans[i].Description = plan.Description
			r.plans[i].Topics = plan.Topics
			r.plans[i].Resources = plan.Resources
			r.plans[i].UpdatedAt = nowStamp()
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakePlanRepo) DeletePlan(_ context.Context, id string) error {
	for i := range r.plans {
		if r.plans[i].ID.Hex() == id {
			r.plans = append(r.plans[:i], r.plans[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// newTestContext builds an echo context for a JSON request against the given
// target, returning the recorder capturing the response.
func newTestContext(e *echo.Echo, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asUser stores the JWT claims the auth middleware would have extracted.
func asUser(c echo.Context, user *models.User) {
	c.Set("user", &models.JwtCustomClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: user.Email,
		},
	})
}

// nowStamp is the timestamp the fakes assign on insert. Ordering in list
// methods comes from insertion order, so wall-clock resolution is irrelevant.
func nowStamp() time.Time {
	return time.Now()
}

// httpStatus extracts the status code from a handler error, or the recorded
// status when the handler succeeded.
func httpStatus(err error, rec *httptest.ResponseRecorder) int {
	if err == nil {
		return rec.Code
	}
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return http.StatusInternalServerError
}
