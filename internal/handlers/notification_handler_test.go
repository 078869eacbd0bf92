package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/skillsync/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type notificationFixture struct {
	e       *echo.Echo
	handler *NotificationHandler
	users   *fakeUserRepo
	notifs  *fakeNotificationRepo
	alice   *models.User
	bob     *models.User
}

func newNotificationFixture(t *testing.T) *notificationFixture {
	t.Helper()
	users := &fakeUserRepo{}
	notifs := &fakeNotificationRepo{}

	alice := &models.User{Username: "alice", Email: "alice@example.com", Photo: "https://img.example.com/alice.png"}
	bob := &models.User{Username: "bob", Email: "bob@example.com"}
	assert.NoError(t, users.CreateUser(context.Background(), alice))
	assert.NoError(t, users.CreateUser(context.Background(), bob))

	return &notificationFixture{
		e:       echo.New(),
		handler: NewNotificationHandler(notifs, users),
		users:   users,
		notifs:  notifs,
		alice:   alice,
		bob:     bob,
	}
}

func (f *notificationFixture) notify(t *testing.T, recipient, sender *models.User, typ, message string) *models.Notification {
	t.Helper()
	n := &models.Notification{
		UserID:          recipient.ID.Hex(),
		SenderID:        sender.ID.Hex(),
		Type:            typ,
		Message:         message,
		RelatedEntityID: primitive.NewObjectID().Hex(),
	}
	assert.NoError(t, f.notifs.CreateNotification(context.Background(), n))
	return n
}

func TestGetNotificationsMostRecentFirst(t *testing.T) {
	f := newNotificationFixture(t)
	f.notify(t, f.alice, f.bob, "comment", "commented on your post")
	f.notify(t, f.alice, f.bob, "like", "liked your post")
	f.notify(t, f.bob, f.alice, "follow", "started following you")

	c, rec := newTestContext(f.e, http.MethodGet, "/api/notifications", nil)
	asUser(c, f.alice)
	assert.NoError(t, f.handler.GetNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var dtos []models.NotificationDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dtos))
	assert.Len(t, dtos, 2)
	assert.Equal(t, "like", dtos[0].Type)
	assert.Equal(t, "comment", dtos[1].Type)
	assert.Equal(t, "bob", dtos[0].SenderName)
}

func TestGetUnreadNotificationsFiltersRead(t *testing.T) {
	f := newNotificationFixture(t)
	read := f.notify(t, f.alice, f.bob, "comment", "commented on your post")
	f.notify(t, f.alice, f.bob, "like", "liked your post")
	assert.NoError(t, f.notifs.MarkAsRead(context.Background(), read.ID.Hex()))

	c, rec := newTestContext(f.e, http.MethodGet, "/api/notifications/unread", nil)
	asUser(c, f.alice)
	assert.NoError(t, f.handler.GetUnreadNotifications(c))

	var dtos []models.NotificationDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dtos))
	assert.Len(t, dtos, 1)
	assert.Equal(t, "like", dtos[0].Type)
	assert.False(t, dtos[0].Read)
}

func TestGetUnreadCount(t *testing.T) {
	f := newNotificationFixture(t)
	f.notify(t, f.alice, f.bob, "comment", "commented on your post")
	f.notify(t, f.alice, f.bob, "like", "liked your post")
	f.notify(t, f.bob, f.alice, "follow", "started following you")

	c, rec := newTestContext(f.e, http.MethodGet, "/api/notifications/unread-count", nil)
	asUser(c, f.alice)
	assert.NoError(t, f.handler.GetUnreadCount(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2\n", rec.Body.String())
}

func TestMarkAsRead(t *testing.T) {
	f := newNotificationFixture(t)
	n := f.notify(t, f.alice, f.bob, "comment", "commented on your post")

	c, rec := newTestContext(f.e, http.MethodPut, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(n.ID.Hex())
	asUser(c, f.alice)

	assert.NoError(t, f.handler.MarkAsRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var dto models.NotificationDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.True(t, dto.Read)

	stored, err := f.notifs.GetNotificationByID(context.Background(), n.ID.Hex())
	assert.NoError(t, err)
	assert.True(t, stored.Read)
}

func TestMarkAsReadNotFound(t *testing.T) {
	f := newNotificationFixture(t)

	c, rec := newTestContext(f.e, http.MethodPut, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(primitive.NewObjectID().Hex())
	asUser(c, f.alice)

	err := f.handler.MarkAsRead(c)
	assert.Equal(t, http.StatusNotFound, httpStatus(err, rec))
}

func TestMarkAllAsReadOnlyAffectsCaller(t *testing.T) {
	f := newNotificationFixture(t)
	f.notify(t, f.alice, f.bob, "comment", "commented on your post")
	f.notify(t, f.alice, f.bob, "like", "liked your post")
	f.notify(t, f.bob, f.alice, "follow", "started following you")

	c, rec := newTestContext(f.e, http.MethodPut, "/api/notifications/read-all", nil)
	asUser(c, f.alice)
	assert.NoError(t, f.handler.MarkAllAsRead(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	aliceUnread, err := f.notifs.CountUnread(context.Background(), f.alice.ID.Hex())
	assert.NoError(t, err)
	assert.Zero(t, aliceUnread)

	bobUnread, err := f.notifs.CountUnread(context.Background(), f.bob.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), bobUnread)
}

func TestNotificationDTOMissingSenderOmitsSenderFields(t *testing.T) {
	f := newNotificationFixture(t)
	n := &models.Notification{
		UserID:   f.alice.ID.Hex(),
		SenderID: primitive.NewObjectID().Hex(),
		Type:     "comment",
		Message:  "commented on your post",
	}
	assert.NoError(t, f.notifs.CreateNotification(context.Background(), n))

	c, rec := newTestContext(f.e, http.MethodGet, "/api/notifications", nil)
	asUser(c, f.alice)
	assert.NoError(t, f.handler.GetNotifications(c))

	var dtos []models.NotificationDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dtos))
	assert.Len(t, dtos, 1)
	assert.Empty(t, dtos[0].SenderName)
	assert.Empty(t, dtos[0].SenderPhoto)
	assert.Equal(t, "commented on your post", dtos[0].Message)
}
