package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"wave/internal/user"
)

type fakeUserService struct {
	create     func(userID, email string, in user.CreateInput) (user.User, bool, error)
	getByEmail func(email string) (user.User, error)
	update     func(userID string, in user.UpdateInput) (user.User, error)
	bumpStreak func(userID string) (user.User, error)
	search     func(actorID, q string) ([]user.Profile, error)
}

func (f *fakeUserService) Create(_ context.Context, userID, email string, in user.CreateInput) (user.User, bool, error) {
	return f.create(userID, email, in)
}

func (f *fakeUserService) GetByEmail(_ context.Context, email string) (user.User, error) {
	return f.getByEmail(email)
}

func (f *fakeUserService) Update(_ context.Context, userID string, in user.UpdateInput) (user.User, error) {
	return f.update(userID, in)
}

func (f *fakeUserService) BumpStreak(_ context.Context, userID string) (user.User, error) {
	return f.bumpStreak(userID)
}

func (f *fakeUserService) Search(_ context.Context, actorID, q string) ([]user.Profile, error) {
	return f.search(actorID, q)
}

func TestCreateUserNew(t *testing.T) {
	svc := &fakeUserService{
		create: func(userID, email string, in user.CreateInput) (user.User, bool, error) {
			require.Equal(t, testUserID, userID)
			require.Equal(t, "me@example.com", email)
			require.Equal(t, "ana", in.Username)
			return user.User{ID: userID, Username: in.Username}, true, nil
		},
	}
	h := &UserHandler{Svc: svc}
	rec := httptest.NewRecorder()

	h.Create(rec, authedRequest(t, http.MethodPost, "/api/users", `{"username":" ana "}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "User created")
}

func TestCreateUserIdempotent(t *testing.T) {
	svc := &fakeUserService{
		create: func(userID, _ string, _ user.CreateInput) (user.User, bool, error) {
			return user.User{ID: userID}, false, nil
		},
	}
	h := &UserHandler{Svc: svc}
	rec := httptest.NewRecorder()

	h.Create(rec, authedRequest(t, http.MethodPost, "/api/users", `{"username":"ana"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "User already exists")
}

func TestGetUserByEmailNotFound(t *testing.T) {
	svc := &fakeUserService{
		getByEmail: func(string) (user.User, error) { return user.User{}, user.ErrNotFound },
	}
	h := &UserHandler{Svc: svc}
	rec := httptest.NewRecorder()

	req := withURLParam(authedRequest(t, http.MethodGet, "/api/users/x@example.com", ""), "email", "x@example.com")
	h.GetByEmail(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateUserPartial(t *testing.T) {
	svc := &fakeUserService{
		update: func(userID string, in user.UpdateInput) (user.User, error) {
			require.Equal(t, testUserID, userID)
			require.NotNil(t, in.Bio)
			require.Equal(t, "new bio", *in.Bio)
			require.Nil(t, in.AvatarURL)
			require.Nil(t, in.FunnyTags)
			return user.User{ID: userID, Bio: "new bio"}, nil
		},
	}
	h := &UserHandler{Svc: svc}
	rec := httptest.NewRecorder()

	h.Update(rec, authedRequest(t, http.MethodPut, "/api/users/update", `{"bio":"new bio"}`))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBumpStreak(t *testing.T) {
	svc := &fakeUserService{
		bumpStreak: func(userID string) (user.User, error) {
			require.Equal(t, testUserID, userID)
			return user.User{ID: userID, StreakCount: 3}, nil
		},
	}
	h := &UserHandler{Svc: svc}
	rec := httptest.NewRecorder()

	h.BumpStreak(rec, authedRequest(t, http.MethodPut, "/api/users/streak", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Streak updated")
}

func TestSearchUsersRequiresQuery(t *testing.T) {
	h := &UserHandler{Svc: &fakeUserService{}}
	rec := httptest.NewRecorder()

	h.Search(rec, authedRequest(t, http.MethodGet, "/api/users/search?q=%20", ""))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchUsers(t *testing.T) {
	svc := &fakeUserService{
		search: func(actorID, q string) ([]user.Profile, error) {
			require.Equal(t, testUserID, actorID)
			require.Equal(t, "ana", q)
			return []user.Profile{{ID: "u2", Username: "ana"}}, nil
		},
	}
	h := &UserHandler{Svc: svc}
	rec := httptest.NewRecorder()

	h.Search(rec, authedRequest(t, http.MethodGet, "/api/users/search?q=ana", ""))

	require.Equal(t, http.StatusOK, rec.Code)
}
