package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"wave/internal/group"
)

type fakeGroupService struct {
	create      func(creatorID string, in group.CreateInput) (group.Group, error)
	listForUser func(userID string) ([]group.Group, error)
	addMember   func(actorID, groupID, userID string) error
}

func (f *fakeGroupService) Create(_ context.Context, creatorID string, in group.CreateInput) (group.Group, error) {
	return f.create(creatorID, in)
}

func (f *fakeGroupService) ListForUser(_ context.Context, userID string) ([]group.Group, error) {
	return f.listForUser(userID)
}

func (f *fakeGroupService) AddMember(_ context.Context, actorID, groupID, userID string) error {
	return f.addMember(actorID, groupID, userID)
}

func TestCreateGroupRequiresName(t *testing.T) {
	h := &GroupHandler{Svc: &fakeGroupService{}}
	rec := httptest.NewRecorder()

	h.Create(rec, authedRequest(t, http.MethodPost, "/api/groups", `{"members":["u2"]}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"invalid field: Name"}`, rec.Body.String())
}

func TestCreateGroup(t *testing.T) {
	svc := &fakeGroupService{
		create: func(creatorID string, in group.CreateInput) (group.Group, error) {
			require.Equal(t, testUserID, creatorID)
			require.Equal(t, "trip", in.Name)
			require.Equal(t, []string{"u2", "u3"}, in.Members)
			return group.Group{ID: "g1", Name: in.Name}, nil
		},
	}
	h := &GroupHandler{Svc: svc}
	rec := httptest.NewRecorder()

	h.Create(rec, authedRequest(t, http.MethodPost, "/api/groups",
		`{"name":"trip","members":["u2","u3"]}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "Group created")
}

func TestListMyGroups(t *testing.T) {
	svc := &fakeGroupService{
		listForUser: func(userID string) ([]group.Group, error) {
			require.Equal(t, testUserID, userID)
			return []group.Group{{ID: "g1"}}, nil
		},
	}
	h := &GroupHandler{Svc: svc}
	rec := httptest.NewRecorder()

	h.ListMine(rec, authedRequest(t, http.MethodGet, "/api/groups", ""))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAddMemberRequiresMembership(t *testing.T) {
	svc := &fakeGroupService{
		addMember: func(_, _, _ string) error { return group.ErrNotMember },
	}
	h := &GroupHandler{Svc: svc}
	rec := httptest.NewRecorder()

	req := withURLParam(authedRequest(t, http.MethodPost, "/api/groups/g1/members", `{"user_id":"u2"}`), "id", "g1")
	h.AddMember(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAddMemberMissingGroup(t *testing.T) {
	svc := &fakeGroupService{
		addMember: func(_, _, _ string) error { return group.ErrNotFound },
	}
	h := &GroupHandler{Svc: svc}
	rec := httptest.NewRecorder()

	req := withURLParam(authedRequest(t, http.MethodPost, "/api/groups/g1/members", `{"user_id":"u2"}`), "id", "g1")
	h.AddMember(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddMember(t *testing.T) {
	svc := &fakeGroupService{
		addMember: func(actorID, groupID, userID string) error {
			require.Equal(t, testUserID, actorID)
			require.Equal(t, "g1", groupID)
			require.Equal(t, "u2", userID)
			return nil
		},
	}
	h := &GroupHandler{Svc: svc}
	rec := httptest.NewRecorder()

	req := withURLParam(authedRequest(t, http.MethodPost, "/api/groups/g1/members", `{"user_id":"u2"}`), "id", "g1")
	h.AddMember(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Member added"}`, rec.Body.String())
}
