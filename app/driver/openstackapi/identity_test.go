package openstackapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identity-dashboard/app/domain"
	"identity-dashboard/app/port"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewIdentityService_InvalidURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "empty", baseURL: ""},
		{name: "no scheme", baseURL: "keystone.local/v3"},
		{name: "no host", baseURL: "http://"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewIdentityService(tt.baseURL, "token", 20, "member", testLogger())
			require.Error(t, err)
			assert.Nil(t, svc)
		})
	}
}

func TestIdentityService_ProjectList_Pagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/projects", r.URL.Path)
		assert.Equal(t, "service-token", r.Header.Get("X-Auth-Token"))
		// One extra record past the page reveals whether more pages exist.
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		assert.Equal(t, "d1", r.URL.Query().Get("domain_id"))
		assert.Equal(t, "t0", r.URL.Query().Get("marker"))
		assert.Equal(t, "test", r.URL.Query().Get("name"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"projects": []map[string]interface{}{
				{"id": "t1", "name": "test_tenant", "domain_id": "d1", "enabled": true},
				{"id": "t2", "name": "disabled_tenant", "domain_id": "d1", "enabled": false},
				{"id": "t3", "name": "overflow_tenant", "domain_id": "d1", "enabled": true},
			},
		})
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "service-token", 2, "member", testLogger())
	require.NoError(t, err)

	projects, more, err := svc.ProjectList(context.Background(), port.ProjectListOpts{
		Admin:    true,
		DomainID: "d1",
		Marker:   "t0",
		Filters:  map[string]string{"name": "test"},
	})
	require.NoError(t, err)
	assert.True(t, more)
	require.Len(t, projects, 2)
	assert.Equal(t, "test_tenant", projects[0].Name)
	assert.False(t, projects[1].Enabled)
}

func TestIdentityService_ProjectList_MemberScoping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"projects": []map[string]interface{}{
				{"id": "t1", "name": "test_tenant", "domain_id": "d1", "enabled": true},
			},
		})
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "member", testLogger())
	require.NoError(t, err)

	projects, more, err := svc.ProjectList(context.Background(), port.ProjectListOpts{
		Admin:  false,
		UserID: "u1",
	})
	require.NoError(t, err)
	assert.False(t, more)
	assert.Len(t, projects, 1)
}

func TestIdentityService_ProjectGet_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "Could not find project"}}`, http.StatusNotFound)
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "member", testLogger())
	require.NoError(t, err)

	project, err := svc.ProjectGet(context.Background(), "missing", true)
	require.Error(t, err)
	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domain.ErrProjectNotFound))

	var backendErr *domain.BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, "identity", backendErr.Service)
}

func TestIdentityService_NotFoundByResource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "not found"}}`, http.StatusNotFound)
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "member", testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.UserList(ctx, "d1")
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))

	_, err = svc.GroupList(ctx, "d1")
	assert.True(t, errors.Is(err, domain.ErrGroupNotFound))

	_, err = svc.DomainGet(ctx, "d1")
	assert.True(t, errors.Is(err, domain.ErrDomainNotFound))

	// Grant paths name project, user and role; the role segment decides.
	err = svc.AddProjectUserRole(ctx, "t1", "u1", "r1")
	assert.True(t, errors.Is(err, domain.ErrRoleNotFound))
}

func TestIdentityService_ProjectCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/projects", r.URL.Path)

		var body struct {
			Project map[string]interface{} `json:"project"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "new_tenant", body.Project["name"])
		assert.Equal(t, "d1", body.Project["domain_id"])
		assert.Equal(t, true, body.Project["enabled"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"project": map[string]interface{}{
				"id": "t9", "name": "new_tenant", "domain_id": "d1", "enabled": true,
			},
		})
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "member", testLogger())
	require.NoError(t, err)

	created, err := svc.ProjectCreate(context.Background(), domain.Project{
		Name:     "new_tenant",
		DomainID: "d1",
		Enabled:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "t9", created.ID)
}

func TestIdentityService_ProjectUpdate_Conflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v3/projects/t1", r.URL.Path)
		http.Error(w, `{"error": {"message": "Duplicate project name"}}`, http.StatusConflict)
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "member", testLogger())
	require.NoError(t, err)

	updated, err := svc.ProjectUpdate(context.Background(), domain.Project{ID: "t1", Name: "dup"})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestIdentityService_DomainLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/domains", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"domains": []map[string]interface{}{
				{"id": "default", "name": "Default", "enabled": true},
				{"id": "d1", "name": "test_domain", "enabled": true},
			},
		})
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "member", testLogger())
	require.NoError(t, err)

	lookup, err := svc.DomainLookup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"default": "Default", "d1": "test_domain"}, lookup)
}

func TestIdentityService_DefaultRole(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"roles": []map[string]interface{}{
				{"id": "r2", "name": "admin"},
				{"id": "r1", "name": "member"},
			},
		})
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "member", testLogger())
	require.NoError(t, err)

	role, err := svc.DefaultRole(context.Background())
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, "r1", role.ID)
}

func TestIdentityService_DefaultRole_Missing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"roles": []map[string]interface{}{{"id": "r2", "name": "admin"}},
		})
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "_member_", testLogger())
	require.NoError(t, err)

	role, err := svc.DefaultRole(context.Background())
	require.NoError(t, err)
	assert.Nil(t, role)
}

func TestIdentityService_RoleAssignmentList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/role_assignments", r.URL.Path)
		assert.Equal(t, "t1", r.URL.Query().Get("scope.project.id"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"role_assignments": []map[string]interface{}{
				{"user": map[string]string{"id": "u1"}, "role": map[string]string{"id": "r1", "name": "member"}},
				{"group": map[string]string{"id": "g1"}, "role": map[string]string{"id": "r2", "name": "admin"}},
			},
		})
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "member", testLogger())
	require.NoError(t, err)

	assignments, err := svc.RoleAssignmentList(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, "u1", assignments[0].UserID)
	assert.Equal(t, "r1", assignments[0].RoleID)
	assert.Equal(t, "g1", assignments[1].GroupID)
}

func TestIdentityService_AddProjectUserRole(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "member", testLogger())
	require.NoError(t, err)

	require.NoError(t, svc.AddProjectUserRole(context.Background(), "t1", "u2", "r1"))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/v3/projects/t1/users/u2/roles/r1", gotPath)
}

func TestIdentityService_RemoveProjectGroupRole_Forbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		http.Error(w, `{"error": {"message": "forbidden"}}`, http.StatusForbidden)
	}))
	defer server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "member", testLogger())
	require.NoError(t, err)

	err = svc.RemoveProjectGroupRole(context.Background(), "t1", "g1", "r2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestIdentityService_BackendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc, err := NewIdentityService(server.URL, "token", 20, "member", testLogger())
	require.NoError(t, err)

	_, _, err = svc.ProjectList(context.Background(), port.ProjectListOpts{Admin: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrServiceUnavailable))
}
