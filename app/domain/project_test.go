package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identity-dashboard/app/domain"
)

func TestProject_NewProject(t *testing.T) {
	tests := []struct {
		name        string
		projectName string
		domainID    string
		wantErr     bool
	}{
		{
			name:        "valid project",
			projectName: "engineering",
			domainID:    "default",
			wantErr:     false,
		},
		{
			name:        "empty name",
			projectName: "",
			domainID:    "default",
			wantErr:     true,
		},
		{
			name:        "whitespace only name",
			projectName: "   ",
			domainID:    "default",
			wantErr:     true,
		},
		{
			name:        "missing domain",
			projectName: "engineering",
			domainID:    "",
			wantErr:     true,
		},
		{
			name:        "name too long",
			projectName: "this-project-name-is-way-too-long-to-be-accepted-by-the-identity-service",
			domainID:    "default",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project, err := domain.NewProject(tt.projectName, "a description", tt.domainID, true)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, project)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, project)
			assert.Equal(t, tt.projectName, project.Name)
			assert.Equal(t, tt.domainID, project.DomainID)
			assert.True(t, project.Enabled)
		})
	}
}

func TestProject_DomainName(t *testing.T) {
	project := &domain.Project{ID: "1", Name: "engineering", DomainID: "d1"}

	lookup := map[string]string{"d1": "test_domain"}
	assert.Equal(t, "test_domain", project.DomainName(lookup))

	// Unknown domains fall back to the raw id.
	assert.Equal(t, "d1", project.DomainName(map[string]string{}))
}

func TestRoleAssignment_Grouping(t *testing.T) {
	assignments := []domain.RoleAssignment{
		{ProjectID: "p1", UserID: "1", RoleID: "1"},
		{ProjectID: "p1", UserID: "1", RoleID: "2"},
		{ProjectID: "p1", UserID: "2", RoleID: "2"},
		{ProjectID: "p1", GroupID: "1", RoleID: "1"},
		{ProjectID: "p1", GroupID: "2", RoleID: "2"},
	}

	userRoles := domain.UserRolesByID(assignments)
	require.Len(t, userRoles, 2)
	assert.ElementsMatch(t, []string{"1", "2"}, userRoles["1"])
	assert.ElementsMatch(t, []string{"2"}, userRoles["2"])

	groupRoles := domain.GroupRolesByID(assignments)
	require.Len(t, groupRoles, 2)
	assert.ElementsMatch(t, []string{"1"}, groupRoles["1"])
	assert.ElementsMatch(t, []string{"2"}, groupRoles["2"])
}
