package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"identity-dashboard/app/domain"
	"identity-dashboard/app/port"
)

// MembershipUsecase manages per-project user and group role assignments for
// the membership workflow steps.
type MembershipUsecase struct {
	identity port.IdentityClient
	users    port.UserDirectory
	logger   *slog.Logger
}

// NewMembershipUsecase creates a new membership usecase. users is the
// directory the member pickers list from; it defaults to the identity client
// but may be backed by Kratos.
func NewMembershipUsecase(
	identity port.IdentityClient,
	users port.UserDirectory,
	logger *slog.Logger,
) *MembershipUsecase {
	return &MembershipUsecase{
		identity: identity,
		users:    users,
		logger:   logger.With("component", "membership_usecase"),
	}
}

// MembershipContext is everything the membership workflow steps need to
// render: the assignable directory plus, for updates, the current state.
type MembershipContext struct {
	DefaultRole *domain.Role
	Users       []domain.User
	Groups      []domain.Group
	Roles       []domain.Role

	// Current assignments, keyed by user/group id. Empty for the create
	// workflow.
	UserRoles  map[string][]string
	GroupRoles map[string][]string
}

// Context loads the membership picture for a domain. projectID is empty for
// the create workflow; when set, current assignments are included.
func (u *MembershipUsecase) Context(ctx context.Context, domainID, projectID string) (*MembershipContext, error) {
	role, err := u.identity.DefaultRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get default role: %w", err)
	}
	if role == nil {
		return nil, domain.ErrDefaultRole
	}

	users, err := u.users.UserList(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	roles, err := u.identity.RoleList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	groups, err := u.identity.GroupList(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	mc := &MembershipContext{
		DefaultRole: role,
		Users:       users,
		Groups:      groups,
		Roles:       roles,
		UserRoles:   map[string][]string{},
		GroupRoles:  map[string][]string{},
	}

	if projectID != "" {
		assignments, err := u.identity.RoleAssignmentList(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to list role assignments: %w", err)
		}
		mc.UserRoles = domain.UserRolesByID(assignments)
		mc.GroupRoles = domain.GroupRolesByID(assignments)
	}

	return mc, nil
}

// ReconcileResult reports what a reconciliation pass did.
type ReconcileResult struct {
	// SelfRemovalSkipped is set when the acting user tried to revoke one of
	// their own roles on the project; the revocation is skipped and the view
	// warns instead.
	SelfRemovalSkipped bool
	Errors             []error
}

// ReconcileUserRoles diffs the desired user/role matrix (role id -> user ids)
// against the project's current assignments, granting what is missing and
// revoking what is no longer wanted. Revocations of the acting user's own
// roles are skipped so admins cannot lock themselves out mid-session.
func (u *MembershipUsecase) ReconcileUserRoles(ctx context.Context, projectID, actorID string, desired map[string][]string) ReconcileResult {
	var result ReconcileResult

	assignments, err := u.identity.RoleAssignmentList(ctx, projectID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("failed to list role assignments: %w", err))
		return result
	}
	current := domain.UserRolesByID(assignments)
	wanted := invertRoleMatrix(desired)

	// Grants first, so a failed revocation never leaves a project without
	// the roles the admin just asked for.
	for userID, roleIDs := range wanted {
		for _, roleID := range roleIDs {
			if slices.Contains(current[userID], roleID) {
				continue
			}
			if err := u.identity.AddProjectUserRole(ctx, projectID, userID, roleID); err != nil {
				result.Errors = append(result.Errors,
					fmt.Errorf("failed to add user %s with role %s: %w", userID, roleID, err))
				return result
			}
		}
	}

	for userID, roleIDs := range current {
		for _, roleID := range roleIDs {
			if slices.Contains(wanted[userID], roleID) {
				continue
			}
			if userID == actorID {
				u.logger.Warn("skipping self role revocation", "project_id", projectID, "role_id", roleID)
				result.SelfRemovalSkipped = true
				continue
			}
			if err := u.identity.RemoveProjectUserRole(ctx, projectID, userID, roleID); err != nil {
				result.Errors = append(result.Errors,
					fmt.Errorf("failed to remove role %s from user %s: %w", roleID, userID, err))
				return result
			}
		}
	}

	return result
}

// ReconcileGroupRoles diffs the desired group/role matrix (role id -> group
// ids) against the project's effective group roles.
func (u *MembershipUsecase) ReconcileGroupRoles(ctx context.Context, projectID string, desired map[string][]string) []error {
	assignments, err := u.identity.RoleAssignmentList(ctx, projectID)
	if err != nil {
		return []error{fmt.Errorf("failed to list role assignments: %w", err)}
	}
	current := domain.GroupRolesByID(assignments)
	wanted := invertRoleMatrix(desired)

	for groupID, roleIDs := range wanted {
		for _, roleID := range roleIDs {
			if slices.Contains(current[groupID], roleID) {
				continue
			}
			if err := u.identity.AddProjectGroupRole(ctx, projectID, groupID, roleID); err != nil {
				return []error{fmt.Errorf("failed to add group %s with role %s: %w", groupID, roleID, err)}
			}
		}
	}

	// Revocations consult the group's effective roles: assignments can lag
	// behind inherited grants on some identity backends.
	for groupID := range current {
		roles, err := u.identity.RolesForGroup(ctx, groupID, projectID)
		if err != nil {
			return []error{fmt.Errorf("failed to get roles for group %s: %w", groupID, err)}
		}
		for _, role := range roles {
			if slices.Contains(wanted[groupID], role.ID) {
				continue
			}
			if err := u.identity.RemoveProjectGroupRole(ctx, projectID, groupID, role.ID); err != nil {
				return []error{fmt.Errorf("failed to remove role %s from group %s: %w", role.ID, groupID, err)}
			}
		}
	}

	return nil
}

// invertRoleMatrix turns role id -> member ids into member id -> role ids.
func invertRoleMatrix(byRole map[string][]string) map[string][]string {
	byMember := make(map[string][]string)
	for roleID, memberIDs := range byRole {
		for _, memberID := range memberIDs {
			byMember[memberID] = append(byMember[memberID], roleID)
		}
	}
	return byMember
}
