package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatus(t *testing.T) {
	t.Run("allowed changes", func(t *testing.T) {
		require.True(t, RequestStatusApproved.IsAllowChange(RequestStatusInProgress))
		require.True(t, RequestStatusInProgress.IsAllowChange(RequestStatusComplete))
		require.True(t, RequestStatusRequested.IsAllowChange(RequestStatusCancelled))

		require.False(t, RequestStatusRequested.IsAllowChange(RequestStatusInProgress))
		require.False(t, RequestStatusApproved.IsAllowChange(RequestStatusComplete))
		require.False(t, RequestStatusComplete.IsAllowChange(RequestStatusCancelled))
		require.False(t, RequestStatusRejected.IsAllowChange(RequestStatusRequested))
	})

	t.Run("terminal statuses", func(t *testing.T) {
		require.True(t, RequestStatusComplete.IsTerminal())
		require.True(t, RequestStatusRejected.IsTerminal())
		require.True(t, RequestStatusCancelled.IsTerminal())
		require.False(t, RequestStatusRequested.IsTerminal())
		require.False(t, RequestStatusInProgress.IsTerminal())
	})

	t.Run("pending role follows the chain", func(t *testing.T) {
		require.Equal(t, ApprovalRoleManager, RequestStatusRequested.PendingRole())
		require.Equal(t, ApprovalRoleDirector, RequestStatusManagerApproved.PendingRole())
		require.Equal(t, ApprovalRoleITManager, RequestStatusDirectorApproved.PendingRole())
		require.Equal(t, ApprovalRoleITDirector, RequestStatusITManagerApproved.PendingRole())
		require.Equal(t, ApprovalRole(""), RequestStatusApproved.PendingRole())
		require.Equal(t, ApprovalRole(""), RequestStatusRejected.PendingRole())
	})
}

func TestNextApprovalStatus(t *testing.T) {
	t.Run("full approval path", func(t *testing.T) {
		status := RequestStatusRequested
		for _, role := range ApprovalChain {
			next, ok := NextApprovalStatus(status, role, ADecisionApproved)
			require.True(t, ok, "no transition for %s/%s", status, role)
			status = next
		}
		require.Equal(t, RequestStatusApproved, status)
	})

	t.Run("rejection at any stage is final", func(t *testing.T) {
		cases := map[RequestStatus]ApprovalRole{
			RequestStatusRequested:         ApprovalRoleManager,
			RequestStatusManagerApproved:   ApprovalRoleDirector,
			RequestStatusDirectorApproved:  ApprovalRoleITManager,
			RequestStatusITManagerApproved: ApprovalRoleITDirector,
		}
		for status, role := range cases {
			next, ok := NextApprovalStatus(status, role, ADecisionRejected)
			require.True(t, ok)
			require.Equal(t, RequestStatusRejected, next)
		}
	})

	t.Run("out of order decision is rejected", func(t *testing.T) {
		_, ok := NextApprovalStatus(RequestStatusRequested, ApprovalRoleDirector, ADecisionApproved)
		require.False(t, ok)

		_, ok = NextApprovalStatus(RequestStatusApproved, ApprovalRoleITDirector, ADecisionApproved)
		require.False(t, ok)

		_, ok = NextApprovalStatus(RequestStatusRejected, ApprovalRoleManager, ADecisionApproved)
		require.False(t, ok)
	})
}

func TestApprovalRole(t *testing.T) {
	t.Run("next role", func(t *testing.T) {
		require.Equal(t, ApprovalRoleDirector, ApprovalRoleManager.NextRole())
		require.Equal(t, ApprovalRoleITManager, ApprovalRoleDirector.NextRole())
		require.Equal(t, ApprovalRoleITDirector, ApprovalRoleITManager.NextRole())
		require.Equal(t, ApprovalRole(""), ApprovalRoleITDirector.NextRole())
	})

	t.Run("it roles", func(t *testing.T) {
		require.False(t, ApprovalRoleManager.IsITRole())
		require.False(t, ApprovalRoleDirector.IsITRole())
		require.True(t, ApprovalRoleITManager.IsITRole())
		require.True(t, ApprovalRoleITDirector.IsITRole())
	})
}

func TestPositionCanDecide(t *testing.T) {
	t.Run("business chain", func(t *testing.T) {
		require.True(t, PositionManager.CanDecide(ApprovalRoleManager, false))
		require.True(t, PositionDirector.CanDecide(ApprovalRoleDirector, false))

		require.False(t, PositionStaff.CanDecide(ApprovalRoleManager, false))
		require.False(t, PositionDirector.CanDecide(ApprovalRoleManager, false))
		require.False(t, PositionManager.CanDecide(ApprovalRoleManager, true))
	})

	t.Run("it chain", func(t *testing.T) {
		require.True(t, PositionManager.CanDecide(ApprovalRoleITManager, true))
		require.True(t, PositionDirector.CanDecide(ApprovalRoleITDirector, true))

		require.False(t, PositionManager.CanDecide(ApprovalRoleITManager, false))
		require.False(t, PositionDirector.CanDecide(ApprovalRoleITDirector, false))
		require.False(t, PositionHead.CanDecide(ApprovalRoleITManager, true))
	})
}

func TestIsITStaff(t *testing.T) {
	require.True(t, IsITStaff(ITDepartmentID, 0, 0))
	require.True(t, IsITStaff(0, ITDivisionCompetencyID, 0))
	require.True(t, IsITStaff(0, 0, ITSectionCompetencyID))
	require.False(t, IsITStaff(5, 12, 44))

	t.Run("scope helper", func(t *testing.T) {
		user := UserScope{DepartmentID: ITDepartmentID}
		require.True(t, user.IsITStaff())
		require.False(t, UserScope{DepartmentID: 3}.IsITStaff())
	})
}
