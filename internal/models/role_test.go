package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoleFlag(t *testing.T) {
	role, err := ParseRoleFlag("0")
	require.NoError(t, err)
	assert.Equal(t, RoleEmployer, role)
	assert.True(t, role.IsEmployer())

	role, err = ParseRoleFlag("1")
	require.NoError(t, err)
	assert.Equal(t, RoleEmployee, role)
	assert.False(t, role.IsEmployer())

	// missing flag defaults to employee
	role, err = ParseRoleFlag("")
	require.NoError(t, err)
	assert.Equal(t, RoleEmployee, role)

	_, err = ParseRoleFlag("2")
	require.Error(t, err)
}

func TestRoleStorageBoundary(t *testing.T) {
	v, err := RoleEmployer.Value()
	require.NoError(t, err)
	assert.Equal(t, "0", v)

	var r Role
	require.NoError(t, r.Scan("1"))
	assert.Equal(t, RoleEmployee, r)

	require.NoError(t, r.Scan([]byte("0")))
	assert.Equal(t, RoleEmployer, r)

	require.Error(t, r.Scan("x"))
}

func TestConnectionStatusFor(t *testing.T) {
	pending := &Connection{Connection1ID: 1, Connection2ID: 2, Status: StatePending}
	assert.Equal(t, StatusPendingSent, pending.StatusFor(1))
	assert.Equal(t, StatusPendingReceived, pending.StatusFor(2))

	accepted := &Connection{Connection1ID: 1, Connection2ID: 2, Status: StateAccepted}
	assert.Equal(t, StatusConnected, accepted.StatusFor(1))
	assert.Equal(t, StatusConnected, accepted.StatusFor(2))
}
