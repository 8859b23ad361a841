package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesFor(t *testing.T) {
	staff := CapabilitiesFor(RoleStaff)
	assert.False(t, staff.CanCreateTicket)
	assert.Equal(t, ScopeAll, staff.TicketScope)

	customer := CapabilitiesFor(RoleCustomer)
	assert.True(t, customer.CanCreateTicket)
	assert.Equal(t, ScopeOwn, customer.TicketScope)
}

func TestRoleFromStaffFlag(t *testing.T) {
	assert.Equal(t, RoleStaff, RoleFromStaffFlag(true))
	assert.Equal(t, RoleCustomer, RoleFromStaffFlag(false))
	assert.True(t, RoleStaff.IsStaff())
	assert.False(t, RoleCustomer.IsStaff())
}
