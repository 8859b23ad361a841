// Package authorization defines account roles and the capabilities the API
// layer derives from them before dispatching to use cases.
package authorization

type Role string

const (
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsStaff() bool {
	return r == RoleStaff
}

func (r Role) IsValid() bool {
	return r == RoleStaff || r == RoleCustomer
}

// RoleFromStaffFlag maps the persisted is_admin flag to a role.
func RoleFromStaffFlag(isStaff bool) Role {
	if isStaff {
		return RoleStaff
	}
	return RoleCustomer
}

// TicketScope determines which tickets an account can see.
type TicketScope string

const (
	// ScopeAll covers every ticket in the system.
	ScopeAll TicketScope = "all"
	// ScopeOwn covers only tickets the account created.
	ScopeOwn TicketScope = "own"
)

// Capabilities is the role-aware authorization descriptor resolved once per
// request and consulted uniformly by handlers. Staff see all tickets but
// cannot open them; customers open tickets scoped to themselves.
type Capabilities struct {
	CanCreateTicket bool
	TicketScope     TicketScope
}

// CapabilitiesFor returns the capability descriptor for a role.
func CapabilitiesFor(role Role) Capabilities {
	if role.IsStaff() {
		return Capabilities{
			CanCreateTicket: false,
			TicketScope:     ScopeAll,
		}
	}
	return Capabilities{
		CanCreateTicket: true,
		TicketScope:     ScopeOwn,
	}
}
