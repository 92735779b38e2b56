package model

import (
	"strings"

	"agendalab/shared/constant"
)

// CanManageAll reports whether the role may mutate any booking.
func CanManageAll(role string) bool {
	return role == constant.RoleAdmin || role == constant.RoleCoordenacao
}

// IsOwner reports whether the requester is the professor who owns the
// booking. The professor column stores a display name (possibly prefixed,
// e.g. "Prof. Maria Silva"), so ownership is a substring match on the
// requester's name.
func IsOwner(role, name string, booking Booking) bool {
	if role != constant.RoleProfessor || name == constant.Empty {
		return false
	}

	return strings.Contains(booking.Professor, name)
}

// CanModify is the authorization predicate for Edit and Cancel.
func CanModify(role, name string, booking Booking) bool {
	return CanManageAll(role) || IsOwner(role, name, booking)
}
