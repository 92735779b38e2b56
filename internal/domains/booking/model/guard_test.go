package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agendalab/internal/domains/booking/model"
	"agendalab/shared/constant"
)

func TestIsOwner(t *testing.T) {
	booking := model.Booking{Professor: "Prof. Maria Silva"}

	tests := []struct {
		name string
		role string
		user string
		want bool
	}{
		{
			name: "professor with substring-matching name",
			role: constant.RoleProfessor,
			user: "Maria",
			want: true,
		},
		{
			name: "professor with full matching name",
			role: constant.RoleProfessor,
			user: "Maria Silva",
			want: true,
		},
		{
			name: "professor with non-matching name",
			role: constant.RoleProfessor,
			user: "Bruno",
			want: false,
		},
		{
			name: "admin is never owner even with matching name",
			role: constant.RoleAdmin,
			user: "Maria",
			want: false,
		},
		{
			name: "coordenacao is never owner even with matching name",
			role: constant.RoleCoordenacao,
			user: "Maria",
			want: false,
		},
		{
			name: "empty name never matches",
			role: constant.RoleProfessor,
			user: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.IsOwner(tt.role, tt.user, booking))
		})
	}
}

func TestCanModify(t *testing.T) {
	booking := model.Booking{Professor: "Prof. Maria Silva"}

	assert.True(t, model.CanModify(constant.RoleAdmin, "someone else", booking))
	assert.True(t, model.CanModify(constant.RoleCoordenacao, "someone else", booking))
	assert.True(t, model.CanModify(constant.RoleProfessor, "Maria", booking))
	assert.False(t, model.CanModify(constant.RoleProfessor, "Bruno", booking))
	assert.False(t, model.CanModify("visitor", "Maria", booking))
}

func TestCanManageAll(t *testing.T) {
	assert.True(t, model.CanManageAll(constant.RoleAdmin))
	assert.True(t, model.CanManageAll(constant.RoleCoordenacao))
	assert.False(t, model.CanManageAll(constant.RoleProfessor))
	assert.False(t, model.CanManageAll(""))
}
