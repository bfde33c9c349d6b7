package helper

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"testing"
)

func TestResolveRole(t *testing.T) {
	manager := model.Group{Name: constants.GROUP_MANAGER}
	crew := model.Group{Name: constants.GROUP_DELIVERY_CREW}

	tests := []struct {
		name string
		user *model.User
		want model.Role
	}{
		{"nil user is anonymous", nil, model.RoleAnonymous},
		{"no groups is customer", &model.User{}, model.RoleCustomer},
		{"superuser is admin", &model.User{IsSuperuser: true}, model.RoleAdmin},
		{"manager group", &model.User{Groups: []model.Group{manager}}, model.RoleManager},
		{"delivery crew group", &model.User{Groups: []model.Group{crew}}, model.RoleDeliveryCrew},
		{"manager wins over crew", &model.User{Groups: []model.Group{crew, manager}}, model.RoleManager},
		{"superuser wins over groups", &model.User{IsSuperuser: true, Groups: []model.Group{crew}}, model.RoleAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveRole(tt.user); got != tt.want {
				t.Fatalf("ResolveRole() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRoleIsStaff(t *testing.T) {
	tests := []struct {
		role model.Role
		want bool
	}{
		{model.RoleAnonymous, false},
		{model.RoleCustomer, false},
		{model.RoleDeliveryCrew, true},
		{model.RoleManager, true},
		{model.RoleAdmin, true},
	}
	for _, tt := range tests {
		if got := tt.role.IsStaff(); got != tt.want {
			t.Fatalf("%s.IsStaff() = %v, want %v", tt.role, got, tt.want)
		}
	}
}
