package helper

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
)

// ResolveRole classifies the caller once per request. Superuser wins over
// group membership; Manager wins over Delivery Crew when a user is in both.
func ResolveRole(user *model.User) model.Role {
	if user == nil {
		return model.RoleAnonymous
	}
	if user.IsSuperuser {
		return model.RoleAdmin
	}
	if InGroup(user, constants.GROUP_MANAGER) {
		return model.RoleManager
	}
	if InGroup(user, constants.GROUP_DELIVERY_CREW) {
		return model.RoleDeliveryCrew
	}
	return model.RoleCustomer
}

func InGroup(user *model.User, name string) bool {
	if user == nil {
		return false
	}
	for _, g := range user.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}
