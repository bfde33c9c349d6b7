package constants

const (
	GROUP_MANAGER       = "Manager"
	GROUP_DELIVERY_CREW = "Delivery Crew"
)

const (
	MISSING_LOGIN_INPUT      = "Username and password are required"
	INVALID_USERNAME         = "Username does not exist"
	INVALID_PASSWORD         = "Password is incorrect"
	USERNAME_ALREADY_EXISTS  = "Username already exists"
	ERROR_INTERNAL_ERROR     = "Internal server error"
	DATA_INPUT_IS_NOT_NUMBER = "Input must be a number"
	UNAUTHORIZED             = "Authentication required"
	FORBIDDEN                = "Not authorized to perform this action"
)
