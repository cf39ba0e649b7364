package converter

import (
	"clinic-api/internal/delivery/dto"
	"clinic-api/internal/domain/entity"
)

// UserToView maps a user entity to its public projection.
func UserToView(user *entity.User) dto.UserView {
	return dto.UserView{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}
}
