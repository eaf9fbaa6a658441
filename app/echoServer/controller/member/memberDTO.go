package member

type RegisterMemberReq struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Kind  string `json:"kind" validate:"required"`
}
