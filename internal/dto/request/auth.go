package request

type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type CreateAccountRequest struct {
	Username        string `validate:"required,min=3,max=50"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Role            string `validate:"required,oneof=admin cashier"`
}
