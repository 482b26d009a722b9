package admin_login

import (
	"github.com/m04kA/SMC-StayBooking/internal/service/auth"
)

type AuthService interface {
	Login(password string) (*auth.LoginResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
