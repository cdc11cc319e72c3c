package services

import (
	"github.com/strandvakten/ansokan/repositories"
)

// Services holds all service instances
type Services struct {
	Application ApplicationService
	AdminLog    AdminLogService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	adminLog := NewAdminLogService(repos.AdminLog)
	return &Services{
		Application: NewApplicationService(repos.Application, adminLog),
		AdminLog:    adminLog,
	}
}
