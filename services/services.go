package services

import (
	"go.uber.org/zap"

	"github.com/aimethods/explorer/inference"
	"github.com/aimethods/explorer/repositories"
)

// Services holds all service instances
type Services struct {
	Analysis AnalysisService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, client *inference.Client, logger *zap.Logger) *Services {
	return &Services{
		Analysis: NewAnalysisService(client, repos.RequestLog, logger),
	}
}
