package client

import (
	"context"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// Client is the backend contract: one method per REST capability.
type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	ListApplications(ctx context.Context) ([]models.Application, error)
	CreateApplication(ctx context.Context, payload *models.Payload) (*models.Application, error)
	GetApplication(ctx context.Context, id int64) (*models.Application, error)
	UpdateApplication(ctx context.Context, id int64, payload *models.Payload) (*models.Application, error)
	DeleteApplication(ctx context.Context, id int64) error
}

// TokenSource supplies the bearer token for authenticated calls and is told
// to forget it when the backend answers 401.
type TokenSource interface {
	Token() string
	PurgeToken(ctx context.Context)
}

var _ Client = (*HTTPClient)(nil)
