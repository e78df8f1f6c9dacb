package contracts

import (
	"context"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/dto/requests"
	"shifa-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.UserSummary, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	GetProfile(ctx context.Context, session *models.Session) (*responses.User, error)
}
