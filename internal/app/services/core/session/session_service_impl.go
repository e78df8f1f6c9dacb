package session

import (
	"context"
	"time"

	"shifa-service/internal/app/contracts"
	"shifa-service/internal/app/models"
	"shifa-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	SessionTTL      time.Duration
}

func NewSessionService(redisRepository contracts.RedisRepository, sessionTTLInHours int) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		SessionTTL:      time.Duration(sessionTTLInHours) * time.Hour,
	}
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionID)
	if err != nil {
		return "", exceptions.ErrSessionInvalid(err)
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return svc.RedisRepository.Set(ctx, session.SessionID, session, svc.SessionTTL)
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionID)
}
