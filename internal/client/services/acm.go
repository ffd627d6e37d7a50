package services

import (
	"context"

	"campusfind/internal/client/api"
	"campusfind/internal/client/models"
)

// ACMService fetches the read-only access-control matrix for the current
// identity. Purely presentational; the client never evaluates it.
type ACMService interface {
	Matrix(ctx context.Context) (models.ACM, error)
}

type acmService struct {
	client api.Client
}

func NewACMService(client api.Client) ACMService {
	return &acmService{client: client}
}

func (s *acmService) Matrix(ctx context.Context) (models.ACM, error) {
	return s.client.ACM(ctx)
}
