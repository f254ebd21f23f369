package contracts

import (
	"context"
	"medical-portal/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

type DirectoryClient interface {
	List(ctx context.Context, kind string) ([]json.RawMessage, error)
}

type DirectoryUsecase interface {
	List(ctx context.Context, kind string) (*responses.Directory, error)
}
