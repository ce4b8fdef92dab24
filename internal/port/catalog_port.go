package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type Catalog interface {
	GetProduct(ctx context.Context, id int) (domain.Product, error)
}

type Authenticator interface {
	Authenticate(token string) (domain.Profile, error)
}
