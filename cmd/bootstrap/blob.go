package bootstrap

import (
	"context"

	"facility-booking/internal/infra/blob"
	"facility-booking/internal/pkg/config"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var BlobModule = fx.Module("blob",
	fx.Provide(
		fx.Annotate(
			NewBlobStore,
			fx.As(new(commands.BlobStore)),
			fx.As(new(queries.PhotoResolver)),
		),
	),
)

func NewBlobStore(cfg config.Config) (*blob.S3Store, error) {
	return blob.NewS3Store(context.Background(), cfg.Blob)
}
