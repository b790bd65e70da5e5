package usecases_port

import "context"

type ClearSavedPropertiesUseCasePort interface {
	Execute(ctx context.Context) (int, error)
}
