package usecases_port

import "context"

type RemoveSavedPropertyUseCasePort interface {
	Execute(ctx context.Context, propertyID string) error
}
