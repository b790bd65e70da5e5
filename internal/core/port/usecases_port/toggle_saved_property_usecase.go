package usecases_port

import "context"

// ToggleSavedPropertyUseCasePort - кнопка "сердечко": сохраняет или убирает объект.
type ToggleSavedPropertyUseCasePort interface {
	Execute(ctx context.Context, propertyID string) (saved bool, err error)
}
