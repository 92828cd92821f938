package domain

import "context"

//go:generate mockgen -source=repository.go -destination=repository_mock.go -package=domain

type ShelfLifeRepository interface {
	// GetShelfLife returns ErrShelfLifeNotFound when no window is configured.
	GetShelfLife(ctx context.Context, categoryID int64, profile StorageProfile) (*ShelfLifeWindow, error)
	ListShelfLives(ctx context.Context, categoryID int64) ([]*ShelfLifeWindow, error)
	UpsertShelfLife(ctx context.Context, window *ShelfLifeWindow) (*ShelfLifeWindow, error)
	DeleteShelfLife(ctx context.Context, categoryID int64, profile StorageProfile) error
}

type CategoryRepository interface {
	GetCategory(ctx context.Context, id int64) (*Category, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, category *Category) (*Category, error)
}

type ItemRepository interface {
	GetItem(ctx context.Context, id int64) (*Item, error)
	ListActiveItems(ctx context.Context) ([]*Item, error)
}
