package repository

import (
	"context"

	"github.com/jhoicas/reposicion-api/internal/domain/entity"
)

// ProductRepository puerto de lectura de productos (los escribe el subsistema de inventario).
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
