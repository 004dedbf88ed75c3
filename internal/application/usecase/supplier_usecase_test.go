package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reposicion-api/internal/application/dto"
	"github.com/jhoicas/reposicion-api/internal/domain"
	"github.com/jhoicas/reposicion-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func TestSupplierCreate(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := NewSupplierUseCase(repo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Supplier) bool {
		return s.ID != "" && s.Name == "Ferretería Sur" && s.Phone == nil && *s.WhatsApp == "+56 9 1111 2222"
	})).Return(nil)

	out, err := uc.Create(context.Background(), dto.CreateSupplierRequest{
		Name:     "  Ferretería Sur ",
		Phone:    strPtr("   "),
		WhatsApp: strPtr("+56 9 1111 2222"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ferretería Sur", out.Name)
	assert.Nil(t, out.Phone)
	repo.AssertExpectations(t)
}

func TestSupplierCreate_Validaciones(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := NewSupplierUseCase(repo)
	neg := decimal.NewFromInt(-1)

	cases := []struct {
		name string
		in   dto.CreateSupplierRequest
		msg  string
	}{
		{"sin nombre", dto.CreateSupplierRequest{Name: " "}, "name required"},
		{"días negativos", dto.CreateSupplierRequest{Name: "X", LeadTimeDays: intPtr(-2)}, "lead_time_days must be >= 0"},
		{"mínimo negativo", dto.CreateSupplierRequest{Name: "X", MinOrderAmount: &neg}, "min_order_amount must be >= 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.EqualError(t, err, tc.msg)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSupplierUpdate_Parcial(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := NewSupplierUseCase(repo)
	repo.On("GetByID", mock.Anything, "s1").Return(&entity.Supplier{
		ID: "s1", Name: "Proveedor Uno", Phone: strPtr("2222"), Email: strPtr("a@b.cl"),
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	out, err := uc.Update(context.Background(), "s1", dto.UpdateSupplierRequest{
		Phone:        strPtr(""),
		LeadTimeDays: intPtr(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "Proveedor Uno", out.Name)
	assert.Nil(t, out.Phone, "string vacío limpia el teléfono")
	assert.Equal(t, "a@b.cl", *out.Email)
	assert.Equal(t, 4, *out.LeadTimeDays)
}

func TestSupplierUpdate_LimpiarCondiciones(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := NewSupplierUseCase(repo)
	minOrder := decimal.NewFromInt(50000)
	repo.On("GetByID", mock.Anything, "s1").Return(&entity.Supplier{
		ID: "s1", Name: "Proveedor Uno", LeadTimeDays: intPtr(3), MinOrderAmount: &minOrder, Email: strPtr("a@b.cl"),
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *entity.Supplier) bool {
		return s.LeadTimeDays == nil && s.MinOrderAmount == nil && s.Email != nil
	})).Return(nil)

	out, err := uc.Update(context.Background(), "s1", dto.UpdateSupplierRequest{
		Clear: []string{"lead_time_days", " min_order_amount "},
	})
	require.NoError(t, err)
	assert.Nil(t, out.LeadTimeDays)
	assert.Nil(t, out.MinOrderAmount)
	assert.Equal(t, "a@b.cl", *out.Email)
	repo.AssertExpectations(t)
}

func TestSupplierGet_NoExiste(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := NewSupplierUseCase(repo)
	repo.On("GetByID", mock.Anything, "nope").Return(nil, nil)

	_, err := uc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSupplierList_PaginacionPorDefecto(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := NewSupplierUseCase(repo)
	repo.On("List", mock.Anything, 20, 0).Return([]*entity.Supplier{{ID: "s1", Name: "A"}}, nil)

	out, err := uc.List(context.Background(), dto.PageRequest{Limit: 0, Offset: -5})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, dto.PageResponse{Limit: 20, Offset: 0}, out.Page)
}

func TestSupplierList_FallaDePersistencia(t *testing.T) {
	repo := new(MockSupplierRepository)
	uc := NewSupplierUseCase(repo)
	repo.On("List", mock.Anything, 100, 0).Return([]*entity.Supplier(nil), errors.New("conexión rechazada"))

	_, err := uc.List(context.Background(), dto.PageRequest{Limit: 500})
	var pErr *domain.PersistenceError
	assert.ErrorAs(t, err, &pErr)
}
