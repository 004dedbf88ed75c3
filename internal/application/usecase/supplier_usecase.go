package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/reposicion-api/internal/application/dto"
	"github.com/jhoicas/reposicion-api/internal/domain"
	"github.com/jhoicas/reposicion-api/internal/domain/entity"
	"github.com/jhoicas/reposicion-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. El nombre es obligatorio; los datos de contacto no.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name required")
	}
	if err := checkSupplierTerms(in.LeadTimeDays, in.MinOrderAmount != nil && in.MinOrderAmount.IsNegative()); err != nil {
		return nil, err
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:             uuid.New().String(),
		Name:           name,
		ContactName:    trimmedOrNil(in.ContactName),
		Phone:          trimmedOrNil(in.Phone),
		WhatsApp:       trimmedOrNil(in.WhatsApp),
		Email:          trimmedOrNil(in.Email),
		Notes:          trimmedOrNil(in.Notes),
		LeadTimeDays:   in.LeadTimeDays,
		MinOrderAmount: in.MinOrderAmount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, domain.NewPersistenceError("crear proveedor", err)
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID. domain.ErrNotFound si no existe.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza solo los campos enviados. Un string vacío limpia un dato de contacto;
// lead_time_days y min_order_amount se limpian con Clear.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	cleared, err := clearSet(in.Clear, map[string]bool{
		"contact_name":     in.ContactName != nil,
		"phone":            in.Phone != nil,
		"whatsapp":         in.WhatsApp != nil,
		"email":            in.Email != nil,
		"notes":            in.Notes != nil,
		"lead_time_days":   in.LeadTimeDays != nil,
		"min_order_amount": in.MinOrderAmount != nil,
	})
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.NewValidationError("name required")
		}
		supplier.Name = name
	}
	if err := checkSupplierTerms(in.LeadTimeDays, in.MinOrderAmount != nil && in.MinOrderAmount.IsNegative()); err != nil {
		return nil, err
	}
	if in.ContactName != nil {
		supplier.ContactName = trimmedOrNil(in.ContactName)
	}
	if in.Phone != nil {
		supplier.Phone = trimmedOrNil(in.Phone)
	}
	if in.WhatsApp != nil {
		supplier.WhatsApp = trimmedOrNil(in.WhatsApp)
	}
	if in.Email != nil {
		supplier.Email = trimmedOrNil(in.Email)
	}
	if in.Notes != nil {
		supplier.Notes = trimmedOrNil(in.Notes)
	}
	if in.LeadTimeDays != nil {
		supplier.LeadTimeDays = in.LeadTimeDays
	}
	if in.MinOrderAmount != nil {
		supplier.MinOrderAmount = in.MinOrderAmount
	}
	if cleared["contact_name"] {
		supplier.ContactName = nil
	}
	if cleared["phone"] {
		supplier.Phone = nil
	}
	if cleared["whatsapp"] {
		supplier.WhatsApp = nil
	}
	if cleared["email"] {
		supplier.Email = nil
	}
	if cleared["notes"] {
		supplier.Notes = nil
	}
	if cleared["lead_time_days"] {
		supplier.LeadTimeDays = nil
	}
	if cleared["min_order_amount"] {
		supplier.MinOrderAmount = nil
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, supplier); err != nil {
		return nil, domain.NewPersistenceError("actualizar proveedor", err)
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor. Sus vínculos se eliminan en cascada en la base.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return domain.NewPersistenceError("eliminar proveedor", err)
	}
	return nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SupplierListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.NewPersistenceError("listar proveedores", err)
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return &dto.SupplierListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *SupplierUseCase) get(ctx context.Context, id string) (*entity.Supplier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.NewValidationError("supplier required")
	}
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("obtener proveedor", err)
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplier, nil
}

func checkSupplierTerms(leadTimeDays *int, negativeMinOrder bool) error {
	if leadTimeDays != nil && *leadTimeDays < 0 {
		return domain.NewValidationError("lead_time_days must be >= 0")
	}
	if negativeMinOrder {
		return domain.NewValidationError("min_order_amount must be >= 0")
	}
	return nil
}

// clearSet valida la lista "clear" de un PUT. sent indica, por cada campo que se puede
// limpiar, si el mismo request también trae un valor para él.
func clearSet(fields []string, sent map[string]bool) (map[string]bool, error) {
	out := make(map[string]bool, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		withValue, ok := sent[f]
		if !ok {
			return nil, domain.NewValidationError("clear: unknown field " + f)
		}
		if withValue {
			return nil, domain.NewValidationError("clear: " + f + " cannot be set and cleared")
		}
		out[f] = true
	}
	return out, nil
}

// trimmedOrNil normaliza campos opcionales: nil o solo espacios se guardan como NULL.
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:             s.ID,
		Name:           s.Name,
		ContactName:    s.ContactName,
		Phone:          s.Phone,
		WhatsApp:       s.WhatsApp,
		Email:          s.Email,
		Notes:          s.Notes,
		LeadTimeDays:   s.LeadTimeDays,
		MinOrderAmount: s.MinOrderAmount,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
