package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

// MaterialUseCase casos de uso del maestro de materiales.
type MaterialUseCase struct {
	repo repository.MaterialRepository
	now  func() time.Time
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, now: time.Now}
}

// List página del catálogo con búsqueda opcional por código o nombre.
func (uc *MaterialUseCase) List(ctx context.Context, search string, page dto.PageRequest) (*dto.MaterialListResponse, error) {
	page.DefaultPage()
	list, total, err := uc.repo.List(ctx, repository.MaterialFilter{
		Search: strings.TrimSpace(search),
		Limit:  page.Size,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialDTO, 0, len(list))
	for _, m := range list {
		items = append(items, toMaterialDTO(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, Size: page.Size, Total: total},
	}, nil
}

// Get obtiene un material por código.
func (uc *MaterialUseCase) Get(ctx context.Context, code string) (*dto.MaterialDTO, error) {
	m, err := uc.repo.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	out := toMaterialDTO(m)
	return &out, nil
}

// Save crea o actualiza por código. CreatedAt se conserva si el material ya existía.
func (uc *MaterialUseCase) Save(ctx context.Context, in dto.MaterialDTO) (*dto.MaterialDTO, error) {
	in.MaterialCode = strings.TrimSpace(in.MaterialCode)
	if in.MaterialCode == "" || strings.TrimSpace(in.MaterialName) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.Get(ctx, in.MaterialCode)
	if err != nil {
		return nil, err
	}
	m := toMaterial(in)
	now := uc.now()
	m.CreatedAt, m.UpdatedAt = now, now
	if existing != nil {
		m.CreatedAt = existing.CreatedAt
		if m.HandlingParameter != nil && existing.HandlingParameter != nil {
			m.HandlingParameter.ID = existing.HandlingParameter.ID
		}
	}
	if err := uc.repo.Upsert(ctx, m); err != nil {
		return nil, err
	}
	out := toMaterialDTO(m)
	return &out, nil
}

// Update reemplaza un material existente; el código de la ruta manda.
func (uc *MaterialUseCase) Update(ctx context.Context, code string, in dto.MaterialDTO) (*dto.MaterialDTO, error) {
	existing, err := uc.repo.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	in.MaterialCode = code
	return uc.Save(ctx, in)
}

// Delete elimina el material. ErrConflict si hay inventario que lo referencia.
func (uc *MaterialUseCase) Delete(ctx context.Context, code string) error {
	existing, err := uc.repo.Get(ctx, code)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, code)
}

func (uc *MaterialUseCase) ensureExists(ctx context.Context, code string) error {
	m, err := uc.repo.Get(ctx, code)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return nil
}

// ListImages metadatos de imágenes del material.
func (uc *MaterialUseCase) ListImages(ctx context.Context, code string) ([]dto.MaterialFileResponse, error) {
	if err := uc.ensureExists(ctx, code); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListImages(ctx, code)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialFileResponse, 0, len(list))
	for _, img := range list {
		out = append(out, dto.MaterialFileResponse{
			ID: img.ID, MaterialCode: img.MaterialCode, Type: img.Type,
			Filename: img.Filename, URL: img.URL, CreatedAt: img.CreatedAt,
		})
	}
	return out, nil
}

// AddImage registra una imagen del material.
func (uc *MaterialUseCase) AddImage(ctx context.Context, code string, in dto.MaterialFileRequest) (*dto.MaterialFileResponse, error) {
	if strings.TrimSpace(in.Filename) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.ensureExists(ctx, code); err != nil {
		return nil, err
	}
	img := &entity.MaterialImage{MaterialCode: code, Type: in.Type, Filename: in.Filename, URL: in.URL, CreatedAt: uc.now()}
	if err := uc.repo.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return &dto.MaterialFileResponse{
		ID: img.ID, MaterialCode: img.MaterialCode, Type: img.Type,
		Filename: img.Filename, URL: img.URL, CreatedAt: img.CreatedAt,
	}, nil
}

// ListDocuments metadatos de documentos del material.
func (uc *MaterialUseCase) ListDocuments(ctx context.Context, code string) ([]dto.MaterialFileResponse, error) {
	if err := uc.ensureExists(ctx, code); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListDocuments(ctx, code)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialFileResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.MaterialFileResponse{
			ID: d.ID, MaterialCode: d.MaterialCode, Type: d.DocType,
			Filename: d.Filename, URL: d.URL, CreatedAt: d.CreatedAt,
		})
	}
	return out, nil
}

// AddDocument registra un documento del material.
func (uc *MaterialUseCase) AddDocument(ctx context.Context, code string, in dto.MaterialFileRequest) (*dto.MaterialFileResponse, error) {
	if strings.TrimSpace(in.Filename) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.ensureExists(ctx, code); err != nil {
		return nil, err
	}
	doc := &entity.MaterialDocument{MaterialCode: code, DocType: in.Type, Filename: in.Filename, URL: in.URL, CreatedAt: uc.now()}
	if err := uc.repo.AddDocument(ctx, doc); err != nil {
		return nil, err
	}
	return &dto.MaterialFileResponse{
		ID: doc.ID, MaterialCode: doc.MaterialCode, Type: doc.DocType,
		Filename: doc.Filename, URL: doc.URL, CreatedAt: doc.CreatedAt,
	}, nil
}
