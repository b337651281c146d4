package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/application/ports"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

// Tamaño por defecto de etiqueta cuando la plantilla no lo define.
const (
	DefaultLabelWidthMM  = 100
	DefaultLabelHeightMM = 50
)

// LabelTemplateUseCase CRUD de plantillas, render PDF y exportación XML.
type LabelTemplateUseCase struct {
	repo          repository.LabelTemplateRepository
	materialRepo  repository.MaterialRepository
	inventoryRepo repository.InventoryRepository
	pdf           ports.LabelPDFGenerator
	xml           ports.LabelXMLExporter
	traceURL      func(serial string) string
}

// NewLabelTemplateUseCase construye el caso de uso. traceURL arma la URL que va en el QR.
func NewLabelTemplateUseCase(
	repo repository.LabelTemplateRepository,
	materialRepo repository.MaterialRepository,
	inventoryRepo repository.InventoryRepository,
	pdf ports.LabelPDFGenerator,
	xml ports.LabelXMLExporter,
	traceURL func(serial string) string,
) *LabelTemplateUseCase {
	return &LabelTemplateUseCase{
		repo:          repo,
		materialRepo:  materialRepo,
		inventoryRepo: inventoryRepo,
		pdf:           pdf,
		xml:           xml,
		traceURL:      traceURL,
	}
}

// List plantillas, opcionalmente filtradas por nivel.
func (uc *LabelTemplateUseCase) List(ctx context.Context, level string) ([]dto.LabelTemplateDTO, error) {
	level = strings.ToUpper(strings.TrimSpace(level))
	list, err := uc.repo.List(ctx, level)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LabelTemplateDTO, 0, len(list))
	for _, t := range list {
		out = append(out, toLabelTemplateDTO(t))
	}
	return out, nil
}

func (uc *LabelTemplateUseCase) get(ctx context.Context, id int64) (*entity.LabelTemplate, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

// Get obtiene una plantilla por ID.
func (uc *LabelTemplateUseCase) Get(ctx context.Context, id int64) (*dto.LabelTemplateDTO, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toLabelTemplateDTO(t)
	return &out, nil
}

// Create alta de plantilla. Nivel por defecto ITEM y estado DRAFT.
func (uc *LabelTemplateUseCase) Create(ctx context.Context, in dto.LabelTemplateDTO) (*dto.LabelTemplateDTO, error) {
	t, err := toLabelTemplate(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	out := toLabelTemplateDTO(t)
	return &out, nil
}

// Update reemplaza una plantilla existente.
func (uc *LabelTemplateUseCase) Update(ctx context.Context, id int64, in dto.LabelTemplateDTO) (*dto.LabelTemplateDTO, error) {
	if _, err := uc.get(ctx, id); err != nil {
		return nil, err
	}
	t, err := toLabelTemplate(in)
	if err != nil {
		return nil, err
	}
	t.ID = id
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	out := toLabelTemplateDTO(t)
	return &out, nil
}

// Delete elimina una plantilla.
func (uc *LabelTemplateUseCase) Delete(ctx context.Context, id int64) error {
	if _, err := uc.get(ctx, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// RenderPDF genera la etiqueta de la plantilla para una serie concreta.
// El material sale de la plantilla o, si no está acotada, de la unidad con esa serie.
func (uc *LabelTemplateUseCase) RenderPDF(ctx context.Context, id int64, serial string) ([]byte, error) {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}

	data := ports.LabelData{
		TemplateName: t.Name,
		LevelName:    t.LevelName,
		WidthMM:      sizeOr(t.WidthMM, DefaultLabelWidthMM),
		HeightMM:     sizeOr(t.HeightMM, DefaultLabelHeightMM),
		Serial:       serial,
	}
	if uc.traceURL != nil {
		data.TraceURL = uc.traceURL(serial)
	}

	materialCode := ""
	if t.MaterialCode != nil {
		materialCode = *t.MaterialCode
	}
	unit, err := uc.inventoryRepo.GetBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	if unit != nil {
		data.BatchNumber = unit.BatchNumber
		if materialCode == "" {
			materialCode = unit.MaterialCode
		}
	}
	if materialCode != "" {
		m, err := uc.materialRepo.Get(ctx, materialCode)
		if err != nil {
			return nil, err
		}
		data.MaterialCode = materialCode
		if m != nil {
			data.MaterialName = m.MaterialName
		}
	}

	doc, err := uc.pdf.Generate(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("label pdf: %w", err)
	}
	return doc, nil
}

// ExportXML layout XML de la plantilla y su huella canónica.
func (uc *LabelTemplateUseCase) ExportXML(ctx context.Context, id int64) ([]byte, string, error) {
	t, err := uc.get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	doc, fp, err := uc.xml.Export(t)
	if err != nil {
		return nil, "", fmt.Errorf("label xml: %w", err)
	}
	return doc, fp, nil
}

func sizeOr(d decimal.NullDecimal, def float64) float64 {
	if !d.Valid || !d.Decimal.IsPositive() {
		return def
	}
	return d.Decimal.InexactFloat64()
}

func isValidLabelLevel(level string) bool {
	switch level {
	case entity.LabelLevelItem, entity.LabelLevelBox, entity.LabelLevelPallet, entity.LabelLevelContainer:
		return true
	}
	return false
}

func isValidLabelStatus(status string) bool {
	switch status {
	case entity.LabelStatusDraft, entity.LabelStatusActive, entity.LabelStatusRetired:
		return true
	}
	return false
}

func toLabelTemplate(in dto.LabelTemplateDTO) (*entity.LabelTemplate, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	level := strings.ToUpper(strings.TrimSpace(in.LevelName))
	if level == "" {
		level = entity.LabelLevelItem
	}
	status := strings.ToUpper(strings.TrimSpace(in.Status))
	if status == "" {
		status = entity.LabelStatusDraft
	}
	if !isValidLabelLevel(level) || !isValidLabelStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if len(in.LayoutJSON) > 0 && !json.Valid(in.LayoutJSON) {
		return nil, domain.ErrInvalidInput
	}
	var material *string
	if in.MaterialCode != nil && strings.TrimSpace(*in.MaterialCode) != "" {
		code := strings.TrimSpace(*in.MaterialCode)
		material = &code
	}
	return &entity.LabelTemplate{
		Name:         in.Name,
		LevelName:    level,
		WidthMM:      in.WidthMM,
		HeightMM:     in.HeightMM,
		Layout:       in.LayoutJSON,
		Status:       status,
		MaterialCode: material,
	}, nil
}

func toLabelTemplateDTO(t *entity.LabelTemplate) dto.LabelTemplateDTO {
	return dto.LabelTemplateDTO{
		ID:           t.ID,
		Name:         t.Name,
		LevelName:    t.LevelName,
		WidthMM:      t.WidthMM,
		HeightMM:     t.HeightMM,
		LayoutJSON:   t.Layout,
		Status:       t.Status,
		MaterialCode: t.MaterialCode,
	}
}
