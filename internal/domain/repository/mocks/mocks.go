// Package mocks dobles de testify/mock para los puertos de persistencia.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
)

var (
	_ repository.MaterialRepository      = (*MaterialRepository)(nil)
	_ repository.InventoryRepository     = (*InventoryRepository)(nil)
	_ repository.ContainerRepository     = (*ContainerRepository)(nil)
	_ repository.WarehouseRepository     = (*WarehouseRepository)(nil)
	_ repository.TraceEventRepository    = (*TraceEventRepository)(nil)
	_ repository.LabelTemplateRepository = (*LabelTemplateRepository)(nil)
	_ repository.PackagingRepository     = (*PackagingRepository)(nil)
)

type MaterialRepository struct{ mock.Mock }

func (m *MaterialRepository) Get(ctx context.Context, code string) (*entity.Material, error) {
	args := m.Called(ctx, code)
	v, _ := args.Get(0).(*entity.Material)
	return v, args.Error(1)
}

func (m *MaterialRepository) List(ctx context.Context, filter repository.MaterialFilter) ([]*entity.Material, int, error) {
	args := m.Called(ctx, filter)
	v, _ := args.Get(0).([]*entity.Material)
	return v, args.Int(1), args.Error(2)
}

func (m *MaterialRepository) Upsert(ctx context.Context, material *entity.Material) error {
	return m.Called(ctx, material).Error(0)
}

func (m *MaterialRepository) Delete(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

func (m *MaterialRepository) ListImages(ctx context.Context, code string) ([]*entity.MaterialImage, error) {
	args := m.Called(ctx, code)
	v, _ := args.Get(0).([]*entity.MaterialImage)
	return v, args.Error(1)
}

func (m *MaterialRepository) AddImage(ctx context.Context, img *entity.MaterialImage) error {
	return m.Called(ctx, img).Error(0)
}

func (m *MaterialRepository) ListDocuments(ctx context.Context, code string) ([]*entity.MaterialDocument, error) {
	args := m.Called(ctx, code)
	v, _ := args.Get(0).([]*entity.MaterialDocument)
	return v, args.Error(1)
}

func (m *MaterialRepository) AddDocument(ctx context.Context, doc *entity.MaterialDocument) error {
	return m.Called(ctx, doc).Error(0)
}

type InventoryRepository struct{ mock.Mock }

func (m *InventoryRepository) CreateBatch(ctx context.Context, units []*entity.InventoryUnit) error {
	return m.Called(ctx, units).Error(0)
}

func (m *InventoryRepository) GetByID(ctx context.Context, id int64) (*entity.InventoryUnit, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*entity.InventoryUnit)
	return v, args.Error(1)
}

func (m *InventoryRepository) GetBySerial(ctx context.Context, serial string) (*entity.InventoryUnit, error) {
	args := m.Called(ctx, serial)
	v, _ := args.Get(0).(*entity.InventoryUnit)
	return v, args.Error(1)
}

func (m *InventoryRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.InventoryUnit, error) {
	args := m.Called(ctx, ids)
	v, _ := args.Get(0).([]*entity.InventoryUnit)
	return v, args.Error(1)
}

func (m *InventoryRepository) List(ctx context.Context) ([]*entity.InventoryUnit, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*entity.InventoryUnit)
	return v, args.Error(1)
}

func (m *InventoryRepository) ListByBox(ctx context.Context, boxID int64) ([]*entity.InventoryUnit, error) {
	args := m.Called(ctx, boxID)
	v, _ := args.Get(0).([]*entity.InventoryUnit)
	return v, args.Error(1)
}

func (m *InventoryRepository) Update(ctx context.Context, unit *entity.InventoryUnit) error {
	return m.Called(ctx, unit).Error(0)
}

func (m *InventoryRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).(map[string]int)
	return v, args.Error(1)
}

type ContainerRepository struct{ mock.Mock }

func (m *ContainerRepository) Create(ctx context.Context, c *entity.ContainerUnit) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ContainerRepository) GetByID(ctx context.Context, id int64) (*entity.ContainerUnit, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*entity.ContainerUnit)
	return v, args.Error(1)
}

func (m *ContainerRepository) GetBySerial(ctx context.Context, serial string) (*entity.ContainerUnit, error) {
	args := m.Called(ctx, serial)
	v, _ := args.Get(0).(*entity.ContainerUnit)
	return v, args.Error(1)
}

func (m *ContainerRepository) List(ctx context.Context, kind string) ([]*entity.ContainerUnit, error) {
	args := m.Called(ctx, kind)
	v, _ := args.Get(0).([]*entity.ContainerUnit)
	return v, args.Error(1)
}

func (m *ContainerRepository) ListChildren(ctx context.Context, parentID int64) ([]*entity.ContainerUnit, error) {
	args := m.Called(ctx, parentID)
	v, _ := args.Get(0).([]*entity.ContainerUnit)
	return v, args.Error(1)
}

func (m *ContainerRepository) Update(ctx context.Context, c *entity.ContainerUnit) error {
	return m.Called(ctx, c).Error(0)
}

type WarehouseRepository struct{ mock.Mock }

func (m *WarehouseRepository) List(ctx context.Context) ([]*entity.Warehouse, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*entity.Warehouse)
	return v, args.Error(1)
}

func (m *WarehouseRepository) Get(ctx context.Context, code string) (*entity.Warehouse, error) {
	args := m.Called(ctx, code)
	v, _ := args.Get(0).(*entity.Warehouse)
	return v, args.Error(1)
}

func (m *WarehouseRepository) Save(ctx context.Context, w *entity.Warehouse) error {
	return m.Called(ctx, w).Error(0)
}

func (m *WarehouseRepository) Delete(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

func (m *WarehouseRepository) GetLocation(ctx context.Context, id int64) (*entity.StorageLocation, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*entity.StorageLocation)
	return v, args.Error(1)
}

type TraceEventRepository struct{ mock.Mock }

func (m *TraceEventRepository) Create(ctx context.Context, ev *entity.TraceEvent) error {
	return m.Called(ctx, ev).Error(0)
}

func (m *TraceEventRepository) ListByInventory(ctx context.Context, inventoryID int64) ([]*entity.TraceEvent, error) {
	args := m.Called(ctx, inventoryID)
	v, _ := args.Get(0).([]*entity.TraceEvent)
	return v, args.Error(1)
}

func (m *TraceEventRepository) ListByContainer(ctx context.Context, containerID int64) ([]*entity.TraceEvent, error) {
	args := m.Called(ctx, containerID)
	v, _ := args.Get(0).([]*entity.TraceEvent)
	return v, args.Error(1)
}

type LabelTemplateRepository struct{ mock.Mock }

func (m *LabelTemplateRepository) Create(ctx context.Context, t *entity.LabelTemplate) error {
	return m.Called(ctx, t).Error(0)
}

func (m *LabelTemplateRepository) Get(ctx context.Context, id int64) (*entity.LabelTemplate, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*entity.LabelTemplate)
	return v, args.Error(1)
}

func (m *LabelTemplateRepository) List(ctx context.Context, level string) ([]*entity.LabelTemplate, error) {
	args := m.Called(ctx, level)
	v, _ := args.Get(0).([]*entity.LabelTemplate)
	return v, args.Error(1)
}

func (m *LabelTemplateRepository) Update(ctx context.Context, t *entity.LabelTemplate) error {
	return m.Called(ctx, t).Error(0)
}

func (m *LabelTemplateRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type PackagingRepository struct{ mock.Mock }

func (m *PackagingRepository) Create(ctx context.Context, h *entity.PackagingHierarchy) error {
	return m.Called(ctx, h).Error(0)
}

func (m *PackagingRepository) Get(ctx context.Context, id int64) (*entity.PackagingHierarchy, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*entity.PackagingHierarchy)
	return v, args.Error(1)
}

func (m *PackagingRepository) List(ctx context.Context) ([]*entity.PackagingHierarchy, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*entity.PackagingHierarchy)
	return v, args.Error(1)
}

func (m *PackagingRepository) Update(ctx context.Context, h *entity.PackagingHierarchy) error {
	return m.Called(ctx, h).Error(0)
}

func (m *PackagingRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// TxRunner ejecuta fn sin transacción real con los repositorios dados.
type TxRunner struct {
	Inventory repository.InventoryRepository
	Container repository.ContainerRepository
}

func (r *TxRunner) Run(_ context.Context, fn func(repository.InventoryRepository, repository.ContainerRepository) error) error {
	return fn(r.Inventory, r.Container)
}
