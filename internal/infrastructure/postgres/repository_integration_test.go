package postgres_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/application/inventory"
	"github.com/jhoicas/ilms-api/internal/application/trace"
	"github.com/jhoicas/ilms-api/internal/application/usecase"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository"
	"github.com/jhoicas/ilms-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ilms-api/pkg/config"
	"github.com/jhoicas/ilms-api/pkg/logger"
)

// Estas pruebas levantan un PostgreSQL embebido (descarga binarios la primera vez).
// Activar con ILMS_PG_TESTS=1; con -short se omiten siempre.
var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() || os.Getenv("ILMS_PG_TESTS") == "" {
		os.Exit(m.Run())
	}
	os.Exit(runWithEmbedded(m))
}

func runWithEmbedded(m *testing.M) int {
	dir, err := os.MkdirTemp("", "ilms-pg-")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer os.RemoveAll(dir)

	emb, err := postgres.StartEmbedded(config.DBConfig{
		DBName:       "ilms_test",
		EmbeddedPort: 54329,
		EmbeddedPath: filepath.Join(dir, "data"),
	}, logger.Nop())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = emb.Stop() }()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, emb.DSN())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	testPool = pool
	return m.Run()
}

func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testPool == nil {
		t.Skip("PostgreSQL embebido desactivado (ILMS_PG_TESTS=1 para activarlo)")
	}
	return testPool
}

func newInventoryUC(pool *pgxpool.Pool) *inventory.UseCase {
	return inventory.NewUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewMaterialRepository(pool),
		postgres.NewInventoryRepository(pool),
		postgres.NewContainerRepository(pool),
		logger.Nop(),
	)
}

func seedMaterial(t *testing.T, pool *pgxpool.Pool, code, name string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, postgres.NewMaterialRepository(pool).Upsert(context.Background(), &entity.Material{
		MaterialCode: code, MaterialName: name, CreatedAt: now, UpdatedAt: now,
	}))
}

func TestRegistroYEmpaque(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	seedMaterial(t, pool, "IT-PACK", "Válvula")
	uc := newInventoryUC(pool)
	qty := 3

	units, err := uc.RegisterBatch(ctx, dto.RegisterBatchRequest{MaterialCode: "IT-PACK", BatchNumber: "L-1", Quantity: &qty})
	require.NoError(t, err)
	require.Len(t, units, 3)
	assert.Less(t, units[0].ID, units[2].ID)

	box, err := uc.PackItemsIntoBox(ctx, dto.PackBoxRequest{InventoryIDs: []int64{units[0].ID, 999999}, BoxSerial: "IT-BX-1"})
	require.NoError(t, err)
	require.NotNil(t, box.ItemCount)
	assert.Equal(t, 2, *box.ItemCount)

	packed, err := uc.GetBySerial(ctx, units[0].SerialNumber)
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryStatusPacked, packed.Status)
	require.NotNil(t, packed.BoxID)
	assert.Equal(t, box.ID, *packed.BoxID)

	untouched, err := uc.GetBySerial(ctx, units[1].SerialNumber)
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryStatusRegistered, untouched.Status)
	assert.Nil(t, untouched.BoxID)

	// serie de caja repetida: no queda nada a medias
	_, err = uc.PackItemsIntoBox(ctx, dto.PackBoxRequest{InventoryIDs: []int64{units[1].ID}, BoxSerial: "IT-BX-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	still, err := uc.GetBySerial(ctx, units[1].SerialNumber)
	require.NoError(t, err)
	assert.Equal(t, entity.InventoryStatusRegistered, still.Status)
	assert.Nil(t, still.BoxID)
}

func TestRegistro_MaterialInexistente(t *testing.T) {
	pool := requireDB(t)
	qty := 2
	_, err := newInventoryUC(pool).RegisterBatch(context.Background(), dto.RegisterBatchRequest{MaterialCode: "IT-NOPE", Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistorial_OrdenYSerieDesconocida(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	seedMaterial(t, pool, "IT-TRACE", "Tuerca")
	qty := 1
	units, err := newInventoryUC(pool).RegisterBatch(ctx, dto.RegisterBatchRequest{MaterialCode: "IT-TRACE", Quantity: &qty})
	require.NoError(t, err)

	events := postgres.NewTraceEventRepository(pool)
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	unitID := units[0].ID
	for _, ev := range []*entity.TraceEvent{
		{EventType: entity.TraceEventProduction, Status: entity.TraceStatusSuccess, Timestamp: base, InventoryID: &unitID, Notes: "a"},
		{EventType: entity.TraceEventPacking, Status: entity.TraceStatusSuccess, Timestamp: base.Add(time.Hour), InventoryID: &unitID, Notes: "b"},
		{EventType: entity.TraceEventShipping, Status: entity.TraceStatusSuccess, Timestamp: base.Add(time.Hour), InventoryID: &unitID, Notes: "c"},
	} {
		require.NoError(t, events.Create(ctx, ev))
	}

	raw, err := events.ListByInventory(ctx, unitID)
	require.NoError(t, err)
	require.Len(t, raw, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{raw[0].Notes, raw[1].Notes, raw[2].Notes})

	uc := trace.NewUseCase(postgres.NewInventoryRepository(pool), postgres.NewContainerRepository(pool), events, nil, "http://localhost/api/trace")
	history, err := uc.GetHistory(ctx, units[0].SerialNumber)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{history[0].Notes, history[1].Notes, history[2].Notes})

	empty, err := uc.GetHistory(ctx, "IT-NO-EXISTE")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBodega_ReemplazaUbicaciones(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	uc := usecase.NewWarehouseUseCase(postgres.NewWarehouseRepository(pool))

	saved, err := uc.Save(ctx, dto.WarehouseRequest{
		WarehouseCode: "IT-WH", WarehouseName: "Central",
		StorageLocations: []dto.StorageLocationDTO{{LocationCode: "A-01"}, {LocationCode: "A-02"}},
	})
	require.NoError(t, err)
	require.Len(t, saved.StorageLocations, 2)
	kept, dropped := saved.StorageLocations[0], saved.StorageLocations[1]

	resaved, err := uc.Save(ctx, dto.WarehouseRequest{
		WarehouseCode: "IT-WH", WarehouseName: "Central",
		StorageLocations: []dto.StorageLocationDTO{{ID: kept.ID, LocationCode: kept.LocationCode, Description: "pasillo A"}},
	})
	require.NoError(t, err)
	require.Len(t, resaved.StorageLocations, 1)
	assert.Equal(t, kept.ID, resaved.StorageLocations[0].ID)
	assert.Equal(t, "pasillo A", resaved.StorageLocations[0].Description)

	_, err = uc.LocationByID(ctx, dropped.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	loc, err := uc.LocationByID(ctx, kept.ID)
	require.NoError(t, err)
	assert.Equal(t, "IT-WH", loc.WarehouseCode)
}

func TestMaterial_BusquedaSinComodines(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	seedMaterial(t, pool, "IT-A_B", "Perno")
	seedMaterial(t, pool, "IT-AXB", "Perno")

	list, total, err := postgres.NewMaterialRepository(pool).List(ctx, repository.MaterialFilter{Search: "it-a_b", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, "IT-A_B", list[0].MaterialCode)
}
