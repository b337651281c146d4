package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/application/ports"
	"github.com/jhoicas/ilms-api/internal/domain"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
	"github.com/jhoicas/ilms-api/internal/domain/repository/mocks"
)

type fakePDF struct{ got ports.LabelData }

func (f *fakePDF) Generate(_ context.Context, data ports.LabelData) ([]byte, error) {
	f.got = data
	return []byte("%PDF"), nil
}

type fakeXML struct{}

func (fakeXML) Export(t *entity.LabelTemplate) ([]byte, string, error) {
	return []byte("<LabelTemplate/>"), "abc123", nil
}

type labelFixture struct {
	uc        *LabelTemplateUseCase
	repo      *mocks.LabelTemplateRepository
	materials *mocks.MaterialRepository
	inventory *mocks.InventoryRepository
	pdf       *fakePDF
}

func newLabelFixture() *labelFixture {
	f := &labelFixture{
		repo:      new(mocks.LabelTemplateRepository),
		materials: new(mocks.MaterialRepository),
		inventory: new(mocks.InventoryRepository),
		pdf:       &fakePDF{},
	}
	f.uc = NewLabelTemplateUseCase(f.repo, f.materials, f.inventory, f.pdf, fakeXML{},
		func(serial string) string { return "https://t/" + serial })
	return f
}

func TestLabelCreate_Defaults(t *testing.T) {
	f := newLabelFixture()
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.LabelTemplate")).Return(nil)

	out, err := f.uc.Create(context.Background(), dto.LabelTemplateDTO{Name: "Unidad", LayoutJSON: json.RawMessage(`[]`)})
	require.NoError(t, err)
	assert.Equal(t, entity.LabelLevelItem, out.LevelName)
	assert.Equal(t, entity.LabelStatusDraft, out.Status)
}

func TestLabelCreate_Validaciones(t *testing.T) {
	f := newLabelFixture()
	cases := []dto.LabelTemplateDTO{
		{LevelName: "BOX"},
		{Name: "x", LevelName: "CAMION"},
		{Name: "x", Status: "BORRADOR"},
		{Name: "x", LayoutJSON: json.RawMessage(`{roto`)},
	}
	for _, in := range cases {
		_, err := f.uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLabelRender_MaterialDesdeLaUnidad(t *testing.T) {
	f := newLabelFixture()
	f.repo.On("Get", mock.Anything, int64(1)).Return(&entity.LabelTemplate{ID: 1, Name: "Caja", LevelName: "BOX"}, nil)
	f.inventory.On("GetBySerial", mock.Anything, "SN-1").
		Return(&entity.InventoryUnit{SerialNumber: "SN-1", MaterialCode: "M-1", BatchNumber: "L-7"}, nil)
	f.materials.On("Get", mock.Anything, "M-1").Return(&entity.Material{MaterialCode: "M-1", MaterialName: "Tornillo"}, nil)

	pdf, err := f.uc.RenderPDF(context.Background(), 1, "SN-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), pdf)

	got := f.pdf.got
	assert.Equal(t, float64(DefaultLabelWidthMM), got.WidthMM)
	assert.Equal(t, float64(DefaultLabelHeightMM), got.HeightMM)
	assert.Equal(t, "Tornillo", got.MaterialName)
	assert.Equal(t, "L-7", got.BatchNumber)
	assert.Equal(t, "https://t/SN-1", got.TraceURL)
}

func TestLabelRender_PlantillaAcotadaYTamano(t *testing.T) {
	f := newLabelFixture()
	code := "M-2"
	f.repo.On("Get", mock.Anything, int64(2)).Return(&entity.LabelTemplate{
		ID:           2,
		Name:         "Pallet",
		WidthMM:      decimal.NewNullDecimal(decimal.NewFromInt(150)),
		HeightMM:     decimal.NewNullDecimal(decimal.NewFromInt(100)),
		MaterialCode: &code,
	}, nil)
	f.inventory.On("GetBySerial", mock.Anything, "PL-1").Return(nil, nil)
	f.materials.On("Get", mock.Anything, "M-2").Return(&entity.Material{MaterialCode: "M-2", MaterialName: "Tuerca"}, nil)

	_, err := f.uc.RenderPDF(context.Background(), 2, "PL-1")
	require.NoError(t, err)
	assert.Equal(t, 150.0, f.pdf.got.WidthMM)
	assert.Equal(t, 100.0, f.pdf.got.HeightMM)
	assert.Equal(t, "Tuerca", f.pdf.got.MaterialName)
}

func TestLabelRender_SinSerie(t *testing.T) {
	f := newLabelFixture()
	_, err := f.uc.RenderPDF(context.Background(), 1, " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLabelExport_NoExiste(t *testing.T) {
	f := newLabelFixture()
	f.repo.On("Get", mock.Anything, int64(3)).Return(nil, nil)

	_, _, err := f.uc.ExportXML(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
