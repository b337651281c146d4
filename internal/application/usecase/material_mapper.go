package usecase

import (
	"github.com/jhoicas/ilms-api/internal/application/dto"
	"github.com/jhoicas/ilms-api/internal/domain/entity"
)

func toMaterial(in dto.MaterialDTO) *entity.Material {
	m := &entity.Material{
		MaterialCode:          in.MaterialCode,
		MaterialName:          in.MaterialName,
		Description:           in.Description,
		SKU:                   in.SKU,
		EanGtin:               in.EanGtin,
		UPC:                   in.UPC,
		CountryOfOrigin:       in.CountryOfOrigin,
		Type:                  in.Type,
		MaterialClass:         in.MaterialClass,
		MaterialGroup:         in.MaterialGroup,
		GS1CategoryCode:       in.GS1CategoryCode,
		ShelfLifeDays:         in.ShelfLifeDays,
		ShelfLifeUOM:          in.ShelfLifeUOM,
		StorageType:           in.StorageType,
		ProcurementType:       in.ProcurementType,
		BaseUOM:               in.BaseUOM,
		NetWeightKg:           in.NetWeightKg,
		DimensionsMM:          in.DimensionsMM,
		TradeUOM:              in.TradeUOM,
		TradeWeightKg:         in.TradeWeightKg,
		TradeDimensionsMM:     in.TradeDimensionsMM,
		IsPackaged:            in.IsPackaged,
		IsMilitaryGrade:       in.IsMilitaryGrade,
		IsFragile:             in.IsFragile,
		IsEnvSensitive:        in.IsEnvSensitive,
		IsHighValue:           in.IsHighValue,
		IsHazardous:           in.IsHazardous,
		IsBatchManaged:        in.IsBatchManaged,
		IsSerialized:          in.IsSerialized,
		IsRfidCapable:         in.IsRfidCapable,
		PackagingMaterialCode: in.PackagingMaterialCode,
		ExternalERPCode:       in.ExternalERPCode,
		ItemWeight:            in.ItemWeight,
		ItemDimension:         in.ItemDimension,
		MaxStoragePeriod:      in.MaxStoragePeriod,
		MaterialEANUPC:        in.MaterialEANUPC,
	}
	if hp := in.HandlingParameter; hp != nil {
		m.HandlingParameter = &entity.HandlingParameter{
			MaterialCode:   in.MaterialCode,
			TemperatureMin: hp.TemperatureMin,
			TemperatureMax: hp.TemperatureMax,
			HumidityMin:    hp.HumidityMin,
			HumidityMax:    hp.HumidityMax,
			HazardousClass: hp.HazardousClass,
			Precautions:    hp.Precautions,
			EnvParameters:  hp.EnvParameters,
			EPCFormat:      hp.EPCFormat,
		}
	}
	return m
}

func toMaterialDTO(m *entity.Material) dto.MaterialDTO {
	created, updated := m.CreatedAt, m.UpdatedAt
	out := dto.MaterialDTO{
		MaterialCode:          m.MaterialCode,
		MaterialName:          m.MaterialName,
		Description:           m.Description,
		SKU:                   m.SKU,
		EanGtin:               m.EanGtin,
		UPC:                   m.UPC,
		CountryOfOrigin:       m.CountryOfOrigin,
		Type:                  m.Type,
		MaterialClass:         m.MaterialClass,
		MaterialGroup:         m.MaterialGroup,
		GS1CategoryCode:       m.GS1CategoryCode,
		ShelfLifeDays:         m.ShelfLifeDays,
		ShelfLifeUOM:          m.ShelfLifeUOM,
		StorageType:           m.StorageType,
		ProcurementType:       m.ProcurementType,
		BaseUOM:               m.BaseUOM,
		NetWeightKg:           m.NetWeightKg,
		DimensionsMM:          m.DimensionsMM,
		TradeUOM:              m.TradeUOM,
		TradeWeightKg:         m.TradeWeightKg,
		TradeDimensionsMM:     m.TradeDimensionsMM,
		IsPackaged:            m.IsPackaged,
		IsMilitaryGrade:       m.IsMilitaryGrade,
		IsFragile:             m.IsFragile,
		IsEnvSensitive:        m.IsEnvSensitive,
		IsHighValue:           m.IsHighValue,
		IsHazardous:           m.IsHazardous,
		IsBatchManaged:        m.IsBatchManaged,
		IsSerialized:          m.IsSerialized,
		IsRfidCapable:         m.IsRfidCapable,
		PackagingMaterialCode: m.PackagingMaterialCode,
		ExternalERPCode:       m.ExternalERPCode,
		ItemWeight:            m.ItemWeight,
		ItemDimension:         m.ItemDimension,
		MaxStoragePeriod:      m.MaxStoragePeriod,
		MaterialEANUPC:        m.MaterialEANUPC,
	}
	if !created.IsZero() {
		out.CreatedAt = &created
	}
	if !updated.IsZero() {
		out.UpdatedAt = &updated
	}
	if hp := m.HandlingParameter; hp != nil {
		out.HandlingParameter = &dto.HandlingParameterDTO{
			TemperatureMin: hp.TemperatureMin,
			TemperatureMax: hp.TemperatureMax,
			HumidityMin:    hp.HumidityMin,
			HumidityMax:    hp.HumidityMax,
			HazardousClass: hp.HazardousClass,
			Precautions:    hp.Precautions,
			EnvParameters:  hp.EnvParameters,
			EPCFormat:      hp.EPCFormat,
		}
	}
	return out
}
