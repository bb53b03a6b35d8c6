package region

import "github.com/Veraticus/aduana/internal/model"

var defaultConfigs = []model.RegionalTaxConfig{
	{
		Region:           model.RegionPanama,
		Country:          "Panamá",
		Currency:         "USD",
		VATName:          "ITBMS",
		VATRate:          0.07,
		InsuranceRate:    0.015,
		SystemFee:        3.00,
		CustomsAuthority: "Autoridad Nacional de Aduanas (ANA)",
		Citations: model.LegalCitations{
			CustomsCode:    "Decreto Ley 1 de 2008 y Código Aduanero Uniforme Centroamericano (CAUCA IV)",
			VATLaw:         "Ley 8 de 2010, artículo 1057-V del Código Fiscal (ITBMS 7%)",
			Valuation:      "Acuerdo del Valor de la OMC, artículo 8 (valor CIF); Decreto Ejecutivo 46 de 2009",
			FiscalID:       "Ley 31 de 2006 (Registro Civil) y Decreto Ejecutivo 170 de 1993 (RUC)",
			Restrictions:   "Ley 1 de 2001 (MINSA), Ley 23 de 1997 (MIDA/AUPSA), Ley 57 de 2011 (armas)",
			Precedents:     "Resoluciones anticipadas, artículo 39 del Decreto Ley 1 de 2008",
			Undervaluation: "Artículo 17 del Acuerdo del Valor de la OMC (duda razonable)",
		},
		FiscalIDFormats: []model.FiscalIDFormat{
			{Name: "Cédula panameña", Pattern: `^(?:[1-9]|1[0-3])-\d{1,4}-\d{1,6}$`, Example: "8-814-52"},
			{Name: "Cédula extranjero o naturalizado", Pattern: `^(?:E|N|PE)-\d{1,4}-\d{1,6}$`, Example: "E-8-123456"},
			{Name: "Cédula panameño nacido en el extranjero o comarca", Pattern: `^(?:[1-9]|1[0-3])(?:AV|PI)-\d{1,4}-\d{1,6}$`, Example: "1PI-12-345"},
			{Name: "RUC persona jurídica", Pattern: `^\d{4,10}-\d{1,4}-\d{4,7}(?:\s*DV\s*\d{1,2})?$`, Example: "155596713-2-2015 DV 59"},
			{Name: "Pasaporte", Pattern: `^[A-Z]{1,2}\d{6,9}$`, Example: "PA1234567"},
		},
	},
	{
		Region:           model.RegionCostaRica,
		Country:          "Costa Rica",
		Currency:         "CRC",
		VATName:          "IVA",
		VATRate:          0.13,
		InsuranceRate:    0.015,
		SystemFee:        0,
		CustomsAuthority: "Dirección General de Aduanas (DGA)",
		Citations: model.LegalCitations{
			CustomsCode:    "Ley General de Aduanas N.º 7557 y CAUCA IV",
			VATLaw:         "Ley del Impuesto sobre el Valor Agregado N.º 9635 (IVA 13%)",
			Valuation:      "Acuerdo del Valor de la OMC y Reglamento Centroamericano sobre Valoración Aduanera",
			FiscalID:       "Decreto N.º 37691-H (identificación tributaria) y Ley N.º 8764 (DIMEX)",
			Restrictions:   "Ley General de Salud N.º 5395, Ley SENASA N.º 8495, Ley de Protección Fitosanitaria N.º 7664",
			Precedents:     "Resoluciones de clasificación arancelaria, artículo 86 bis Ley General de Aduanas",
			Undervaluation: "Artículo 62 del Reglamento Centroamericano sobre Valoración Aduanera",
		},
		FiscalIDFormats: []model.FiscalIDFormat{
			{Name: "Cédula física", Pattern: `^[1-9]-\d{4}-\d{4}$`, Example: "1-1234-5678"},
			{Name: "Cédula física sin guiones", Pattern: `^[1-9]\d{8}$`, Example: "112345678"},
			{Name: "Cédula jurídica", Pattern: `^3-\d{3}-\d{6}$`, Example: "3-101-123456"},
			{Name: "DIMEX", Pattern: `^\d{11,12}$`, Example: "155812345678"},
			{Name: "NITE", Pattern: `^\d{10}$`, Example: "4000123456"},
		},
	},
	{
		Region:           model.RegionGuatemala,
		Country:          "Guatemala",
		Currency:         "GTQ",
		VATName:          "IVA",
		VATRate:          0.12,
		InsuranceRate:    0.015,
		SystemFee:        0,
		CustomsAuthority: "Superintendencia de Administración Tributaria (SAT)",
		Citations: model.LegalCitations{
			CustomsCode:    "Ley Nacional de Aduanas, Decreto 14-2013 y CAUCA IV",
			VATLaw:         "Ley del Impuesto al Valor Agregado, Decreto 27-92 (IVA 12%)",
			Valuation:      "Acuerdo del Valor de la OMC y RECAUCA, artículo 4",
			FiscalID:       "Código Tributario, Decreto 6-91, artículo 120 (NIT) y Ley del RENAP (CUI)",
			Restrictions:   "Código de Salud, Decreto 90-97 (MSPAS) y Ley de Sanidad Vegetal y Animal, Decreto 36-98 (MAGA)",
			Precedents:     "Resoluciones anticipadas de clasificación, artículo 13 del CAUCA IV",
			Undervaluation: "Artículo 17 del Acuerdo del Valor de la OMC y Decreto 14-2013, artículo 7",
		},
		FiscalIDFormats: []model.FiscalIDFormat{
			{Name: "NIT", Pattern: `^\d{1,12}-?[0-9K]$`, Example: "1234567-8"},
			{Name: "CUI / DPI", Pattern: `^\d{4}\s?\d{5}\s?\d{4}$`, Example: "2345 67890 0101"},
			{Name: "Pasaporte", Pattern: `^[A-Z]{1,2}\d{6,9}$`, Example: "G12345678"},
		},
	},
}
