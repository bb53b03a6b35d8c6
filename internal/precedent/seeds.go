package precedent

import (
	"time"

	"github.com/Veraticus/aduana/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultSeeds returns the built-in precedent set.
func DefaultSeeds() []model.Precedent {
	expired := date(2022, time.December, 31)

	return []model.Precedent{
		{
			ID: "seed-pa-001", Region: model.RegionPanama, RulingID: "ANA-RA-2021-0147",
			Authority: "Autoridad Nacional de Aduanas", HSCode: "3004.10.00",
			Keywords:  []string{"amoxicilina", "amoxicillin", "antibiotico", "capsulas"},
			Rationale: "Medicamento dosificado para venta al por menor que contiene penicilinas o sus derivados.",
			GRIRule:   model.GRI1, EffectiveDate: date(2021, time.June, 1), Active: true,
		},
		{
			ID: "seed-pa-002", Region: model.RegionPanama, RulingID: "ANA-RA-2022-0033",
			Authority: "Autoridad Nacional de Aduanas", HSCode: "8517.13.00",
			Keywords:  []string{"smartphone", "celular", "telefono inteligente", "iphone"},
			Rationale: "Teléfono inteligente para redes inalámbricas; se excluyen accesorios presentados por separado.",
			GRIRule:   model.GRI1, EffectiveDate: date(2022, time.March, 15), Active: true,
		},
		{
			ID: "seed-pa-003", Region: model.RegionPanama, RulingID: "ANA-RA-2022-0210",
			Authority: "Autoridad Nacional de Aduanas", HSCode: "4202.32.00",
			Keywords:  []string{"funda", "estuche", "case", "celular"},
			Rationale: "Estuche de plástico para teléfono presentado por separado del aparato.",
			GRIRule:   model.GRI1, EffectiveDate: date(2022, time.August, 1), Active: true,
		},
		{
			ID: "seed-pa-004", Region: model.RegionPanama, RulingID: "ANA-RA-2023-0089",
			Authority: "Autoridad Nacional de Aduanas", HSCode: "2106.90.99",
			Keywords:  []string{"suplemento", "proteina", "whey", "vitaminas"},
			Rationale: "Preparación alimenticia a base de proteína de suero con vitaminas añadidas.",
			GRIRule:   model.GRI3B, EffectiveDate: date(2023, time.February, 10), Active: true,
		},
		{
			ID: "seed-pa-005", Region: model.RegionPanama, RulingID: "ANA-RA-2019-0311",
			Authority: "Autoridad Nacional de Aduanas", HSCode: "9503.00.99",
			Keywords:      []string{"juguete", "toys", "muneca", "figura de accion"},
			Rationale:     "Juguetes de plástico sin mecanismo eléctrico.",
			EffectiveDate: date(2019, time.May, 2), ExpirationDate: &expired, Active: true,
		},
		{
			ID: "seed-pa-006", Region: model.RegionPanama, RulingID: "ANA-RA-2023-0152",
			Authority: "Autoridad Nacional de Aduanas", HSCode: "8471.30.00",
			Keywords:  []string{"laptop", "computadora portatil", "notebook"},
			Rationale: "Máquina automática para tratamiento de datos, portátil, de peso inferior a 10 kg.",
			GRIRule:   model.GRI1, EffectiveDate: date(2023, time.April, 20), Active: true,
		},
		{
			ID: "seed-cr-001", Region: model.RegionCostaRica, RulingID: "DGA-RC-2020-0412",
			Authority: "Dirección General de Aduanas", HSCode: "3304.99.00",
			Keywords:  []string{"crema", "cosmetico", "skincare", "serum"},
			Rationale: "Preparación para el cuidado de la piel, no medicamentosa.",
			GRIRule:   model.GRI1, EffectiveDate: date(2020, time.September, 1), Active: true,
		},
		{
			ID: "seed-cr-002", Region: model.RegionCostaRica, RulingID: "DGA-RC-2021-0098",
			Authority: "Dirección General de Aduanas", HSCode: "6109.10.00",
			Keywords:  []string{"camiseta", "t shirt", "algodon", "tejido de punto"},
			Rationale: "Camisetas de punto de algodón.",
			GRIRule:   model.GRI1, EffectiveDate: date(2021, time.January, 18), Active: true,
		},
		{
			ID: "seed-cr-003", Region: model.RegionCostaRica, RulingID: "DGA-RC-2022-0277",
			Authority: "Dirección General de Aduanas", HSCode: "8712.00.00",
			Keywords:  []string{"bicicleta", "bicycle", "sin ensamblar", "desarmada"},
			Rationale: "Bicicleta presentada desmontada que tiene las características esenciales del artículo completo.",
			GRIRule:   model.GRI2A, EffectiveDate: date(2022, time.July, 5), Active: true,
		},
		{
			ID: "seed-cr-004", Region: model.RegionCostaRica, RulingID: "DGA-RC-2023-0034",
			Authority: "Dirección General de Aduanas", HSCode: "0901.21.00",
			Keywords:  []string{"cafe", "coffee", "tostado", "molido"},
			Rationale: "Café tostado sin descafeinar.",
			GRIRule:   model.GRI1, EffectiveDate: date(2023, time.March, 1), Active: true,
		},
		{
			ID: "seed-cr-005", Region: model.RegionCostaRica, RulingID: "DGA-RC-2018-0501",
			Authority: "Dirección General de Aduanas", HSCode: "8517.62.00",
			Keywords:  []string{"router", "modem", "wifi"},
			Rationale: "Aparato para la recepción y transmisión de datos en red inalámbrica.",
			GRIRule:   model.GRI1, EffectiveDate: date(2018, time.October, 9), Active: false,
		},
		{
			ID: "seed-gt-001", Region: model.RegionGuatemala, RulingID: "SAT-IAD-2021-0064",
			Authority: "Superintendencia de Administración Tributaria", HSCode: "2208.30.00",
			Keywords:  []string{"whisky", "whiskey", "bebida alcoholica"},
			Rationale: "Whisky en envases con capacidad inferior o igual a 2 litros.",
			GRIRule:   model.GRI1, EffectiveDate: date(2021, time.April, 12), Active: true,
		},
		{
			ID: "seed-gt-002", Region: model.RegionGuatemala, RulingID: "SAT-IAD-2022-0190",
			Authority: "Superintendencia de Administración Tributaria", HSCode: "2101.12.00",
			Keywords:  []string{"mezcla", "cafe", "azucar", "crema"},
			Rationale: "Preparación a base de café mezclada con azúcar y sustituto de crema.",
			GRIRule:   model.GRI2B, EffectiveDate: date(2022, time.June, 30), Active: true,
		},
		{
			ID: "seed-gt-003", Region: model.RegionGuatemala, RulingID: "SAT-IAD-2023-0012",
			Authority: "Superintendencia de Administración Tributaria", HSCode: "9102.11.00",
			Keywords:  []string{"reloj", "watch", "estuche"},
			Rationale: "Reloj de pulsera presentado con su estuche, que se clasifica con el reloj.",
			GRIRule:   model.GRI5A, EffectiveDate: date(2023, time.January, 20), Active: true,
		},
		{
			ID: "seed-gt-004", Region: model.RegionGuatemala, RulingID: "SAT-IAD-2023-0145",
			Authority: "Superintendencia de Administración Tributaria", HSCode: "6404.11.00",
			Keywords:  []string{"zapatillas", "tenis", "sneakers", "calzado deportivo"},
			Rationale: "Calzado de deporte con suela de caucho y parte superior de materia textil.",
			GRIRule:   model.GRI3B, EffectiveDate: date(2023, time.May, 8), Active: true,
		},
	}
}
