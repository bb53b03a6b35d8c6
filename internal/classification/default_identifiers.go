package classification

import "github.com/Veraticus/aduana/internal/model"

// DefaultIdentifiers returns the built-in document identifier table.
// Order matters: on equal scores the earlier identifier wins.
func DefaultIdentifiers() []Identifier {
	return []Identifier{
		{
			Type:   model.DocInvoice,
			Weight: 2,
			Keywords: []string{
				"commercial invoice", "factura comercial", "invoice", "factura",
				"bill to", "sold to", "facturar a", "vendido a", "subtotal",
				"unit price", "precio unitario", "invoice no", "incoterm",
				"payment terms", "terminos de pago",
			},
		},
		{
			Type:   model.DocBillOfLading,
			Weight: 3,
			Keywords: []string{
				"bill of lading", "b/l", "conocimiento de embarque", "air waybill",
				"airway bill", "awb", "guia aerea", "port of loading",
				"puerto de embarque", "shipper", "consignee", "notify party",
				"vessel", "flight no",
			},
		},
		{
			Type:   model.DocCartaPorte,
			Weight: 3,
			Keywords: []string{
				"carta de porte", "carta porte", "transportista", "placa del vehiculo",
				"cabezal", "furgon", "piloto", "punto fronterizo",
			},
		},
		{
			Type:   model.DocManifest,
			Weight: 3,
			Keywords: []string{
				"manifiesto de carga", "cargo manifest", "courier manifest",
				"manifest", "manifiesto", "total de guias", "total pieces",
				"total piezas",
			},
		},
		{
			Type:   model.DocPackingList,
			Weight: 3,
			Keywords: []string{
				"packing list", "lista de empaque", "gross weight", "net weight",
				"peso bruto", "peso neto", "cartons", "bultos", "dimensions",
			},
		},
		{
			Type:    model.DocDUCAF,
			Weight:  4,
			Regions: []model.Region{model.RegionCostaRica, model.RegionGuatemala},
			Keywords: []string{
				"duca-f", "duca f", "declaracion unica centroamericana",
				"formulario aduanero unico", "fauca", "libre comercio centroamericano",
			},
		},
		{
			Type:    model.DocDUCAT,
			Weight:  4,
			Regions: []model.Region{model.RegionPanama, model.RegionCostaRica, model.RegionGuatemala},
			Keywords: []string{
				"duca-t", "duca t", "transito internacional", "declaracion de transito",
				"aduana de partida", "aduana de destino",
			},
		},
		{
			Type:    model.DocDUA,
			Weight:  4,
			Regions: []model.Region{model.RegionCostaRica},
			Keywords: []string{
				"declaracion unica aduanera", "dua no", "numero de dua", "tic@",
				"ley general de aduanas",
			},
		},
		{
			Type:    model.DocFEL,
			Weight:  4,
			Regions: []model.Region{model.RegionGuatemala},
			Keywords: []string{
				"factura electronica en linea", "documento tributario electronico",
				"certificador", "numero de autorizacion", "nit emisor", "nit receptor",
			},
		},
	}
}

// DefaultRegionMarkers returns the built-in jurisdiction markers.
func DefaultRegionMarkers() []RegionMarker {
	return []RegionMarker{
		{
			Region: model.RegionPanama,
			Weight: 1,
			Keywords: []string{
				"panama", "itbms", "r.u.c", "ruc:", "ruc no", "autoridad nacional de aduanas",
				"zona libre de colon", "tocumen", "balboa",
			},
		},
		{
			Region: model.RegionCostaRica,
			Weight: 1,
			Keywords: []string{
				"costa rica", "hacienda", "cedula juridica", "colones", "crc",
				"juan santamaria", "tic@", "dimex",
			},
		},
		{
			Region: model.RegionGuatemala,
			Weight: 1,
			Keywords: []string{
				"guatemala", "sat.gob.gt", "quetzal", "gtq", "nit emisor",
				"nit receptor", "dpi:", "la aurora",
			},
		},
	}
}
