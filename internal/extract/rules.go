package extract

import "github.com/Veraticus/aduana/internal/model"

// FieldKind selects how a captured value is converted.
type FieldKind int

// Field kinds.
const (
	KindText FieldKind = iota
	KindNumber
)

// FieldRule declares one field of a document type. Patterns are tried in
// order and the first one that matches wins; each must capture group 1.
type FieldRule struct {
	Name       string
	Column     string
	Patterns   []string
	Kind       FieldKind
	Confidence int
}

// Field names shared by the engine.
const (
	FieldDocumentNumber = "document_number"
	FieldDate           = "date"
	FieldShipper        = "shipper"
	FieldConsignee      = "consignee"
	FieldFiscalID       = "fiscal_id"
	FieldCurrency       = "currency"
	FieldIncoterm       = "incoterm"
	FieldOrigin         = "origin_country"
	FieldDestination    = "destination"
	FieldHSCode         = "hs_code"
	FieldDescription    = "description"
	FieldFOB            = "fob"
	FieldFreight        = "freight"
	FieldInsurance      = "insurance"
	FieldCIF            = "cif"
	FieldDAI            = "dai"
	FieldDAIPercent     = "dai_percent"
	FieldISC            = "isc"
	FieldISCPercent     = "isc_percent"
	FieldVAT            = "vat"
	FieldTotal          = "total"
	FieldMAWB           = "mawb"
	FieldHAWB           = "hawb"
	FieldWeight         = "weight"
	FieldPieces         = "pieces"
	FieldFlight         = "flight"
	FieldPlate          = "vehicle_plate"
	FieldDriver         = "driver"
	FieldCustomsOffice  = "customs_office"
	FieldAuthorization  = "authorization"
)

// Pattern building blocks. Every pattern is case-insensitive and multi-line.
const (
	amount  = `((?:USD|US\$|B/\.|\$|₡|Q)?[ \t]*-?\d[\d.,]*)`
	percent = `(\d{1,3}(?:[.,]\d+)?)[ \t]*%`
	sep     = `[ \t]*[:#=]?[ \t]*`
	rest    = `([^\n]+?)[ \t]*$`
	num     = `(?:(?:n[uú]mero|number|n[oº°.]*|#)[ \t]*)?`
)

func rx(body string) string {
	return `(?im)` + body
}

var (
	ruleShipper = FieldRule{
		Name: FieldShipper, Kind: KindText, Confidence: 85,
		Patterns: []string{
			rx(`^[ \t]*(?:shipper|exportador|remitente|vendedor|seller|emisor)[ \t]*:[ \t]*` + rest),
			rx(`(?:shipper|exporter|exportador)[ \t]+name[ \t]*:[ \t]*` + rest),
		},
	}
	ruleConsignee = FieldRule{
		Name: FieldConsignee, Kind: KindText, Confidence: 85,
		Patterns: []string{
			rx(`^[ \t]*(?:consignee|consignatario|importador|importer|destinatario|comprador|buyer|receptor)[ \t]*:[ \t]*` + rest),
			rx(`(?:sold|ship)[ \t]+to[ \t]*:[ \t]*` + rest),
		},
	}
	ruleFiscalID = FieldRule{
		Name: FieldFiscalID, Kind: KindText, Confidence: 90,
		Patterns: []string{
			rx(`\b(?:RUC|NIT|c[eé]dula(?:[ \t]+jur[ií]dica)?|DIMEX|CUI|DPI|tax[ \t]*id)` + sep + `([A-Z0-9][A-Z0-9\-]*[0-9K](?:[ \t]*DV[ \t]*\d{1,2})?)`),
		},
	}
	ruleDate = FieldRule{
		Name: FieldDate, Kind: KindText, Confidence: 85,
		Patterns: []string{
			rx(`\b(?:fecha(?:[ \t]+de[ \t]+emisi[oó]n)?|date|issued)` + sep + `(\d{1,4}[/.-]\d{1,2}[/.-]\d{1,4})`),
		},
	}
	ruleCurrency = FieldRule{
		Name: FieldCurrency, Kind: KindText, Confidence: 90,
		Patterns: []string{
			rx(`\b(?:moneda|currency|divisa)` + sep + `([A-Z]{3})\b`),
			rx(`\b(USD|CRC|GTQ|PAB|EUR)\b`),
		},
	}
	ruleIncoterm = FieldRule{
		Name: FieldIncoterm, Kind: KindText, Confidence: 85,
		Patterns: []string{
			rx(`\b(?:incoterms?|t[eé]rminos?[ \t]+de[ \t]+(?:entrega|venta)|terms)` + sep + `(EXW|FCA|FAS|FOB|CFR|CIF|CPT|CIP|DAP|DPU|DDP)\b`),
		},
	}
	ruleOrigin = FieldRule{
		Name: FieldOrigin, Kind: KindText, Confidence: 80,
		Patterns: []string{
			rx(`\b(?:pa[ií]s[ \t]+de[ \t]+origen|country[ \t]+of[ \t]+origin|origen|origin)[ \t]*:[ \t]*` + rest),
		},
	}
	ruleDestination = FieldRule{
		Name: FieldDestination, Kind: KindText, Confidence: 80,
		Patterns: []string{
			rx(`\b(?:destino|destination|aduana[ \t]+de[ \t]+destino)[ \t]*:[ \t]*` + rest),
		},
	}
	ruleHSCode = FieldRule{
		Name: FieldHSCode, Kind: KindText, Column: "partida", Confidence: 90,
		Patterns: []string{
			rx(`\b(?:partida(?:[ \t]+arancelaria)?|hs[ \t]*code|c[oó]digo[ \t]+(?:arancelario|SAC)|inciso(?:[ \t]+arancelario)?|tariff[ \t]+code)` + sep + `(\d{4}(?:[. ]?\d{2}){1,3})`),
			rx(`\bHS` + sep + `(\d{4}(?:\.\d{2}){1,3})`),
		},
	}
	ruleDescription = FieldRule{
		Name: FieldDescription, Kind: KindText, Confidence: 80,
		Patterns: []string{
			rx(`^[ \t]*(?:descripci[oó]n(?:[ \t]+de[ \t]+(?:la[ \t]+)?mercanc[ií]a)?|description(?:[ \t]+of[ \t]+goods)?|contenido|contents)[ \t]*:[ \t]*` + rest),
		},
	}
	ruleFOB = FieldRule{
		Name: FieldFOB, Kind: KindNumber, Column: "valor_fob", Confidence: 90,
		Patterns: []string{
			rx(`\b(?:valor[ \t]+)?FOB(?:[ \t]+value)?(?:[ \t]+USD)?` + sep + amount),
			rx(`\b(?:subtotal|valor[ \t]+de[ \t]+(?:la[ \t]+)?mercanc[ií]a)` + sep + amount),
		},
	}
	ruleFreight = FieldRule{
		Name: FieldFreight, Kind: KindNumber, Column: "flete", Confidence: 90,
		Patterns: []string{
			rx(`\b(?:flete|freight)(?:[ \t]+charges?)?` + sep + amount),
		},
	}
	ruleInsurance = FieldRule{
		Name: FieldInsurance, Kind: KindNumber, Column: "seguro", Confidence: 90,
		Patterns: []string{
			rx(`\b(?:seguro|insurance)` + sep + amount),
		},
	}
	ruleCIF = FieldRule{
		Name: FieldCIF, Kind: KindNumber, Column: "valor_cif", Confidence: 90,
		Patterns: []string{
			rx(`\b(?:valor[ \t]+)?(?:CIF|en[ \t]+aduana)(?:[ \t]+value)?(?:[ \t]+USD)?` + sep + amount),
		},
	}
	ruleDAI = FieldRule{
		Name: FieldDAI, Kind: KindNumber, Column: "dai", Confidence: 85,
		Patterns: []string{
			rx(`\b(?:DAI|derechos?[ \t]+arancelarios?|import[ \t]+duty)(?:[ \t]*\(?\d{1,3}(?:[.,]\d+)?[ \t]*%\)?)?` + sep + amount),
		},
	}
	ruleDAIPercent = FieldRule{
		Name: FieldDAIPercent, Kind: KindNumber, Confidence: 85,
		Patterns: []string{
			rx(`\b(?:DAI|derechos?[ \t]+arancelarios?|import[ \t]+duty)[ \t]*\(?[ \t]*` + percent),
			rx(`\b(?:tasa|tarifa)[ \t]+DAI` + sep + percent),
		},
	}
	ruleISC = FieldRule{
		Name: FieldISC, Kind: KindNumber, Column: "isc", Confidence: 85,
		Patterns: []string{
			rx(`\b(?:ISC|selectivo[ \t]+(?:al|de)[ \t]+consumo)(?:[ \t]*\(?\d{1,3}(?:[.,]\d+)?[ \t]*%\)?)?` + sep + amount),
		},
	}
	ruleISCPercent = FieldRule{
		Name: FieldISCPercent, Kind: KindNumber, Confidence: 85,
		Patterns: []string{
			rx(`\b(?:ISC|selectivo[ \t]+(?:al|de)[ \t]+consumo)[ \t]*\(?[ \t]*` + percent),
		},
	}
	ruleVAT = FieldRule{
		Name: FieldVAT, Kind: KindNumber, Column: "iva", Confidence: 85,
		Patterns: []string{
			rx(`\b(?:ITBMS|IVA|VAT)(?:[ \t]*\(?\d{1,3}(?:[.,]\d+)?[ \t]*%\)?)?` + sep + amount),
		},
	}
	ruleTotal = FieldRule{
		Name: FieldTotal, Kind: KindNumber, Column: "total", Confidence: 90,
		Patterns: []string{
			rx(`\b(?:total[ \t]+a[ \t]+pagar|gran[ \t]+total|grand[ \t]+total|total[ \t]+due|total[ \t]+general|total[ \t]+tributos)` + sep + amount),
			rx(`^[ \t]*total(?:[ \t]+USD)?` + sep + amount),
		},
	}
	ruleMAWB = FieldRule{
		Name: FieldMAWB, Kind: KindText, Confidence: 95,
		Patterns: []string{
			rx(`\b(?:MAWB|master[ \t]+air[ \t]*waybill|gu[ií]a[ \t]+(?:a[eé]rea[ \t]+)?master)[ \t]*` + num + sep + `(\d{3}-?[ \t]?\d{4}[ \t]?\d{4})`),
		},
	}
	ruleHAWB = FieldRule{
		Name: FieldHAWB, Kind: KindText, Confidence: 90,
		Patterns: []string{
			rx(`\b(?:HAWB|house[ \t]+air[ \t]*waybill|gu[ií]a[ \t]+hija)[ \t]*` + num + sep + `([A-Z0-9][A-Z0-9\-]{4,})`),
		},
	}
	ruleWeight = FieldRule{
		Name: FieldWeight, Kind: KindNumber, Confidence: 85,
		Patterns: []string{
			rx(`\b(?:peso[ \t]+bruto|gross[ \t]+weight|peso[ \t]+total|total[ \t]+weight)` + sep + `(\d[\d.,]*)[ \t]*(?:kgs?|kilos?)?`),
			rx(`\b(?:peso|weight)` + sep + `(\d[\d.,]*)[ \t]*(?:kgs?|kilos?)?`),
		},
	}
	rulePieces = FieldRule{
		Name: FieldPieces, Kind: KindNumber, Confidence: 85,
		Patterns: []string{
			rx(`\b(?:piezas|pieces|bultos|packages|pkgs|cantidad[ \t]+de[ \t]+bultos)` + sep + `(\d+)\b`),
		},
	}
	ruleFlight = FieldRule{
		Name: FieldFlight, Kind: KindText, Confidence: 85,
		Patterns: []string{
			rx(`\b(?:vuelo|flight)[ \t]*` + num + sep + `([A-Z0-9]{2}[ \t]?\d{1,4})\b`),
		},
	}
	rulePlate = FieldRule{
		Name: FieldPlate, Kind: KindText, Confidence: 85,
		Patterns: []string{
			rx(`\b(?:placa(?:[ \t]+(?:del[ \t]+)?(?:cabezal|veh[ií]culo|furg[oó]n))?|plate|matr[ií]cula)` + sep + `([A-Z0-9][A-Z0-9\-]{3,9})\b`),
		},
	}
	ruleDriver = FieldRule{
		Name: FieldDriver, Kind: KindText, Confidence: 80,
		Patterns: []string{
			rx(`^[ \t]*(?:piloto|conductor|driver|transportista)[ \t]*:[ \t]*` + rest),
		},
	}
	ruleCustomsOffice = FieldRule{
		Name: FieldCustomsOffice, Kind: KindText, Confidence: 80,
		Patterns: []string{
			rx(`\b(?:aduana[ \t]+de[ \t]+(?:salida|entrada|paso|partida|despacho)|puesto[ \t]+fronterizo|border[ \t]+post)[ \t]*:[ \t]*` + rest),
		},
	}
	ruleAuthorization = FieldRule{
		Name: FieldAuthorization, Kind: KindText, Confidence: 95,
		Patterns: []string{
			rx(`\b(?:n[uú]mero[ \t]+de[ \t]+autorizaci[oó]n|autorizaci[oó]n|UUID)` + sep + `([0-9A-F]{8}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{12})`),
		},
	}
)

func documentNumber(confidence int, labels string) FieldRule {
	return FieldRule{
		Name: FieldDocumentNumber, Kind: KindText, Confidence: confidence,
		Patterns: []string{
			rx(`\b(?:` + labels + `)[ \t]*` + num + sep + `([A-Z0-9\-/]*\d[A-Z0-9\-/]*)`),
		},
	}
}

// DefaultFieldRules returns the extraction table per document type.
func DefaultFieldRules() map[model.DocumentType][]FieldRule {
	financial := []FieldRule{ruleFOB, ruleFreight, ruleInsurance, ruleCIF}
	taxes := []FieldRule{ruleDAIPercent, ruleDAI, ruleISCPercent, ruleISC, ruleVAT, ruleTotal}

	invoice := join(
		[]FieldRule{documentNumber(90, `(?:factura|invoice)(?:[ \t]+(?:comercial|commercial))?`), ruleDate, ruleShipper, ruleConsignee,
			ruleFiscalID, ruleCurrency, ruleIncoterm, ruleOrigin, ruleHSCode, ruleDescription},
		financial,
		[]FieldRule{ruleTotal},
	)

	return map[model.DocumentType][]FieldRule{
		model.DocInvoice: invoice,
		model.DocBillOfLading: join(
			[]FieldRule{documentNumber(90, `B/L|bill[ \t]+of[ \t]+lading|conocimiento[ \t]+de[ \t]+embarque|air[ \t]*waybill|AWB`),
				ruleMAWB, ruleHAWB, ruleDate, ruleShipper, ruleConsignee, ruleOrigin, ruleDestination,
				ruleDescription, ruleWeight, rulePieces, ruleFreight},
			[]FieldRule{ruleFOB},
		),
		model.DocCartaPorte: []FieldRule{
			documentNumber(90, `carta[ \t]+de[ \t]+porte|CP`), ruleDate, ruleShipper, ruleConsignee,
			ruleFiscalID, rulePlate, ruleDriver, ruleCustomsOffice, ruleOrigin, ruleDestination,
			ruleDescription, ruleWeight, rulePieces, ruleFOB, ruleFreight,
		},
		model.DocManifest: []FieldRule{
			documentNumber(90, `manifiesto|manifest`), ruleMAWB, ruleFlight, ruleDate,
			ruleShipper, ruleConsignee, ruleOrigin, ruleDestination, ruleWeight, rulePieces, ruleTotal,
		},
		model.DocPackingList: []FieldRule{
			documentNumber(85, `packing[ \t]+list|lista[ \t]+de[ \t]+empaque`), ruleDate, ruleShipper,
			ruleConsignee, ruleDescription, ruleWeight, rulePieces,
		},
		model.DocDUCAF: join(
			[]FieldRule{documentNumber(95, `DUCA[ \t-]*F|declaraci[oó]n[ \t]+[uú]nica[ \t]+centroamericana`), ruleDate,
				ruleShipper, ruleConsignee, ruleFiscalID, ruleCurrency, ruleIncoterm, ruleOrigin,
				ruleDestination, ruleCustomsOffice, ruleHSCode, ruleDescription, ruleWeight, rulePieces},
			financial, taxes,
		),
		model.DocDUCAT: []FieldRule{
			documentNumber(95, `DUCA[ \t-]*T|tr[aá]nsito[ \t]+internacional`), ruleDate, ruleShipper,
			ruleConsignee, ruleFiscalID, rulePlate, ruleDriver, ruleCustomsOffice, ruleOrigin,
			ruleDestination, ruleHSCode, ruleDescription, ruleWeight, rulePieces, ruleFOB,
		},
		model.DocDUA: join(
			[]FieldRule{documentNumber(95, `DUA|declaraci[oó]n[ \t]+aduanera`), ruleDate, ruleShipper,
				ruleConsignee, ruleFiscalID, ruleCurrency, ruleOrigin, ruleCustomsOffice, ruleHSCode,
				ruleDescription},
			financial, taxes,
		),
		model.DocFEL: []FieldRule{
			documentNumber(90, `DTE|serie|factura[ \t]+electr[oó]nica`), ruleAuthorization, ruleDate,
			ruleShipper, ruleConsignee, ruleFiscalID, ruleCurrency, ruleDescription, ruleVAT, ruleTotal,
		},
		model.DocUnknown: invoice,
	}
}

func join(groups ...[]FieldRule) []FieldRule {
	var out []FieldRule
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
