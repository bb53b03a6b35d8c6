package pattern

// DefaultPatterns returns the built-in product pattern table in evaluation order.
// The order is part of the classification contract: equal scores keep the
// pattern declared first.
func DefaultPatterns() []ProductPattern {
	groups := [][]ProductPattern{
		healthPatterns,
		controlledPatterns,
		agroPatterns,
		consumerPatterns,
		miscPatterns,
	}

	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]ProductPattern, 0, n)
	for _, g := range groups {
		for _, p := range g {
			out = append(out, p.clone())
		}
	}
	return out
}

// DefaultProhibitedKeywords lists terms that flag a description as possibly prohibited.
func DefaultProhibitedKeywords() []string {
	return []string{
		"cocaina", "cocaine", "marihuana", "marijuana", "cannabis", "heroina", "heroin",
		"metanfetamina", "methamphetamine", "fentanilo", "fentanyl", "narcotico",
		"narcotic", "explosivo", "explosive", "dinamita", "dynamite", "granada de mano",
		"hand grenade", "detonador", "detonator", "billetes falsos", "counterfeit money",
		"moneda falsa", "material radiactivo", "radioactive", "uranio", "uranium",
		"arma quimica", "chemical weapon", "marfil", "ivory", "pornografia infantil",
	}
}

// DefaultDocumentKeywords lists terms that mark a shipment as documents only.
func DefaultDocumentKeywords() []string {
	return []string{
		"documento", "document", "papeles", "correspondencia", "correspondence",
		"cartas", "letters", "contrato", "contract", "sobre con documentos",
		"escrituras", "deeds", "pasaporte", "passport",
	}
}
