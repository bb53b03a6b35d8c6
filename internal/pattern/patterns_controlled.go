package pattern

var controlledPatterns = []ProductPattern{
	{
		Category:       "armas",
		Subcategory:    "armas_de_fuego",
		RequiresPermit: true,
		Authorities:    []string{"DIASP", "MINSEG"},
		Keywords: []string{
			"arma de fuego", "firearm", "pistola", "pistol", "revolver", "rifle",
			"escopeta", "shotgun", "carabina", "handgun", "glock", "cargador de arma",
			"gun magazine", "silenciador", "suppressor",
		},
		Restrictions: []string{
			"Importación sujeta a licencia de la Dirección Institucional en Asuntos de Seguridad Pública",
			"No se admite por courier sin autorización previa",
		},
	},
	{
		Category:       "armas",
		Subcategory:    "municiones",
		RequiresPermit: true,
		Authorities:    []string{"DIASP"},
		Keywords: []string{
			"municion", "ammunition", "ammo", "cartucho", "cartridge", "balas", "bullets",
			"polvora", "gunpowder", "casquillos", "brass casings",
		},
		Restrictions: []string{
			"Mercancía peligrosa: prohibido su transporte por courier aéreo",
		},
	},
	{
		Category:       "armas",
		Subcategory:    "replicas_y_defensa",
		RequiresPermit: true,
		Authorities:    []string{"DIASP"},
		Keywords: []string{
			"airsoft", "paintball", "pistola de balines", "bb gun", "air rifle",
			"replica de arma", "gas pimienta", "pepper spray", "taser", "paralizador",
			"stun gun", "ballesta", "crossbow", "nudillos", "brass knuckles",
		},
	},
	{
		Category:       "pirotecnia",
		Subcategory:    "fuegos_artificiales",
		RequiresPermit: true,
		Authorities:    []string{"SINAPROC", "DIASP"},
		Keywords: []string{
			"pirotecnia", "fireworks", "fuegos artificiales", "petardos", "firecrackers",
			"bengalas", "sparklers", "cohetes", "mecha pirotecnica",
		},
		Restrictions: []string{
			"Mercancía peligrosa clase 1: requiere permiso de SINAPROC",
		},
	},
	{
		Category:       "tabaco",
		Subcategory:    "cigarrillos",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"cigarrillo", "cigarette", "tabaco", "tobacco", "puros", "cigars", "habanos",
			"rolling papers", "papel para liar", "hookah", "narguile", "shisha",
		},
		Restrictions: []string{
			"Sujeto a ISC y advertencias sanitarias de la Ley 13 de 2008",
		},
	},
	{
		Category:       "tabaco",
		Subcategory:    "vapeadores",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"vape", "vapeador", "cigarrillo electronico", "e cigarette", "e liquid",
			"liquido para vapear", "pod desechable", "disposable vape", "juul",
		},
		Restrictions: []string{
			"Importación de sistemas electrónicos de administración de nicotina restringida",
		},
	},
	{
		Category:       "bebidas_alcoholicas",
		Subcategory:    "licores",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"whisky", "whiskey", "vodka", "tequila", "ron anejo", "ron blanco", "dark rum", "spiced rum", "ginebra", "london dry gin",
			"licor", "liquor", "vino", "wine", "cerveza", "beer", "champagne", "sake",
			"mezcal", "brandy", "cognac",
		},
		Restrictions: []string{
			"Sujeto a ISC y registro sanitario de bebidas alcohólicas",
		},
	},
	{
		Category:       "quimicos",
		Subcategory:    "precursores",
		RequiresPermit: true,
		Authorities:    []string{"MINSA", "CONAPRED"},
		Keywords: []string{
			"acetona", "acetone", "acido sulfurico", "sulfuric acid", "permanganato",
			"permanganate", "efedrina", "ephedrine", "pseudoefedrina", "pseudoephedrine",
			"tolueno", "toluene", "eter etilico", "reactivo de laboratorio",
		},
		Restrictions: []string{
			"Precursor químico controlado: requiere licencia de la Comisión Nacional de Drogas",
		},
	},
	{
		Category:       "mercancias_peligrosas",
		Subcategory:    "baterias_y_gases",
		RequiresPermit: false,
		Keywords: []string{
			"bateria de litio", "lithium battery", "power bank", "bateria externa",
			"aerosol", "spray can", "gas butano", "butane", "encendedor", "lighter",
			"pintura en aerosol", "cilindro de gas",
		},
		Restrictions: []string{
			"Mercancía peligrosa IATA: verificar embalaje y declaración del expedidor",
		},
	},
}
