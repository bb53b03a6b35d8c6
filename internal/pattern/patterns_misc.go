package pattern

var miscPatterns = []ProductPattern{
	{
		Category:       "juguetes",
		Subcategory:    "juguetes",
		RequiresPermit: false,
		Keywords: []string{
			"juguete", "toys", "muneca", "doll", "peluche", "plush", "lego", "rompecabezas",
			"puzzle", "juego de mesa", "board game", "carrito de juguete", "figura de accion",
			"action figure",
		},
		Restrictions: []string{
			"Juguetes para menores de 3 años deben cumplir requisitos de seguridad de ACODECO",
		},
	},
	{
		Category:       "libros_e_impresos",
		Subcategory:    "libros",
		RequiresPermit: false,
		Keywords: []string{
			"libro", "book", "revista", "magazine", "comic", "manga", "novela", "novel",
			"enciclopedia", "diccionario", "dictionary", "cuaderno", "notebook",
		},
	},
	{
		Category:       "deportes",
		Subcategory:    "articulos_deportivos",
		RequiresPermit: false,
		Keywords: []string{
			"balon", "ball", "raqueta", "racket", "pesas", "dumbbell", "mancuernas",
			"bicicleta", "bicycle", "casco", "helmet", "guantes de boxeo", "boxing gloves",
			"yoga mat", "tapete de yoga", "caña de pescar", "fishing rod",
		},
	},
	{
		Category:       "autopartes",
		Subcategory:    "repuestos",
		RequiresPermit: false,
		Keywords: []string{
			"repuesto", "auto parts", "car parts", "pastillas de freno", "brake pads",
			"filtro de aceite", "oil filter", "bujia", "spark plug", "amortiguador",
			"shock absorber", "alternador", "alternator", "llanta", "tires",
		},
	},
	{
		Category:       "herramientas",
		Subcategory:    "herramientas",
		RequiresPermit: false,
		Keywords: []string{
			"herramienta", "tool", "taladro", "drill", "destornillador", "screwdriver",
			"llave inglesa", "wrench", "martillo", "hammer", "sierra", "saw blade",
			"multimetro", "multimeter", "soldador", "soldering",
		},
	},
	{
		Category:       "hogar",
		Subcategory:    "decoracion_y_cocina",
		RequiresPermit: false,
		Keywords: []string{
			"sartén", "frying pan", "ollas", "cookware", "vajilla", "dinnerware",
			"cubiertos", "cutlery", "cortinas", "curtains", "sabanas", "bed sheets",
			"almohada", "pillow", "toalla", "towel", "lampara", "lamp", "decoracion",
		},
	},
	{
		Category:       "muebles",
		Subcategory:    "muebles",
		RequiresPermit: false,
		Keywords: []string{
			"mueble", "furniture", "silla", "chair", "mesa", "dining table", "escritorio", "desk",
			"sofa", "estante", "shelf", "colchon", "mattress",
		},
		Restrictions: []string{
			"Muebles de madera maciza requieren certificado fitosanitario (NIMF 15 en embalajes)",
		},
	},
	{
		Category:       "fauna_silvestre",
		Subcategory:    "productos_cites",
		RequiresPermit: true,
		Authorities:    []string{"MiAmbiente"},
		Keywords: []string{
			"piel de cocodrilo", "crocodile leather", "piel de serpiente", "snakeskin",
			"coral", "concha de tortuga", "tortoiseshell", "cuerno de rinoceronte", "rhino horn", "plumas exoticas",
			"exotic feathers", "caracol rosado", "queen conch",
		},
		Restrictions: []string{
			"Especies listadas en CITES requieren permiso de MiAmbiente",
		},
	},
	{
		Category:       "valores",
		Subcategory:    "dinero_y_titulos",
		RequiresPermit: true,
		Authorities:    []string{"UAF"},
		Keywords: []string{
			"efectivo", "cash money", "billetes", "banknotes", "monedas de coleccion",
			"collectible coins", "cheques de viajero", "travelers cheques",
			"lingote", "bullion", "tarjetas prepagadas", "gift cards",
		},
		Restrictions: []string{
			"Montos superiores a USD 10,000 deben declararse ante la Unidad de Análisis Financiero",
		},
	},
	{
		Category:       "documentos",
		Subcategory:    "correspondencia",
		RequiresPermit: false,
		Keywords: []string{
			"documentos", "documents", "correspondencia", "correspondence", "cartas",
			"letters", "papeles", "contrato", "contract", "sobre con documentos",
			"escrituras", "deeds", "pasaporte", "passport",
		},
	},
}
