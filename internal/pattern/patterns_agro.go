package pattern

// Agricultural and food patterns. Authority order is significant: MIDA issues the
// phytosanitary or zoosanitary permit before AUPSA reviews food safety.
var agroPatterns = []ProductPattern{
	{
		Category:       "animales_vivos",
		Subcategory:    "mascotas_y_fauna",
		RequiresPermit: true,
		Authorities:    []string{"MIDA", "MiAmbiente"},
		Keywords: []string{
			"animal vivo", "live animal", "cachorro", "puppy", "gatito", "kitten",
			"ave viva", "live bird", "loro", "parrot", "reptil", "reptile", "tortuga",
			"turtle", "peces vivos", "live fish", "insectos vivos", "huevos fertiles",
		},
		Restrictions: []string{
			"Requiere certificado zoosanitario de exportación y permiso MIDA",
			"Especies CITES requieren permiso de MiAmbiente",
		},
	},
	{
		Category:       "plantas",
		Subcategory:    "semillas_y_material_vegetal",
		RequiresPermit: true,
		Authorities:    []string{"MIDA"},
		Keywords: []string{
			"semilla", "seeds", "planta viva", "live plant", "esqueje", "plant cuttings",
			"bulbo", "flower bulbs", "plantula", "seedling", "injerto", "orquidea", "orchid",
			"bonsai", "tierra para macetas", "potting soil", "sustrato",
		},
		Restrictions: []string{
			"Requiere certificado fitosanitario del país de origen",
		},
	},
	{
		Category:       "agroquimicos",
		Subcategory:    "plaguicidas",
		RequiresPermit: true,
		Authorities:    []string{"MIDA"},
		Keywords: []string{
			"plaguicida", "pesticide", "insecticida", "insecticide", "herbicida",
			"herbicide", "fungicida", "fungicide", "glifosato", "glyphosate",
			"raticida", "rodenticide", "acaricida",
		},
		Restrictions: []string{
			"Requiere registro de agroquímicos de la Dirección de Sanidad Vegetal",
		},
	},
	{
		Category:       "agroquimicos",
		Subcategory:    "fertilizantes",
		RequiresPermit: true,
		Authorities:    []string{"MIDA"},
		Keywords: []string{
			"fertilizante", "fertilizer", "abono", "compost", "urea", "npk",
			"humus de lombriz", "bioestimulante", "plant food",
		},
	},
	{
		Category:       "alimentos",
		Subcategory:    "carnicos",
		RequiresPermit: true,
		Authorities:    []string{"MIDA", "AUPSA"},
		Keywords: []string{
			"carne", "meat", "jamon", "tocino", "bacon", "salchicha", "sausage",
			"chorizo", "embutido", "jerky", "cecina", "pollo", "chicken", "pescado",
			"seafood", "mariscos", "camarones", "shrimp",
		},
		Restrictions: []string{
			"Productos cárnicos requieren planta de origen aprobada y certificado sanitario",
		},
	},
	{
		Category:       "alimentos",
		Subcategory:    "lacteos",
		RequiresPermit: true,
		Authorities:    []string{"MIDA", "AUPSA"},
		Keywords: []string{
			"queso", "cheese", "leche", "milk", "yogur", "yogurt", "mantequilla",
			"butter", "crema de leche", "lacteo", "dairy", "leche en polvo",
			"powdered milk",
		},
	},
	{
		Category:       "alimentos",
		Subcategory:    "formula_infantil",
		RequiresPermit: true,
		Authorities:    []string{"MINSA", "AUPSA"},
		Keywords: []string{
			"formula infantil", "infant formula", "baby formula", "leche para bebe",
			"similac", "enfamil", "nan optipro", "cereal infantil", "papilla",
		},
		Restrictions: []string{
			"Fórmulas infantiles requieren registro sanitario MINSA",
		},
	},
	{
		Category:       "alimentos",
		Subcategory:    "frutas_y_vegetales",
		RequiresPermit: true,
		Authorities:    []string{"MIDA", "AUPSA"},
		Keywords: []string{
			"fruta fresca", "fresh fruit", "vegetales frescos", "fresh vegetables",
			"manzanas", "apples", "uvas", "grapes", "fresas", "strawberries",
			"aguacate", "avocado", "frutos secos", "nuts", "almendras", "almonds",
		},
		Restrictions: []string{
			"Productos frescos requieren certificado fitosanitario",
		},
	},
	{
		Category:       "alimentos",
		Subcategory:    "cafe_y_te",
		RequiresPermit: true,
		Authorities:    []string{"AUPSA"},
		Keywords: []string{
			"cafe en grano", "coffee beans", "cafe molido", "ground coffee",
			"capsulas de cafe", "coffee pods", "coffee capsules", "nespresso",
			"te verde", "green tea", "tea bags", "bolsitas de te", "matcha", "yerba mate",
		},
	},
	{
		Category:       "alimentos",
		Subcategory:    "procesados",
		RequiresPermit: true,
		Authorities:    []string{"AUPSA"},
		Keywords: []string{
			"alimento", "food", "snack", "galletas", "cookies", "chocolate", "dulces",
			"candy", "cereal", "pasta", "salsa", "sauce", "condimento", "spices",
			"especias", "enlatado", "canned", "miel", "honey", "mermelada", "jelly",
		},
		Restrictions: []string{
			"Alimentos procesados requieren registro sanitario o notificación AUPSA",
		},
	},
	{
		Category:       "alimentos",
		Subcategory:    "bebidas_no_alcoholicas",
		RequiresPermit: true,
		Authorities:    []string{"AUPSA"},
		Keywords: []string{
			"bebida energetica", "energy drink", "refresco", "soda", "jugo", "juice",
			"agua mineral", "mineral water", "bebida isotonica", "sports drink",
			"kombucha",
		},
	},
	{
		Category:       "mascotas",
		Subcategory:    "alimento_para_mascotas",
		RequiresPermit: true,
		Authorities:    []string{"MIDA", "AUPSA"},
		Keywords: []string{
			"alimento para perros", "dog food", "alimento para gatos", "cat food",
			"pet food", "croquetas", "kibble", "premios para perros", "dog treats",
			"arena para gatos", "cat litter",
		},
		Restrictions: []string{
			"Alimentos para animales requieren registro de la Dirección de Salud Animal",
		},
	},
}
