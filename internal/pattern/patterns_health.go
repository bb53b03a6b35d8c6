package pattern

// Health patterns come first: specific drug families must precede the generic
// pharmaceutical entry so that equal scores resolve to the specific one.
var healthPatterns = []ProductPattern{
	{
		Category:       "medicamentos",
		Subcategory:    "antibioticos",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"antibiotico", "antibiotic", "amoxicilina", "amoxicillin", "penicilina",
			"penicillin", "azitromicina", "azithromycin", "ciprofloxacino", "ciprofloxacin",
			"cefalexina", "cephalexin", "doxiciclina", "doxycycline", "claritromicina",
			"clarithromycin", "levofloxacino", "levofloxacin", "clindamicina", "metronidazol",
		},
		Restrictions: []string{
			"Requiere receta médica y registro sanitario de la Dirección Nacional de Farmacia y Drogas",
			"Cantidad limitada a tratamiento personal (máximo 3 unidades)",
		},
	},
	{
		Category:       "medicamentos",
		Subcategory:    "psicotropicos",
		RequiresPermit: true,
		Authorities:    []string{"MINSA", "CONAPRED"},
		Keywords: []string{
			"alprazolam", "clonazepam", "diazepam", "lorazepam", "zolpidem", "tramadol",
			"codeina", "codeine", "morfina", "morphine", "oxicodona", "oxycodone",
			"metilfenidato", "methylphenidate", "adderall", "ritalin", "psicotropico",
		},
		Restrictions: []string{
			"Sustancia controlada: requiere licencia de importación y receta retenida",
		},
	},
	{
		Category:       "medicamentos",
		Subcategory:    "analgesicos",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"analgesico", "painkiller", "pain reliever", "ibuprofeno", "ibuprofen",
			"acetaminofen", "acetaminophen", "paracetamol", "naproxeno", "naproxen",
			"aspirina", "aspirin", "diclofenaco", "diclofenac", "advil", "tylenol",
		},
		Restrictions: []string{
			"Requiere registro sanitario salvo uso personal en cantidades razonables",
		},
	},
	{
		Category:       "medicamentos",
		Subcategory:    "cardiovasculares",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"losartan", "enalapril", "amlodipino", "amlodipine", "atorvastatina",
			"atorvastatin", "rosuvastatina", "metoprolol", "antihipertensivo",
			"blood pressure medication", "clopidogrel", "warfarina",
		},
	},
	{
		Category:       "medicamentos",
		Subcategory:    "diabetes",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"insulina", "insulin", "metformina", "metformin", "glucometro", "glucometer",
			"tiras reactivas", "test strips", "ozempic", "semaglutida", "semaglutide",
		},
		Restrictions: []string{
			"Productos biológicos requieren cadena de frío documentada",
		},
	},
	{
		Category:       "medicamentos",
		Subcategory:    "hormonales",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"anticonceptivo", "contraceptive", "levonorgestrel", "estradiol",
			"testosterona", "testosterone", "esteroide", "steroid", "anabolico",
			"anabolic", "hormona de crecimiento", "growth hormone",
		},
	},
	{
		Category:       "medicamentos",
		Subcategory:    "dermatologicos",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"pomada", "ointment", "unguento", "hidrocortisona", "hydrocortisone",
			"clotrimazol", "clotrimazole", "ketoconazol", "tretinoina", "tretinoin",
			"minoxidil", "isotretinoina",
		},
	},
	{
		Category:       "medicamentos",
		Subcategory:    "general",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"medicamento", "medicine", "medicina", "medication", "farmaceutico",
			"pharmaceutical", "capsule", "capsula", "tableta", "comprimido", "pastilla",
			"pills", "jarabe", "syrup", "inyectable", "injection", "ampolla", "vial",
			"gotas oftalmicas", "eye drops", "inhalador", "inhaler",
		},
		Restrictions: []string{
			"Requiere registro sanitario vigente o permiso de importación para uso personal",
		},
	},
	{
		Category:       "suplementos",
		Subcategory:    "vitaminas",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"vitamina", "vitamin", "multivitaminico", "multivitamin", "omega 3",
			"colageno", "collagen", "biotina", "biotin", "melatonina", "melatonin",
			"probiotico", "probiotic", "magnesio", "zinc", "hierro", "calcio",
		},
		Restrictions: []string{
			"Suplementos requieren notificación sanitaria ante MINSA",
		},
	},
	{
		Category:       "suplementos",
		Subcategory:    "deportivos",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"proteina", "protein", "whey", "creatina", "creatine", "pre workout",
			"preworkout", "bcaa", "aminoacidos", "amino acids", "mass gainer",
			"quemador de grasa", "fat burner",
		},
	},
	{
		Category:       "dispositivos_medicos",
		Subcategory:    "equipos",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"tensiometro", "blood pressure monitor", "oximetro", "oximeter", "nebulizador",
			"nebulizer", "termometro", "thermometer", "estetoscopio", "stethoscope",
			"cpap", "audifono medico", "hearing aid", "silla de ruedas", "wheelchair",
		},
		Restrictions: []string{
			"Dispositivos médicos requieren registro ante el Departamento de Dispositivos Médicos",
		},
	},
	{
		Category:       "dispositivos_medicos",
		Subcategory:    "insumos",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"jeringa", "syringe", "guantes de nitrilo", "nitrile gloves", "gasa", "gauze",
			"vendaje", "bandage", "cateter", "catheter", "mascarilla quirurgica",
			"surgical mask", "lentes de contacto", "contact lenses", "sutura",
		},
	},
	{
		Category:       "productos_veterinarios",
		Subcategory:    "medicamentos_veterinarios",
		RequiresPermit: true,
		Authorities:    []string{"MIDA"},
		Keywords: []string{
			"veterinario", "veterinary", "desparasitante", "dewormer", "antipulgas",
			"flea and tick", "nexgard", "bravecto", "frontline", "vacuna para perros",
			"ivermectina", "ivermectin",
		},
		Restrictions: []string{
			"Requiere registro de la Dirección Nacional de Salud Animal",
		},
	},
}
