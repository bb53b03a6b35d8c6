package pattern

var consumerPatterns = []ProductPattern{
	{
		Category:       "cosmeticos",
		Subcategory:    "cuidado_de_la_piel",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"crema facial", "face cream", "serum", "suero facial", "protector solar",
			"sunscreen", "bloqueador solar", "hidratante", "moisturizer", "retinol",
			"acido hialuronico", "hyaluronic", "limpiador facial", "cleanser", "tonico facial",
			"mascarilla facial", "sheet mask", "skincare", "cuidado de la piel",
		},
		Restrictions: []string{
			"Cosméticos requieren notificación sanitaria obligatoria",
		},
	},
	{
		Category:       "cosmeticos",
		Subcategory:    "maquillaje",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"maquillaje", "makeup", "labial", "lipstick", "rimel", "mascara de pestanas",
			"mascara para pestanas", "base de maquillaje", "foundation", "sombras",
			"eyeshadow", "delineador", "eyeliner", "rubor", "blush", "polvo compacto",
			"esmalte de unas", "nail polish", "brochas de maquillaje",
		},
	},
	{
		Category:       "cosmeticos",
		Subcategory:    "perfumeria",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"perfume", "fragancia", "fragrance", "eau de parfum", "eau de toilette",
			"colonia", "cologne", "body mist", "splash corporal",
		},
	},
	{
		Category:       "cosmeticos",
		Subcategory:    "cuidado_capilar",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"shampoo", "champu", "acondicionador", "conditioner", "tinte para cabello",
			"hair dye", "keratina", "keratin", "aceite capilar", "hair oil", "gel para cabello",
			"hair gel", "tratamiento capilar",
		},
	},
	{
		Category:       "cosmeticos",
		Subcategory:    "higiene_personal",
		RequiresPermit: true,
		Authorities:    []string{"MINSA"},
		Keywords: []string{
			"pasta dental", "toothpaste", "enjuague bucal", "mouthwash", "desodorante",
			"deodorant", "jabon", "soap", "gel de ducha", "body wash", "toallas sanitarias",
			"sanitary pads", "tampones", "tampons", "panales", "diapers",
		},
	},
	{
		Category:       "electronica",
		Subcategory:    "telefonia_movil",
		RequiresPermit: false,
		Keywords: []string{
			"celular", "cellphone", "cell phone", "smartphone", "telefono movil",
			"mobile phone", "iphone", "samsung galaxy", "xiaomi", "motorola", "pixel phone",
			"telefono inteligente",
		},
		Restrictions: []string{
			"Equipos con IMEI deben estar homologados ante la autoridad de telecomunicaciones",
		},
	},
	{
		Category:       "electronica",
		Subcategory:    "computo",
		RequiresPermit: false,
		Keywords: []string{
			"laptop", "notebook computer", "computadora", "computer", "macbook",
			"tablet", "ipad", "tableta electronica", "monitor", "teclado", "keyboard",
			"mouse", "disco duro", "hard drive", "ssd", "memoria ram", "tarjeta de video",
			"graphics card", "motherboard", "placa madre", "impresora", "printer",
		},
	},
	{
		Category:       "electronica",
		Subcategory:    "audio_y_video",
		RequiresPermit: false,
		Keywords: []string{
			"audifonos", "headphones", "earbuds", "airpods", "bocina", "speaker",
			"parlante", "television", "smart tv", "televisor", "proyector", "projector",
			"barra de sonido", "soundbar", "amplificador", "amplifier",
		},
	},
	{
		Category:       "electronica",
		Subcategory:    "videojuegos",
		RequiresPermit: false,
		Keywords: []string{
			"consola", "console", "playstation", "xbox", "nintendo", "switch oled",
			"videojuego", "video game", "control inalambrico", "gamepad", "joystick",
			"steam deck",
		},
	},
	{
		Category:       "electronica",
		Subcategory:    "fotografia",
		RequiresPermit: false,
		Keywords: []string{
			"camara", "camera", "lente fotografico", "camera lens", "gopro", "tripode",
			"tripod", "flash fotografico", "canon eos", "nikon", "sony alpha",
		},
	},
	{
		Category:       "electronica",
		Subcategory:    "drones",
		RequiresPermit: true,
		Authorities:    []string{"AAC"},
		Keywords: []string{
			"drone", "dron", "quadcopter", "cuadricoptero", "dji mavic", "dji mini",
			"aeronave no tripulada", "unmanned aircraft",
		},
		Restrictions: []string{
			"Drones requieren registro ante la Autoridad de Aeronáutica Civil",
		},
	},
	{
		Category:       "electronica",
		Subcategory:    "telecomunicaciones",
		RequiresPermit: true,
		Authorities:    []string{"ASEP"},
		Keywords: []string{
			"radio transmisor", "transceiver", "walkie talkie", "radio de dos vias",
			"two way radio", "antena", "antenna", "router", "repetidor", "repeater",
			"modem", "starlink", "telefono satelital", "satellite phone",
		},
		Restrictions: []string{
			"Equipos de radiofrecuencia requieren homologación de la ASEP",
		},
	},
	{
		Category:       "electronica",
		Subcategory:    "accesorios",
		RequiresPermit: false,
		Keywords: []string{
			"cargador", "charger", "cable usb", "usb cable", "funda para celular",
			"phone case", "protector de pantalla", "screen protector", "smartwatch",
			"reloj inteligente", "adaptador", "adapter", "memoria usb", "flash drive",
		},
	},
	{
		Category:       "electrodomesticos",
		Subcategory:    "cocina",
		RequiresPermit: false,
		Keywords: []string{
			"licuadora", "blender", "microondas", "microwave", "freidora de aire",
			"air fryer", "cafetera", "coffee maker", "tostadora", "toaster",
			"olla electrica", "pressure cooker", "batidora", "mixer",
		},
	},
	{
		Category:       "electrodomesticos",
		Subcategory:    "hogar",
		RequiresPermit: false,
		Keywords: []string{
			"aspiradora", "vacuum cleaner", "robot aspirador", "plancha de vapor", "steam iron",
			"ventilador", "desk fan", "aire acondicionado", "air conditioner",
			"purificador de aire", "humidificador", "secadora de pelo", "hair dryer",
		},
	},
	{
		Category:       "ropa",
		Subcategory:    "prendas",
		RequiresPermit: false,
		Keywords: []string{
			"camisa", "shirt", "t-shirt", "camiseta", "blusa", "blouse", "pantalon",
			"pants", "jeans", "vestido", "dresses", "falda", "skirt", "chaqueta", "jacket",
			"sueter", "sweater", "hoodie", "ropa interior", "underwear", "pijama",
			"traje de bano", "swimsuit", "uniforme",
		},
		Restrictions: []string{
			"Textiles deben indicar composición y país de origen en la etiqueta",
		},
	},
	{
		Category:       "ropa",
		Subcategory:    "calzado",
		RequiresPermit: false,
		Keywords: []string{
			"zapatos", "shoes", "tenis", "sneakers", "botas", "boots", "sandalias",
			"sandals", "zapatillas", "tacones", "heels", "chanclas", "flip flops",
		},
	},
	{
		Category:       "ropa",
		Subcategory:    "accesorios_de_moda",
		RequiresPermit: false,
		Keywords: []string{
			"cartera", "bolso", "handbag", "mochila", "backpack", "cinturon", "belt",
			"gorra", "baseball cap", "sombrero", "lentes de sol", "sunglasses", "billetera",
			"wallet", "bufanda", "scarf",
		},
	},
	{
		Category:       "joyeria",
		Subcategory:    "metales_preciosos",
		RequiresPermit: false,
		Keywords: []string{
			"joyeria", "jewelry", "anillo", "collar", "necklace", "pulsera",
			"bracelet", "aretes", "earrings", "oro 14k", "oro 18k", "gold plated", "plata 925", "sterling silver",
			"diamante", "diamond",
		},
		Restrictions: []string{
			"Metales preciosos deben declarar quilataje y peso",
		},
	},
	{
		Category:       "relojes",
		Subcategory:    "relojes",
		RequiresPermit: false,
		Keywords: []string{
			"reloj de pulsera", "wristwatch", "watch", "reloj", "rolex", "casio",
			"seiko", "correa de reloj",
		},
	},
}
