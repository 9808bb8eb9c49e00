package strategies

import "slices"

var seed = []Strategy{
	{
		ID:          "papel-recomendado",
		Title:       "Recomendacion de Papel Segun Uso",
		Icon:        "🎨",
		Color:       ColorGreen,
		Description: "Cuando un cliente pregunte que papel usar, analizar el tipo de imagen (foto, ilustracion, arte) y recomendar el papel ideal. Smooth para fotos casuales, Luster para colores vibrantes, Platine para exposiciones museo.",
		Example: Example{
			Cliente: "Hola, quiero imprimir unas fotos de mi viaje, que papel me recomiendas?",
			Agente:  "Hola! Para fotos de viaje te recomiendo el Felix Schoeller Smooth 200g, es nuestro mas vendido. Tiene acabado mate profesional, colores precisos y excelente relacion calidad-precio. Si buscas colores mas vibrantes y un toque semi-brillante, el Luster 260g es ideal. Que tamano estas pensando?",
		},
		IsActive: true,
	},
	{
		ID:          "upselling-tamano",
		Title:       "Up-Selling: Tamano de Impresion",
		Icon:        "📐",
		Color:       ColorBlue,
		Description: "Para clientes que piden tamanos pequenos, sugerir tamanos mayores explicando el impacto visual. Precio por cm2 es mejor en tamanos grandes. Mencionar que una foto de viaje merece estar en grande.",
		Example: Example{
			Cliente: "Cuanto sale imprimir en 20x30?",
			Agente:  "El 20x30 en Smooth esta $16.490. Pero te cuento: el 30x40 esta $24.990 y es donde realmente luce una foto. Por $8.500 mas tenes casi el doble de tamano y el impacto visual es otro nivel. Muchos clientes empiezan con 20x30 y despues vuelven por el 30x40. Cual prefieres?",
		},
		IsActive: true,
	},
	{
		ID:          "cross-selling-multiples",
		Title:       "Cross-Selling: Pack de Impresiones",
		Icon:        "📦",
		Color:       ColorPurple,
		Description: "Ofrecer descuento por multiples impresiones. 3+ fotos = 10% off, 5+ fotos = 15% off. Mencionar que muchos clientes hacen series o galeria de pared.",
		Example: Example{
			Cliente: "Quiero imprimir 2 fotos",
			Agente:  "Perfecto! Te cuento que si agregas una tercera foto, te hacemos 10% de descuento en el total. Muchos clientes arman series de 3 o 5 fotos para crear una galeria de pared. El efecto es espectacular. Tenes mas fotos del mismo viaje o proyecto?",
		},
		IsActive: true,
	},
	{
		ID:          "premium-museo",
		Title:       "Up-Selling: Linea Museo (Fotografos Pro)",
		Icon:        "🏛️",
		Color:       ColorOrange,
		Description: "Para fotografos profesionales o artistas, ofrecer papeles 100% algodon (Canson Platine, Etching Rag). Destacar durabilidad museo (+100 anos), certificaciones, ideal para venta de obra o exposiciones.",
		Example: Example{
			Cliente: "Soy fotografo y necesito imprimir para una exposicion",
			Agente:  "Para exposicion te recomiendo nuestra Linea Museo. El Canson Platine Fibre Rag 310g es 100% algodon, durabilidad certificada +100 anos, y es el estandar en galerias internacionales. El acabado baryta tiene ese brillo sutil de las fotos analogicas. Tenemos el Etching Rag para texturas mas artisticas. Cual es tu estilo?",
		},
		IsActive: true,
	},
	{
		ID:          "primera-compra",
		Title:       "Bienvenida Primera Compra (Welcome10-art)",
		Icon:        "🎁",
		Color:       ColorPink,
		Description: "Para clientes nuevos, ofrecer el codigo Welcome10-art (10% descuento). Destacar que es bienvenida al mundo fine art. Mencionar garantia de satisfaccion.",
		Example: Example{
			Cliente: "Es mi primera vez comprando impresiones fine art",
			Agente:  "Bienvenido al mundo fine art! Te cuento que para tu primera compra tenes el codigo Welcome10-art que te da 10% de descuento. Ademas, si no quedas 100% satisfecho con la calidad, te la reimprimimos sin costo. Nuestro papel mas popular para empezar es el Smooth 200g. En que tamano pensabas?",
		},
		IsActive: true,
	},
	{
		ID:          "urgencia-stock",
		Title:       "Cierre: Tiempo de Produccion",
		Icon:        "⏰",
		Color:       ColorCyan,
		Description: "Crear urgencia mencionando tiempos de produccion (2-3 dias habiles) y que en fechas especiales (Navidad, Dia de la Madre) aumenta la demanda. Si es regalo, ofrecer priorizacion.",
		Example: Example{
			Cliente: "Lo voy a pensar...",
			Agente:  "Dale, sin apuro! Te comento que el tiempo de produccion es 2-3 dias habiles. Si es para regalo o fecha especial, avisame y lo priorizamos. Ahora en Diciembre tenemos bastante demanda por regalos de Navidad. Cualquier duda me escribis!",
		},
		IsActive: true,
	},
	{
		ID:          "fidelizacion",
		Title:       "Post-Venta: Fidelizacion Cliente",
		Icon:        "💜",
		Color:       ColorRed,
		Description: "Despues de la entrega, hacer seguimiento. Preguntar si llego bien, si el color es el esperado, ofrecer codigo LATINTA10 para proxima compra. Objetivo: aumentar tasa de recompra del 4.3%.",
		Example: Example{
			Cliente: "Ya recibi las fotos, quedaron increibles!",
			Agente:  "Que alegria saber eso! Nos encanta ver como quedan las fotos impresas. Si queres, mandanos una foto de como las pusiste en tu espacio, nos encanta verlas! Para tu proxima impresion tenes el codigo LATINTA10 con 10% off. Y si tenes amigos fotografos, pasales el codigo Welcome10-art. Gracias por confiar en La Tinta!",
		},
		IsActive: true,
	},
	{
		ID:          "objeciones-precio",
		Title:       "Manejo Objeciones: Precio vs Calidad",
		Icon:        "🛡️",
		Color:       ColorOrange,
		Description: "Si el cliente compara con impresion comercial barata, explicar diferencia: papeles fine art duran +50 anos sin decolorar, tintas pigmentadas, colores precisos ICC, papel libre de acido. Una foto especial merece calidad museo.",
		Example: Example{
			Cliente: "Vi que en otras partes sale mas barato",
			Agente:  "Entiendo! La diferencia es que nosotros usamos papeles fine art certificados (no papel fotografico comun) con tintas pigmentadas que duran +50 anos sin decolorar. Los papeles baratos se amarillan en 5-10 anos. Si es una foto especial, merece calidad museo. Muchos clientes prueban con una foto y despues vuelven por mas.",
		},
		IsActive: true,
	},
}

// Seed returns a copy of the built-in strategy list.
func Seed() []Strategy {
	return slices.Clone(seed)
}
