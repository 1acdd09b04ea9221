package category

// Supported category names. General passes everything through unfiltered.
const (
	Technology = "technology"
	Business   = "business"
	Startups   = "startups"
	General    = "general"
)

// Keywords holds the two language variants used for matching. Article text
// from the configured sources is a mix of English and Spanish, so both
// lists are always consulted together.
type Keywords struct {
	English []string
	Spanish []string
}

func defaultKeywords() map[string]Keywords {
	return map[string]Keywords{
		Technology: {
			English: []string{
				"tech", "software", "hardware", "artificial intelligence",
				"machine learning", "app", "cyber", "robot",
				"chip", "semiconductor", "cloud", "internet", "gadget",
				"smartphone", "crypto", "blockchain", "data center",
				"quantum", "browser", "open source",
			},
			Spanish: []string{
				"tecnología", "tecnologia", "inteligencia artificial",
				"ciberseguridad", "aplicación", "aplicacion", "digital",
				"innovación", "innovacion", "dispositivo", "computación",
				"computacion", "teléfono", "telefono", "criptomoneda",
				"software", "videojuego", "redes sociales",
			},
		},
		Business: {
			English: []string{
				"business", "market", "economy", "investment", "revenue",
				"merger", "acquisition", "ipo", "stock", "earnings",
				"finance", "bank", "trade", "inflation", "profit",
				"quarterly", "billion", "deal",
			},
			Spanish: []string{
				"negocio", "empresa", "mercado", "economía", "economia",
				"inversión", "inversion", "finanzas", "banco", "bolsa",
				"ganancias", "comercio", "inflación", "inflacion",
				"millones", "adquisición", "adquisicion", "acuerdo",
			},
		},
		Startups: {
			English: []string{
				"startup", "founder", "venture", "seed round", "series a",
				"series b", "funding", "accelerator", "incubator",
				"unicorn", "pitch", "raised", "vc firm", "pre-seed",
			},
			Spanish: []string{
				"emprendedor", "emprendimiento", "startup",
				"ronda de inversión", "ronda de inversion",
				"capital de riesgo", "capital semilla", "aceleradora",
				"incubadora", "fundador", "levantó", "levanto",
				"unicornio",
			},
		},
	}
}
