package analytics

import "slices"

func seed() *Dashboard {
	d := &Dashboard{
		Period: "Jul-Dic 2025",
		KPIs: []KPI{
			{Label: "Revenue Total", Value: "$2.041.820", Subtext: "CLP | Jul-Dic 2025", Icon: "$", Trend: TrendUp},
			{Label: "Ordenes", Value: "48", Subtext: "Ticket promedio: $42.538", Icon: "@", Trend: TrendUp},
			{Label: "Clientes Unicos", Value: "47", Subtext: "2 recurrentes (4.3%)", Icon: "?", Trend: TrendNeutral},
			{Label: "Items Vendidos", Value: "119", Subtext: "~2.5 items por orden", Icon: "+", Trend: TrendUp},
		},
		MonthlyData: []Month{
			{Month: "Jul 2025", Orders: 2, Revenue: 129980},
			{Month: "Ago 2025", Orders: 3, Revenue: 128777},
			{Month: "Sep 2025", Orders: 4, Revenue: 161284},
			{Month: "Oct 2025", Orders: 14, Revenue: 766603},
			{Month: "Nov 2025", Orders: 8, Revenue: 281882},
			{Month: "Dic 2025", Orders: 18, Revenue: 573294},
		},
		TopProducts: []Product{
			{Name: "Hahnemuhle Photo Luster 260g", Revenue: 619160, Qty: 34, Orders: 6},
			{Name: "Felix Schoeller Smooth 200g", Revenue: 536230, Qty: 27, Orders: 11},
			{Name: "Papeles recomendados", Revenue: 312820, Qty: 18, Orders: 10},
			{Name: "Canson Platine Fibre Rag 310g", Revenue: 88980, Qty: 2, Orders: 2},
			{Name: "Felix Schoeller Satin 240g", Revenue: 80470, Qty: 3, Orders: 3},
		},
		Categories: []Category{
			{Name: "Smooth/Mate", Percentage: 44.5, Units: 53},
			{Name: "Luster/Fotografico", Percentage: 30.3, Units: 36},
			{Name: "Otros", Percentage: 16.8, Units: 20},
			{Name: "Satin/Semi-brillo", Percentage: 5.0, Units: 6},
			{Name: "Platine/Baryta", Percentage: 3.4, Units: 4},
		},
		WeekdayData: []Weekday{
			{Day: "Lunes", Orders: 8},
			{Day: "Martes", Orders: 5},
			{Day: "Miercoles", Orders: 10},
			{Day: "Jueves", Orders: 12},
			{Day: "Viernes", Orders: 8},
			{Day: "Sabado", Orders: 3},
			{Day: "Domingo", Orders: 3},
		},
		DiscountCodes: []DiscountCode{
			{Code: "Welcome10-art", Uses: 11, Amount: 26538},
			{Code: "LATINTA10", Uses: 5, Amount: 21841},
			{Code: "PROMO20", Uses: 2, Amount: 28484},
		},
	}
	return d
}

func (d *Dashboard) clone() *Dashboard {
	c := *d
	c.KPIs = slices.Clone(d.KPIs)
	c.MonthlyData = slices.Clone(d.MonthlyData)
	c.TopProducts = slices.Clone(d.TopProducts)
	c.Categories = slices.Clone(d.Categories)
	c.WeekdayData = slices.Clone(d.WeekdayData)
	c.DiscountCodes = slices.Clone(d.DiscountCodes)
	return &c
}
