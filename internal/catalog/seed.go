package catalog

import "zhumagul-shop/internal/models"

// Категории каталога.
const (
	CategoryEvening  = "Вечерние"
	CategoryCasual   = "Повседневные"
	CategoryCocktail = "Коктейльные"
	CategoryOffice   = "Офисные"
	CategorySummer   = "Летние"
)

// SeedProducts - стартовый ассортимент бутика.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "p1",
			Name:        "Вечернее платье «Айгерим»",
			Price:       45000,
			Category:    CategoryEvening,
			Description: "Длинное атласное платье с открытой спиной",
			Image:       "/static/img/p1.jpg",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"черный", "изумрудный"},
		},
		{
			ID:          "p2",
			Name:        "Повседневное платье «Дана»",
			Price:       18000,
			Category:    CategoryCasual,
			Description: "Легкое платье-рубашка из хлопка",
			Image:       "/static/img/p2.jpg",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"бежевый", "голубой"},
		},
		{
			ID:          "p3",
			Name:        "Коктейльное платье «Томирис»",
			Price:       32000,
			Category:    CategoryCocktail,
			Description: "Платье-миди с пайетками",
			Image:       "/static/img/p3.jpg",
			Sizes:       []string{"XS", "S", "M"},
			Colors:      []string{"золотой"},
		},
		{
			ID:          "p4",
			Name:        "Офисное платье «Асель»",
			Price:       24000,
			Category:    CategoryOffice,
			Description: "Строгое платье-футляр до колена",
			Image:       "/static/img/p4.jpg",
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"серый", "темно-синий"},
		},
		{
			ID:          "p5",
			Name:        "Летнее платье «Жансая»",
			Price:       15000,
			Category:    CategorySummer,
			Description: "Сарафан из льна с цветочным принтом",
			Image:       "/static/img/p5.jpg",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"белый", "желтый"},
		},
	}
}

// NewSeededIndex создает индекс, наполненный стартовым ассортиментом.
func NewSeededIndex() *Index {
	idx := NewIndex()
	for _, p := range SeedProducts() {
		// id в сидах уникальны, ошибка здесь невозможна
		_ = idx.Add(p)
	}
	return idx
}
