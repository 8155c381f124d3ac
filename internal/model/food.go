package model

// Food — запись каталога продуктов. Идентификатор задаёт клиент.
type Food struct {
	ID             int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name           string  `gorm:"not null" json:"name"`
	ServingSize    string  `gorm:"not null" json:"serving_size"` // свободная форма, например "1 cup"
	KcalPerServing int     `gorm:"not null" json:"kcal_per_serving"`
	ProteinGrams   float64 `gorm:"not null" json:"protein_grams"`
	FibreGrams     float64 `gorm:"not null" json:"fibre_grams"`
}
