package models

import "time"

// AnimalType is the closed set of catalog categories.
type AnimalType string

const (
	AnimalTypeAve      AnimalType = "ave"
	AnimalTypeMamifero AnimalType = "mamifero"
	AnimalTypeAnfibio  AnimalType = "anfibio"
	AnimalTypeReptil   AnimalType = "reptil"
	AnimalTypePez      AnimalType = "pez"
)

// AnimalTypes lists every valid AnimalType in display order.
var AnimalTypes = []AnimalType{
	AnimalTypeAve,
	AnimalTypeMamifero,
	AnimalTypeAnfibio,
	AnimalTypeReptil,
	AnimalTypePez,
}

// Valid reports whether t is one of AnimalTypes.
func (t AnimalType) Valid() bool {
	for _, v := range AnimalTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Animal is a catalog entry. ID and CreatedAt are assigned by the store.
type Animal struct {
	ID           int64      `json:"id"`
	Nombre       string     `json:"nombre"`
	Tipo         AnimalType `json:"tipo"`
	Descripcion  string     `json:"descripcion"`
	WikipediaURL string     `json:"wikipediaUrl"`
	ImagenURL    string     `json:"imagenUrl"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// NewAnimal carries the client-supplied fields of an Animal.
type NewAnimal struct {
	Nombre       string     `json:"nombre"`
	Tipo         AnimalType `json:"tipo"`
	Descripcion  string     `json:"descripcion"`
	WikipediaURL string     `json:"wikipediaUrl"`
	ImagenURL    string     `json:"imagenUrl"`
}
