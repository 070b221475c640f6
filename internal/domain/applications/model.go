package applications

import "time"

// Status del registro una vez enviado.
// Hoy solo existe "submitted"; queda tipado para cuando haya revisión/aprobación.
type Status string

const (
	StatusSubmitted Status = "submitted"
)

// DogBreed define las razas de perro principales.
// Es una lista sugerida para la UI: el campo breed acepta texto libre
// (solo acotado por longitud), acá no se valida contra este enum.
type DogBreed string

const (
	BreedLabrador        DogBreed = "labrador"
	BreedGoldenRetriever DogBreed = "golden_retriever"
	BreedGermanShepherd  DogBreed = "german_shepherd"
	BreedBulldog         DogBreed = "bulldog"
	BreedPoodle          DogBreed = "poodle"
	BreedChihuahua       DogBreed = "chihuahua"
	BreedBeagle          DogBreed = "beagle"
	BreedOther           DogBreed = "other"
)

// KnownBreeds devuelve la lista sugerida en orden estable.
func KnownBreeds() []DogBreed {
	return []DogBreed{
		BreedLabrador,
		BreedGoldenRetriever,
		BreedGermanShepherd,
		BreedBulldog,
		BreedPoodle,
		BreedChihuahua,
		BreedBeagle,
		BreedOther,
	}
}

// Draft es la solicitud de licencia en progreso, todavía sin enviar.
// Todos los campos son strings tal como vienen del formulario; phone queda
// normalizado a "(XXX) XXX-XXXX" al pasar la validación del paso.
// Se sobreescribe completo en cada guardado (no hay merge).
type Draft struct {
	OwnerName string `json:"owner_name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`

	DogName string `json:"dog_name"`
	Breed   string `json:"breed"`
	Age     string `json:"age"` // entero 1–30, codificado como string

	VaccinationDate string `json:"vaccination_date"` // YYYY-MM-DD
}

// Application es el registro inmutable que se genera al enviar.
// Una vez agregado a la lista persistida nunca se modifica.
type Application struct {
	ID string `json:"id"`

	Draft

	SubmittedAt time.Time `json:"submitted_at"`
	Status      Status    `json:"status"`
}
