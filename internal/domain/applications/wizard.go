package applications

import (
	"context"
	"time"
)

// Pasos del formulario. Cuatro pantallas secuenciales.
const (
	StepOwner       = 1 // nombre y teléfono del dueño
	StepAddress     = 2 // domicilio
	StepDog         = 3 // datos del perro
	StepVaccination = 4 // vacunación y envío

	firstStep = StepOwner
	lastStep  = StepVaccination
)

// stepFields lista explícitamente qué campos pertenecen a cada paso.
// Advance valida únicamente los campos del paso actual.
var stepFields = map[int][]string{
	StepOwner:       {FieldOwnerName, FieldPhone},
	StepAddress:     {FieldAddress},
	StepDog:         {FieldDogName, FieldBreed, FieldAge},
	StepVaccination: {FieldVaccinationDate},
}

// StepFields devuelve los campos del paso (copia, para que la UI no
// pueda tocar la tabla). Paso fuera de rango devuelve nil.
func StepFields(step int) []string {
	fields, ok := stepFields[step]
	if !ok {
		return nil
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// FieldOrder es el orden canónico de los campos (orden de pantalla).
var FieldOrder = []string{
	FieldOwnerName,
	FieldPhone,
	FieldAddress,
	FieldDogName,
	FieldBreed,
	FieldAge,
	FieldVaccinationDate,
}

// Wizard es la máquina de estados del formulario: paso actual + draft.
// Estado plano, sin reactividad: la UI llama transiciones explícitas.
type Wizard struct {
	step  int
	draft Draft

	now func() time.Time
}

func NewWizard() *Wizard {
	return &Wizard{
		step: firstStep,
		now:  time.Now,
	}
}

func (w *Wizard) Step() int {
	return w.step
}

func (w *Wizard) Draft() Draft {
	return w.draft
}

// SetDraft reemplaza el draft completo. Cada cambio de campo en la UI
// pasa por acá (sobreescritura total, sin merge).
func (w *Wizard) SetDraft(d Draft) {
	w.draft = d
}

// Advance valida solo los campos del paso actual. Si alguno falla,
// el paso no cambia y devuelve los errores para mostrar inline.
// Si pasa, el teléfono queda normalizado en el draft y avanza un paso
// (acotado en el último).
func (w *Wizard) Advance() []FieldError {
	fields := stepFields[w.step]
	if errs := checkFields(fields, w.draft, w.now()); len(errs) > 0 {
		return errs
	}

	for _, f := range fields {
		if f == FieldPhone {
			// ya validó, NormalizePhone no puede fallar acá
			normalized, _ := NormalizePhone(w.draft.Phone)
			w.draft.Phone = normalized
		}
	}

	if w.step < lastStep {
		w.step++
	}
	return nil
}

// Back retrocede un paso sin validar nada, acotado en el primero.
func (w *Wizard) Back() {
	if w.step > firstStep {
		w.step--
	}
}

// Reset vuelve al paso 1 con draft vacío. Se usa después de enviar.
func (w *Wizard) Reset() {
	w.step = firstStep
	w.draft = Draft{}
}

// Submit envía el draft actual a través del servicio. No hay estado
// terminal: si el envío es exitoso la máquina vuelve al paso 1 con
// draft vacío; si falla (validación o storage) el estado no cambia
// para que el usuario pueda reintentar.
func (w *Wizard) Submit(ctx context.Context, svc *Service) (Application, error) {
	app, err := svc.Submit(ctx, w.draft)
	if err != nil {
		return Application{}, err
	}
	w.Reset()
	return app, nil
}
