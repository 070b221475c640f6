package applications

import (
	"context"
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func validTestDraft() Draft {
	return Draft{
		OwnerName:       "Jane Smith",
		Address:         "123 Main St, Springfield",
		Phone:           "555-123-4567",
		DogName:         "Rex",
		Breed:           "labrador",
		Age:             "4",
		VaccinationDate: "2025-06-10",
	}
}

func newTestWizard(d Draft) *Wizard {
	w := NewWizard()
	w.now = func() time.Time { return testNow }
	w.SetDraft(d)
	return w
}

func TestWizard_StartsAtStep1(t *testing.T) {
	w := NewWizard()
	if w.Step() != StepOwner {
		t.Fatalf("expected initial step 1, got %d", w.Step())
	}
}

func TestWizard_Advance_InvalidPhone_StaysAtStep1(t *testing.T) {
	d := validTestDraft()
	d.Phone = "055-123-4567"
	w := newTestWizard(d)

	errs := w.Advance()
	if len(errs) == 0 {
		t.Fatalf("expected field errors")
	}
	if w.Step() != StepOwner {
		t.Fatalf("expected step unchanged at 1, got %d", w.Step())
	}
	if errs[0].Field != FieldPhone {
		t.Fatalf("expected error scoped to phone, got %s", errs[0].Field)
	}
}

func TestWizard_Advance_ValidStep1_MovesToStep2(t *testing.T) {
	w := newTestWizard(validTestDraft())

	if errs := w.Advance(); len(errs) != 0 {
		t.Fatalf("Advance returned errors: %v", errs)
	}
	if w.Step() != StepAddress {
		t.Fatalf("expected step 2, got %d", w.Step())
	}
	// al pasar el paso 1 el teléfono queda canónico en el draft
	if got := w.Draft().Phone; got != "(555) 123-4567" {
		t.Fatalf("expected normalized phone, got %q", got)
	}
}

func TestWizard_Advance_OnlyChecksCurrentStepFields(t *testing.T) {
	d := validTestDraft()
	d.VaccinationDate = "no es fecha" // campo del paso 4
	w := newTestWizard(d)

	// los pasos 1-3 tienen que avanzar igual
	for want := StepAddress; want <= StepVaccination; want++ {
		if errs := w.Advance(); len(errs) != 0 {
			t.Fatalf("Advance to step %d returned errors: %v", want, errs)
		}
		if w.Step() != want {
			t.Fatalf("expected step %d, got %d", want, w.Step())
		}
	}

	// el paso 4 sí rechaza
	if errs := w.Advance(); len(errs) == 0 {
		t.Fatalf("expected vaccination date error at step 4")
	}
	if w.Step() != StepVaccination {
		t.Fatalf("expected step unchanged at 4, got %d", w.Step())
	}
}

func TestWizard_Advance_BoundedAtLastStep(t *testing.T) {
	w := newTestWizard(validTestDraft())

	for i := 0; i < 6; i++ {
		if errs := w.Advance(); len(errs) != 0 {
			t.Fatalf("Advance #%d returned errors: %v", i+1, errs)
		}
	}
	if w.Step() != StepVaccination {
		t.Fatalf("expected step bounded at 4, got %d", w.Step())
	}
}

func TestWizard_Back_Unconditional_BoundedAtStep1(t *testing.T) {
	d := validTestDraft()
	d.Address = "" // inválido, pero Back no valida
	w := newTestWizard(validTestDraft())

	_ = w.Advance()
	w.SetDraft(d)

	w.Back()
	if w.Step() != StepOwner {
		t.Fatalf("expected step 1 after Back, got %d", w.Step())
	}
	w.Back()
	if w.Step() != StepOwner {
		t.Fatalf("expected Back bounded at step 1, got %d", w.Step())
	}
}

func TestWizard_Reset(t *testing.T) {
	w := newTestWizard(validTestDraft())
	_ = w.Advance()
	_ = w.Advance()

	w.Reset()
	if w.Step() != StepOwner {
		t.Fatalf("expected step 1 after Reset, got %d", w.Step())
	}
	if w.Draft() != (Draft{}) {
		t.Fatalf("expected empty draft after Reset, got %#v", w.Draft())
	}
}

func TestWizard_Submit_ResetsToStep1(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)
	w := newTestWizard(validTestDraft())

	// recorrer el formulario hasta el último paso
	for i := 0; i < 3; i++ {
		if errs := w.Advance(); len(errs) != 0 {
			t.Fatalf("Advance #%d returned errors: %v", i+1, errs)
		}
	}

	app, err := w.Submit(context.Background(), svc)
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if app.ID == "" {
		t.Fatalf("expected submitted application with id")
	}

	// el envío no deja estado terminal: vuelve al paso 1, draft vacío
	if w.Step() != StepOwner {
		t.Fatalf("expected step 1 after submit, got %d", w.Step())
	}
	if w.Draft() != (Draft{}) {
		t.Fatalf("expected empty draft after submit, got %#v", w.Draft())
	}

	list, err := svc.ListSubmitted(context.Background())
	if err != nil {
		t.Fatalf("ListSubmitted error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 record, got %d", len(list))
	}
}

func TestWizard_Submit_Failure_KeepsState(t *testing.T) {
	store := newTestStore()
	svc := newTestService(store)

	d := validTestDraft()
	d.Age = "0" // campo del paso 3, inválido
	w := newTestWizard(d)

	if errs := w.Advance(); len(errs) != 0 {
		t.Fatalf("Advance returned errors: %v", errs)
	}
	before := w.Draft()

	_, err := w.Submit(context.Background(), svc)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}

	// falla de envío: paso y draft quedan como estaban
	if w.Step() != StepAddress {
		t.Fatalf("expected step unchanged at 2, got %d", w.Step())
	}
	if w.Draft() != before {
		t.Fatalf("expected draft unchanged after failed submit")
	}
}

func TestStepFields_ReturnsCopy(t *testing.T) {
	fields := StepFields(StepOwner)
	if len(fields) == 0 {
		t.Fatalf("expected fields for step 1")
	}
	fields[0] = "mutado"

	again := StepFields(StepOwner)
	if again[0] != FieldOwnerName {
		t.Fatalf("StepFields leaked internal slice")
	}

	if StepFields(99) != nil {
		t.Fatalf("expected nil for unknown step")
	}
}
