package applications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"dog-license-application/internal/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	store Store
	log   logger.Logger
	now   func() time.Time
}

func NewService(store Store, log logger.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// LoadDraft lee el draft guardado. Sin draft previo devuelve uno vacío
// sin error. Data guardada corrupta se loguea y se ignora (no fatal):
// para el caller es lo mismo que no tener draft.
func (s *Service) LoadDraft(ctx context.Context) (Draft, error) {
	b, err := s.store.Get(ctx, DraftKey)
	if errors.Is(err, ErrNotFound) {
		return Draft{}, nil
	}
	if err != nil {
		return Draft{}, fmt.Errorf("load draft: %w", err)
	}

	var d Draft
	if err := json.Unmarshal(b, &d); err != nil {
		s.log.Warn("stored draft is malformed, ignoring", map[string]any{
			"key":   DraftKey,
			"error": err.Error(),
		})
		return Draft{}, nil
	}
	return d, nil
}

// SaveDraft sobreescribe el draft completo (sin merge).
func (s *Service) SaveDraft(ctx context.Context, d Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	if err := s.store.Set(ctx, DraftKey, b); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *Service) ClearDraft(ctx context.Context) error {
	if err := s.store.Remove(ctx, DraftKey); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// Submit valida el draft completo y, si pasa, genera el identificador,
// agrega el registro a la lista persistida (read-modify-write de la
// lista entera) y borra el draft. Fallas de validación vuelven como
// *ValidationError con los errores por campo; nada se persiste.
func (s *Service) Submit(ctx context.Context, d Draft) (Application, error) {
	now := s.now()

	if errs := ValidateDraft(d, now); len(errs) > 0 {
		return Application{}, &ValidationError{Fields: errs}
	}

	// Teléfono queda canónico en el registro aunque el draft viniera crudo.
	phone, _ := NormalizePhone(d.Phone)
	d.Phone = phone

	app := Application{
		ID:          newApplicationID(now),
		Draft:       d,
		SubmittedAt: now,
		Status:      StatusSubmitted,
	}

	list, err := s.ListSubmitted(ctx)
	if err != nil {
		return Application{}, fmt.Errorf("submit: %w", err)
	}
	list = append(list, app)

	b, err := json.Marshal(list)
	if err != nil {
		return Application{}, fmt.Errorf("submit: %w", err)
	}
	if err := s.store.Set(ctx, ApplicationsKey, b); err != nil {
		return Application{}, fmt.Errorf("submit: append application: %w", err)
	}

	// El registro ya quedó persistido: si borrar el draft falla, no se
	// intenta recuperación parcial; un draft viejo es benigno.
	if err := s.store.Remove(ctx, DraftKey); err != nil {
		s.log.Warn("could not clear draft after submit", map[string]any{
			"id":    app.ID,
			"error": err.Error(),
		})
	}

	s.log.Info("application submitted", map[string]any{
		"id":  app.ID,
		"dog": app.DogName,
	})
	return app, nil
}

// ListSubmitted devuelve la lista persistida de solicitudes enviadas.
// Sin lista previa devuelve vacío; lista corrupta se loguea y se
// arranca de cero (mismo criterio que el draft).
func (s *Service) ListSubmitted(ctx context.Context) ([]Application, error) {
	b, err := s.store.Get(ctx, ApplicationsKey)
	if errors.Is(err, ErrNotFound) {
		return []Application{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	var list []Application
	if err := json.Unmarshal(b, &list); err != nil {
		s.log.Warn("stored application list is malformed, starting empty", map[string]any{
			"key":   ApplicationsKey,
			"error": err.Error(),
		})
		return []Application{}, nil
	}
	return list, nil
}

// newApplicationID genera un identificador razonablemente único:
// componente temporal + componente aleatorio tomado de un UUID.
// Formato: DL-20260115T103000-a1b2c3
func newApplicationID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("DL-%s-%s", now.UTC().Format("20060102T150405"), random)
}
