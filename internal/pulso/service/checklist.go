package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/pkg/slogx"
)

const (
	maxChecklistNombre      = 120
	maxChecklistDescripcion = 2000
)

// ChecklistService accepts checklist drafts. Drafts are validated and
// logged; nothing is stored yet.
type ChecklistService struct{}

// Form describes the new checklist form with the limits Submit enforces.
func (s *ChecklistService) Form(editable bool) domain.ChecklistForm {
	return domain.ChecklistForm{
		Editable:       editable,
		Categories:     domain.ChecklistCategories(),
		MaxNombre:      maxChecklistNombre,
		MaxDescripcion: maxChecklistDescripcion,
	}
}

// Submit normalises and validates a draft and returns it.
func (s *ChecklistService) Submit(ctx context.Context, draft domain.ChecklistDraft) (domain.ChecklistDraft, error) {
	draft.Nombre = strings.TrimSpace(draft.Nombre)
	draft.Descripcion = strings.TrimSpace(draft.Descripcion)
	draft.Categoria = domain.ChecklistCategory(strings.ToLower(strings.TrimSpace(string(draft.Categoria))))

	switch {
	case draft.Nombre == "":
		return domain.ChecklistDraft{}, fmt.Errorf("%w: nombre is required", ErrInvalidChecklist)
	case utf8.RuneCountInString(draft.Nombre) > maxChecklistNombre:
		return domain.ChecklistDraft{}, fmt.Errorf("%w: nombre exceeds %d characters", ErrInvalidChecklist, maxChecklistNombre)
	case !draft.Categoria.Valid():
		return domain.ChecklistDraft{}, fmt.Errorf("%w: unknown categoria %q", ErrInvalidChecklist, draft.Categoria)
	case utf8.RuneCountInString(draft.Descripcion) > maxChecklistDescripcion:
		return domain.ChecklistDraft{}, fmt.Errorf("%w: descripcion exceeds %d characters", ErrInvalidChecklist, maxChecklistDescripcion)
	}

	slogx.FromContext(ctx).Info("checklist draft submitted",
		slog.String("nombre", draft.Nombre),
		slog.String("categoria", string(draft.Categoria)),
		slog.String("descripcion", draft.Descripcion),
	)
	return draft, nil
}
