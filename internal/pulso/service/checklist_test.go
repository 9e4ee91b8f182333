package service

import (
	"context"
	"strings"
	"testing"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/stretchr/testify/require"
)

func TestChecklistSubmit(t *testing.T) {
	t.Parallel()
	svc := &ChecklistService{}
	ctx := context.Background()

	got, err := svc.Submit(ctx, domain.ChecklistDraft{
		Nombre:      "  Apertura de cocina ",
		Categoria:   "Limpieza",
		Descripcion: " Antes de las 9 ",
	})
	require.NoError(t, err)
	require.Equal(t, domain.ChecklistDraft{
		Nombre:      "Apertura de cocina",
		Categoria:   domain.CategoryLimpieza,
		Descripcion: "Antes de las 9",
	}, got)

	for name, draft := range map[string]domain.ChecklistDraft{
		"empty name":       {Nombre: " ", Categoria: domain.CategorySeguridad},
		"unknown category": {Nombre: "Cierre", Categoria: "marketing"},
		"missing category": {Nombre: "Cierre"},
		"long name":        {Nombre: strings.Repeat("a", 121), Categoria: domain.CategoryOperaciones},
		"long description": {Nombre: "Cierre", Categoria: domain.CategoryOperaciones, Descripcion: strings.Repeat("a", 2001)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Submit(ctx, draft)
			require.ErrorIs(t, err, ErrInvalidChecklist)
		})
	}
}

func TestChecklistForm(t *testing.T) {
	t.Parallel()
	svc := &ChecklistService{}

	form := svc.Form(false)
	require.False(t, form.Editable)
	require.True(t, svc.Form(true).Editable)
	require.Len(t, form.Categories, 4)
	for _, c := range form.Categories {
		require.True(t, c.Valid(), c)
	}

	// The advertised limits are the ones Submit enforces.
	_, err := svc.Submit(context.Background(), domain.ChecklistDraft{
		Nombre: strings.Repeat("ñ", form.MaxNombre), Categoria: form.Categories[0],
		Descripcion: strings.Repeat("a", form.MaxDescripcion),
	})
	require.NoError(t, err)
}
