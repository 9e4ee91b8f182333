package domain

// ChecklistCategory groups checklists by operational area.
type ChecklistCategory string

const (
	CategoryLimpieza        ChecklistCategory = "limpieza"
	CategorySeguridad       ChecklistCategory = "seguridad"
	CategoryAtencionCliente ChecklistCategory = "atencion_cliente"
	CategoryOperaciones     ChecklistCategory = "operaciones"
)

// ChecklistCategories lists the known categories in form order.
func ChecklistCategories() []ChecklistCategory {
	return []ChecklistCategory{CategoryLimpieza, CategorySeguridad, CategoryAtencionCliente, CategoryOperaciones}
}

// Valid reports whether c is a known category.
func (c ChecklistCategory) Valid() bool {
	switch c {
	case CategoryLimpieza, CategorySeguridad, CategoryAtencionCliente, CategoryOperaciones:
		return true
	}
	return false
}

// ChecklistDraft is an unsaved checklist as entered in the form.
type ChecklistDraft struct {
	Nombre      string
	Categoria   ChecklistCategory
	Descripcion string
}

// ChecklistForm describes the new checklist form. A form that is not
// Editable is shown read-only.
type ChecklistForm struct {
	Editable       bool
	Categories     []ChecklistCategory
	MaxNombre      int
	MaxDescripcion int
}
