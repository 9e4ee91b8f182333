package domain

import "time"

// Empresa is a company (tenant). Each owner email owns at most one.
type Empresa struct {
	ID                             string
	Nombre                         string
	TipoNegocio                    string
	Ciudad                         string
	Telefono                       string
	PlanActivo                     string
	PropietarioEmail               string
	ConfiguracionInicialCompletada bool
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}
