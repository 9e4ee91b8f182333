package domain

import "time"

// DefaultSucursalNombre names the branch the onboarding wizard creates.
const DefaultSucursalNombre = "Sucursal Principal"

// Sucursal is a branch of a company. Each company has exactly one main
// branch, created with the company.
type Sucursal struct {
	ID                string
	EmpresaID         string
	Nombre            string
	Direccion         string
	Ciudad            string
	Telefono          string
	CapacidadPersonas int
	NumeroMesas       int
	HorarioApertura   string
	HorarioCierre     string
	EsPrincipal       bool
	Activa            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
