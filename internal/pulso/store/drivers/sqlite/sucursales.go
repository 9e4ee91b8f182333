package sqlite

import (
	"context"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite/gen"
)

type sucursalesRepo struct {
	q *gen.Queries
}

func (r *sucursalesRepo) CreateSucursal(ctx context.Context, s domain.Sucursal) error {
	err := r.q.CreateSucursal(ctx, gen.CreateSucursalParams{
		ID:                s.ID,
		EmpresaID:         s.EmpresaID,
		Nombre:            s.Nombre,
		Direccion:         s.Direccion,
		Ciudad:            s.Ciudad,
		Telefono:          s.Telefono,
		CapacidadPersonas: int64(s.CapacidadPersonas),
		NumeroMesas:       int64(s.NumeroMesas),
		HorarioApertura:   s.HorarioApertura,
		HorarioCierre:     s.HorarioCierre,
		EsPrincipal:       s.EsPrincipal,
		Activa:            s.Activa,
	})
	return mapConstraint(err)
}

func (r *sucursalesRepo) GetSucursalByID(ctx context.Context, id string) (domain.Sucursal, error) {
	row, err := r.q.GetSucursalByID(ctx, id)
	if err != nil {
		return domain.Sucursal{}, mapNotFound(err)
	}
	return mapSucursal(row), nil
}

func (r *sucursalesRepo) ListSucursalesByEmpresa(ctx context.Context, empresaID string) ([]domain.Sucursal, error) {
	rows, err := r.q.ListSucursalesByEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Sucursal, len(rows))
	for i, row := range rows {
		out[i] = mapSucursal(row)
	}
	return out, nil
}
