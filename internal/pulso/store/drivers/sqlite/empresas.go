package sqlite

import (
	"context"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite/gen"
)

type empresasRepo struct {
	q *gen.Queries
}

func (r *empresasRepo) CreateEmpresa(ctx context.Context, e domain.Empresa) error {
	err := r.q.CreateEmpresa(ctx, gen.CreateEmpresaParams{
		ID:                             e.ID,
		Nombre:                         e.Nombre,
		TipoNegocio:                    e.TipoNegocio,
		Ciudad:                         e.Ciudad,
		Telefono:                       e.Telefono,
		PlanActivo:                     e.PlanActivo,
		PropietarioEmail:               e.PropietarioEmail,
		ConfiguracionInicialCompletada: e.ConfiguracionInicialCompletada,
	})
	return mapConstraint(err)
}

func (r *empresasRepo) GetEmpresaByID(ctx context.Context, id string) (domain.Empresa, error) {
	row, err := r.q.GetEmpresaByID(ctx, id)
	if err != nil {
		return domain.Empresa{}, mapNotFound(err)
	}
	return mapEmpresa(row), nil
}

func (r *empresasRepo) GetEmpresaByOwnerEmail(ctx context.Context, email string) (domain.Empresa, error) {
	row, err := r.q.GetEmpresaByOwnerEmail(ctx, email)
	if err != nil {
		return domain.Empresa{}, mapNotFound(err)
	}
	return mapEmpresa(row), nil
}
