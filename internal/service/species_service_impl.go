package service

import (
	"context"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/alexanderramin/sprout/internal/repository"
)

type speciesService struct {
	species repository.SpeciesRepo
}

func NewSpeciesService(species repository.SpeciesRepo) SpeciesService {
	return &speciesService{species: species}
}

func (s *speciesService) List(ctx context.Context, query string) ([]domain.Species, error) {
	return s.species.List(ctx, query)
}

func (s *speciesService) Get(ctx context.Context, name string) (*domain.Species, error) {
	return s.species.GetByName(ctx, name)
}
