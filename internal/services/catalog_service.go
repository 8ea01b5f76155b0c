package services

import (
	"context"
	"fmt"

	"favorites_api/internal/apperrors"
	"favorites_api/internal/models"

	"github.com/rs/zerolog/log"
)

// CreateCatalogItemRequest is the body for creating a planet or a character.
type CreateCatalogItemRequest struct {
	Name   string  `json:"name" binding:"required"`
	ImgURL *string `json:"img_url"`
}

func (r *CreateCatalogItemRequest) Validate() error {
	return requireText("name", models.Some(r.Name))
}

// UpdateCatalogItemRequest is a partial update. img_url may be set to null.
type UpdateCatalogItemRequest struct {
	Name   models.Optional[string]  `json:"name"`
	ImgURL models.Optional[*string] `json:"img_url"`
}

func (r *UpdateCatalogItemRequest) Validate() error {
	return requireText("name", r.Name)
}

type PlanetService struct {
	planets PlanetStore
}

func NewPlanetService(planets PlanetStore) *PlanetService {
	return &PlanetService{planets: planets}
}

func (s *PlanetService) ListPlanets(ctx context.Context) ([]models.Planet, error) {
	planets, err := s.planets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list planets: %w", err)
	}
	return planets, nil
}

func (s *PlanetService) CreatePlanet(ctx context.Context, req CreateCatalogItemRequest) (*models.Planet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	planet := &models.Planet{Name: req.Name, ImgURL: req.ImgURL}
	if err := s.planets.Create(ctx, planet); err != nil {
		return nil, fmt.Errorf("create planet: %w", err)
	}

	log.Ctx(ctx).Info().Int64("planet_id", planet.ID).Msg("planet created")
	return planet, nil
}

func (s *PlanetService) GetPlanet(ctx context.Context, id int64) (*models.Planet, error) {
	planet, err := s.planets.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find planet %d: %w", id, err)
	}
	if planet == nil {
		return nil, apperrors.NewNotFound("Planet not found")
	}
	return planet, nil
}

func (s *PlanetService) UpdatePlanet(ctx context.Context, id int64, req UpdateCatalogItemRequest) (*models.Planet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	planet, err := s.GetPlanet(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name.Set {
		planet.Name = req.Name.Value
	}
	if req.ImgURL.Set {
		planet.ImgURL = req.ImgURL.Value
	}

	if err := s.planets.Update(ctx, planet); err != nil {
		return nil, fmt.Errorf("update planet %d: %w", id, err)
	}
	return planet, nil
}

func (s *PlanetService) DeletePlanet(ctx context.Context, id int64) error {
	if _, err := s.GetPlanet(ctx, id); err != nil {
		return err
	}
	if err := s.planets.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete planet %d: %w", id, err)
	}
	return nil
}

type CharacterService struct {
	characters CharacterStore
}

func NewCharacterService(characters CharacterStore) *CharacterService {
	return &CharacterService{characters: characters}
}

func (s *CharacterService) ListCharacters(ctx context.Context) ([]models.Character, error) {
	characters, err := s.characters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return characters, nil
}

func (s *CharacterService) CreateCharacter(ctx context.Context, req CreateCatalogItemRequest) (*models.Character, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	character := &models.Character{Name: req.Name, ImgURL: req.ImgURL}
	if err := s.characters.Create(ctx, character); err != nil {
		return nil, fmt.Errorf("create character: %w", err)
	}

	log.Ctx(ctx).Info().Int64("character_id", character.ID).Msg("character created")
	return character, nil
}

func (s *CharacterService) GetCharacter(ctx context.Context, id int64) (*models.Character, error) {
	character, err := s.characters.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find character %d: %w", id, err)
	}
	if character == nil {
		return nil, apperrors.NewNotFound("Character not found")
	}
	return character, nil
}

func (s *CharacterService) UpdateCharacter(ctx context.Context, id int64, req UpdateCatalogItemRequest) (*models.Character, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	character, err := s.GetCharacter(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name.Set {
		character.Name = req.Name.Value
	}
	if req.ImgURL.Set {
		character.ImgURL = req.ImgURL.Value
	}

	if err := s.characters.Update(ctx, character); err != nil {
		return nil, fmt.Errorf("update character %d: %w", id, err)
	}
	return character, nil
}

func (s *CharacterService) DeleteCharacter(ctx context.Context, id int64) error {
	if _, err := s.GetCharacter(ctx, id); err != nil {
		return err
	}
	if err := s.characters.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete character %d: %w", id, err)
	}
	return nil
}
