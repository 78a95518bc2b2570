package pets

import "context"

// RequireOwner valida que userID sea el dueño de la mascota. Cada colección
// de salud/diario pertenece a una mascota y solo se muta a través de su dueño;
// este helper concentra ese chequeo para los handlers de otros módulos.
func (s *Service) RequireOwner(ctx context.Context, petID, userID string) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerUserID != userID {
		return Pet{}, ErrForbidden
	}
	return p, nil
}
