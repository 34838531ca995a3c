package commands

import (
	"context"

	"orderservice/internal/core/domain/model/partner"
)

// UpdatePartnerCommandHandler applies administrative changes to a partner.
// Loads the partner under a row lock so the override does not race with
// concurrent credit movements from order activity.
type UpdatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerCommandHandler creates a handler for partner updates.
// Requires a PartnerUoWFactory for transactional persistence.
func NewUpdatePartnerCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerCommandHandler {
	return UpdatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner update command.
// Returns the updated partner on success.
func (h *UpdatePartnerCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePartnerCommand,
) (*partner.Partner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	existingPartner, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	if err = existingPartner.Update(cmd.Name(), cmd.CreditLimit()); err != nil {
		return nil, err
	}

	if err = partnerRepo.Update(ctx, existingPartner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existingPartner, nil
}
