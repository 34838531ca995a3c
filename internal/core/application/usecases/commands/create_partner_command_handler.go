package commands

import (
	"context"
	"errors"

	"orderservice/internal/core/domain/model/partner"
	"orderservice/internal/pkg/errs"
)

// CreatePartnerCommandHandler registers new partners.
// Partner names are unique; registration fails with an already-exists error
// when the name is taken.
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewCreatePartnerCommandHandler creates a handler for partner registration.
// Requires a PartnerUoWFactory for transactional persistence.
func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partner registration command.
// Returns the created partner on success.
func (h *CreatePartnerCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePartnerCommand,
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

	existing, err := partnerRepo.GetByName(ctx, cmd.Name())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewObjectAlreadyExistsError("name", cmd.Name())
	}

	newPartner, err := partner.NewPartner(cmd.PartnerID(), cmd.Name(), cmd.CreditLimit())
	if err != nil {
		return nil, err
	}

	if err = partnerRepo.Add(ctx, newPartner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newPartner, nil
}
