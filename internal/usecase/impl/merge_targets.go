package impl

import (
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"

	"github.com/google/uuid"
)

// pairTargets resolves two distinct customers of the actor's tenant from the loaded rows.
// Rows of other tenants are reported as cross-tenant, absent ids as not found.
func pairTargets(actor entity.Actor, firstID, secondID uuid.UUID, loaded []*entity.Customer) (*entity.Customer, *entity.Customer, error) {
	if firstID == secondID {
		return nil, nil, domainerrors.NewInvalidMergeTargetError(domainerrors.ReasonSelfMerge, firstID, secondID).ForCustomer(firstID)
	}

	byID := make(map[uuid.UUID]*entity.Customer, len(loaded))
	for _, c := range loaded {
		byID[c.ID] = c
	}

	pair := [2]*entity.Customer{}
	for i, id := range []uuid.UUID{firstID, secondID} {
		c, ok := byID[id]
		if !ok {
			return nil, nil, domainerrors.NewInvalidMergeTargetError(domainerrors.ReasonNotFound, firstID, secondID).ForCustomer(id)
		}
		if c.TenantID != actor.TenantID {
			return nil, nil, domainerrors.NewInvalidMergeTargetError(domainerrors.ReasonCrossTenant, firstID, secondID).ForCustomer(id)
		}
		pair[i] = c
	}

	return pair[0], pair[1], nil
}

// mergeTargets additionally requires that neither customer has been merged away.
func mergeTargets(actor entity.Actor, primaryID, secondaryID uuid.UUID, loaded []*entity.Customer) (*entity.Customer, *entity.Customer, error) {
	primary, secondary, err := pairTargets(actor, primaryID, secondaryID, loaded)
	if err != nil {
		return nil, nil, err
	}
	if primary.IsMerged() {
		return nil, nil, domainerrors.NewInvalidMergeTargetError(domainerrors.ReasonPrimaryMerged, primaryID, secondaryID).ForCustomer(primaryID)
	}
	if secondary.IsMerged() {
		return nil, nil, domainerrors.NewInvalidMergeTargetError(domainerrors.ReasonSecondaryMerged, primaryID, secondaryID).ForCustomer(secondaryID)
	}

	return primary, secondary, nil
}
