package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"tucomercio/internal/domain/entity"
	"tucomercio/internal/domain/repository"
	"tucomercio/pkg/errors"
)

type firestorePlanRepository struct {
	client *firestore.Client
}

func NewFirestorePlanRepository(client *firestore.Client) repository.PlanRepository {
	return &firestorePlanRepository{
		client: client,
	}
}

func (r *firestorePlanRepository) List(ctx context.Context) ([]*entity.Plan, error) {
	iter := r.client.Collection("plans").Documents(ctx)
	defer iter.Stop()

	var plans []*entity.Plan
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapFirestoreError(err, "Plan", "iterate plans")
		}

		var plan entity.Plan
		if err := doc.DataTo(&plan); err != nil {
			return nil, errors.Internal("Failed to parse plan data", err)
		}
		plan.ID = doc.Ref.ID
		plans = append(plans, &plan)
	}

	return plans, nil
}
