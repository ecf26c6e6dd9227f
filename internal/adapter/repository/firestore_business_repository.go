package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"tucomercio/internal/domain/entity"
	"tucomercio/internal/domain/repository"
	"tucomercio/pkg/errors"
)

type firestoreBusinessRepository struct {
	client *firestore.Client
}

func NewFirestoreBusinessRepository(client *firestore.Client) repository.BusinessRepository {
	return &firestoreBusinessRepository{
		client: client,
	}
}

func (r *firestoreBusinessRepository) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	doc, err := r.client.Collection("businesses").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Business", err)
		}
		return nil, mapFirestoreError(err, "Business", "get business")
	}

	var business entity.Business
	if err := doc.DataTo(&business); err != nil {
		return nil, errors.Internal("Failed to parse business data", err)
	}
	business.ID = doc.Ref.ID

	return &business, nil
}

func (r *firestoreBusinessRepository) List(ctx context.Context) ([]*entity.Business, error) {
	iter := r.client.Collection("businesses").Documents(ctx)
	defer iter.Stop()

	var businesses []*entity.Business
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapFirestoreError(err, "Business", "iterate businesses")
		}

		var business entity.Business
		if err := doc.DataTo(&business); err != nil {
			return nil, errors.Internal("Failed to parse business data", err)
		}
		business.ID = doc.Ref.ID
		businesses = append(businesses, &business)
	}

	return businesses, nil
}
