package mongo

import (
	"context"

	"github.com/pkg/errors"
	"gitlab.com/zlyzol/settlemath/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) GetCalculations(limit int) (models.Calculations, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}
	findOptions.SetSort(bson.D{{Key: "time", Value: -1}})
	results := make(models.Calculations, 0, 100)
	cur, err := m.calculations().Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return results, errors.Wrap(err, "failed to read calculations from mongo")
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var elem models.Calculation
		err := cur.Decode(&elem)
		if err != nil {
			return results, errors.Wrap(err, "failed to decode calculation from mongo")
		}
		results = append(results, elem)
	}
	if err := cur.Err(); err != nil {
		return results, errors.Wrap(err, "failed to read calculations from mongo")
	}
	return results, nil
}

func (m *Mongo) InsertCalculation(record models.Calculation) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	_, err := m.calculations().InsertOne(ctx, record)
	if err != nil {
		return errors.Wrap(err, "failed to insert calculation into mongo")
	}
	return nil
}
