package mongo

import (
	"context"

	"github.com/pkg/errors"
	"gitlab.com/zlyzol/settlemath/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

type opCount struct {
	Op    string `bson:"_id"`
	Count uint   `bson:"count"`
}

func (m *Mongo) GetStats() (models.Stats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	c := m.calculations()
	pipe := []bson.M{
		{"$group": bson.M{
			"_id":              "",
			"calculationcount": bson.M{"$sum": 1},
			"errorcount": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$gt": bson.A{"$error", ""}}, 1, 0},
			}},
			"avgduration": bson.M{"$avg": "$duration"},
		}},
	}
	result := models.Stats{Ops: map[string]uint{}}
	cur, err := c.Aggregate(ctx, pipe)
	if err != nil {
		return result, errors.Wrap(err, "failed to aggregate calculations in mongo")
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&result); err != nil {
			cur.Close(ctx)
			return result, errors.Wrap(err, "failed to decode stats from mongo")
		}
	}
	if err := cur.Err(); err != nil {
		cur.Close(ctx)
		return result, errors.Wrap(err, "failed to read stats from mongo")
	}
	cur.Close(ctx)

	pipe = []bson.M{
		{"$group": bson.M{"_id": "$op", "count": bson.M{"$sum": 1}}},
	}
	cur, err = c.Aggregate(ctx, pipe)
	if err != nil {
		return result, errors.Wrap(err, "failed to aggregate operations in mongo")
	}
	defer cur.Close(ctx)
	if result.Ops == nil {
		result.Ops = map[string]uint{}
	}
	for cur.Next(ctx) {
		var elem opCount
		if err := cur.Decode(&elem); err != nil {
			return result, errors.Wrap(err, "failed to decode operation count from mongo")
		}
		result.Ops[elem.Op] = elem.Count
	}
	if err := cur.Err(); err != nil {
		return result, errors.Wrap(err, "failed to read operation counts from mongo")
	}
	return result, nil
}
