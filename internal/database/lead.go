package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"EstateDesk/entity"
)

// InsertLead stores a new lead record.
func (m *MongoDB) InsertLead(ctx context.Context, lead *entity.Lead) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(leadsCollection)

	_, err = collection.InsertOne(ctx, lead)
	return err
}

// GetAllLeads retrieves every lead, newest first.
func (m *MongoDB) GetAllLeads(ctx context.Context) ([]entity.Lead, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(leadsCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []entity.Lead
	if err = cursor.All(ctx, &leads); err != nil {
		return nil, err
	}

	return leads, nil
}

// UpdateLeadStatus sets the status of a lead by id.
func (m *MongoDB) UpdateLeadStatus(ctx context.Context, id, status string) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(leadsCollection)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}}

	_, err = collection.UpdateOne(ctx, filter, update)
	return err
}
