package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"EstateDesk/entity"
)

// InsertGenerationJob stores a new generation job record.
func (m *MongoDB) InsertGenerationJob(ctx context.Context, job *entity.GenerationJob) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(generationsCollection)

	_, err = collection.InsertOne(ctx, job)
	return err
}

// MarkGenerationDone flips a job to done with its output URL list.
func (m *MongoDB) MarkGenerationDone(ctx context.Context, id string, output []string, updatedAt time.Time) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(generationsCollection)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: entity.JobStatusDone},
		{Key: "output", Value: output},
		{Key: "updated_at", Value: updatedAt},
	}}}

	_, err = collection.UpdateOne(ctx, filter, update)
	return err
}

// GetGenerationJob retrieves a job by id. Returns nil when absent.
func (m *MongoDB) GetGenerationJob(ctx context.Context, id string) (*entity.GenerationJob, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(generationsCollection)

	filter := bson.D{{Key: "_id", Value: id}}

	var job entity.GenerationJob
	err = collection.FindOne(ctx, filter).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &job, nil
}

// GetAllGenerationJobs retrieves every job, newest first, for the admin view.
func (m *MongoDB) GetAllGenerationJobs(ctx context.Context) ([]entity.GenerationJob, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(generationsCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []entity.GenerationJob
	if err = cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}

	return jobs, nil
}
