package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"EstateDesk/entity"
)

// InsertListing stores a new listing record.
func (m *MongoDB) InsertListing(ctx context.Context, listing *entity.Listing) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(propertiesCollection)

	_, err = collection.InsertOne(ctx, listing)
	return err
}

// UpdateListingPhotos replaces the photo list and status of a listing.
func (m *MongoDB) UpdateListingPhotos(ctx context.Context, id string, photos []entity.Photo, status string) error {
	connection, err := m.connect()
	if err != nil {
		return err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(propertiesCollection)

	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "photos", Value: photos},
		{Key: "status", Value: status},
	}}}

	_, err = collection.UpdateOne(ctx, filter, update)
	return err
}

// GetListing retrieves a listing by id. Returns nil when absent.
func (m *MongoDB) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(propertiesCollection)

	filter := bson.D{{Key: "_id", Value: id}}

	var listing entity.Listing
	err = collection.FindOne(ctx, filter).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &listing, nil
}

// GetListingsByOwner retrieves the owner's listings, newest first.
func (m *MongoDB) GetListingsByOwner(ctx context.Context, owner string) ([]entity.Listing, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(propertiesCollection)

	filter := bson.D{{Key: "owner", Value: owner}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []entity.Listing
	if err = cursor.All(ctx, &listings); err != nil {
		return nil, err
	}

	return listings, nil
}

// GetListingGallery returns the raw photo entries of a listing without
// decoding them into a fixed shape. Legacy records store photos as bare
// URL strings or as objects with varying field names; the caller resolves
// each entry through entity.ResolvePhotoURL.
func (m *MongoDB) GetListingGallery(ctx context.Context, id string) ([]any, error) {
	connection, err := m.connect()
	if err != nil {
		return nil, err
	}
	defer m.disconnect(connection)

	collection := connection.Database(m.database).Collection(propertiesCollection)

	filter := bson.D{{Key: "_id", Value: id}}

	var doc struct {
		Photos []any `bson:"photos"`
	}
	err = collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return doc.Photos, nil
}
