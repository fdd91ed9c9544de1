package appointmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"appointly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
// The aggregate is stored as a single document with embedded line items,
// so every write is atomic over the whole appointment-plus-services unit.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo(db *mongo.Database) *MongoAppointmentRepo {
	return &MongoAppointmentRepo{coll: db.Collection("appointments")}
}

// Create inserts a new appointment aggregate.
func (repo *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctxWithTimeout, appt); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment with its line items in one fetch.
func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"_id": id}).Decode(&appt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching appointment %s: %w", id, err)
	}
	return &appt, nil
}

// List returns all appointments with their line items.
func (repo *MongoAppointmentRepo) List(ctx context.Context) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	appts := []models.Appointment{}
	if err := cursor.All(ctxWithTimeout, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// UpdateVersioned performs the conditional write for optimistic
// concurrency: the filter matches on both _id and the version read at
// load time, and the replacement carries version+1. Zero matched
// documents means either a stale version or a deleted appointment; an
// existence probe disambiguates the two.
func (repo *MongoAppointmentRepo) UpdateVersioned(ctx context.Context, appt *models.Appointment, expectedVersion int64) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	next := *appt
	next.Version = expectedVersion + 1

	filter := bson.M{"_id": appt.ID, "version": expectedVersion}
	res, err := repo.coll.ReplaceOne(ctxWithTimeout, filter, &next)
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", appt.ID, err)
	}
	if res.MatchedCount == 0 {
		count, err := repo.coll.CountDocuments(ctxWithTimeout, bson.M{"_id": appt.ID})
		if err != nil {
			return fmt.Errorf("error checking appointment %s after conflict: %w", appt.ID, err)
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrVersionConflict
	}

	appt.Version = next.Version
	return nil
}

// Delete removes an appointment aggregate. A missing id is reported as
// ErrNotFound, never as a silent no-op.
func (repo *MongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctxWithTimeout, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting appointment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByDateRange returns all appointments scheduled in [from, to).
func (repo *MongoAppointmentRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date_time": bson.M{"$gte": from, "$lt": to}}
	cursor, err := repo.coll.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments between %s and %s: %w", from, to, err)
	}
	defer cursor.Close(ctxWithTimeout)

	appts := []models.Appointment{}
	if err := cursor.All(ctxWithTimeout, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}
