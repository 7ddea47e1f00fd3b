package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invensys/inventory-api/internal/core/domain"
	"github.com/invensys/inventory-api/internal/core/ports"
)

const collectionRoles = "roles"

type RolRepository struct {
	col *mongo.Collection
}

func NewRolRepository(db *mongo.Database) *RolRepository {
	return &RolRepository{col: db.Collection(collectionRoles)}
}

// rolDoc is the persistence shape of a role. Field names match the wire
// contract so stored documents read the same as API payloads.
type rolDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Nombre        string             `bson:"nombre"`
	Descripcion   string             `bson:"descripcion"`
	Permisos      []string           `bson:"permisos"`
	Activo        bool               `bson:"activo"`
	FechaCreacion time.Time          `bson:"fechaCreacion"`
}

func (d *rolDoc) toDomain() *domain.Rol {
	return &domain.Rol{
		ID:            d.ID.Hex(),
		Nombre:        d.Nombre,
		Descripcion:   d.Descripcion,
		Permisos:      d.Permisos,
		Activo:        d.Activo,
		FechaCreacion: d.FechaCreacion,
	}
}

// Insert stores a new role and returns it with the server-assigned identifier.
func (r *RolRepository) Insert(ctx context.Context, rol *domain.Rol) (*domain.Rol, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := rolDoc{
		ID:            primitive.NewObjectID(),
		Nombre:        rol.Nombre,
		Descripcion:   rol.Descripcion,
		Permisos:      rol.Permisos,
		Activo:        rol.Activo,
		FechaCreacion: rol.FechaCreacion,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrNombreRolDuplicado
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *RolRepository) FindByID(ctx context.Context, id string) (*domain.Rol, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIDInvalido
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc rolDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRolNoEncontrado
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Find returns roles matching filter, sorted ascending by nombre.
func (r *RolRepository) Find(ctx context.Context, filter ports.ListRolesFilter) ([]*domain.Rol, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Activo != nil {
		query["activo"] = *filter.Activo
	}

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []rolDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	roles := make([]*domain.Rol, 0, len(docs))
	for i := range docs {
		roles = append(roles, docs[i].toDomain())
	}
	return roles, nil
}

// Update applies the non-nil fields with $set and returns the post-update
// document. An empty update degrades to a plain read.
func (r *RolRepository) Update(ctx context.Context, id string, update ports.RolUpdate) (*domain.Rol, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIDInvalido
	}

	set := bson.M{}
	if update.Nombre != nil {
		set["nombre"] = *update.Nombre
	}
	if update.Descripcion != nil {
		set["descripcion"] = *update.Descripcion
	}
	if update.Permisos != nil {
		set["permisos"] = *update.Permisos
	}
	if update.Activo != nil {
		set["activo"] = *update.Activo
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc rolDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRolNoEncontrado
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrNombreRolDuplicado
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes the role permanently and returns the removed document.
func (r *RolRepository) Delete(ctx context.Context, id string) (*domain.Rol, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIDInvalido
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc rolDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRolNoEncontrado
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique index backing nombre uniqueness.
func (r *RolRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "nombre", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
