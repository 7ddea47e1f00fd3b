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

const collectionUsuarios = "usuarios"

type UsuarioRepository struct {
	col *mongo.Collection
}

func NewUsuarioRepository(db *mongo.Database) *UsuarioRepository {
	return &UsuarioRepository{col: db.Collection(collectionUsuarios)}
}

// usuarioDoc is the persistence shape of a user. The role reference is stored
// as an ObjectID so it can be indexed and filtered efficiently.
type usuarioDoc struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Nombres           string             `bson:"nombres"`
	Apellidos         string             `bson:"apellidos"`
	CorreoElectronico string             `bson:"correoElectronico"`
	Contrasena        string             `bson:"contrasena"`
	Rol               primitive.ObjectID `bson:"rol"`
	Activo            bool               `bson:"activo"`
	FechaRegistro     time.Time          `bson:"fechaRegistro"`
}

func (d *usuarioDoc) toDomain() *domain.Usuario {
	return &domain.Usuario{
		ID:                d.ID.Hex(),
		Nombres:           d.Nombres,
		Apellidos:         d.Apellidos,
		CorreoElectronico: d.CorreoElectronico,
		Contrasena:        d.Contrasena,
		RolID:             d.Rol.Hex(),
		Activo:            d.Activo,
		FechaRegistro:     d.FechaRegistro,
	}
}

// Insert stores a new user and returns it with the server-assigned identifier.
func (r *UsuarioRepository) Insert(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	rolOID, err := primitive.ObjectIDFromHex(usuario.RolID)
	if err != nil {
		return nil, domain.ErrIDInvalido
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := usuarioDoc{
		ID:                primitive.NewObjectID(),
		Nombres:           usuario.Nombres,
		Apellidos:         usuario.Apellidos,
		CorreoElectronico: usuario.CorreoElectronico,
		Contrasena:        usuario.Contrasena,
		Rol:               rolOID,
		Activo:            usuario.Activo,
		FechaRegistro:     usuario.FechaRegistro,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCorreoDuplicado
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *UsuarioRepository) FindByID(ctx context.Context, id string) (*domain.Usuario, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIDInvalido
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc usuarioDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUsuarioNoEncontrado
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Find returns users matching filter, sorted descending by fechaRegistro
// (most recent first).
func (r *UsuarioRepository) Find(ctx context.Context, filter ports.ListUsuariosFilter) ([]*domain.Usuario, error) {
	query := bson.M{}
	if filter.Activo != nil {
		query["activo"] = *filter.Activo
	}
	if filter.RolID != "" {
		rolOID, err := primitive.ObjectIDFromHex(filter.RolID)
		if err != nil {
			return nil, domain.ErrIDInvalido
		}
		query["rol"] = rolOID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "fechaRegistro", Value: -1}}))
	if err != nil {
		return nil, err
	}

	var docs []usuarioDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	usuarios := make([]*domain.Usuario, 0, len(docs))
	for i := range docs {
		usuarios = append(usuarios, docs[i].toDomain())
	}
	return usuarios, nil
}

// Update applies the non-nil fields with $set and returns the post-update
// document.
func (r *UsuarioRepository) Update(ctx context.Context, id string, update ports.UsuarioUpdate) (*domain.Usuario, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIDInvalido
	}

	set := bson.M{}
	if update.Nombres != nil {
		set["nombres"] = *update.Nombres
	}
	if update.Apellidos != nil {
		set["apellidos"] = *update.Apellidos
	}
	if update.CorreoElectronico != nil {
		set["correoElectronico"] = *update.CorreoElectronico
	}
	if update.Contrasena != nil {
		set["contrasena"] = *update.Contrasena
	}
	if update.RolID != nil {
		rolOID, err := primitive.ObjectIDFromHex(*update.RolID)
		if err != nil {
			return nil, domain.ErrIDInvalido
		}
		set["rol"] = rolOID
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
	var doc usuarioDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUsuarioNoEncontrado
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCorreoDuplicado
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Delete removes the user permanently and returns the removed document.
func (r *UsuarioRepository) Delete(ctx context.Context, id string) (*domain.Usuario, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIDInvalido
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc usuarioDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUsuarioNoEncontrado
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique index backing correoElectronico uniqueness
// plus a plain index on the role reference used by the list filter.
func (r *UsuarioRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "correoElectronico", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "rol", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
