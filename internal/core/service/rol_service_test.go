package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/invensys/inventory-api/internal/core/domain"
	"github.com/invensys/inventory-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubRolRepo struct {
	roles     map[string]*domain.Rol
	seq       int
	insertErr error // if set, Insert returns this error
}

func newStubRolRepo() *stubRolRepo {
	return &stubRolRepo{roles: make(map[string]*domain.Rol)}
}

func (r *stubRolRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("%024x", r.seq)
}

func (r *stubRolRepo) Insert(_ context.Context, rol *domain.Rol) (*domain.Rol, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	// Mirrors the unique index on nombre.
	for _, existing := range r.roles {
		if existing.Nombre == rol.Nombre {
			return nil, domain.ErrNombreRolDuplicado
		}
	}
	clone := *rol
	clone.ID = r.nextID()
	r.roles[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubRolRepo) FindByID(_ context.Context, id string) (*domain.Rol, error) {
	rol, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRolNoEncontrado
	}
	clone := *rol
	return &clone, nil
}

func (r *stubRolRepo) Find(_ context.Context, filter ports.ListRolesFilter) ([]*domain.Rol, error) {
	var matched []*domain.Rol
	for _, rol := range r.roles {
		if filter.Activo != nil && rol.Activo != *filter.Activo {
			continue
		}
		clone := *rol
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Nombre < matched[j].Nombre })
	return matched, nil
}

func (r *stubRolRepo) Update(_ context.Context, id string, update ports.RolUpdate) (*domain.Rol, error) {
	rol, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRolNoEncontrado
	}
	if update.Nombre != nil {
		for otherID, other := range r.roles {
			if otherID != id && other.Nombre == *update.Nombre {
				return nil, domain.ErrNombreRolDuplicado
			}
		}
		rol.Nombre = *update.Nombre
	}
	if update.Descripcion != nil {
		rol.Descripcion = *update.Descripcion
	}
	if update.Permisos != nil {
		rol.Permisos = *update.Permisos
	}
	if update.Activo != nil {
		rol.Activo = *update.Activo
	}
	clone := *rol
	return &clone, nil
}

func (r *stubRolRepo) Delete(_ context.Context, id string) (*domain.Rol, error) {
	rol, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRolNoEncontrado
	}
	delete(r.roles, id)
	return rol, nil
}

// stubInvalidator records cache invalidations.
type stubInvalidator struct {
	invalidated []string
}

func (s *stubInvalidator) Invalidate(_ context.Context, id string) {
	s.invalidated = append(s.invalidated, id)
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestRolService_Create_AppliesDefaults(t *testing.T) {
	repo := newStubRolRepo()
	svc := NewRolService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateRolInput{
		Nombre:      "  Admin  ",
		Descripcion: " Acceso total ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID == "" {
		t.Fatal("expected server-assigned id")
	}
	if created.Nombre != "Admin" || created.Descripcion != "Acceso total" {
		t.Fatalf("expected trimmed fields, got %q / %q", created.Nombre, created.Descripcion)
	}
	if !reflect.DeepEqual(created.Permisos, []string{"leer"}) {
		t.Fatalf("expected default permisos [leer], got %v", created.Permisos)
	}
	if !created.Activo {
		t.Fatal("expected activo to default to true")
	}
	if created.FechaCreacion.IsZero() {
		t.Fatal("expected fechaCreacion to be set")
	}
}

func TestRolService_Create_KeepsExplicitPermisos(t *testing.T) {
	repo := newStubRolRepo()
	svc := NewRolService(repo, nil, zerolog.Nop())

	permisos := []string{"crear", "leer", "actualizar", "eliminar"}
	created, err := svc.Create(context.Background(), ports.CreateRolInput{
		Nombre:      "Admin",
		Descripcion: "Acceso total",
		Permisos:    permisos,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(created.Permisos, permisos) {
		t.Fatalf("expected permisos %v, got %v", permisos, created.Permisos)
	}
}

func TestRolService_Create_DuplicateNombre(t *testing.T) {
	repo := newStubRolRepo()
	svc := NewRolService(repo, nil, zerolog.Nop())

	input := ports.CreateRolInput{Nombre: "Admin", Descripcion: "Acceso total"}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrNombreRolDuplicado) {
		t.Fatalf("expected ErrNombreRolDuplicado, got %v", err)
	}
}

func TestRolService_GetAfterCreate_Roundtrip(t *testing.T) {
	repo := newStubRolRepo()
	svc := NewRolService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateRolInput{
		Nombre:      "Editor",
		Descripcion: "Puede editar",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("expected %+v, got %+v", created, got)
	}
}

func TestRolService_List_SortedAndFiltered(t *testing.T) {
	repo := newStubRolRepo()
	svc := NewRolService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	for _, nombre := range []string{"Zeta", "Admin", "Editor"} {
		if _, err := svc.Create(ctx, ports.CreateRolInput{Nombre: nombre, Descripcion: "d"}); err != nil {
			t.Fatalf("create %s failed: %v", nombre, err)
		}
	}

	roles, err := svc.List(ctx, ports.ListRolesInput{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(roles) != 3 {
		t.Fatalf("expected 3 roles, got %d", len(roles))
	}
	for i, want := range []string{"Admin", "Editor", "Zeta"} {
		if roles[i].Nombre != want {
			t.Fatalf("expected %s at position %d, got %s", want, i, roles[i].Nombre)
		}
	}

	// Deactivate one and filter.
	inactive := false
	if _, err := svc.Update(ctx, roles[0].ID, ports.UpdateRolInput{Activo: &inactive}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	activo := true
	filtered, err := svc.List(ctx, ports.ListRolesInput{Activo: &activo})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 active roles, got %d", len(filtered))
	}
}

func TestRolService_Update_TrimsAndInvalidatesCache(t *testing.T) {
	repo := newStubRolRepo()
	inv := &stubInvalidator{}
	svc := NewRolService(repo, inv, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateRolInput{Nombre: "Admin", Descripcion: "d"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	nombre := "  Super Admin  "
	updated, err := svc.Update(ctx, created.ID, ports.UpdateRolInput{Nombre: &nombre})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Nombre != "Super Admin" {
		t.Fatalf("expected trimmed nombre, got %q", updated.Nombre)
	}
	if len(inv.invalidated) != 1 || inv.invalidated[0] != created.ID {
		t.Fatalf("expected cache invalidation for %s, got %v", created.ID, inv.invalidated)
	}
}

func TestRolService_Update_DuplicateNombre(t *testing.T) {
	repo := newStubRolRepo()
	svc := NewRolService(repo, nil, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, ports.CreateRolInput{Nombre: "Admin", Descripcion: "d"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	other, err := svc.Create(ctx, ports.CreateRolInput{Nombre: "Editor", Descripcion: "d"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	nombre := "Admin"
	if _, err := svc.Update(ctx, other.ID, ports.UpdateRolInput{Nombre: &nombre}); !errors.Is(err, domain.ErrNombreRolDuplicado) {
		t.Fatalf("expected ErrNombreRolDuplicado, got %v", err)
	}
}

func TestRolService_Delete_ReturnsRemoved(t *testing.T) {
	repo := newStubRolRepo()
	inv := &stubInvalidator{}
	svc := NewRolService(repo, inv, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateRolInput{Nombre: "Temporal", Descripcion: "d"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deleted, err := svc.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.Nombre != "Temporal" {
		t.Fatalf("expected removed rol, got %+v", deleted)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrRolNoEncontrado) {
		t.Fatalf("expected ErrRolNoEncontrado after delete, got %v", err)
	}
	if len(inv.invalidated) != 1 {
		t.Fatalf("expected cache invalidation, got %v", inv.invalidated)
	}
}

func TestRolService_Delete_NotFound(t *testing.T) {
	svc := NewRolService(newStubRolRepo(), nil, zerolog.Nop())
	if _, err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrRolNoEncontrado) {
		t.Fatalf("expected ErrRolNoEncontrado, got %v", err)
	}
}
