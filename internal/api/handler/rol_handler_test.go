package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/invensys/inventory-api/internal/core/domain"
	"github.com/invensys/inventory-api/internal/core/ports"
)

type stubRolService struct {
	createFn func(ctx context.Context, input ports.CreateRolInput) (*domain.Rol, error)
	listFn   func(ctx context.Context, input ports.ListRolesInput) ([]*domain.Rol, error)
	getFn    func(ctx context.Context, id string) (*domain.Rol, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateRolInput) (*domain.Rol, error)
	deleteFn func(ctx context.Context, id string) (*domain.Rol, error)
}

func (s *stubRolService) Create(ctx context.Context, input ports.CreateRolInput) (*domain.Rol, error) {
	return s.createFn(ctx, input)
}

func (s *stubRolService) List(ctx context.Context, input ports.ListRolesInput) ([]*domain.Rol, error) {
	return s.listFn(ctx, input)
}

func (s *stubRolService) Get(ctx context.Context, id string) (*domain.Rol, error) {
	return s.getFn(ctx, id)
}

func (s *stubRolService) Update(ctx context.Context, id string, input ports.UpdateRolInput) (*domain.Rol, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubRolService) Delete(ctx context.Context, id string) (*domain.Rol, error) {
	return s.deleteFn(ctx, id)
}

func newRolContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp
}

func sampleRol() *domain.Rol {
	return &domain.Rol{
		ID:            "64a1f2e3c4b5a6d7e8f90123",
		Nombre:        "Admin",
		Descripcion:   "Acceso total",
		Permisos:      []string{"leer"},
		Activo:        true,
		FechaCreacion: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRolHandler_Create_Success(t *testing.T) {
	stub := &stubRolService{
		createFn: func(ctx context.Context, input ports.CreateRolInput) (*domain.Rol, error) {
			if input.Nombre != "Admin" || input.Descripcion != "Acceso total" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return sampleRol(), nil
		},
	}
	h := NewRolHandler(stub, true)

	c, rec := newRolContext(t, http.MethodPost, "/api/roles", `{"nombre":"Admin","descripcion":"Acceso total"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["success"] != true || resp["mensaje"] != "Rol creado exitosamente" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatal("expected data in response")
	}
	permisos, _ := data["permisos"].([]any)
	if len(permisos) != 1 || permisos[0] != "leer" {
		t.Fatalf("expected default permisos [leer], got %v", data["permisos"])
	}
	if data["fechaCreacion"] != "1/9/2026" {
		t.Fatalf("expected locale-formatted fecha, got %v", data["fechaCreacion"])
	}
}

func TestRolHandler_Create_MissingFields(t *testing.T) {
	stub := &stubRolService{
		createFn: func(ctx context.Context, input ports.CreateRolInput) (*domain.Rol, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewRolHandler(stub, true)

	c, rec := newRolContext(t, http.MethodPost, "/api/roles", `{"nombre":"Admin"}`)
	_ = h.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["mensaje"] != "Los campos nombre y descripción son obligatorios" {
		t.Fatalf("unexpected mensaje: %v", resp["mensaje"])
	}
}

func TestRolHandler_Create_NombreTooShort(t *testing.T) {
	stub := &stubRolService{
		createFn: func(ctx context.Context, input ports.CreateRolInput) (*domain.Rol, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewRolHandler(stub, true)

	c, rec := newRolContext(t, http.MethodPost, "/api/roles", `{"nombre":"ab","descripcion":"d"}`)
	_ = h.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRolHandler_Create_Duplicate(t *testing.T) {
	stub := &stubRolService{
		createFn: func(ctx context.Context, input ports.CreateRolInput) (*domain.Rol, error) {
			return nil, domain.ErrNombreRolDuplicado
		},
	}
	h := NewRolHandler(stub, true)

	c, rec := newRolContext(t, http.MethodPost, "/api/roles", `{"nombre":"Admin","descripcion":"Acceso total"}`)
	_ = h.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["mensaje"] != "Ya existe un rol con ese nombre" {
		t.Fatalf("unexpected mensaje: %v", resp["mensaje"])
	}
}

func TestRolHandler_List_IncludesCantidad(t *testing.T) {
	stub := &stubRolService{
		listFn: func(ctx context.Context, input ports.ListRolesInput) ([]*domain.Rol, error) {
			if input.Activo == nil || *input.Activo != true {
				t.Fatalf("expected activo filter true, got %v", input.Activo)
			}
			return []*domain.Rol{sampleRol()}, nil
		},
	}
	h := NewRolHandler(stub, true)

	c, rec := newRolContext(t, http.MethodGet, "/api/roles?activo=true", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["cantidad"] != float64(1) {
		t.Fatalf("expected cantidad 1, got %v", resp["cantidad"])
	}
}

func TestRolHandler_List_EmptyStillHasCantidad(t *testing.T) {
	stub := &stubRolService{
		listFn: func(ctx context.Context, input ports.ListRolesInput) ([]*domain.Rol, error) {
			return nil, nil
		},
	}
	h := NewRolHandler(stub, true)

	c, rec := newRolContext(t, http.MethodGet, "/api/roles", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeEnvelope(t, rec)
	if resp["cantidad"] != float64(0) {
		t.Fatalf("expected cantidad 0, got %v", resp["cantidad"])
	}
}

func TestRolHandler_Get_InvalidID(t *testing.T) {
	stub := &stubRolService{
		getFn: func(ctx context.Context, id string) (*domain.Rol, error) {
			return nil, domain.ErrIDInvalido
		},
	}
	h := NewRolHandler(stub, true)

	c, rec := newRolContext(t, http.MethodGet, "/api/roles/not-a-valid-id", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-valid-id")
	_ = h.Get(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["mensaje"] != "ID de rol inválido" {
		t.Fatalf("unexpected mensaje: %v", resp["mensaje"])
	}
}

func TestRolHandler_Get_NotFound(t *testing.T) {
	stub := &stubRolService{
		getFn: func(ctx context.Context, id string) (*domain.Rol, error) {
			return nil, domain.ErrRolNoEncontrado
		},
	}
	h := NewRolHandler(stub, true)

	c, rec := newRolContext(t, http.MethodGet, "/api/roles/64a1f2e3c4b5a6d7e8f90124", "")
	c.SetParamNames("id")
	c.SetParamValues("64a1f2e3c4b5a6d7e8f90124")
	_ = h.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestRolHandler_Update_PartialFields(t *testing.T) {
	stub := &stubRolService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateRolInput) (*domain.Rol, error) {
			if input.Nombre == nil || *input.Nombre != "Super Admin" {
				t.Fatalf("expected nombre update, got %+v", input)
			}
			if input.Descripcion != nil || input.Permisos != nil || input.Activo != nil {
				t.Fatalf("expected only nombre set, got %+v", input)
			}
			rol := sampleRol()
			rol.Nombre = *input.Nombre
			return rol, nil
		},
	}
	h := NewRolHandler(stub, true)

	c, rec := newRolContext(t, http.MethodPut, "/api/roles/64a1f2e3c4b5a6d7e8f90123", `{"nombre":"Super Admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("64a1f2e3c4b5a6d7e8f90123")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["mensaje"] != "Rol actualizado exitosamente" {
		t.Fatalf("unexpected mensaje: %v", resp["mensaje"])
	}
}

func TestRolHandler_Delete_ReturnsRemoved(t *testing.T) {
	stub := &stubRolService{
		deleteFn: func(ctx context.Context, id string) (*domain.Rol, error) {
			return sampleRol(), nil
		},
	}
	h := NewRolHandler(stub, true)

	c, rec := newRolContext(t, http.MethodDelete, "/api/roles/64a1f2e3c4b5a6d7e8f90123", "")
	c.SetParamNames("id")
	c.SetParamValues("64a1f2e3c4b5a6d7e8f90123")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["mensaje"] != "Rol eliminado exitosamente" {
		t.Fatalf("unexpected mensaje: %v", resp["mensaje"])
	}
	data, ok := resp["data"].(map[string]any)
	if !ok || data["nombre"] != "Admin" {
		t.Fatalf("expected removed rol in data, got %v", resp["data"])
	}
}
