package automobile_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/ferdiebergado/autokit/internal/automobile"
	"github.com/ferdiebergado/autokit/internal/pkg/web"
	"github.com/ferdiebergado/autokit/internal/platform/broker"
)

func TestHandler_CreateAutomobile(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	tests := []struct {
		name       string
		createFunc func(ctx context.Context, req automobile.Request) (uuid.UUID, error)
		code       int
	}{
		{
			name: "Created",
			createFunc: func(_ context.Context, req automobile.Request) (uuid.UUID, error) {
				return id, nil
			},
			code: http.StatusCreated,
		},
		{
			name: "Publish failure",
			createFunc: func(context.Context, automobile.Request) (uuid.UUID, error) {
				return uuid.Nil, broker.ErrPublishFailed
			},
			code: http.StatusInternalServerError,
		},
		{
			name: "Constraint violation",
			createFunc: func(context.Context, automobile.Request) (uuid.UUID, error) {
				return uuid.Nil, automobile.ErrConstraintViolation
			},
			code: http.StatusBadRequest,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &automobile.StubService{CreateFunc: tc.createFunc}
			handler := automobile.NewHandler(svc)

			req := automobile.Request{Name: "Volvo", Color: "Red"}
			ctx := web.NewContextWithParams(context.Background(), req)
			r := httptest.NewRequestWithContext(ctx, http.MethodPost, "/automobiles", http.NoBody)
			rec := httptest.NewRecorder()

			handler.CreateAutomobile(rec, r)

			if rec.Code != tc.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tc.code)
			}

			if tc.code == http.StatusCreated {
				body := web.DecodeJSONResponse(t, rec.Result())
				data, ok := body["data"].(map[string]any)
				if !ok {
					t.Fatalf("body[%q] = %v, want: object", "data", body["data"])
				}
				if gotID := data["id"]; gotID != id.String() {
					t.Errorf("data[%q] = %v, want: %q", "id", gotID, id.String())
				}
			}
		})
	}
}

func TestHandler_ListAutomobiles(t *testing.T) {
	t.Parallel()

	sample := []automobile.Response{
		{ID: uuid.New(), Name: "Volvo", Color: "Red", OriginalColor: true},
	}

	tests := []struct {
		name   string
		target string
		svc    *automobile.StubService
		code   int
	}{
		{
			name:   "Plain listing",
			target: "/automobiles",
			svc: &automobile.StubService{
				ListActiveFunc: func(context.Context) ([]automobile.Response, error) {
					return sample, nil
				},
			},
			code: http.StatusOK,
		},
		{
			name:   "By name",
			target: "/automobiles?name=Volvo",
			svc: &automobile.StubService{
				FindByNameFunc: func(_ context.Context, name string) ([]automobile.Response, error) {
					if name != "Volvo" {
						t.Errorf("name = %q, want: %q", name, "Volvo")
					}
					return sample, nil
				},
			},
			code: http.StatusOK,
		},
		{
			name:   "By color",
			target: "/automobiles?color=Red",
			svc: &automobile.StubService{
				FindByColorFunc: func(_ context.Context, color string) ([]automobile.Response, error) {
					return sample, nil
				},
			},
			code: http.StatusOK,
		},
		{
			name:   "By name and color",
			target: "/automobiles?name=Volvo&color=Red",
			svc: &automobile.StubService{
				FindByNameAndColorFunc: func(_ context.Context, name, color string) ([]automobile.Response, error) {
					return sample, nil
				},
			},
			code: http.StatusOK,
		},
		{
			name:   "By color prefix",
			target: "/automobiles?colorStartsWith=Re&page=0&size=2",
			svc: &automobile.StubService{
				FindByColorPrefixFunc: func(_ context.Context, prefix string, page, size int) ([]automobile.Response, error) {
					if prefix != "Re" || page != 0 || size != 2 {
						t.Errorf("prefix, page, size = %q, %d, %d, want: %q, 0, 2", prefix, page, size, "Re")
					}
					return sample, nil
				},
			},
			code: http.StatusOK,
		},
		{
			name:   "Prefix search with negative page",
			target: "/automobiles?colorStartsWith=Re&page=-1&size=2",
			svc:    &automobile.StubService{},
			code:   http.StatusBadRequest,
		},
		{
			name:   "Prefix search with zero size",
			target: "/automobiles?colorStartsWith=Re&page=0&size=0",
			svc:    &automobile.StubService{},
			code:   http.StatusBadRequest,
		},
		{
			name:   "Color search publish failure",
			target: "/automobiles?color=Red",
			svc: &automobile.StubService{
				FindByColorFunc: func(context.Context, string) ([]automobile.Response, error) {
					return nil, broker.ErrPublishFailed
				},
			},
			code: http.StatusInternalServerError,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := automobile.NewHandler(tc.svc)
			r := httptest.NewRequest(http.MethodGet, tc.target, http.NoBody)
			rec := httptest.NewRecorder()

			handler.ListAutomobiles(rec, r)

			if rec.Code != tc.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tc.code)
			}
		})
	}
}

func TestHandler_GetAutomobile(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	want := automobile.Response{ID: id, Name: "Volvo", Color: "Red", OriginalColor: true}

	svc := &automobile.StubService{
		GetFunc: func(_ context.Context, gotID uuid.UUID) (automobile.Response, error) {
			if gotID != id {
				return automobile.Response{}, automobile.ErrNotFound
			}
			return want, nil
		},
	}
	handler := automobile.NewHandler(svc)

	t.Run("Existing record", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/automobiles/"+id.String(), http.NoBody)
		r.SetPathValue("id", id.String())
		rec := httptest.NewRecorder()

		handler.GetAutomobile(rec, r)

		if rec.Code != http.StatusOK {
			t.Fatalf("rec.Code = %d, want: %d", rec.Code, http.StatusOK)
		}

		body := web.DecodeJSONResponse(t, rec.Result())
		data, ok := body["data"].(map[string]any)
		if !ok {
			t.Fatalf("body[%q] = %v, want: object", "data", body["data"])
		}
		if data["name"] != want.Name {
			t.Errorf("data[%q] = %v, want: %q", "name", data["name"], want.Name)
		}
		if data["color"] != want.Color {
			t.Errorf("data[%q] = %v, want: %q", "color", data["color"], want.Color)
		}
		if data["is_original_color"] != true {
			t.Errorf("data[%q] = %v, want: true", "is_original_color", data["is_original_color"])
		}
	})

	t.Run("Unknown record", func(t *testing.T) {
		otherID := uuid.New().String()
		r := httptest.NewRequest(http.MethodGet, "/automobiles/"+otherID, http.NoBody)
		r.SetPathValue("id", otherID)
		rec := httptest.NewRecorder()

		handler.GetAutomobile(rec, r)

		if rec.Code != http.StatusNotFound {
			t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusNotFound)
		}
	})

	t.Run("Malformed id", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/automobiles/not-a-uuid", http.NoBody)
		r.SetPathValue("id", "not-a-uuid")
		rec := httptest.NewRecorder()

		handler.GetAutomobile(rec, r)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestHandler_UpdateAutomobile(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	tests := []struct {
		name       string
		updateFunc func(ctx context.Context, id uuid.UUID, req automobile.Request) (automobile.Response, error)
		code       int
	}{
		{
			name: "Updated",
			updateFunc: func(_ context.Context, id uuid.UUID, req automobile.Request) (automobile.Response, error) {
				return automobile.Response{ID: id, Name: req.Name, Color: req.Color}, nil
			},
			code: http.StatusOK,
		},
		{
			name: "Unknown id",
			updateFunc: func(context.Context, uuid.UUID, automobile.Request) (automobile.Response, error) {
				return automobile.Response{}, automobile.ErrNotFound
			},
			code: http.StatusNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &automobile.StubService{UpdateFunc: tc.updateFunc}
			handler := automobile.NewHandler(svc)

			req := automobile.Request{Name: "Volvo", Color: "Blue"}
			ctx := web.NewContextWithParams(context.Background(), req)
			r := httptest.NewRequestWithContext(ctx, http.MethodPut, "/automobiles/"+id.String(), http.NoBody)
			r.SetPathValue("id", id.String())
			rec := httptest.NewRecorder()

			handler.UpdateAutomobile(rec, r)

			if rec.Code != tc.code {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tc.code)
			}
		})
	}
}

func TestHandler_DeleteAutomobile(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	svc := &automobile.StubService{
		SoftDeleteFunc: func(context.Context, uuid.UUID) error { return nil },
	}
	handler := automobile.NewHandler(svc)

	r := httptest.NewRequest(http.MethodDelete, "/automobiles/"+id.String(), http.NoBody)
	r.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	handler.DeleteAutomobile(rec, r)

	if rec.Code != http.StatusNoContent {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusNoContent)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("rec.Body.Len() = %d, want: 0", rec.Body.Len())
	}
}

func TestHandler_DeleteAllAutomobiles(t *testing.T) {
	t.Parallel()

	svc := &automobile.StubService{
		DeleteAllFunc: func(context.Context) error { return nil },
	}
	handler := automobile.NewHandler(svc)

	r := httptest.NewRequest(http.MethodDelete, "/automobiles", http.NoBody)
	rec := httptest.NewRecorder()

	handler.DeleteAllAutomobiles(rec, r)

	if rec.Code != http.StatusNoContent {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusNoContent)
	}
}
