package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/motorent/internal/model"
)

func TestMutatingCallCarriesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1}`))
	}))
	defer server.Close()

	client := New(server.URL).WithToken("secret-token")
	var out struct {
		ID int `json:"id"`
	}
	if err := client.PostJSON(context.Background(), "features", map[string]string{"title": "x"}, &out); err != nil {
		t.Fatalf("PostJSON returned error: %v", err)
	}

	if gotAuth != "Bearer secret-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if out.ID != 1 {
		t.Fatalf("expected decoded id 1, got %d", out.ID)
	}
}

func TestPublicReadCarriesNoToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL)
	if _, err := List[model.Feature](context.Background(), client, model.PathFeatures); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("public read must not send a token, got %q", gotAuth)
	}
}

func TestNon2xxSurfacesDetailVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"slug already exists"}`))
	}))
	defer server.Close()

	client := New(server.URL).WithToken("t")
	err := client.PostJSON(context.Background(), "vehicles", map[string]string{}, nil)
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if err.Error() != "slug already exists" {
		t.Fatalf("expected verbatim detail, got %q", err.Error())
	}
}

func TestNon2xxWithoutDetailIsGeneric(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer server.Close()

	client := New(server.URL)
	err := client.GetJSON(context.Background(), "gallery", &[]model.GalleryImage{})
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if err.Error() != "content store returned 500" {
		t.Fatalf("expected generic message, got %q", err.Error())
	}
}

func TestIsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(server.URL).WithToken("expired")
	err := client.Delete(context.Background(), "vehicles/ktm-duke-390")
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized classification, got %v", err)
	}
}

func TestUploadSendsFileFieldAndReturnsURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "hero.jpg" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"url":"/media/hero-abc.jpg"}`))
	}))
	defer server.Close()

	client := New(server.URL).WithToken("t")
	url, err := client.Upload(context.Background(), "hero.jpg", []byte("jpegdata"))
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if url != "/media/hero-abc.jpg" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestUploadRejectsEmptyURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := New(server.URL).WithToken("t")
	if _, err := client.Upload(context.Background(), "a.png", []byte("x")); err != ErrUploadNoURL {
		t.Fatalf("expected ErrUploadNoURL, got %v", err)
	}
}
