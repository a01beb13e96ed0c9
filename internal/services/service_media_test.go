package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"meetspace-admin/internal/models"
)

func noApplications(ctx context.Context, filename string) ([]models.OrganizerApplication, error) {
	return nil, nil
}

func failingFetch(ctx context.Context, url string) (*MediaResult, error) {
	return nil, errors.New("unreachable")
}

func newTestResolver() *MediaResolver {
	return &MediaResolver{CloudName: "testcloud", Fetch: failingFetch, Lookup: noApplications}
}

func TestResolveInlineDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("hello"))
	r := newTestResolver()

	result := r.Resolve(context.Background(), "data:text/plain;base64,"+payload)
	if result == nil {
		t.Fatal("nil result")
	}
	if result.ContentType != "text/plain" || string(result.Body) != "hello" {
		t.Errorf("got %q body %q", result.ContentType, result.Body)
	}
}

func TestResolveTimestampNameShortCircuits(t *testing.T) {
	fetched := false
	r := newTestResolver()
	r.Fetch = func(ctx context.Context, url string) (*MediaResult, error) {
		fetched = true
		return nil, errors.New("should not be called")
	}

	result := r.Resolve(context.Background(), "1740730428259-2492484.jpg")
	if fetched {
		t.Error("known-dead filename triggered a fetch")
	}
	if result.ContentType != "image/svg+xml" {
		t.Errorf("content type = %q", result.ContentType)
	}
	if !strings.Contains(string(result.Body), "Image Not Available") {
		t.Errorf("placeholder body = %q", result.Body)
	}
}

func TestResolveViaApplicationURL(t *testing.T) {
	r := newTestResolver()
	r.Lookup = func(ctx context.Context, filename string) ([]models.OrganizerApplication, error) {
		return []models.OrganizerApplication{{
			ProfilePhotoURL: "https://cdn.example.com/photos/avatar.png",
		}}, nil
	}
	r.Fetch = func(ctx context.Context, url string) (*MediaResult, error) {
		if url != "https://cdn.example.com/photos/avatar.png" {
			return nil, errors.New("wrong url")
		}
		return &MediaResult{ContentType: "image/png", Body: []byte("png-bytes")}, nil
	}

	result := r.Resolve(context.Background(), "avatar.png")
	if result.ContentType != "image/png" || string(result.Body) != "png-bytes" {
		t.Errorf("got %q body %q", result.ContentType, result.Body)
	}
}

func TestResolveStoredDataURLOnApplication(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8})
	r := newTestResolver()
	r.Lookup = func(ctx context.Context, filename string) ([]models.OrganizerApplication, error) {
		return []models.OrganizerApplication{{
			IDDocumentURL: "data:image/jpeg;name=doc.jpg;base64," + payload,
		}}, nil
	}

	// The stored value must contain the filename to be considered.
	result := r.Resolve(context.Background(), "doc.jpg")
	if result.ContentType != "image/jpeg" {
		t.Errorf("content type = %q", result.ContentType)
	}
}

func TestResolveConstructedCDNURL(t *testing.T) {
	r := newTestResolver()
	var fetchedURL string
	r.Fetch = func(ctx context.Context, url string) (*MediaResult, error) {
		fetchedURL = url
		return &MediaResult{ContentType: "image/jpeg", Body: []byte("jpg")}, nil
	}

	result := r.Resolve(context.Background(), "uploads/avatar.jpg")
	if string(result.Body) != "jpg" {
		t.Fatalf("body = %q", result.Body)
	}
	if fetchedURL != "https://res.cloudinary.com/testcloud/image/upload/uploads/avatar.jpg" {
		t.Errorf("constructed URL = %q", fetchedURL)
	}
}

func TestResolveNeverFails(t *testing.T) {
	r := newTestResolver()
	r.Lookup = func(ctx context.Context, filename string) ([]models.OrganizerApplication, error) {
		return nil, errors.New("store down")
	}

	for _, name := range []string{"ghost.png", "ghost.pdf", "just-a-name"} {
		result := r.Resolve(context.Background(), name)
		if result == nil || len(result.Body) == 0 {
			t.Fatalf("Resolve(%q) returned no body", name)
		}
		if result.ContentType != "image/svg+xml" {
			t.Errorf("Resolve(%q) content type = %q", name, result.ContentType)
		}
	}
}

func TestPlaceholderKindByExtension(t *testing.T) {
	img := placeholderFor("photo.jpeg")
	if !strings.Contains(string(img.Body), "Image Not Available") {
		t.Error("image extension got document placeholder")
	}
	doc := placeholderFor("contract.pdf")
	if !strings.Contains(string(doc.Body), "Document Not Available") {
		t.Error("document extension got image placeholder")
	}
}
