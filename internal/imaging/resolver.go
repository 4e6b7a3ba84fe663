package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/chefmaster/backend/internal/metrics"
)

const (
	maxImageBytes = 10 << 20
	presignTTL    = time.Hour
)

// ObjectStore is the bucket the resolver mirrors fetched images into
type ObjectStore interface {
	Exists(ctx context.Context, objectKey string) (bool, error)
	Put(ctx context.Context, objectKey string, data []byte, contentType string) error
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// Image describes a resolved recipe image
type Image struct {
	URL         string `json:"url"`
	Source      string `json:"source,omitempty"`
	Format      string `json:"format,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Placeholder bool   `json:"placeholder"`
}

// Resolver turns a cuisine image reference into something displayable
type Resolver struct {
	client      *http.Client
	placeholder string
	store       ObjectStore
}

// NewResolver creates a new Resolver. store may be nil.
func NewResolver(timeout time.Duration, placeholder string, store ObjectStore) *Resolver {
	return &Resolver{
		client:      &http.Client{Timeout: timeout},
		placeholder: placeholder,
		store:       store,
	}
}

// Resolve fetches and decodes ref. Any failure yields the placeholder.
func (r *Resolver) Resolve(ctx context.Context, ref string) *Image {
	if ref == "" {
		return r.fallback(ref, fmt.Errorf("empty image reference"))
	}

	if r.store != nil {
		key := objectKey(ref)
		if ok, err := r.store.Exists(ctx, key); err == nil && ok {
			if url, err := r.store.GeneratePresignedURL(ctx, key, presignTTL); err == nil {
				return &Image{URL: url, Source: ref}
			}
		}
	}

	data, contentType, err := r.fetch(ctx, ref)
	if err != nil {
		return r.fallback(ref, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return r.fallback(ref, fmt.Errorf("failed to decode image: %w", err))
	}

	img := &Image{
		URL:    ref,
		Source: ref,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	if r.store != nil {
		if url, err := r.mirror(ctx, ref, format, data, contentType); err != nil {
			log.Printf("[ImageResolver] Failed to mirror %s: %v", ref, err)
		} else {
			img.URL = url
		}
	}
	return img
}

func (r *Resolver) fetch(ctx context.Context, ref string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, "", fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (r *Resolver) mirror(ctx context.Context, ref, format string, data []byte, contentType string) (string, error) {
	key := objectKey(ref)
	if contentType == "" {
		contentType = "image/" + format
	}
	if err := r.store.Put(ctx, key, data, contentType); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	log.Printf("[ImageResolver] Mirrored %s to %s", ref, key)
	return r.store.GeneratePresignedURL(ctx, key, presignTTL)
}

func (r *Resolver) fallback(ref string, err error) *Image {
	log.Printf("[ImageResolver] Using placeholder for %q: %v", ref, err)
	metrics.ImagePlaceholders.Inc()
	return &Image{URL: r.placeholder, Source: ref, Placeholder: true}
}

// objectKey is stable per reference so repeat lookups hit the mirror
func objectKey(ref string) string {
	return "recipe-images/" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(ref)).String()
}
