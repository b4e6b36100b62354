package objectstore

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/akinalp/milan/pkg/supabase"
)

type supabaseStore struct {
	bucket *supabase.BucketClient
	prefix string
}

// NewSupabaseStore, Supabase Storage bucket'ına yükleyen Store döner.
func NewSupabaseStore(bucket *supabase.BucketClient) Store {
	return &supabaseStore{bucket: bucket, prefix: bucket.PublicURLPrefix()}
}

func (s *supabaseStore) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if err := s.bucket.Upload(ctx, name, data, contentType); err != nil {
		return "", err
	}
	return s.bucket.PublicURL(name), nil
}

func (s *supabaseStore) Owns(publicURL string) bool {
	return strings.HasPrefix(publicURL, s.prefix)
}

// Delete, bucket'ın public prefix'i altındaki URL'lerin dosya adını silme isteğine çevirir.
func (s *supabaseStore) Delete(ctx context.Context, publicURL string) error {
	if !s.Owns(publicURL) {
		return nil
	}
	name, err := url.PathUnescape(lastSegment(publicURL))
	if err != nil {
		return fmt.Errorf("invalid object url: %w", err)
	}
	if name == "" {
		return nil
	}
	return s.bucket.Remove(ctx, []string{name})
}
