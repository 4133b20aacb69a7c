// Package storage implements the external file-upload collaborator.
//
// Uploaded resumes and profile photos live outside this service; the core
// only carries the opaque URL the upload service hands back.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const uploadTimeout = 15 * time.Second

// RemoteStore uploads files to an external HTTP upload service and returns
// the URL the service assigns. Failures surface as plain errors; the caller
// decides whether the surrounding operation proceeds without the file.
type RemoteStore struct {
	uploadURL string
	client    *http.Client
}

func NewRemoteStore(uploadURL string) *RemoteStore {
	return &RemoteStore{
		uploadURL: uploadURL,
		client:    &http.Client{Timeout: uploadTimeout},
	}
}

func (s *RemoteStore) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("upload service returned status %d", resp.StatusCode)
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("upload service returned no URL")
	}
	return result.URL, nil
}
