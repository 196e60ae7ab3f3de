package handlers

import (
	"context"
	"mime/multipart"

	"ryori-backend/extraction"
)

type mockStorage struct {
	UploadItemImageFn func(file multipart.File, filename, contentType string) (string, error)
	UploadMenuPhotoFn func(file multipart.File, filename, contentType string) (string, error)
	DeleteFileFn      func(objectPath string) error
	DeleteFileCalls   []string
	UploadCallCount   int
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		DeleteFileCalls: []string{},
	}
}

func (m *mockStorage) UploadItemImage(file multipart.File, filename, contentType string) (string, error) {
	m.UploadCallCount++
	if m.UploadItemImageFn != nil {
		return m.UploadItemImageFn(file, filename, contentType)
	}
	return "https://storage.googleapis.com/test-bucket/items/test_image.jpg", nil
}

func (m *mockStorage) UploadMenuPhoto(file multipart.File, filename, contentType string) (string, error) {
	m.UploadCallCount++
	if m.UploadMenuPhotoFn != nil {
		return m.UploadMenuPhotoFn(file, filename, contentType)
	}
	return "https://storage.googleapis.com/test-bucket/uploads/test_menu.jpg", nil
}

func (m *mockStorage) DeleteFile(objectPath string) error {
	m.DeleteFileCalls = append(m.DeleteFileCalls, objectPath)
	if m.DeleteFileFn != nil {
		return m.DeleteFileFn(objectPath)
	}
	return nil
}

type mockExtractor struct {
	ExtractItemsFn func(ctx context.Context, imageURL string) ([]extraction.ExtractedItem, error)
	Calls          []string
}

func (m *mockExtractor) ExtractItems(ctx context.Context, imageURL string) ([]extraction.ExtractedItem, error) {
	m.Calls = append(m.Calls, imageURL)
	if m.ExtractItemsFn != nil {
		return m.ExtractItemsFn(ctx, imageURL)
	}
	return []extraction.ExtractedItem{}, nil
}
