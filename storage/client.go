package storage

import "mime/multipart"

// Client abstracts blob storage operations for dependency injection and testing.
type Client interface {
	UploadItemImage(file multipart.File, filename, contentType string) (string, error)
	UploadMenuPhoto(file multipart.File, filename, contentType string) (string, error)
	DeleteFile(objectPath string) error
}

// FirebaseClient is the real implementation that delegates to package-level functions.
type FirebaseClient struct{}

func NewClient() Client {
	return &FirebaseClient{}
}

func (f *FirebaseClient) UploadItemImage(file multipart.File, filename, contentType string) (string, error) {
	return upload(file, "items", filename, contentType)
}

func (f *FirebaseClient) UploadMenuPhoto(file multipart.File, filename, contentType string) (string, error) {
	return upload(file, "uploads", filename, contentType)
}

func (f *FirebaseClient) DeleteFile(objectPath string) error {
	return DeleteFile(objectPath)
}
